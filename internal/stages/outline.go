package stages

import (
	"context"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/prompts"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// Outline turns a chosen idea into a structured post outline. The
// response must carry an "outline" object; its absence is a distinct
// failure from malformed JSON.
func (s *Service) Outline(ctx context.Context, in *types.OutlineInput) (*types.OutlineOutput, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.chat(ctx, "outline", prompts.OutlineStage(in))
	if err != nil {
		return nil, err
	}

	var outline types.Outline
	if err := extract.FieldObject("outline", raw, "outline", &outline); err != nil {
		return nil, err
	}

	return &types.OutlineOutput{Outline: outline}, nil
}
