package stages

import (
	"context"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/prompts"
	"github.com/arno/linkedin-post-agent/internal/schemas"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// Hashtagize suggests hashtags for a post text.
func (s *Service) Hashtagize(ctx context.Context, in *types.HashtagizeInput) (*types.HashtagizeOutput, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.chat(ctx, "hashtagize", prompts.Hashtagize(in))
	if err != nil {
		return nil, err
	}

	var out types.HashtagizeOutput
	if err := extract.Object("hashtagize", raw, schemas.Hashtagize, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
