package stages

import (
	"context"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/prompts"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// Draft writes a full post from an outline or free-text brief. The
// response is plain text; the character count is computed here, not
// reported by the generation service.
func (s *Service) Draft(ctx context.Context, in *types.DraftInput) (*types.DraftOutput, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.chat(ctx, "draft", prompts.Draft(in))
	if err != nil {
		return nil, err
	}

	text, err := extract.Text("draft", raw)
	if err != nil {
		return nil, err
	}

	return &types.DraftOutput{Draft: text, CharCount: types.CountChars(text)}, nil
}
