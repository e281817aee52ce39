package stages

import (
	"context"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/prompts"
	"github.com/arno/linkedin-post-agent/internal/schemas"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// ImagePrompts proposes header-image prompt ideas for a post text.
func (s *Service) ImagePrompts(ctx context.Context, in *types.ImagePromptsInput) (*types.ImagePromptsOutput, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.chat(ctx, "image-prompts", prompts.ImagePrompts(in))
	if err != nil {
		return nil, err
	}

	var out types.ImagePromptsOutput
	if err := extract.Object("image-prompts", raw, schemas.ImagePrompts, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
