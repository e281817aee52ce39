package stages

import (
	"context"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/prompts"
	"github.com/arno/linkedin-post-agent/internal/schemas"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// Ideas generates a list of post ideas for a topic.
func (s *Service) Ideas(ctx context.Context, in *types.IdeasInput) (*types.IdeasOutput, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.chat(ctx, "ideas", prompts.Ideas(in))
	if err != nil {
		return nil, err
	}

	var items []types.IdeaItem
	if err := extract.Object("ideas", raw, schemas.IdeaItems, &items); err != nil {
		return nil, err
	}

	return &types.IdeasOutput{Ideas: items}, nil
}
