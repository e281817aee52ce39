package stages

import (
	"context"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/prompts"
	"github.com/arno/linkedin-post-agent/internal/schemas"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// Polish tightens an existing draft. The char count in the response is
// discarded and recomputed over the polished text.
func (s *Service) Polish(ctx context.Context, in *types.PolishInput) (*types.PolishOutput, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.chat(ctx, "polish", prompts.Polish(in))
	if err != nil {
		return nil, err
	}

	var out types.PolishOutput
	if err := extract.Object("polish", raw, schemas.Polish, &out); err != nil {
		return nil, err
	}
	out.CharCount = types.CountChars(out.Polished)

	return &out, nil
}
