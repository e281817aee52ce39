package stages

import (
	"context"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/prompts"
	"github.com/arno/linkedin-post-agent/internal/schemas"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// Package assembles the final publish-ready post. The final char
// count is recomputed over the returned text.
func (s *Service) Package(ctx context.Context, in *types.PackageInput) (*types.PackageOutput, error) {
	in.ApplyDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.chat(ctx, "package", prompts.Package(in))
	if err != nil {
		return nil, err
	}

	var out types.PackageOutput
	if err := extract.Object("package", raw, schemas.Package, &out); err != nil {
		return nil, err
	}
	out.FinalCharCount = types.CountChars(out.FinalText)

	return &out, nil
}
