// Package stages implements the standalone generation stage
// operations. Every operation follows the same shape: validate the
// typed input, build the instruction conversation, make exactly one
// gateway round trip, extract the typed result.
package stages

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arno/linkedin-post-agent/internal/llm"
)

// Service exposes one operation per pipeline stage over an injected
// gateway client. It holds no per-request state.
type Service struct {
	llm llm.Client
	log zerolog.Logger
}

// New creates a stage service.
func New(client llm.Client, log zerolog.Logger) *Service {
	return &Service{llm: client, log: log}
}

// chat performs one gateway round trip and emits a structured stage
// event. Diagnostic output never carries completion text.
func (s *Service) chat(ctx context.Context, stage string, conv llm.Conversation) (string, error) {
	start := time.Now()
	raw, err := s.llm.Chat(ctx, conv)

	evt := s.log.Info()
	status := "ok"
	if err != nil {
		evt = s.log.Error().Err(err)
		status = "error"
	}
	evt.Str("stage", stage).
		Str("status", status).
		Dur("duration", time.Since(start)).
		Msg("generation round trip")

	return raw, err
}
