// Package server exposes the generation stages and the full pipeline
// over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/arno/linkedin-post-agent/internal/pipeline"
	"github.com/arno/linkedin-post-agent/internal/stages"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// Handlers holds the HTTP handler set over the stage service and the
// pipeline runner.
type Handlers struct {
	stages *stages.Service
	runner *pipeline.Runner
	log    zerolog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(svc *stages.Service, runner *pipeline.Runner, log zerolog.Logger) *Handlers {
	return &Handlers{stages: svc, runner: runner, log: log}
}

func (h *Handlers) handleIdeas(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, func(ctx context.Context, in *types.IdeasInput) (*types.IdeasOutput, error) {
		return h.stages.Ideas(ctx, in)
	})
}

func (h *Handlers) handleOutline(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, func(ctx context.Context, in *types.OutlineInput) (*types.OutlineOutput, error) {
		return h.stages.Outline(ctx, in)
	})
}

func (h *Handlers) handleDraft(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, func(ctx context.Context, in *types.DraftInput) (*types.DraftOutput, error) {
		return h.stages.Draft(ctx, in)
	})
}

func (h *Handlers) handlePolish(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, func(ctx context.Context, in *types.PolishInput) (*types.PolishOutput, error) {
		return h.stages.Polish(ctx, in)
	})
}

func (h *Handlers) handleHashtagize(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, func(ctx context.Context, in *types.HashtagizeInput) (*types.HashtagizeOutput, error) {
		return h.stages.Hashtagize(ctx, in)
	})
}

func (h *Handlers) handleImagePrompts(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, func(ctx context.Context, in *types.ImagePromptsInput) (*types.ImagePromptsOutput, error) {
		return h.stages.ImagePrompts(ctx, in)
	})
}

func (h *Handlers) handlePackage(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, func(ctx context.Context, in *types.PackageInput) (*types.PackageOutput, error) {
		return h.stages.Package(ctx, in)
	})
}

func (h *Handlers) handleFull(w http.ResponseWriter, r *http.Request) {
	handle(h, w, r, func(ctx context.Context, in *types.FullPostInput) (*types.FullPostOutput, error) {
		return h.runner.Run(ctx, in)
	})
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handle decodes a request body into In, runs op, and writes either
// the JSON result or a mapped error.
func handle[In any, Out any](h *Handlers, w http.ResponseWriter, r *http.Request, op func(context.Context, *In) (*Out, error)) {
	var in In
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := op(r.Context(), &in)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
