package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// NewRouter builds the service router: request ID and recovery
// middleware, permissive CORS for browser clients, structured request
// logging, one POST route per stage plus the full pipeline and health.
func NewRouter(h *Handlers, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/posts", func(r chi.Router) {
		r.Post("/ideas", h.handleIdeas)
		r.Post("/outline", h.handleOutline)
		r.Post("/draft", h.handleDraft)
		r.Post("/polish", h.handlePolish)
		r.Post("/hashtagize", h.handleHashtagize)
		r.Post("/image-prompts", h.handleImagePrompts)
		r.Post("/package", h.handlePackage)
		r.Post("/full", h.handleFull)
	})

	return r
}

// requestLogger emits one structured event per request.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
