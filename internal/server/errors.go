package server

import (
	"errors"
	"net/http"

	"github.com/arno/linkedin-post-agent/internal/extract"
	"github.com/arno/linkedin-post-agent/internal/llm"
	"github.com/arno/linkedin-post-agent/internal/pipeline"
	"github.com/arno/linkedin-post-agent/internal/types"
)

// HTTPStatus maps a stage or pipeline error to a response status.
// Caller mistakes are 400; upstream generation trouble is 502, or 504
// when the gateway timed out. Pipeline stage wrappers defer to the
// underlying cause.
func HTTPStatus(err error) int {
	var se *pipeline.StageError
	if errors.As(err, &se) {
		err = se.Err
	}

	var pre *types.PreconditionError
	if errors.As(err, &pre) {
		return http.StatusBadRequest
	}

	var gw *llm.GatewayError
	if errors.As(err, &gw) {
		if gw.Kind == llm.KindTimeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}

	if _, ok := extract.AsError(err); ok {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
