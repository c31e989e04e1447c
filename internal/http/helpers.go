package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := mapError(err)
	locale := a.locale
	if requested := requestedLocale(r); requested != nil {
		locale = *requested
	}
	logger := a.logger.WithContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("http.request.failed", "status", status, "error", err)
	} else {
		logger.Debug("http.request.rejected", "status", status, "error", err)
	}
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: code, Message: domain.DisplayMessage(err, locale)})
}

var statusByKind = map[string]int{
	domain.KindNotFound:         http.StatusNotFound,
	domain.KindInvalidParameter: http.StatusBadRequest,
	domain.KindTransportFailure: http.StatusBadGateway,
}

func mapError(err error) (int, string) {
	kind := domain.ErrorKind(err)
	if status, ok := statusByKind[kind]; ok {
		return status, kind
	}
	return http.StatusInternalServerError, domain.KindInternal
}

// requestLogger tags the request context with its id so downstream loggers pick it
// up, then logs the completed request.
func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.ContextWithFields(r.Context(), map[string]any{
			"request_id": middleware.GetReqID(r.Context()),
			"path":       r.URL.Path,
		})
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))
		a.logger.WithContext(ctx).Info("http.request",
			"method", r.Method,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
