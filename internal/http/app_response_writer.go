package http

import (
	"net/http"

	"log-catalog/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter wraps the http.ResponseWriter so middlewares can read the status and the
// ServiceError code of a response after the handler returns.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// statusOf reports the response status, 200 when the handler never called WriteHeader.
func statusOf(w http.ResponseWriter) int {
	appWriter, ok := w.(*appResponseWriter)
	if !ok || appWriter.Status() == 0 {
		return http.StatusOK
	}
	return appWriter.Status()
}
