// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs operational logging with user-facing error pages so
// handlers report a failure in one call: the internal message and error go
// to the log, the user message goes to the rendered page.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger wraps a zap logger for handler error reporting.
func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: log}
}

// LogServerError logs an operational failure and renders the server error page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs a client error and renders the bad request page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogNotFound logs a missing-resource lookup and renders the not found page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderNotFound(w, r, userMsg, backURL)
}

// LogForbidden logs a denied access attempt and renders the forbidden page.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, logMsg, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderForbidden(w, r, userMsg, backURL)
}
