package middleware

import (
	"mime"
	"net/http"

	apperrors "offices/pkg/errors"
	httputil "offices/pkg/http"
	"offices/pkg/logger"
)

const jsonContentType = "application/json"

// ContentTypeValidation rejects write requests whose body is not JSON.
// Bodiless writes such as the status toggle pass through.
func ContentTypeValidation(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requiresContentType(r.Method) && r.ContentLength != 0 {
				contentType := extractContentType(r.Header.Get("Content-Type"))
				if contentType != jsonContentType {
					log.Warn("Invalid Content-Type header",
						"request_id", RequestIDFromContext(r.Context()),
						"content_type", contentType,
						"path", r.URL.Path,
						"method", r.Method,
					)
					if err := httputil.WriteError(w, apperrors.UnsupportedMediaType(contentType)); err != nil {
						log.Error("failed to write error response", "handler", "ContentTypeValidation", "operation", "WriteError", "error", err)
					}
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requiresContentType(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func extractContentType(header string) string {
	if header == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return header
	}
	return mediaType
}
