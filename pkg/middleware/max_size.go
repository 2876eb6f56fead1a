package middleware

import (
	"net/http"

	apperrors "offices/pkg/errors"
	httputil "offices/pkg/http"
)

// MaxRequestSize rejects bodies that declare a length over limit and caps the
// rest with http.MaxBytesReader, so oversized chunked bodies fail on decode.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				_ = httputil.WriteError(w, apperrors.PayloadTooLarge(int(limit)))
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
