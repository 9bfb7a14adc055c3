package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/mastermind/pkg/observability"
)

type RequestIDExtractor func(*http.Request) string

// WithObservability takes the request ID from the first extractor returning a value
func WithObservability(observer observability.Observer, extractors ...RequestIDExtractor) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, extractor := range extractors {
				if value := extractor(r); value != "" {
					r = r.WithContext(observer.WithRequestID(r.Context(), value))
					break
				}
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func RequestIDHeaderExtractor(header string) RequestIDExtractor {
	return func(r *http.Request) string {
		return r.Header.Get(header)
	}
}

func RequestIDRandomUUIDExtractor() RequestIDExtractor {
	return func(_ *http.Request) string {
		return uuid.New().String()
	}
}
