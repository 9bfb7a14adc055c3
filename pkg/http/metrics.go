package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/mastermind/pkg/metric"
)

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			result := getHandlerMetadata(r.Context())

			routeName := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
				routeName = route.GetName()
			}

			if result.Panic != nil {
				metrics.With(metric.Labels{
					"method": r.Method,
					"route":  routeName,
				}).Increment("http_api_request_panics_total")
			}

			metrics.With(metric.Labels{
				"method": r.Method,
				"route":  routeName,
				"code":   fmt.Sprintf("%d", result.Code),
			}).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}
