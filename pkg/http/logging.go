package http

import (
	"net/http"
	"slices"

	"github.com/klwxsrx/mastermind/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, HealthPath)

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(excludedPaths, r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			logger := getRequestFieldsLogger(r, logger).WithField("responseCode", meta.Code)
			switch {
			case meta.Panic != nil:
				logger.
					With(log.Fields{
						"panic":      meta.Panic.Message,
						"stacktrace": string(meta.Panic.Stacktrace),
					}).
					Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				logger.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with internal error")
			case meta.Error != nil:
				logger.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled with error")
			default:
				logger.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func getRequestFieldsLogger(r *http.Request, logger log.Logger) log.Logger {
	return logger.With(log.Fields{
		"routeName": getRouteName(r.Method, r.URL.Path),
		"method":    r.Method,
		"path":      r.URL.Path,
	})
}
