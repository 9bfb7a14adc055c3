package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

func WithServerAddress(addr string) ServerOption {
	return func(srv *ServerImpl) {
		if addr != "" {
			srv.Impl.Addr = addr
		}
	}
}

func WithErrorMapping(statusCodes map[int][]error) ServerOption {
	return WithErrorStatusResolver(func(err error) (int, bool) {
		for statusCode, errs := range statusCodes {
			for _, expected := range errs {
				if errors.Is(err, expected) {
					return statusCode, true
				}
			}
		}

		return 0, false
	})
}

func WithErrorStatusResolver(resolver ErrorStatusResolver) ServerOption {
	return func(srv *ServerImpl) {
		srv.ErrorResolvers = append(srv.ErrorResolvers, resolver)
	}
}

func WithMW(mw HandlerMiddleware) ServerOption {
	return func(srv *ServerImpl) {
		srv.Router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithCORSHandler() ServerOption {
	return func(srv *ServerImpl) {
		srv.Router.Use(mux.CORSMethodMiddleware(srv.Router))
	}
}

func WithNotFoundHandler() ServerOption {
	return func(srv *ServerImpl) {
		srv.Router.NotFoundHandler = httpHandlerWrapper(func(ResponseWriter, *http.Request) error {
			return errRouteNotFound
		}, []ErrorStatusResolver{func(err error) (int, bool) {
			return http.StatusNotFound, errors.Is(err, errRouteNotFound)
		}})
	}
}

var errRouteNotFound = errors.New("route not found")
