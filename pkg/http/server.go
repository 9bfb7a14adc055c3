package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type (
	ServerOption      func(*ServerImpl)
	HandlerMiddleware func(http.Handler) http.Handler

	// HandlerRegistry applies error status resolvers to the handlers registered after them
	HandlerRegistry interface {
		RegisterErrorStatusResolvers(resolvers ...ErrorStatusResolver)
		Register(handlers ...Handler)
	}

	Server interface {
		HandlerRegistry
		Listener(context.Context) error
		http.Handler
	}

	ServerImpl struct {
		Impl           *http.Server
		Router         *mux.Router
		ErrorResolvers []ErrorStatusResolver
	}
)

func NewServer(opts ...ServerOption) Server {
	router := withHandlerMetadata(mux.NewRouter())
	srv := &ServerImpl{
		Impl: &http.Server{
			Addr:              DefaultServerAddress,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		Router:         router,
		ErrorResolvers: nil,
	}
	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

func (s *ServerImpl) Listener(ctx context.Context) error {
	shutdown := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
		defer cancel()

		err := s.Impl.Shutdown(shutdownCtx)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}

	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.Impl.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.Impl.Addr, err)
	}

	return nil
}

func (s *ServerImpl) RegisterErrorStatusResolvers(resolvers ...ErrorStatusResolver) {
	s.ErrorResolvers = append(s.ErrorResolvers, resolvers...)
}

func (s *ServerImpl) Register(handlers ...Handler) {
	for _, handler := range handlers {
		s.Router.
			Name(getRouteName(handler.Method(), handler.Path())).
			Methods(handler.Method()).
			Path(handler.Path()).
			Handler(httpHandlerWrapper(handler.Handle, s.ErrorResolvers))
	}
}

func (s *ServerImpl) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))
	return fmt.Sprintf("%s_%s", strings.ToUpper(method), path)
}
