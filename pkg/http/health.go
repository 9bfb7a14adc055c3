package http

import (
	"net/http"
)

const HealthPath = "/healthz"

type healthHandler struct {
	check func(*http.Request) error
}

func (h healthHandler) Method() string {
	return http.MethodGet
}

func (h healthHandler) Path() string {
	return HealthPath
}

func (h healthHandler) Handle(w ResponseWriter, r *http.Request) error {
	if h.check != nil {
		err := h.check(r)
		if err != nil {
			return err
		}
	}

	w.SetJSONBody(struct {
		Status string `json:"status"`
	}{
		Status: "OK",
	})
	return nil
}

func WithHealthCheck(check func(*http.Request) error) ServerOption {
	return func(srv *ServerImpl) {
		srv.Register(healthHandler{check: check})
	}
}
