package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/klwxsrx/mastermind/pkg/http"
	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/observability"
)

var errItemNotFound = errors.New("item not found")

type itemIn struct {
	Name string `json:"name"`
}

type itemOut struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	RequestID string `json:"requestID"`
}

type putItemHandler struct {
	observer observability.Observer
}

func (h putItemHandler) Method() string {
	return http.MethodPut
}

func (h putItemHandler) Path() string {
	return "/items/{itemID}"
}

func (h putItemHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int]("itemID"), nil)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[itemIn](), err)
	if err != nil {
		return err
	}

	switch in.Name {
	case "missing":
		return errItemNotFound
	case "panic":
		panic("unexpected")
	case "broken":
		return errors.New("database is unavailable")
	}

	requestID, _ := h.observer.RequestID(r.Context())
	w.SetStatusCode(http.StatusCreated).SetJSONBody(itemOut{
		ID:        id,
		Name:      in.Name,
		RequestID: requestID,
	})
	return nil
}

func newTestServer() pkghttp.Server {
	observer := observability.New()
	srv := pkghttp.NewServer(
		pkghttp.WithObservability(observer, pkghttp.RequestIDHeaderExtractor("X-Request-ID")),
		pkghttp.WithLogging(log.New(log.LevelDisabled), log.LevelInfo, log.LevelError),
		pkghttp.WithErrorMapping(map[int][]error{
			http.StatusNotFound: {errItemNotFound},
		}),
		pkghttp.WithNotFoundHandler(),
		pkghttp.WithHealthCheck(nil),
	)
	srv.Register(putItemHandler{observer: observer})
	return srv
}

func TestServer_Handle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		expectCode int
		expectBody string
	}{
		{
			name:       "success",
			path:       "/items/7",
			body:       `{"name":"pen"}`,
			expectCode: http.StatusCreated,
			expectBody: `{"id":7,"name":"pen","requestID":"request-1"}`,
		},
		{
			name:       "bad_request_when_path_parameter_is_invalid",
			path:       "/items/seven",
			body:       `{"name":"pen"}`,
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "bad_request_when_body_is_invalid",
			path:       "/items/7",
			body:       `{"name":`,
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "mapped_error",
			path:       "/items/7",
			body:       `{"name":"missing"}`,
			expectCode: http.StatusNotFound,
			expectBody: `{"error":"item not found"}`,
		},
		{
			name:       "internal_error_hides_details",
			path:       "/items/7",
			body:       `{"name":"broken"}`,
			expectCode: http.StatusInternalServerError,
			expectBody: `{"error":"Internal Server Error"}`,
		},
		{
			name:       "panic",
			path:       "/items/7",
			body:       `{"name":"panic"}`,
			expectCode: http.StatusInternalServerError,
		},
		{
			name:       "unknown_route",
			path:       "/unknown",
			body:       `{}`,
			expectCode: http.StatusNotFound,
			expectBody: `{"error":"route not found"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
			req.Header.Set("X-Request-ID", "request-1")
			rec := httptest.NewRecorder()

			newTestServer().ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
			if tc.expectBody != "" {
				assert.JSONEq(t, tc.expectBody, rec.Body.String())
			}
		})
	}
}

func TestServer_HealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pkghttp.HealthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestClient_SendsRequestToServer(t *testing.T) {
	testServer := httptest.NewServer(newTestServer())
	defer testServer.Close()

	observer := observability.New()
	client := pkghttp.NewClientFactory(
		pkghttp.WithRequestObservability(observer, "X-Request-ID"),
	).InitClient("items", testServer.URL)

	ctx := observer.WithRequestID(context.Background(), "request-2")
	resp, err := client.NewRequest(ctx, pkghttp.Route{Method: http.MethodPut, URL: "/items/{itemID}"}).
		SetPathParam("itemID", "3").
		SetJSONBody(itemIn{Name: "cup"}).
		Send()
	require.NoError(t, err)
	defer func() {
		_ = resp.Close()
	}()

	require.Equal(t, http.StatusCreated, resp.StatusCode())
	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[itemOut](), nil)
	require.NoError(t, err)
	assert.Equal(t, itemOut{ID: 3, Name: "cup", RequestID: "request-2"}, out)
}
