package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	HandlerFunc func(w ResponseWriter, r *http.Request) error

	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}

	// ErrorStatusResolver maps a handler error to the response code, false means the error is unknown
	ErrorStatusResolver func(error) (int, bool)

	// ErrorBodyProvider is implemented by errors that describe themselves in the response body
	ErrorBodyProvider interface {
		ErrorBody() any
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error, resolvers []ErrorStatusResolver) {
	meta := getHandlerMetadata(ctx)
	meta.Error = err

	if err != nil {
		httpCode := resolveErrorStatus(err, resolvers)
		meta.Code = httpCode

		if httpCode == http.StatusInternalServerError {
			w.writeJSON(ctx, httpCode, ErrorResponse{Error: http.StatusText(httpCode)})
			return
		}

		var bodyProvider ErrorBodyProvider
		if errors.As(err, &bodyProvider) {
			w.writeJSON(ctx, httpCode, bodyProvider.ErrorBody())
			return
		}

		w.writeJSON(ctx, httpCode, ErrorResponse{Error: err.Error()})
		return
	}

	if !w.hasBody {
		meta.Code = w.httpCode
		w.impl.WriteHeader(w.httpCode)
		return
	}

	meta.Code = w.httpCode
	w.writeJSON(ctx, w.httpCode, w.body)
}

func (w *responseWriter) WritePanic(ctx context.Context, panic Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &panic

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func (w *responseWriter) writeJSON(ctx context.Context, httpCode int, data any) {
	bodyEncoded, err := json.Marshal(data)
	if err != nil {
		meta := getHandlerMetadata(ctx)
		meta.Code = http.StatusInternalServerError
		meta.Error = fmt.Errorf("encode body: %w", err)
		w.impl.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(httpCode)
	_, _ = w.impl.Write(bodyEncoded)
}

func resolveErrorStatus(err error, resolvers []ErrorStatusResolver) int {
	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest
	}

	for _, resolver := range resolvers {
		if code, ok := resolver(err); ok {
			return code
		}
	}

	return http.StatusInternalServerError
}

func httpHandlerWrapper(handler HandlerFunc, resolvers []ErrorStatusResolver) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			body:     nil,
			hasBody:  false,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err, resolvers)
	}
}
