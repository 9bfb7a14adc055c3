package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/mastermind/pkg/strings"
)

type (
	DataExtractor[T any] func(dataProvider) (T, error)

	dataProvider interface {
		PathParameters() map[string]string
		Header() http.Header
		Body() io.ReadCloser
	}

	requestDataProvider struct {
		*http.Request
	}

	responseDataProvider struct {
		*http.Response
	}
)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

func ParseResponse[T any](r Response, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(responseDataProvider{r.RawResponse()}) //nolint:bodyclose
}

func PathParameter[T strings.SupportedValueParsingTypes](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		paramValue, ok := p.PathParameters()[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](paramValue)
	}
}

func Header[T strings.SupportedValueParsingTypes](key string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		header := p.Header().Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](header)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		err := json.NewDecoder(p.Body()).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) PathParameters() map[string]string {
	return mux.Vars(p.Request)
}

func (p requestDataProvider) Header() http.Header {
	return p.Request.Header
}

func (p requestDataProvider) Body() io.ReadCloser {
	return p.Request.Body
}

func (p responseDataProvider) PathParameters() map[string]string {
	if p.Response == nil || p.Response.Request == nil {
		return nil
	}

	return mux.Vars(p.Response.Request)
}

func (p responseDataProvider) Header() http.Header {
	if p.Response == nil {
		return nil
	}

	return p.Response.Header
}

func (p responseDataProvider) Body() io.ReadCloser {
	if p.Response == nil {
		return http.NoBody
	}

	return p.Response.Body
}

func parseTypedValueImpl[T strings.SupportedValueParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
