package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/mastermind/pkg/log"
	"github.com/klwxsrx/mastermind/pkg/metric"
	"github.com/klwxsrx/mastermind/pkg/observability"
)

type (
	Destination string

	Route struct {
		Method string
		URL    string
	}

	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context, route Route) *Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}

	Request struct {
		impl  *resty.Request
		route Route
	}

	Response interface {
		StatusCode() int
		RawResponse() *http.Response
		Close() error
	}

	response struct {
		impl *resty.Response
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context, route Route) *Request {
	return &Request{
		impl:  c.RESTClient.NewRequest().SetContext(ctx).SetDoNotParseResponse(true),
		route: route,
	}
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func (r *Request) SetPathParam(param, value string) *Request {
	r.impl.SetPathParam(param, value)
	return r
}

func (r *Request) SetHeader(key, value string) *Request {
	r.impl.SetHeader(key, value)
	return r
}

func (r *Request) SetJSONBody(body any) *Request {
	r.impl.SetHeader("Content-Type", "application/json").SetBody(body)
	return r
}

// Send returns the response with an unread body, it must be closed by the caller
func (r *Request) Send() (Response, error) {
	resp, err := r.impl.Execute(r.route.Method, r.route.URL)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.route.Method, r.route.URL, err)
	}

	return response{resp}, nil
}

func (r response) StatusCode() int {
	return r.impl.StatusCode()
}

func (r response) RawResponse() *http.Response {
	return r.impl.RawResponse
}

func (r response) Close() error {
	if r.impl.RawResponse == nil || r.impl.RawResponse.Body == nil {
		return nil
	}

	return r.impl.RawResponse.Body.Close()
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *ClientImpl) {
		destinationName := getDestinationNameForLogging(c)

		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger := getRequestFieldsLogger(resp.Request.RawRequest, logger).With(log.Fields{
				"destinationName": destinationName,
				"responseCode":    resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				logger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				logger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger := logger.WithField("destinationName", destinationName)
			if req.RawRequest != nil {
				logger = getRequestFieldsLogger(req.RawRequest, logger)
			}

			logger.
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *ClientImpl) {
		destinationName := c.DestinationName
		if destinationName == "" {
			destinationName = "none"
		}

		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": destinationName,
				"method":      resp.Request.Method,
				"route":       resp.Request.URL,
				"code":        fmt.Sprintf("%d", resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, WithClientDestination(string(dest), baseURL))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
