package httpcall

import (
	"bytes"
	"context"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/exceptions"
	"dental-hms/internal/pkg/utils"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client is the shared HTTP caller for every HMS resource client. It performs a
// single attempt per call: no retry, no backoff.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// Options mirrors the optional request init of a call. Body is JSON encoded when
// not nil, Headers override the defaults.
type Options struct {
	Method      string
	Body        interface{}
	Headers     map[string]string
	// DiscardBody skips decoding of a successful response
	DiscardBody bool
}

// NewClient builds a caller for baseUrl. A zero timeout leaves the transport
// default in place.
func NewClient(baseUrl string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// Call sends one request to <BaseUrl><path> and decodes the JSON response into T.
// A 204 response resolves to a nil *T without touching the body, any other non-2xx
// response fails with *exceptions.HttpError.
func Call[T any](ctx context.Context, c *Client, path string, opts *Options) (*T, error) {
	requestID := utils.RequestIDFromContext(ctx)
	if opts == nil {
		opts = &Options{}
	}
	method := opts.Method
	if method == "" {
		method = constvars.MethodGet
	}
	url := c.BaseUrl + path

	c.Log.Debug("httpcall.Call called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingHMSUrlKey, url),
	)

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			c.Log.Error("httpcall.Call error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.Log.Error("httpcall.Call error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("httpcall.Call error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHMSUrlKey, url),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("httpcall.Call error reading error response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrReadHTTPResponse(err)
		}

		httpErr := exceptions.NewHttpError(resp.StatusCode, http.StatusText(resp.StatusCode), string(bodyBytes))
		c.Log.Error("httpcall.Call HMS backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHMSUrlKey, url),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(httpErr),
		)
		return nil, httpErr
	}

	if resp.StatusCode == constvars.StatusNoContent {
		c.Log.Debug("httpcall.Call succeeded with no content",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHMSUrlKey, url),
		)
		return nil, nil
	}

	result := new(T)
	if opts.DiscardBody {
		io.Copy(io.Discard, resp.Body)
		return result, nil
	}

	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		c.Log.Error("httpcall.Call error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHMSUrlKey, url),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, path)
	}

	c.Log.Debug("httpcall.Call succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHMSUrlKey, url),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return result, nil
}

func Get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	return Call[T](ctx, c, path, &Options{Method: constvars.MethodGet})
}

// List fetches a JSON array. A 204 or a null body yields an empty slice.
func List[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	items, err := Call[[]T](ctx, c, path, &Options{Method: constvars.MethodGet})
	if err != nil {
		return nil, err
	}
	if items == nil || *items == nil {
		return []T{}, nil
	}
	return *items, nil
}

func Post[T any](ctx context.Context, c *Client, path string, body interface{}) (*T, error) {
	return Call[T](ctx, c, path, &Options{Method: constvars.MethodPost, Body: body})
}

func Put[T any](ctx context.Context, c *Client, path string, body interface{}) (*T, error) {
	return Call[T](ctx, c, path, &Options{Method: constvars.MethodPut, Body: body})
}

// Delete discards whatever body the backend returns on success.
func Delete(ctx context.Context, c *Client, path string) error {
	_, err := Call[struct{}](ctx, c, path, &Options{Method: constvars.MethodDelete, DiscardBody: true})
	return err
}
