package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/examhub/internal/client/bridge"
	"github.com/dmitrijs2005/examhub/internal/common"
)

// RequestOptions shapes a single API call. An empty Method means GET; a nil
// Body sends no payload.
type RequestOptions struct {
	Method  string
	Body    any
	Headers http.Header
}

type HTTPClient struct {
	baseURL string
	source  bridge.Source
	http    *http.Client
}

// NewHTTPClient builds a client rooted at baseURL. A nil httpClient means a
// plain http.Client without a timeout.
func NewHTTPClient(baseURL string, source bridge.Source, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		source:  source,
		http:    httpClient,
	}
}

// Request performs one authenticated call and decodes the response into out.
// A nil out discards the body.
func (c *HTTPClient) Request(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	for k, vs := range opts.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.InitDataHeaderName, c.initData())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &eb) != nil {
			eb.Error = ""
		}
		return newRequestError(resp.StatusCode, eb.Error)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) initData() string {
	if c.source == nil {
		return ""
	}
	return c.source.InitData()
}
