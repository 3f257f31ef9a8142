package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/irishtransit/pkg/dataaggregator/source"
	"golang.org/x/net/html/charset"
)

const DefaultUserAgent = "irishtransit/1.0"

// Client performs GET requests against the upstream providers and decodes their responses.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	Metrics    *Metrics
}

func NewClient(timeout time.Duration, userAgent string, metrics *Metrics) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  userAgent,
		Metrics:    metrics,
	}
}

// FetchXML performs the request and decodes the XML body into v
func (c *Client) FetchXML(ctx context.Context, baseURL string, path string, params url.Values, v any) error {
	body, err := c.get(ctx, baseURL, path, params)
	if err != nil {
		return err
	}

	d := xml.NewDecoder(bytes.NewReader(body))
	d.CharsetReader = charset.NewReaderLabel

	if err := d.Decode(v); err != nil {
		return fmt.Errorf("%w: failed to decode XML from %s: %w", source.UpstreamError, baseURL, err)
	}

	return nil
}

// FetchJSON performs the request with format=json and decodes the JSON body into v.
// A non-zero provider errorcode in the body is returned as an UpstreamError.
func (c *Client) FetchJSON(ctx context.Context, baseURL string, path string, params url.Values, v any) error {
	jsonParams := url.Values{}
	for key, values := range params {
		jsonParams[key] = append([]string{}, values...)
	}
	jsonParams.Set("format", "json")

	body, err := c.get(ctx, baseURL, path, jsonParams)
	if err != nil {
		return err
	}

	var status providerStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return fmt.Errorf("%w: failed to decode JSON from %s: %w", source.UpstreamError, baseURL, err)
	}

	if status.ErrorCode != "" && status.ErrorCode != "0" {
		return fmt.Errorf("%w: provider returned error code %s: %s", source.UpstreamError, status.ErrorCode, status.ErrorMessage)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: failed to decode JSON from %s: %w", source.UpstreamError, baseURL, err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, baseURL string, path string, params url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(baseURL, "/"), strings.TrimPrefix(path, "/"))
	if len(params) > 0 {
		requestURL = fmt.Sprintf("%s?%s", requestURL, params.Encode())
	}

	provider := baseURL
	if parsedURL, err := url.Parse(baseURL); err == nil && parsedURL.Host != "" {
		provider = parsedURL.Host
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid request: %w", source.UpstreamError, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	startTime := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Metrics.Observe(provider, "error", startTime)
		return nil, fmt.Errorf("%w: request to %s failed: %w", source.UpstreamError, requestURL, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("url", requestURL).
		Int("status", resp.StatusCode).
		Str("latency", time.Since(startTime).String()).
		Msg("Upstream request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.Metrics.Observe(provider, "bad_status", startTime)
		return nil, fmt.Errorf("%w: HTTP %d from %s", source.UpstreamError, resp.StatusCode, requestURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Metrics.Observe(provider, "error", startTime)
		return nil, fmt.Errorf("%w: failed reading body from %s: %w", source.UpstreamError, requestURL, err)
	}

	c.Metrics.Observe(provider, "ok", startTime)

	return body, nil
}

// providerStatus is the status envelope the RTPI API puts around every response
type providerStatus struct {
	ErrorCode    providerCode `json:"errorcode"`
	ErrorMessage string       `json:"errormessage"`
}

// providerCode accepts the error code as either a JSON string or number
type providerCode string

func (p *providerCode) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = providerCode(s)
		return nil
	}

	if string(data) == "null" {
		*p = ""
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = providerCode(n.String())

	return nil
}
