package woocommerce

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// DefaultVersion is WooCommerce REST API version used when none is configured.
const DefaultVersion = "wc/v3"

// Credentials are WooCommerce REST API consumer credentials.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
}

// Client requests WooCommerce REST API.
type Client struct {
	http        *retryablehttp.Client
	baseURL     string
	version     string
	credentials Credentials
	userAgent   string
}

// NewHTTPClient returns retryablehttp.Client retrying failed requests maxRetries times and logging into logger.
// Responses are passed to caller even when retries are exhausted.
func NewHTTPClient(maxRetries int, timeout time.Duration, logger *zerolog.Logger) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = maxRetries
	client.Logger = NewRetryLogger(logger)
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = timeout

	return client
}

// NewClient returns new Client for store at baseURL.
func NewClient(
	httpClient *retryablehttp.Client,
	baseURL, version string,
	credentials Credentials,
	userAgent string,
) *Client {
	if version == "" {
		version = DefaultVersion
	}

	return &Client{
		http:        httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		version:     strings.Trim(version, "/"),
		credentials: credentials,
		userAgent:   userAgent,
	}
}

// Get returns body of page of collection at endpoint, e.g. "products" or "products/12/variations".
// The caller is responsible for closing returned ReadCloser.
func (c *Client) Get(ctx context.Context, endpoint string, page, perPage int) (io.ReadCloser, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	reqURL := fmt.Sprintf("%s/wp-json/%s/%s?%s", c.baseURL, c.version, strings.Trim(endpoint, "/"), query.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.SetBasicAuth(c.credentials.ConsumerKey, c.credentials.ConsumerSecret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(body)))
	}

	return resp.Body, nil
}
