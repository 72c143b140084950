package fetcher_test

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MichalMitros/woocommerce-populator/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userAgent       = "test/0.0.0"
	response        = "hello-world"
	endpoint        = "/image.jpg"
	contentType     = "Content-Type"
	contentEncoding = "Content-Encoding"
)

var wantHeaders = map[string]string{
	"User-Agent":      userAgent,
	"Accept":          "image/*",
	"Accept-Encoding": "gzip",
}

func TestUnitFetchFile(t *testing.T) {
	tests := map[string]struct {
		serverHandler http.Handler
		wantBody      string
		wantErr       error
	}{
		"ok plain": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "image/jpeg")
				wrt.WriteHeader(http.StatusOK)
				_, _ = wrt.Write([]byte(response))
			}),
			wantBody: response,
		},
		"ok gzip": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "image/jpeg")
				wrt.Header().Add(contentEncoding, "gzip")
				wrt.WriteHeader(http.StatusOK)
				compressedWrt := gzip.NewWriter(wrt)
				_, _ = compressedWrt.Write([]byte(response))
				_ = compressedWrt.Close()
			}),
			wantBody: response,
		},
		"ok unknown content type": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.Header().Add(contentType, "application/octet-stream")
				wrt.WriteHeader(http.StatusOK)
				_, _ = wrt.Write([]byte(response))
			}),
			wantBody: response,
		},
		"bad status error": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header, wantHeaders)
				wrt.WriteHeader(http.StatusNotFound)
			}),
			wantErr: fetcher.ErrStatusNotOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(tt.serverHandler)
			t.Cleanup(func() {
				srv.Close()
			})

			fet := fetcher.NewFetcher(srv.Client(), userAgent)
			resp, err := fet.FetchFile(context.TODO(), srv.URL+endpoint)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, readAndClose(t, resp), "should return correct response")
			}
		})
	}
}

func TestUnitFetchBytes(t *testing.T) {
	tests := map[string]struct {
		body     string
		maxSize  int64
		wantBody []byte
		wantErr  error
	}{
		"ok": {
			body:     response,
			maxSize:  fetcher.DefaultMaxSize,
			wantBody: []byte(response),
		},
		"exactly at limit": {
			body:     response,
			maxSize:  int64(len(response)),
			wantBody: []byte(response),
		},
		"empty body": {
			maxSize: fetcher.DefaultMaxSize,
			wantErr: fetcher.ErrEmptyBody,
		},
		"too large": {
			body:    response,
			maxSize: 4,
			wantErr: fetcher.ErrTooLarge,
		},
		"unset limit": {
			body:     response,
			maxSize:  0,
			wantBody: []byte(response),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
				_, _ = wrt.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			fet := fetcher.NewFetcher(srv.Client(), userAgent).WithMaxSize(tt.maxSize)
			body, err := fet.FetchBytes(context.TODO(), srv.URL+endpoint)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantBody, body, "should return correct body")
		})
	}
}

// readAndClose reads ReadCloser, closes it and returns result as string.
func readAndClose(t *testing.T, reader io.ReadCloser) string {
	t.Helper()

	if !assert.NotNil(t, reader, "reader shouldn't be nil") {
		return ""
	}

	result, err := io.ReadAll(reader)
	if !assert.NoError(t, err, "can't read reader") {
		return ""
	}

	assert.NoError(t, reader.Close(), "can't close reader")

	return string(result)
}

// validateHeaders checks if headers contain expected values.
func validateHeaders(t *testing.T, headers http.Header, expected map[string]string) {
	t.Helper()

	for header, expectedValue := range expected {
		assert.Equalf(t, expectedValue, headers.Get(header), "request should contain correct value for header %s", header)
	}
}
