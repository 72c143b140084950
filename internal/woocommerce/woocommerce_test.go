package woocommerce_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/MichalMitros/woocommerce-populator/internal/woocommerce"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	consumerKey    = "ck_test"
	consumerSecret = "cs_test"
	userAgent      = "test/0.0.0"
)

var logger = zerolog.Nop()

// store serves pages of products and variations.
type store struct {
	t          *testing.T
	products   []string
	variations map[string][]string
	pageSize   int
	requests   []string
}

func (s *store) ServeHTTP(wrt http.ResponseWriter, req *http.Request) {
	user, pass, ok := req.BasicAuth()
	assert.True(s.t, ok, "should use basic auth")
	assert.Equal(s.t, consumerKey, user)
	assert.Equal(s.t, consumerSecret, pass)
	assert.Equal(s.t, userAgent, req.Header.Get("User-Agent"))
	assert.Equal(s.t, strconv.Itoa(s.pageSize), req.URL.Query().Get("per_page"))

	page, err := strconv.Atoi(req.URL.Query().Get("page"))
	require.NoError(s.t, err)
	s.requests = append(s.requests, fmt.Sprintf("%s?page=%d", req.URL.Path, page))

	var items []string
	switch req.URL.Path {
	case "/wp-json/wc/v3/products":
		items = s.products
	default:
		productID := strings.TrimSuffix(strings.TrimPrefix(req.URL.Path, "/wp-json/wc/v3/products/"), "/variations")
		if productID == req.URL.Path {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}
		items = s.variations[productID]
	}

	chunks := lo.Chunk(items, s.pageSize)
	body := "[]"
	if page-1 < len(chunks) {
		body = "["
		for ix, item := range chunks[page-1] {
			if ix > 0 {
				body += ","
			}
			body += item
		}
		body += "]"
	}

	wrt.Header().Set("Content-Type", "application/json")
	_, _ = wrt.Write([]byte(body))
}

func simple(id int) string {
	return fmt.Sprintf(`{"id": %d, "name": "Product %d", "type": "simple", "price": "1.00"}`, id, id)
}

func newFetcher(t *testing.T, srvURL string, pageSize, maxRetries int) *woocommerce.PageFetcher {
	t.Helper()

	return newFetcherFromPage(t, srvURL, pageSize, 0, maxRetries)
}

func newFetcherFromPage(t *testing.T, srvURL string, pageSize, startPage, maxRetries int) *woocommerce.PageFetcher {
	t.Helper()

	client := woocommerce.NewClient(
		woocommerce.NewHTTPClient(maxRetries, 0, &logger),
		srvURL+"/",
		"",
		woocommerce.Credentials{ConsumerKey: consumerKey, ConsumerSecret: consumerSecret},
		userAgent,
	)

	return woocommerce.NewPageFetcher(client, pageSize, startPage, &logger)
}

func TestUnitFetchAllPagination(t *testing.T) {
	tests := map[string]struct {
		products     int
		pageSize     int
		wantRequests int
	}{
		"empty store":          {products: 0, pageSize: 2, wantRequests: 1},
		"single partial page":  {products: 1, pageSize: 2, wantRequests: 2},
		"exactly full pages":   {products: 4, pageSize: 2, wantRequests: 3},
		"last page is partial": {products: 5, pageSize: 2, wantRequests: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			st := &store{t: t, pageSize: tt.pageSize}
			for ix := range tt.products {
				st.products = append(st.products, simple(ix+1))
			}
			srv := httptest.NewServer(st)
			t.Cleanup(srv.Close)

			results, err := newFetcher(t, srv.URL, tt.pageSize, 0).FetchAll(context.TODO())

			require.NoError(t, err, "shouldn't return any error")
			assert.Len(t, st.requests, tt.wantRequests, "should stop after first empty page")
			require.Len(t, results, tt.products, "should return all records of all pages")
			for ix := range results {
				require.NoError(t, results[ix].Error)
				assert.Equal(t, strconv.Itoa(ix+1), results[ix].Record.ExternalID(), "should keep order of pages")
			}
		})
	}
}

func TestUnitFetchAllVariations(t *testing.T) {
	st := &store{
		t:        t,
		pageSize: 2,
		products: []string{
			simple(1),
			`{"id": 2, "name": "Hoodie", "type": "variable", "price": "10", "variations": [21, 22, 23]}`,
			`{"id": 3, "name": "Mug", "type": "variable", "price": "5", "variations": [{"id": 31, "price": "5"}]}`,
		},
		variations: map[string][]string{
			"2": {
				`{"id": 21, "sku": "S", "price": "10"}`,
				`{"id": 22, "sku": "M", "price": "11"}`,
				`{"id": 23, "sku": "L", "price": "12"}`,
			},
		},
	}
	srv := httptest.NewServer(st)
	t.Cleanup(srv.Close)

	results, err := newFetcher(t, srv.URL, 2, 0).FetchAll(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, results, 6)

	ids := lo.Map(results, func(r models.ParsingResult, _ int) string { return r.Record.ExternalID() })
	assert.Equal(t, []string{"1", "2", "3", "21", "22", "23"}, ids, "should append fetched variations")

	for _, result := range results[3:] {
		variation, ok := result.Record.(*models.Variation)
		require.True(t, ok, "should decode variations endpoint records as variations")
		assert.Equal(t, "2", variation.ParentID)
	}

	assert.NotContains(t, st.requests, "/wp-json/wc/v3/products/3/variations?page=1",
		"shouldn't fetch embedded variations")
	assert.Contains(t, st.requests, "/wp-json/wc/v3/products/2/variations?page=3")
}

func TestUnitFetchAllVariationsFromStartPage(t *testing.T) {
	st := &store{
		t:        t,
		pageSize: 1,
		products: []string{
			simple(1),
			`{"id": 2, "name": "Hoodie", "type": "variable", "price": "10", "variations": [21, 22]}`,
		},
		variations: map[string][]string{
			"2": {
				`{"id": 21, "sku": "S", "price": "10"}`,
				`{"id": 22, "sku": "M", "price": "11"}`,
			},
		},
	}
	srv := httptest.NewServer(st)
	t.Cleanup(srv.Close)

	results, err := newFetcherFromPage(t, srv.URL, 1, 2, 0).FetchAll(context.TODO())

	require.NoError(t, err, "shouldn't return any error")

	ids := lo.Map(results, func(r models.ParsingResult, _ int) string { return r.Record.ExternalID() })
	assert.Equal(t, []string{"2", "21", "22"}, ids, "should skip product pages before start page only")

	assert.NotContains(t, st.requests, "/wp-json/wc/v3/products?page=1")
	assert.Equal(t, "/wp-json/wc/v3/products?page=2", st.requests[0], "should start products at start page")
	assert.Contains(t, st.requests, "/wp-json/wc/v3/products/2/variations?page=1",
		"should request variations from first page")
}

func TestUnitFetchAllErrors(t *testing.T) {
	tests := map[string]struct {
		handler http.HandlerFunc
		wantErr error
	}{
		"server error": {
			handler: func(wrt http.ResponseWriter, _ *http.Request) {
				wrt.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: woocommerce.ErrUnexpectedStatus,
		},
		"unauthorized": {
			handler: func(wrt http.ResponseWriter, _ *http.Request) {
				wrt.WriteHeader(http.StatusUnauthorized)
				_, _ = wrt.Write([]byte(`{"code": "woocommerce_rest_cannot_view"}`))
			},
			wantErr: woocommerce.ErrUnexpectedStatus,
		},
		"malformed json": {
			handler: func(wrt http.ResponseWriter, _ *http.Request) {
				_, _ = wrt.Write([]byte(`[{"id": 1,`))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			results, err := newFetcher(t, srv.URL, 2, 0).FetchAll(context.TODO())

			require.Error(t, err, "should abort fetching")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Nil(t, results)
		})
	}
}

func TestUnitFetchAllRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			wrt.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = wrt.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	results, err := newFetcher(t, srv.URL, 2, 1).FetchAll(context.TODO())

	require.NoError(t, err, "should succeed after retry")
	assert.Empty(t, results)
	assert.Equal(t, int32(2), calls.Load())
}
