package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MichalMitros/woocommerce-populator/internal/decoder"
	pgmodels "github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/storage/storagetesting"
	"github.com/go-faker/faker/v4"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const (
	contentType  = "Content-Type"
	apiPrefix    = "/wp-json/wc/v3/products"
	imagesPrefix = "/images/"
)

// Catalog is WooCommerce catalog served by Store.
type Catalog struct {
	Products []decoder.Product
	// Variations are served from variations endpoint of product with id equal to the key.
	Variations map[int64][]decoder.Product
}

// Store is mocked WooCommerce store serving catalog pages and product images.
type Store struct {
	*httptest.Server

	catalog  Catalog
	requests atomic.Int32
}

// NewStore starts Store with empty catalog. Images are served from /images/<name>.png,
// /images/missing.png returns 404 and /images/text.png returns plain text.
func NewStore(t *testing.T) *Store {
	t.Helper()

	store := &Store{}
	store.Server = httptest.NewServer(store)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// SetCatalog sets served catalog. It must be called before any catalog request.
func (s *Store) SetCatalog(catalog Catalog) {
	s.catalog = catalog
}

// Requests returns number of handled requests.
func (s *Store) Requests() int {
	return int(s.requests.Load())
}

// ImageURL returns url of image served by Store.
func (s *Store) ImageURL(name string) string {
	return s.URL + imagesPrefix + name + ".png"
}

func (s *Store) ServeHTTP(wrt http.ResponseWriter, req *http.Request) {
	s.requests.Add(1)

	path := req.URL.Path
	switch {
	case strings.HasPrefix(path, imagesPrefix):
		s.serveImage(wrt, strings.TrimPrefix(path, imagesPrefix))
	case path == apiPrefix:
		s.servePage(wrt, req, s.catalog.Products)
	case strings.HasPrefix(path, apiPrefix+"/") && strings.HasSuffix(path, "/variations"):
		id, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(path, apiPrefix+"/"), "/variations"), 10, 64)
		if err != nil {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}
		s.servePage(wrt, req, s.catalog.Variations[id])
	default:
		wrt.WriteHeader(http.StatusNotFound)
	}
}

func (s *Store) servePage(wrt http.ResponseWriter, req *http.Request, items []decoder.Product) {
	page, err := strconv.Atoi(req.URL.Query().Get("page"))
	if err != nil || page < 1 {
		wrt.WriteHeader(http.StatusBadRequest)
		return
	}
	perPage, err := strconv.Atoi(req.URL.Query().Get("per_page"))
	if err != nil || perPage < 1 {
		wrt.WriteHeader(http.StatusBadRequest)
		return
	}

	chunks := lo.Chunk(items, perPage)
	pageItems := []decoder.Product{}
	if page <= len(chunks) {
		pageItems = chunks[page-1]
	}

	body, err := json.Marshal(pageItems)
	if err != nil {
		wrt.WriteHeader(http.StatusInternalServerError)
		return
	}

	wrt.Header().Add(contentType, "application/json")
	_, _ = wrt.Write(body)
}

func (s *Store) serveImage(wrt http.ResponseWriter, name string) {
	switch name {
	case "missing.png":
		wrt.WriteHeader(http.StatusNotFound)
	case "text.png":
		wrt.Header().Add(contentType, "image/png")
		_, _ = wrt.Write([]byte("definitely not an image"))
	default:
		wrt.Header().Add(contentType, "image/png")
		_, _ = wrt.Write(pngImage())
	}
}

func pngImage() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)

	return buf.Bytes()
}

// SimpleProduct returns simple source product with fake data and provided images.
func SimpleProduct(id int64, imageURLs ...string) decoder.Product {
	return decoder.Product{
		ID:            id,
		Name:          fmt.Sprintf("%s %d", faker.Word(), id),
		Slug:          fmt.Sprintf("product-%d", id),
		Type:          "simple",
		Description:   faker.Sentence(),
		SKU:           fmt.Sprintf("SKU-%d", id),
		Price:         fmt.Sprintf("%d.99", id),
		StockQuantity: lo.ToPtr(id % 7),
		Images: lo.Map(imageURLs, func(url string, ix int) decoder.Image {
			return decoder.Image{ID: id*100 + int64(ix), Src: url, Name: fmt.Sprintf("image-%d", ix)}
		}),
	}
}

// VariableProduct returns variable source product with Size attribute and provided variations.
// Variations are embedded when embed is true and listed by id otherwise.
func VariableProduct(t *testing.T, id int64, embed bool, variations ...decoder.Product) decoder.Product {
	t.Helper()

	product := decoder.Product{
		ID:          id,
		Name:        fmt.Sprintf("Variable %d", id),
		Slug:        fmt.Sprintf("variable-%d", id),
		Type:        "variable",
		Description: faker.Sentence(),
		Price:       "10.00",
		Attributes: []decoder.Attribute{{
			ID:   1,
			Name: "Size",
			Options: lo.Map(variations, func(v decoder.Product, _ int) string {
				return v.Attributes[0].Option
			}),
		}},
	}

	for _, variation := range variations {
		var raw []byte
		var err error
		if embed {
			raw, err = json.Marshal(variation)
		} else {
			raw, err = json.Marshal(variation.ID)
		}
		require.NoError(t, err, "can't marshal variation")
		product.Variations = append(product.Variations, raw)
	}

	return product
}

// Variation returns variation source record with Size attribute value.
func Variation(id, parentID int64, size, price string) decoder.Product {
	return decoder.Product{
		ID:            id,
		ParentID:      parentID,
		Type:          "variation",
		Price:         price,
		StockQuantity: lo.ToPtr[int64](3),
		Attributes:    []decoder.Attribute{{ID: 1, Name: "Size", Option: size}},
	}
}

// WaitForSearchIndex is blocking helper function, returns search index items after there are at least n of them.
func WaitForSearchIndex(t *testing.T, queryable qrm.Queryable, n int, timeout time.Duration) []pgmodels.SearchIndexItem {
	t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "search index wasn't rebuilt in time")
		case <-time.After(250 * time.Millisecond):
		}

		items := storagetesting.GetSearchIndexItems(t, queryable)
		if len(items) >= n {
			return items
		}
	}
}

// CleanupRMQQueue is helper function deleting RMQ queue after test is finished.
func CleanupRMQQueue(t *testing.T, channel *amqp.Channel, queueName string) {
	t.Helper()

	t.Cleanup(func() {
		if _, err := channel.QueueDelete(queueName, false, false, false); err != nil {
			t.Errorf("can't delete queue %s: %s", queueName, err)
		}
	})
}
