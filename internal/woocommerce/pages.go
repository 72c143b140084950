package woocommerce

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MichalMitros/woocommerce-populator/internal/decoder"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPageSize is default number of records requested per page.
	DefaultPageSize = 100
	// DefaultStartPage is number of first requested page.
	DefaultStartPage = 1

	productsEndpoint = "products"
)

// Getter gets pages of WooCommerce collections.
type Getter interface {
	Get(ctx context.Context, endpoint string, page, perPage int) (io.ReadCloser, error)
}

// PageFetcher fetches whole catalog page by page.
type PageFetcher struct {
	getter    Getter
	logger    *zerolog.Logger
	pageSize  int
	startPage int
}

// NewPageFetcher returns new PageFetcher. Non-positive pageSize and startPage fall back to defaults.
func NewPageFetcher(getter Getter, pageSize, startPage int, logger *zerolog.Logger) *PageFetcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if startPage <= 0 {
		startPage = DefaultStartPage
	}

	return &PageFetcher{
		getter:    getter,
		logger:    logger,
		pageSize:  pageSize,
		startPage: startPage,
	}
}

// FetchAll requests product pages until first empty page and returns all decoded records.
// Variations of variable products listed only by id are requested from variations endpoint and appended.
// Configured start page applies to products only, variations are always requested from the first page.
// Any transport error aborts fetching.
func (f *PageFetcher) FetchAll(ctx context.Context) ([]models.ParsingResult, error) {
	results, err := f.fetchCollection(ctx, productsEndpoint, f.startPage, decoder.Decoder{})
	if err != nil {
		return nil, err
	}

	f.logger.Info().Int("records", len(results)).Msg("fetched products")

	variations := []models.ParsingResult{}
	for ix := range results {
		variable, ok := results[ix].Record.(*models.Variable)
		if !ok || len(variable.VariationIDs) == 0 || len(variable.Variations) > 0 {
			continue
		}

		endpoint := fmt.Sprintf("%s/%s/variations", productsEndpoint, variable.ID)
		fetched, err := f.fetchCollection(ctx, endpoint, DefaultStartPage, decoder.Decoder{ParentID: variable.ID})
		if err != nil {
			return nil, err
		}

		f.logger.Debug().
			Str("productID", variable.ID).
			Int("listed", len(variable.VariationIDs)).
			Int("fetched", len(fetched)).
			Msg("fetched variations")

		variations = append(variations, fetched...)
	}

	return append(results, variations...), nil
}

func (f *PageFetcher) fetchCollection(
	ctx context.Context,
	endpoint string,
	startPage int,
	dec decoder.Decoder,
) ([]models.ParsingResult, error) {
	all := []models.ParsingResult{}

	for page := startPage; ; page++ {
		started := time.Now()

		results, count, err := f.fetchPage(ctx, endpoint, page, dec)
		if err != nil {
			return nil, fmt.Errorf("can't fetch %s page %d: %w", endpoint, page, err)
		}

		f.logger.Info().
			Str("endpoint", endpoint).
			Int("page", page).
			Int("records", count).
			Dur("duration", time.Since(started)).
			Msg("fetched page")

		if count == 0 {
			return all, nil
		}

		all = append(all, results...)
	}
}

func (f *PageFetcher) fetchPage(
	ctx context.Context,
	endpoint string,
	page int,
	dec decoder.Decoder,
) ([]models.ParsingResult, int, error) {
	body, err := f.getter.Get(ctx, endpoint, page, f.pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer body.Close()

	parsingResults := make(chan models.ParsingResult)
	results := []models.ParsingResult{}
	count := 0

	errGroup, egCtx := errgroup.WithContext(ctx)

	// decode page.
	errGroup.Go(func() error {
		defer close(parsingResults)
		decoded, err := dec.Decode(egCtx, body, parsingResults)
		count = decoded
		if err != nil {
			return fmt.Errorf("can't decode page: %w", err)
		}
		return nil
	})

	// collect decoding results.
	errGroup.Go(func() error {
		for result := range parsingResults {
			results = append(results, result)
		}
		return nil
	})

	if err := errGroup.Wait(); err != nil {
		return nil, 0, err
	}

	return results, count, nil
}
