package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/table"
	"golang.org/x/sync/errgroup"

	pgmodels "github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// indexSource is variant joined with its product.
type indexSource struct {
	pgmodels.ProductVariant

	Product pgmodels.Product
}

// RebuildSearchIndex replaces all search index items with items built from not deleted variants.
// Variants are read in pages of batchSize. Returns number of indexed variants.
func (p Postgres) RebuildSearchIndex(ctx context.Context, batchSize uint) (int32, error) {
	if batchSize == 0 {
		batchSize = 100
	}

	indexedNumber := int32(0)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.SearchIndexItem.DELETE().
			WHERE(table.SearchIndexItem.ProductVariantID.IS_NOT_NULL()).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't clear search index: %w", err)
		}

		toIndex := make(chan []indexSource)

		errGroup, egCtx := errgroup.WithContext(ctx)

		errGroup.Go(func() error {
			return getIndexSourcesAsync(egCtx, tx, batchSize, toIndex)
		})

		errGroup.Go(func() error {
			indexed, err := insertIndexItemsAsync(egCtx, tx, toIndex)
			atomic.AddInt32(&indexedNumber, int32(indexed))
			return err
		})

		return errGroup.Wait()
	})
	if err != nil {
		return 0, fmt.Errorf("can't rebuild search index: %w", err)
	}

	return indexedNumber, nil
}

func getIndexSourcesAsync(ctx context.Context, db qrm.DB, batchSize uint, toIndex chan []indexSource) error {
	defer close(toIndex)
	previousID := int32(0)
	for {
		var sources []indexSource
		err := pg.SELECT(
			table.ProductVariant.AllColumns,
			table.Product.AllColumns,
		).
			FROM(table.ProductVariant.
				INNER_JOIN(table.Product, table.Product.ID.EQ(table.ProductVariant.ProductID)),
			).
			WHERE(pg.AND(
				table.ProductVariant.DeletedAt.IS_NULL(),
				table.Product.DeletedAt.IS_NULL(),
				table.ProductVariant.ID.GT(pg.Int32(previousID)),
			)).
			ORDER_BY(table.ProductVariant.ID.ASC()).
			LIMIT(int64(batchSize)).
			QueryContext(ctx, db, &sources)

		if errors.Is(err, qrm.ErrNoRows) || (err == nil && len(sources) == 0) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("can't get variants to index: %w", err)
		}

		previousID = sources[len(sources)-1].ID

		select {
		case <-ctx.Done():
			return ctx.Err()
		case toIndex <- sources:
		}
	}
}

func insertIndexItemsAsync(ctx context.Context, db qrm.DB, toIndex chan []indexSource) (int, error) {
	indexedCount := 0
	now := time.Now().UTC()
	for batch := range toIndex {
		items := make([]pgmodels.SearchIndexItem, 0, len(batch))
		for ix := range batch {
			items = append(items, toSearchIndexItem(&batch[ix], now))
		}

		_, err := table.SearchIndexItem.INSERT(table.SearchIndexItem.AllColumns).
			MODELS(items).
			ExecContext(ctx, db)
		if err != nil {
			return indexedCount, fmt.Errorf("can't insert search index items: %w", err)
		}
		indexedCount += len(batch)
	}
	return indexedCount, nil
}

func toSearchIndexItem(source *indexSource, updatedAt time.Time) pgmodels.SearchIndexItem {
	return pgmodels.SearchIndexItem{
		ProductVariantID: source.ID,
		ChannelID:        source.ChannelID,
		ProductID:        source.Product.ID,
		Enabled:          source.Enabled && source.Product.Enabled,
		ProductName:      source.Product.Name,
		VariantName:      source.Name,
		Slug:             source.Product.Slug,
		Description:      source.Product.Description,
		Sku:              source.Sku,
		Price:            source.Price,
		ProductAssetID:   source.Product.FeaturedAssetID,
		VariantAssetID:   source.FeaturedAssetID,
		UpdatedAt:        updatedAt,
	}
}
