package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// FindProductByExternalID returns not deleted product of request context channel imported from source product
// with provided id. Returns nil product when there is none.
func (p Postgres) FindProductByExternalID(
	ctx context.Context,
	rc *models.RequestContext,
	externalID string,
) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.CustomFieldsWoocommerceID.EQ(pg.String(externalID)),
			table.Product.ChannelID.EQ(pg.Int32(int32(rc.ChannelID))),
			table.Product.DeletedAt.IS_NULL(),
		)).
		ORDER_BY(table.Product.ID.ASC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &product)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get product by external id: %w", err)
	}

	return FromDBProduct(&product), nil
}

// FindVariantByExternalID returns not deleted variant of request context channel imported from source variation
// with provided id. Returns nil variant when there is none.
func (p Postgres) FindVariantByExternalID(
	ctx context.Context,
	rc *models.RequestContext,
	externalID string,
) (*models.Variant, error) {
	var variant pgmodels.ProductVariant
	err := table.ProductVariant.SELECT(table.ProductVariant.AllColumns).
		WHERE(pg.AND(
			table.ProductVariant.CustomFieldsWoocommerceID.EQ(pg.String(externalID)),
			table.ProductVariant.ChannelID.EQ(pg.Int32(int32(rc.ChannelID))),
			table.ProductVariant.DeletedAt.IS_NULL(),
		)).
		ORDER_BY(table.ProductVariant.ID.ASC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &variant)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get variant by external id: %w", err)
	}

	return FromDBVariant(&variant), nil
}

// CreateProduct creates product with its assets in request context channel.
// First asset becomes featured asset.
func (p Postgres) CreateProduct(
	ctx context.Context,
	rc *models.RequestContext,
	input *models.ProductInput,
) (*models.Product, error) {
	var created pgmodels.Product

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		columnList := table.Product.MutableColumns.Except(table.Product.CreatedAt, table.Product.DeletedAt)

		err := table.Product.INSERT(columnList).
			MODEL(ToDBProduct(input, rc.ChannelID)).
			RETURNING(table.Product.AllColumns).
			QueryContext(ctx, tx, &created)
		if err != nil {
			return fmt.Errorf("can't insert product into database: %w", err)
		}

		if len(input.AssetIDs) == 0 {
			return nil
		}

		productAssets := lo.Map(input.AssetIDs, func(assetID int, ix int) pgmodels.ProductAsset {
			return pgmodels.ProductAsset{
				ProductID: created.ID,
				AssetID:   int32(assetID),
				Position:  int32(ix),
			}
		})

		_, err = table.ProductAsset.INSERT(table.ProductAsset.MutableColumns).
			MODELS(productAssets).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert product assets into database: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't create product: %w", err)
	}

	return FromDBProduct(&created), nil
}

// CreateVariants creates variants with their stock levels and assets in request context channel.
// Returned variants are in order of inputs.
func (p Postgres) CreateVariants(
	ctx context.Context,
	rc *models.RequestContext,
	inputs []models.VariantInput,
) ([]models.Variant, error) {
	if len(inputs) == 0 {
		return []models.Variant{}, nil
	}

	created := make([]pgmodels.ProductVariant, 0, len(inputs))

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		dbVariants := make([]pgmodels.ProductVariant, 0, len(inputs))
		for ix := range inputs {
			dbVariants = append(dbVariants, *ToDBVariant(&inputs[ix], rc.ChannelID))
		}

		columnList := table.ProductVariant.MutableColumns.Except(table.ProductVariant.CreatedAt, table.ProductVariant.DeletedAt)

		returned := make([]pgmodels.ProductVariant, 0, len(inputs))
		err := table.ProductVariant.INSERT(columnList).
			MODELS(dbVariants).
			RETURNING(table.ProductVariant.AllColumns).
			QueryContext(ctx, tx, &returned)
		if err != nil {
			return fmt.Errorf("can't insert variants into database: %w", err)
		}

		if len(returned) != len(inputs) {
			return fmt.Errorf("can't insert variants into database: inserted %d of %d", len(returned), len(inputs))
		}

		created, err = matchInserted(dbVariants, returned)
		if err != nil {
			return fmt.Errorf("can't insert variants into database: %w", err)
		}

		if err = insertStockLevels(ctx, tx, inputs, created); err != nil {
			return err
		}

		return insertVariantAssets(ctx, tx, inputs, created)
	})
	if err != nil {
		return nil, fmt.Errorf("can't create variants: %w", err)
	}

	return lo.Map(created, func(_ pgmodels.ProductVariant, ix int) models.Variant {
		return *FromDBVariant(&created[ix])
	}), nil
}

type variantKey struct {
	productID  int32
	sku        string
	name       string
	externalID string
}

func keyOfVariant(variant *pgmodels.ProductVariant) variantKey {
	return variantKey{
		productID:  variant.ProductID,
		sku:        variant.Sku,
		name:       variant.Name,
		externalID: lo.FromPtr(variant.CustomFieldsWoocommerceID),
	}
}

// matchInserted orders rows returned by insert like inserted models.
// RETURNING order of multi-row insert isn't guaranteed.
func matchInserted(inserted, returned []pgmodels.ProductVariant) ([]pgmodels.ProductVariant, error) {
	byKey := make(map[variantKey][]pgmodels.ProductVariant, len(returned))
	for ix := range returned {
		key := keyOfVariant(&returned[ix])
		byKey[key] = append(byKey[key], returned[ix])
	}

	ordered := make([]pgmodels.ProductVariant, 0, len(inserted))
	for ix := range inserted {
		key := keyOfVariant(&inserted[ix])
		rows := byKey[key]
		if len(rows) == 0 {
			return nil, fmt.Errorf("no returned row for variant %q", inserted[ix].Sku)
		}
		ordered = append(ordered, rows[0])
		byKey[key] = rows[1:]
	}

	return ordered, nil
}

// InsertAsset inserts asset row and returns it with assigned id.
func (p Postgres) InsertAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	var created pgmodels.Asset

	err := table.Asset.INSERT(table.Asset.MutableColumns.Except(table.Asset.CreatedAt)).
		MODEL(ToDBAsset(asset)).
		RETURNING(table.Asset.AllColumns).
		QueryContext(ctx, p.db, &created)
	if err != nil {
		return nil, fmt.Errorf("can't insert asset into database: %w", err)
	}

	return FromDBAsset(&created), nil
}

func insertStockLevels(
	ctx context.Context,
	db qrm.DB,
	inputs []models.VariantInput,
	created []pgmodels.ProductVariant,
) error {
	stockLevels := make([]pgmodels.StockLevel, 0, len(inputs))
	for ix := range inputs {
		stockLevels = append(stockLevels, pgmodels.StockLevel{
			ProductVariantID: created[ix].ID,
			StockLocationID:  int32(inputs[ix].StockLocationID),
			StockOnHand:      int32(inputs[ix].StockOnHand),
		})
	}

	_, err := table.StockLevel.INSERT(table.StockLevel.MutableColumns).
		MODELS(stockLevels).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert stock levels into database: %w", err)
	}

	return nil
}

func insertVariantAssets(
	ctx context.Context,
	db qrm.DB,
	inputs []models.VariantInput,
	created []pgmodels.ProductVariant,
) error {
	variantAssets := []pgmodels.ProductVariantAsset{}
	for ix := range inputs {
		for position, assetID := range inputs[ix].AssetIDs {
			variantAssets = append(variantAssets, pgmodels.ProductVariantAsset{
				ProductVariantID: created[ix].ID,
				AssetID:          int32(assetID),
				Position:         int32(position),
			})
		}
	}

	if len(variantAssets) == 0 {
		return nil
	}

	_, err := table.ProductVariantAsset.INSERT(table.ProductVariantAsset.MutableColumns).
		MODELS(variantAssets).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert variant assets into database: %w", err)
	}

	return nil
}
