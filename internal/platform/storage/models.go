package storage

import (
	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/woocommerce-populator/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.PopulateRun {
	return &pgmodels.PopulateRun{
		ID:                int32(run.ID),
		FinishedAt:        run.FinishedAt,
		Success:           run.IsSuccess,
		StatusMessage:     run.StatusMessage,
		FetchedRecords:    run.FetchedRecords,
		CreatedProducts:   run.CreatedProducts,
		SkippedProducts:   run.SkippedProducts,
		FailedProducts:    run.FailedProducts,
		DroppedVariations: run.DroppedVariations,
		CreatedVariants:   run.CreatedVariants,
	}
}

// FromDBRun converts postgres run model into models.Run.
func FromDBRun(run *pgmodels.PopulateRun) *models.Run {
	return &models.Run{
		ID:                int(run.ID),
		CreatedAt:         run.CreatedAt,
		FinishedAt:        run.FinishedAt,
		IsSuccess:         run.Success,
		StatusMessage:     run.StatusMessage,
		FetchedRecords:    run.FetchedRecords,
		CreatedProducts:   run.CreatedProducts,
		SkippedProducts:   run.SkippedProducts,
		FailedProducts:    run.FailedProducts,
		DroppedVariations: run.DroppedVariations,
		CreatedVariants:   run.CreatedVariants,
	}
}

// ToDBProduct converts models.ProductInput into postgres product model.
func ToDBProduct(input *models.ProductInput, channelID int) *pgmodels.Product {
	product := pgmodels.Product{
		ChannelID:                 int32(channelID),
		Name:                      input.Name,
		Slug:                      input.Slug,
		Description:               input.Description,
		Enabled:                   true,
		CustomFieldsWoocommerceID: lo.EmptyableToPtr(input.ExternalID),
	}

	if len(input.AssetIDs) > 0 {
		product.FeaturedAssetID = lo.ToPtr(int32(input.AssetIDs[0]))
	}

	return &product
}

// FromDBProduct converts postgres product model into models.Product.
func FromDBProduct(product *pgmodels.Product) *models.Product {
	return &models.Product{
		ID:              int(product.ID),
		CreatedAt:       product.CreatedAt,
		DeletedAt:       product.DeletedAt,
		ChannelID:       int(product.ChannelID),
		Name:            product.Name,
		Slug:            product.Slug,
		Description:     product.Description,
		Enabled:         product.Enabled,
		FeaturedAssetID: toIntPtr(product.FeaturedAssetID),
		WooCommerceID:   product.CustomFieldsWoocommerceID,
	}
}

// ToDBVariant converts models.VariantInput into postgres product variant model.
func ToDBVariant(input *models.VariantInput, channelID int) *pgmodels.ProductVariant {
	variant := pgmodels.ProductVariant{
		ProductID:                 int32(input.ProductID),
		ChannelID:                 int32(channelID),
		Sku:                       input.SKU,
		Name:                      input.Name,
		Price:                     input.Price,
		Enabled:                   true,
		TaxCategoryID:             int32(input.TaxCategoryID),
		CustomFieldsWoocommerceID: input.ExternalID,
		CustomFieldsWeight:        input.Weight,
	}

	if len(input.AssetIDs) > 0 {
		variant.FeaturedAssetID = lo.ToPtr(int32(input.AssetIDs[0]))
	}

	return &variant
}

// FromDBVariant converts postgres product variant model into models.Variant.
func FromDBVariant(variant *pgmodels.ProductVariant) *models.Variant {
	return &models.Variant{
		ID:              int(variant.ID),
		ProductID:       int(variant.ProductID),
		SKU:             variant.Sku,
		Name:            variant.Name,
		Price:           variant.Price,
		TaxCategoryID:   int(variant.TaxCategoryID),
		FeaturedAssetID: toIntPtr(variant.FeaturedAssetID),
		ExternalID:      variant.CustomFieldsWoocommerceID,
		Weight:          variant.CustomFieldsWeight,
	}
}

// ToDBAsset converts models.Asset into postgres asset model.
func ToDBAsset(asset *models.Asset) *pgmodels.Asset {
	return &pgmodels.Asset{
		ID:       int32(asset.ID),
		Name:     asset.Name,
		Type:     asset.Type,
		MimeType: asset.MimeType,
		FileSize: int32(asset.FileSize),
		Source:   asset.Source,
		Preview:  asset.Preview,
	}
}

// FromDBAsset converts postgres asset model into models.Asset.
func FromDBAsset(asset *pgmodels.Asset) *models.Asset {
	return &models.Asset{
		ID:       int(asset.ID),
		Name:     asset.Name,
		Type:     asset.Type,
		MimeType: asset.MimeType,
		FileSize: int(asset.FileSize),
		Source:   asset.Source,
		Preview:  asset.Preview,
	}
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	return lo.ToPtr(int(*v))
}
