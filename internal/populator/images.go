package populator

import (
	"context"
	"fmt"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name ImageFetcher --filename imagefetcher.go
//go:generate mockery --name AssetCreator --filename assetcreator.go

// ImageFetcher fetches image files.
type ImageFetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// AssetCreator creates assets from file contents.
type AssetCreator interface {
	CreateFromBytes(ctx context.Context, name string, data []byte) (*models.Asset, error)
}

// ImageImporter imports product images as assets.
type ImageImporter struct {
	fetcher ImageFetcher
	creator AssetCreator
	clock   Clock
	logger  *zerolog.Logger
}

// NewImageImporter returns new ImageImporter.
func NewImageImporter(fetcher ImageFetcher, creator AssetCreator, logger *zerolog.Logger, ops ...ImporterOption) *ImageImporter {
	imp := &ImageImporter{
		fetcher: fetcher,
		creator: creator,
		clock:   systemClock{},
		logger:  logger,
	}

	for _, op := range ops {
		op(imp)
	}

	return imp
}

// ImporterOption is custom configuration of ImageImporter.
type ImporterOption func(i *ImageImporter)

// WithImporterClock sets ImageImporter's custom Clock.
func WithImporterClock(c Clock) ImporterOption {
	return func(i *ImageImporter) {
		i.clock = c
	}
}

// ImportImages fetches images one by one and creates assets from them. Returns ids of created assets in images order.
// Images which can't be fetched or turned into assets are logged and skipped.
func (i *ImageImporter) ImportImages(ctx context.Context, images []models.Image) []int {
	assetIDs := make([]int, 0, len(images))

	for _, image := range images {
		if ctx.Err() != nil {
			return assetIDs
		}

		asset, err := i.importImage(ctx, image)
		if err != nil {
			i.logger.Warn().Err(err).Str("url", image.URL).Msg("skipping image")
			continue
		}

		assetIDs = append(assetIDs, asset.ID)
	}

	return assetIDs
}

func (i *ImageImporter) importImage(ctx context.Context, image models.Image) (*models.Asset, error) {
	data, err := i.fetcher.FetchBytes(ctx, image.URL)
	if err != nil {
		return nil, fmt.Errorf("can't fetch image: %w", err)
	}

	asset, err := i.creator.CreateFromBytes(ctx, fmt.Sprintf("%d.jpeg", i.clock.Timestamp()), data)
	if err != nil {
		return nil, fmt.Errorf("can't create asset: %w", err)
	}

	return asset, nil
}
