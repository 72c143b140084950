package populator_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/MichalMitros/woocommerce-populator/internal/platform/models/modelstesting"
	"github.com/MichalMitros/woocommerce-populator/internal/populator"
	"github.com/MichalMitros/woocommerce-populator/internal/populator/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUnitImportImages(t *testing.T) {
	images := []models.Image{modelstesting.FakeImage(), modelstesting.FakeImage(), modelstesting.FakeImage()}
	data := []byte("image data")

	tests := map[string]struct {
		setup    func(fetcher *mocks.ImageFetcher, creator *mocks.AssetCreator)
		expected []int
	}{
		"all images imported": {
			setup: func(fetcher *mocks.ImageFetcher, creator *mocks.AssetCreator) {
				fetcher.On("FetchBytes", mock.Anything, mock.Anything).Return(data, nil).Times(3)
				creator.On("CreateFromBytes", mock.Anything, "1700000000000.jpeg", data).
					Return(&models.Asset{ID: 1}, nil).Once()
				creator.On("CreateFromBytes", mock.Anything, "1700000000000.jpeg", data).
					Return(&models.Asset{ID: 2}, nil).Once()
				creator.On("CreateFromBytes", mock.Anything, "1700000000000.jpeg", data).
					Return(&models.Asset{ID: 3}, nil).Once()
			},
			expected: []int{1, 2, 3},
		},
		"fetch error skips image": {
			setup: func(fetcher *mocks.ImageFetcher, creator *mocks.AssetCreator) {
				fetcher.On("FetchBytes", mock.Anything, images[0].URL).Return(data, nil).Once()
				fetcher.On("FetchBytes", mock.Anything, images[1].URL).Return(nil, assert.AnError).Once()
				fetcher.On("FetchBytes", mock.Anything, images[2].URL).Return(data, nil).Once()
				creator.On("CreateFromBytes", mock.Anything, mock.Anything, data).
					Return(&models.Asset{ID: 1}, nil).Once()
				creator.On("CreateFromBytes", mock.Anything, mock.Anything, data).
					Return(&models.Asset{ID: 3}, nil).Once()
			},
			expected: []int{1, 3},
		},
		"asset error skips image": {
			setup: func(fetcher *mocks.ImageFetcher, creator *mocks.AssetCreator) {
				fetcher.On("FetchBytes", mock.Anything, mock.Anything).Return(data, nil).Times(3)
				creator.On("CreateFromBytes", mock.Anything, mock.Anything, data).
					Return(nil, assert.AnError).Once()
				creator.On("CreateFromBytes", mock.Anything, mock.Anything, data).
					Return(&models.Asset{ID: 2}, nil).Twice()
			},
			expected: []int{2, 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := mocks.NewImageFetcher(t)
			creator := mocks.NewAssetCreator(t)
			tt.setup(fetcher, creator)

			importer := populator.NewImageImporter(
				fetcher,
				creator,
				&logger,
				populator.WithImporterClock(fakeClock{timestamp: timestamp, now: &now}),
			)

			assert.Equal(t, tt.expected, importer.ImportImages(context.TODO(), images))
		})
	}
}

func TestUnitImportImagesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	importer := populator.NewImageImporter(mocks.NewImageFetcher(t), mocks.NewAssetCreator(t), &logger)

	assert.Empty(t, importer.ImportImages(ctx, []models.Image{modelstesting.FakeImage()}),
		"should not import images after cancellation")
}

func TestUnitImportImagesEmpty(t *testing.T) {
	importer := populator.NewImageImporter(mocks.NewImageFetcher(t), mocks.NewAssetCreator(t), &logger)

	assert.Equal(t, []int{}, importer.ImportImages(context.TODO(), nil))
}
