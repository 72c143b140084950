package assets

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

//go:generate mockery --name Storage --filename storage.go

// AssetTypeImage is type of image assets.
const AssetTypeImage = "IMAGE"

// Storage stores asset rows.
type Storage interface {
	InsertAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error)
}

// Service stores asset files and creates assets.
type Service struct {
	fs      afero.Fs
	storage Storage
}

// NewService returns new Service storing files in fs.
func NewService(fs afero.Fs, storage Storage) *Service {
	return &Service{
		fs:      fs,
		storage: storage,
	}
}

// CreateFromBytes creates image asset named name from data.
// It returns ErrMimeTypeNotSupported when data is not an image.
func (s *Service) CreateFromBytes(ctx context.Context, name string, data []byte) (*models.Asset, error) {
	if len(data) == 0 {
		return nil, ErrEmptyAsset
	}

	mimeType := mimetype.Detect(data)
	if !strings.HasPrefix(mimeType.String(), "image/") {
		return nil, fmt.Errorf("%w: %s", ErrMimeTypeNotSupported, mimeType.String())
	}

	source := path.Join("source", uuid.NewString(), path.Base(name))
	if err := s.fs.MkdirAll(path.Dir(source), 0o755); err != nil {
		return nil, fmt.Errorf("can't create asset directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, source, data, 0o644); err != nil {
		return nil, fmt.Errorf("can't write asset file: %w", err)
	}

	asset, err := s.storage.InsertAsset(ctx, &models.Asset{
		Name:     name,
		Type:     AssetTypeImage,
		MimeType: mimeType.String(),
		FileSize: len(data),
		Source:   source,
		Preview:  source,
	})
	if err != nil {
		if rmErr := s.fs.RemoveAll(path.Dir(source)); rmErr != nil && !os.IsNotExist(rmErr) {
			return nil, fmt.Errorf("can't remove asset file: %w (remove reason: %w)", rmErr, err)
		}
		return nil, fmt.Errorf("can't create asset: %w", err)
	}

	return asset, nil
}
