package assets

import "errors"

var (
	// ErrMimeTypeNotSupported is returned when asset content is not an image.
	ErrMimeTypeNotSupported = errors.New("mime type not supported")
	// ErrEmptyAsset is returned when asset has no content.
	ErrEmptyAsset = errors.New("asset is empty")
)
