package decoder

import "errors"

var (
	// ErrNotArray is returned when response body isn't JSON array.
	ErrNotArray = errors.New("response is not json array")
	// ErrMissingID is returned when record has no id.
	ErrMissingID = errors.New("record has no id")
	// ErrMissingName is returned when product has no name.
	ErrMissingName = errors.New("product has no name")
	// ErrMissingType is returned when record type can't be determined.
	ErrMissingType = errors.New("record has no type")
	// ErrUnsupportedType is returned for product types other than simple, variable and variation.
	ErrUnsupportedType = errors.New("record type not supported")
	// ErrMissingParent is returned when variation has no parent id.
	ErrMissingParent = errors.New("variation has no parent")
	// ErrInvalidStock is returned when stock quantity doesn't fit 32-bit integer.
	ErrInvalidStock = errors.New("stock quantity out of range")
)
