package platform

import (
	"errors"
)

var (
	// ErrAlreadyRunning is an error returned when run can't be started because previous run is not finished yet.
	ErrAlreadyRunning = errors.New("population already running")
	// ErrSuperadminNotFound is returned when there is no administrator with superadmin identifier.
	ErrSuperadminNotFound = errors.New("superadmin not found")
	// ErrChannelNotFound is returned when request context channel doesn't exist.
	ErrChannelNotFound = errors.New("channel not found")
	// ErrNoStockLocation is returned when channel has no stock location.
	ErrNoStockLocation = errors.New("no default stock location")
	// ErrNoTaxCategory is returned when there is no default tax category.
	ErrNoTaxCategory = errors.New("no default tax category")
)
