package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status differen than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrEmptyBody is returned when fetched file has no content.
	ErrEmptyBody = errors.New("response body is empty")
	// ErrTooLarge is returned when fetched file exceeds size limit.
	ErrTooLarge = errors.New("response body too large")
)
