package woocommerce

import "errors"

// ErrUnexpectedStatus is returned when WooCommerce API responds with status other than 200 OK.
var ErrUnexpectedStatus = errors.New("unexpected response status")
