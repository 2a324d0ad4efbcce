package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart rejects checkout before any network call is made.
	ErrEmptyCart = errors.New("cart is empty")
)
