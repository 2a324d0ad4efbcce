// Package localstore persists the application's serialized state under named
// keys. The cart and order lists live under the "cart" and "orders" keys,
// read on startup and written on every mutation.
package localstore

import "context"

const (
	KeyCart   = "cart"
	KeyOrders = "orders"
)

// Store is the durable key/value boundary used by the state container.
type Store interface {
	Save(ctx context.Context, key string, value []byte) error
	// Load returns domain.ErrNotFound when the key has never been written.
	Load(ctx context.Context, key string) ([]byte, error)
}
