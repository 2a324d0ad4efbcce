// Package store owns the cart and order state. All mutation goes through its
// methods; every mutation flushes a serialized snapshot to the durable store
// under the "cart" or "orders" key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"scoopdash/internal/domain"
	"scoopdash/internal/localstore"
	"scoopdash/internal/notify"
	"scoopdash/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// lastOrderTTL bounds how long the post-checkout confirmation projection
// survives if never cleared.
const lastOrderTTL = 10 * time.Minute

type Store struct {
	mu        sync.Mutex
	lines     []domain.CartLine
	orders    []domain.Order
	lastOrder *domain.LastOrder
	location  *domain.Location

	persist localstore.Store
	notes   *notify.Center
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
}

func New(persist localstore.Store, notes *notify.Center, logger *log.Logger) *Store {
	return &Store{
		persist: persist,
		notes:   notes,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Load restores the cart and order lists from the durable store. A missing
// key just means a fresh install.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.persist.Load(ctx, localstore.KeyCart)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &s.lines); err != nil {
			return fmt.Errorf("decode cart snapshot: %w", err)
		}
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("load cart: %w", err)
	}

	raw, err = s.persist.Load(ctx, localstore.KeyOrders)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &s.orders); err != nil {
			return fmt.Errorf("decode orders snapshot: %w", err)
		}
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("load orders: %w", err)
	}

	return nil
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// AddLine merges an addition into an existing line when the product and the
// add-on set match (order-independent), otherwise appends a new line. It
// always succeeds; quantity sanity is the caller's concern.
func (s *Store) AddLine(ctx context.Context, product domain.Product, addons []domain.SelectedAddon, quantity int) domain.CartLine {
	s.mu.Lock()
	var line domain.CartLine
	merged := false
	for i := range s.lines {
		if s.lines[i].Matches(product.ID, addons) {
			s.lines[i].Quantity += quantity
			line = s.lines[i]
			merged = true
			break
		}
	}
	if !merged {
		line = domain.CartLine{
			LineID:    s.newID(),
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
			Addons:    addons,
		}
		s.lines = append(s.lines, line)
	}
	s.flushCartLocked(ctx)
	s.mu.Unlock()

	if len(addons) > 0 {
		s.notes.Success(fmt.Sprintf("%s added to cart with %d add-ons", product.Name, len(addons)))
	} else {
		s.notes.Success(fmt.Sprintf("%s added to cart", product.Name))
	}
	return line
}

// RemoveLine removes every line for the product id. This intentionally drops
// all add-on variants of the product at once; see DESIGN.md.
func (s *Store) RemoveLine(ctx context.Context, productID string) bool {
	s.mu.Lock()
	name := ""
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ProductID == productID {
			name = line.Name
			continue
		}
		kept = append(kept, line)
	}
	removed := name != ""
	s.lines = kept
	if removed {
		s.flushCartLocked(ctx)
	}
	s.mu.Unlock()

	if removed {
		s.notes.Info(fmt.Sprintf("%s removed from cart", name))
	}
	return removed
}

// UpdateQuantity adds delta to every line of the product. Lines that reach a
// quantity of zero or below are deleted, never clamped.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	changed := false
	for _, line := range s.lines {
		if line.ProductID == productID {
			line.Quantity += delta
			changed = true
			if line.Quantity <= 0 {
				continue
			}
		}
		kept = append(kept, line)
	}
	s.lines = kept
	if changed {
		s.flushCartLocked(ctx)
	}
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.flushCartLocked(ctx)
}

// Totals computes current totals with the selected location's delivery fee.
func (s *Store) Totals() pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Compute(s.lines, s.deliveryFeeLocked())
}

func (s *Store) SetLocation(loc domain.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = &loc
}

func (s *Store) Location() *domain.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.location == nil {
		return nil
	}
	loc := *s.location
	return &loc
}

// DeliveryFee is the selected location's fee, or the default when unset.
func (s *Store) DeliveryFee() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveryFeeLocked()
}

func (s *Store) deliveryFeeLocked() decimal.Decimal {
	if s.location == nil || s.location.DeliveryFee.IsZero() {
		return pricing.DefaultDeliveryFee
	}
	return s.location.DeliveryFee
}

// PrependOrder puts an optimistic record at the head of the order list.
func (s *Store) PrependOrder(ctx context.Context, order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.flushOrdersLocked(ctx)
}

// ReconcileOrder replaces the provisional record's identity and fields with
// the authoritative backend record. Items are kept from the local record when
// the backend response omits them.
func (s *Store) ReconcileOrder(ctx context.Context, provisionalID string, server domain.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != provisionalID {
			continue
		}
		if len(server.Items) == 0 {
			server.Items = s.orders[i].Items
		}
		server.Sync = domain.SyncConfirmed
		s.orders[i] = server
		if s.lastOrder != nil && s.lastOrder.Order.ID == provisionalID {
			s.lastOrder.Order = server
		}
		s.flushOrdersLocked(ctx)
		return true
	}
	return false
}

// MarkLocalOnly tags the provisional record as never accepted by the backend.
// The record keeps its client-generated id. Terminal; nothing retries it.
func (s *Store) MarkLocalOnly(ctx context.Context, provisionalID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != provisionalID {
			continue
		}
		s.orders[i].Sync = domain.SyncLocalOnly
		if s.lastOrder != nil && s.lastOrder.Order.ID == provisionalID {
			s.lastOrder.Order.Sync = domain.SyncLocalOnly
		}
		s.flushOrdersLocked(ctx)
		return true
	}
	return false
}

// SetOrderStatus updates the local record after the backend accepted the
// change. Returns false when the order is unknown locally.
func (s *Store) SetOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.flushOrdersLocked(ctx)
			return true
		}
	}
	return false
}

func (s *Store) SetOrderRider(ctx context.Context, orderID, riderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].RiderID = riderID
			s.flushOrdersLocked(ctx)
			return true
		}
	}
	return false
}

// Orders returns a copy of the order list, newest first.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// SetLastOrder records the confirmation-view projection.
func (s *Store) SetLastOrder(order domain.Order, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOrder = &domain.LastOrder{Order: order, Message: message, SetAt: s.now()}
}

// LastOrder returns the projection, or nil once it has expired or was cleared.
func (s *Store) LastOrder() *domain.LastOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastOrder == nil {
		return nil
	}
	if s.now().Sub(s.lastOrder.SetAt) > lastOrderTTL {
		s.lastOrder = nil
		return nil
	}
	last := *s.lastOrder
	return &last
}

func (s *Store) ClearLastOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOrder = nil
}

// flushCartLocked persists the cart snapshot. Persistence is best-effort:
// failures are logged, the in-memory state stays authoritative.
func (s *Store) flushCartLocked(ctx context.Context) {
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	buf, err := json.Marshal(lines)
	if err != nil {
		s.logger.Printf("encode cart snapshot: %v", err)
		return
	}
	if err := s.persist.Save(ctx, localstore.KeyCart, buf); err != nil {
		s.logger.Printf("persist cart: %v", err)
	}
}

func (s *Store) flushOrdersLocked(ctx context.Context) {
	orders := s.orders
	if orders == nil {
		orders = []domain.Order{}
	}
	buf, err := json.Marshal(orders)
	if err != nil {
		s.logger.Printf("encode orders snapshot: %v", err)
		return
	}
	if err := s.persist.Save(ctx, localstore.KeyOrders, buf); err != nil {
		s.logger.Printf("persist orders: %v", err)
	}
}
