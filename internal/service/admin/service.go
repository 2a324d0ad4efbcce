// Package admin backs the back-office console: order status changes, rider
// assignment, and catalog management. Local state is only touched after the
// backend accepts a change, so failures need no rollback.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"scoopdash/internal/domain"
	"scoopdash/internal/notify"
	"scoopdash/internal/store"
)

type backendClient interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	AssignRider(ctx context.Context, orderID, riderID string) error
	ListRiders(ctx context.Context) ([]domain.Rider, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	CreateLocation(ctx context.Context, l domain.Location) (*domain.Location, error)
	CreateRider(ctx context.Context, r domain.Rider) (*domain.Rider, error)
}

type Service struct {
	store   *store.Store
	backend backendClient
	notes   *notify.Center
	logger  *log.Logger
}

func New(st *store.Store, client backendClient, notes *notify.Center, logger *log.Logger) *Service {
	return &Service{store: st, backend: client, notes: notes, logger: logger}
}

// UpdateStatus pushes the change to the backend, then mirrors it locally.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if strings.TrimSpace(orderID) == "" {
		return errors.New("order id required")
	}
	if !domain.ValidStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	if err := s.backend.UpdateOrderStatus(ctx, orderID, status); err != nil {
		s.logger.Printf("update status for order %s: %v", orderID, err)
		s.notes.Error("Failed to update order status")
		return err
	}
	s.store.SetOrderStatus(ctx, orderID, status)
	return nil
}

// AssignRider pushes the assignment to the backend, then mirrors it locally.
func (s *Service) AssignRider(ctx context.Context, orderID, riderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errors.New("order id required")
	}
	if strings.TrimSpace(riderID) == "" {
		return errors.New("rider id required")
	}
	if err := s.backend.AssignRider(ctx, orderID, riderID); err != nil {
		s.logger.Printf("assign rider %s to order %s: %v", riderID, orderID, err)
		s.notes.Error("Failed to assign rider")
		return err
	}
	s.store.SetOrderRider(ctx, orderID, riderID)
	return nil
}

func (s *Service) Orders() []domain.Order {
	return s.store.Orders()
}

func (s *Service) ListRiders(ctx context.Context) ([]domain.Rider, error) {
	return s.backend.ListRiders(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("name required")
	}
	if p.Price.IsNegative() || p.Price.IsZero() {
		return nil, errors.New("price must be positive")
	}
	return s.backend.CreateProduct(ctx, p)
}

func (s *Service) CreateLocation(ctx context.Context, l domain.Location) (*domain.Location, error) {
	if strings.TrimSpace(l.Name) == "" {
		return nil, errors.New("name required")
	}
	if l.DeliveryFee.IsNegative() {
		return nil, errors.New("delivery fee cannot be negative")
	}
	return s.backend.CreateLocation(ctx, l)
}

func (s *Service) CreateRider(ctx context.Context, r domain.Rider) (*domain.Rider, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, errors.New("name required")
	}
	return s.backend.CreateRider(ctx, r)
}
