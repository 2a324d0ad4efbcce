// Package catalog lists products, add-ons, and delivery locations from the
// remote backend for the storefront.
package catalog

import (
	"context"

	"scoopdash/internal/domain"
)

type backendClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListAddons(ctx context.Context) ([]domain.Addon, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

type Service struct {
	backend backendClient
}

func New(client backendClient) *Service {
	return &Service{backend: client}
}

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.backend.ListProducts(ctx)
}

func (s *Service) Addons(ctx context.Context) ([]domain.Addon, error) {
	return s.backend.ListAddons(ctx)
}

func (s *Service) Locations(ctx context.Context) ([]domain.Location, error) {
	return s.backend.ListLocations(ctx)
}
