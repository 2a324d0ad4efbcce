// Package seed pushes a small demo catalog to the backend for manual testing.
package seed

import (
	"context"
	"fmt"

	"scoopdash/internal/domain"

	"github.com/shopspring/decimal"
)

type catalogWriter interface {
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	CreateLocation(ctx context.Context, l domain.Location) (*domain.Location, error)
	CreateRider(ctx context.Context, r domain.Rider) (*domain.Rider, error)
}

// Apply creates demo products, locations, and riders through the backend API.
// The backend assigns ids, so re-running creates duplicates; seed a fresh
// backend only.
func Apply(ctx context.Context, client catalogWriter) error {
	products := []domain.Product{
		{
			Name:        "Vanilla Cone",
			Description: "Classic soft serve in a waffle cone",
			Price:       decimal.NewFromInt(100),
			Category:    "cones",
			Available:   true,
		},
		{
			Name:        "Chocolate Sundae",
			Description: "Fudge sauce, roasted peanuts, and a cherry",
			Price:       decimal.NewFromInt(180),
			Category:    "sundaes",
			Available:   true,
		},
		{
			Name:        "Strawberry Shake",
			Description: "Blended with real strawberries",
			Price:       decimal.NewFromInt(150),
			Category:    "shakes",
			Available:   true,
		},
		{
			Name:        "Mango Kulfi",
			Description: "Seasonal special, while stocks last",
			Price:       decimal.NewFromInt(120),
			Category:    "kulfi",
			Available:   true,
		},
	}
	for _, p := range products {
		if _, err := client.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("create product %q: %w", p.Name, err)
		}
	}

	locations := []domain.Location{
		{Name: "Downtown", Address: "12 Harbor St", DeliveryFee: decimal.NewFromInt(100)},
		{Name: "Uptown", Address: "88 Hill Rd", DeliveryFee: decimal.NewFromInt(150)},
	}
	for _, l := range locations {
		if _, err := client.CreateLocation(ctx, l); err != nil {
			return fmt.Errorf("create location %q: %w", l.Name, err)
		}
	}

	riders := []domain.Rider{
		{Name: "Asha Verma", Phone: "555-0101"},
		{Name: "Tomás Rivera", Phone: "555-0102"},
	}
	for _, r := range riders {
		if _, err := client.CreateRider(ctx, r); err != nil {
			return fmt.Errorf("create rider %q: %w", r.Name, err)
		}
	}

	return nil
}
