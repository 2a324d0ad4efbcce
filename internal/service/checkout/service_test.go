package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"scoopdash/internal/backend"
	"scoopdash/internal/domain"
	"scoopdash/internal/localstore"
	"scoopdash/internal/notify"
	"scoopdash/internal/store"

	"github.com/shopspring/decimal"
)

type stubBackend struct {
	createOrderResp  *domain.Order
	createOrderErr   error
	createOrderCalls int
	lastOrder        domain.Order

	userResp  *backend.UserResolution
	userErr   error
	userCalls int
}

func (s *stubBackend) CreateOrder(_ context.Context, order domain.Order) (*domain.Order, error) {
	s.createOrderCalls++
	s.lastOrder = order
	if s.createOrderErr != nil {
		return nil, s.createOrderErr
	}
	return s.createOrderResp, nil
}

func (s *stubBackend) CreateOrGetUser(_ context.Context, _ backend.UserInput) (*backend.UserResolution, error) {
	s.userCalls++
	if s.userErr != nil {
		return nil, s.userErr
	}
	if s.userResp != nil {
		return s.userResp, nil
	}
	return &backend.UserResolution{}, nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newFixture(client *stubBackend) (*Service, *store.Store, *notify.Center) {
	logger := log.New(io.Discard, "", 0)
	notes := notify.NewCenter()
	st := store.New(localstore.NewMemory(), notes, logger)
	svc := New(st, client, notes, logger)
	return svc, st, notes
}

func validInput() PlaceInput {
	return PlaceInput{
		Name:          "Ada",
		Email:         "ada@example.com",
		Phone:         "555-0100",
		DeliveryType:  domain.DeliveryTypeDelivery,
		Address:       "1 Main St",
		PaymentMethod: "cash",
	}
}

func fillCart(st *store.Store) {
	st.AddLine(context.Background(),
		domain.Product{ID: "p5", Name: "Vanilla Cone", Price: dec(100)},
		[]domain.SelectedAddon{{ID: "1", Name: "Sprinkles", Price: dec(20)}}, 1)
}

func TestPlaceEmptyCartFailsFastWithoutNetwork(t *testing.T) {
	client := &stubBackend{}
	svc, _, _ := newFixture(client)

	_, err := svc.Place(context.Background(), validInput())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if client.createOrderCalls != 0 || client.userCalls != 0 {
		t.Fatal("expected no network calls on empty cart")
	}
}

func TestPlaceValidation(t *testing.T) {
	client := &stubBackend{}
	svc, st, notes := newFixture(client)
	fillCart(st)

	in := validInput()
	in.DeliveryType = "drone"
	_, err := svc.Place(context.Background(), in)
	if err == nil || err.Error() != "delivery type must be delivery or pickup" {
		t.Fatalf("expected delivery type error, got %v", err)
	}
	if client.createOrderCalls != 0 {
		t.Fatal("expected no order submission on invalid input")
	}
	active := notes.Active()
	if len(active) == 0 || active[len(active)-1].Message != "Failed to place order" {
		t.Fatalf("expected generic failure notification, got %+v", active)
	}
}

func TestPlaceConfirmedReconcilesServerRecord(t *testing.T) {
	server := &domain.Order{ID: "srv-42", Status: domain.StatusConfirmed, CreatedAt: time.Now()}
	client := &stubBackend{
		createOrderResp: server,
		userResp:        &backend.UserResolution{User: domain.User{ID: "u1"}},
	}
	svc, st, _ := newFixture(client)
	fillCart(st)

	got, err := svc.Place(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got.ID != "srv-42" || got.Sync != domain.SyncConfirmed {
		t.Fatalf("unexpected order %+v", got)
	}
	if len(got.Items) != 1 {
		t.Fatal("expected local items kept when server omits them")
	}

	orders := st.Orders()
	if len(orders) != 1 || orders[0].ID != "srv-42" {
		t.Fatalf("expected one reconciled record, got %+v", orders)
	}
	if len(st.Lines()) != 0 {
		t.Fatal("expected cart cleared")
	}
	if last := st.LastOrder(); last == nil || last.Order.ID != "srv-42" {
		t.Fatalf("expected last order reconciled, got %+v", last)
	}
	if client.lastOrder.UserID != "u1" {
		t.Fatalf("expected resolved user id on payload, got %q", client.lastOrder.UserID)
	}
}

func TestPlaceBackendFailureKeepsLocalRecord(t *testing.T) {
	client := &stubBackend{
		createOrderErr: errors.New("connection refused"),
		userResp:       &backend.UserResolution{User: domain.User{ID: "u1"}},
	}
	svc, st, notes := newFixture(client)
	fillCart(st)

	got, err := svc.Place(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Place should tolerate backend failure, got %v", err)
	}
	if got.Sync != domain.SyncLocalOnly {
		t.Fatalf("expected local-only record, got %+v", got)
	}

	orders := st.Orders()
	if len(orders) != 1 {
		t.Fatalf("expected exactly one local record, got %d", len(orders))
	}
	if orders[0].ID != got.ID || orders[0].Sync != domain.SyncLocalOnly {
		t.Fatalf("expected provisional id kept, got %+v", orders[0])
	}

	found := false
	for _, n := range notes.Active() {
		if n.Message == "Order saved locally, will sync when connection is restored" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected local-save notification")
	}
}

func TestPlaceUserResolutionFailureDoesNotAbort(t *testing.T) {
	server := &domain.Order{ID: "srv-42", Status: domain.StatusConfirmed}
	client := &stubBackend{
		createOrderResp: server,
		userErr:         errors.New("users endpoint down"),
	}
	svc, st, _ := newFixture(client)
	fillCart(st)

	got, err := svc.Place(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got.ID != "srv-42" {
		t.Fatalf("unexpected order %+v", got)
	}
	if client.lastOrder.UserID != "" {
		t.Fatalf("expected empty user id, got %q", client.lastOrder.UserID)
	}
}

func TestPlaceComputesTotalsFromCartAndLocation(t *testing.T) {
	client := &stubBackend{createOrderResp: &domain.Order{ID: "srv-1"}}
	svc, st, _ := newFixture(client)
	fillCart(st)

	if _, err := svc.Place(context.Background(), validInput()); err != nil {
		t.Fatalf("Place: %v", err)
	}
	payload := client.lastOrder
	if !payload.Subtotal.Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("expected subtotal 120.00, got %s", payload.Subtotal)
	}
	if !payload.Tax.Equal(decimal.RequireFromString("9.60")) {
		t.Fatalf("expected tax 9.60, got %s", payload.Tax)
	}
	if !payload.Total.Equal(decimal.RequireFromString("279.60")) {
		t.Fatalf("expected total 279.60, got %s", payload.Total)
	}
	if payload.Status != domain.StatusPending || payload.Sync != domain.SyncPending {
		t.Fatalf("unexpected payload state %+v", payload)
	}
	if payload.ID == "" {
		t.Fatal("expected client-generated provisional id")
	}
}

func TestPlacePickupNeedsNoAddress(t *testing.T) {
	client := &stubBackend{createOrderResp: &domain.Order{ID: "srv-1"}}
	svc, st, _ := newFixture(client)
	fillCart(st)

	in := validInput()
	in.DeliveryType = domain.DeliveryTypePickup
	in.Address = ""
	got, err := svc.Place(context.Background(), in)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if client.lastOrder.EstimatedTime != "15-20 minutes" {
		t.Fatalf("unexpected estimate %q", client.lastOrder.EstimatedTime)
	}
	if got == nil {
		t.Fatal("expected order")
	}
}
