// Package checkout places orders: it builds an optimistic local record from
// the cart, submits it to the backend, and reconciles the result.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"scoopdash/internal/backend"
	"scoopdash/internal/domain"
	"scoopdash/internal/notify"
	"scoopdash/internal/pricing"
	"scoopdash/internal/store"
)

type backendClient interface {
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	CreateOrGetUser(ctx context.Context, in backend.UserInput) (*backend.UserResolution, error)
}

type Service struct {
	store   *store.Store
	backend backendClient
	notes   *notify.Center
	logger  *log.Logger
	now     func() time.Time
}

func New(st *store.Store, client backendClient, notes *notify.Center, logger *log.Logger) *Service {
	return &Service{
		store:   st,
		backend: client,
		notes:   notes,
		logger:  logger,
		now:     time.Now,
	}
}

// PlaceInput is the checkout form payload.
type PlaceInput struct {
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	DeliveryType  domain.DeliveryType `json:"delivery_type"`
	Address       string              `json:"address"`
	PaymentMethod string              `json:"payment_method"`
}

// Place runs the order state machine: Submitting, then Confirmed or
// LocalOnly. An empty cart fails before any network call. The returned order
// is the record as it stands after reconciliation.
func (s *Service) Place(ctx context.Context, in PlaceInput) (*domain.Order, error) {
	lines := s.store.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	if err := validate(in); err != nil {
		s.notes.Error("Failed to place order")
		return nil, err
	}

	totals := s.store.Totals()
	loc := s.store.Location()

	// Best-effort identity resolution: an unreachable user endpoint never
	// blocks the order.
	userID := ""
	res, err := s.backend.CreateOrGetUser(ctx, backend.UserInput{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		s.logger.Printf("resolve user for %s: %v", in.Email, err)
	} else {
		userID = res.User.ID
	}

	order := s.buildOrder(in, lines, totals, loc, userID)

	// Optimistic path: the order list, confirmation view, and cart all
	// reflect success before the backend answers.
	s.store.PrependOrder(ctx, order)
	s.store.SetLastOrder(order, fmt.Sprintf("Thanks %s! Your treats are on the way.", in.Name))
	s.store.ClearCart(ctx)

	server, err := s.backend.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Printf("create order %s: %v", order.ID, err)
		s.store.MarkLocalOnly(ctx, order.ID)
		s.notes.Info("Order saved locally, will sync when connection is restored")
		local := order
		local.Sync = domain.SyncLocalOnly
		return &local, nil
	}

	s.store.ReconcileOrder(ctx, order.ID, *server)
	s.notes.Success(fmt.Sprintf("Order #%s confirmed", server.ID))
	confirmed := *server
	if len(confirmed.Items) == 0 {
		confirmed.Items = order.Items
	}
	confirmed.Sync = domain.SyncConfirmed
	return &confirmed, nil
}

func (s *Service) buildOrder(in PlaceInput, lines []domain.CartLine, totals pricing.Totals, loc *domain.Location, userID string) domain.Order {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Addons:    line.Addons,
			LineTotal: pricing.LineTotal(line),
		})
	}

	estimated := "30-45 minutes"
	if in.DeliveryType == domain.DeliveryTypePickup {
		estimated = "15-20 minutes"
	}

	order := domain.Order{
		ID:            strconv.FormatInt(s.now().UnixMilli(), 10),
		UserID:        userID,
		CustomerName:  in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		DeliveryType:  in.DeliveryType,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
		Items:         items,
		Subtotal:      totals.Subtotal,
		DeliveryFee:   totals.DeliveryFee,
		Tax:           totals.Tax,
		Total:         totals.Total,
		EstimatedTime: estimated,
		Status:        domain.StatusPending,
		Sync:          domain.SyncPending,
		CreatedAt:     s.now().UTC(),
	}
	if loc != nil {
		order.LocationID = loc.ID
	}
	return order
}

func validate(in PlaceInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return errors.New("email required")
	}
	switch in.DeliveryType {
	case domain.DeliveryTypeDelivery:
		if strings.TrimSpace(in.Address) == "" {
			return errors.New("address required for delivery")
		}
	case domain.DeliveryTypePickup:
	default:
		return errors.New("delivery type must be delivery or pickup")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return errors.New("payment method required")
	}
	return nil
}
