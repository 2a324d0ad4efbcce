package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// SyncState tags how an order record relates to the remote backend.
type SyncState string

const (
	// SyncPending marks an optimistic record submitted but not yet confirmed.
	SyncPending SyncState = "pending"
	// SyncConfirmed marks a record reconciled with the backend's version.
	SyncConfirmed SyncState = "confirmed"
	// SyncLocalOnly marks a record the backend never accepted. Terminal.
	SyncLocalOnly SyncState = "local_only"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Addons    []SelectedAddon `json:"addons,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id,omitempty"`
	CustomerName  string          `json:"customer_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	DeliveryType  DeliveryType    `json:"delivery_type"`
	Address       string          `json:"address,omitempty"`
	LocationID    string          `json:"location_id,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	EstimatedTime string          `json:"estimated_time,omitempty"`
	Status        OrderStatus     `json:"status"`
	RiderID       string          `json:"rider_id,omitempty"`
	Sync          SyncState       `json:"sync"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LastOrder is the transient post-checkout projection used by the
// confirmation view. It expires on its own if the caller never clears it.
type LastOrder struct {
	Order   Order     `json:"order"`
	Message string    `json:"message"`
	SetAt   time.Time `json:"set_at"`
}
