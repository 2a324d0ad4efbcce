package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scoopdash/internal/domain"

	"github.com/shopspring/decimal"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 2*time.Second), srv
}

func TestCreateOrderReturnsServerRecord(t *testing.T) {
	var gotPath, gotMethod string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		var in domain.Order
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		in.ID = "srv-42"
		in.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	order := domain.Order{ID: "1718000000", CustomerName: "Ada", Total: decimal.NewFromInt(100)}
	got, err := client.CreateOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/orders" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if got.ID != "srv-42" {
		t.Fatalf("expected server id, got %s", got.ID)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected server created_at")
	}
}

func TestCreateOrderNon2xx(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.CreateOrder(context.Background(), domain.Order{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "backend unavailable") {
		t.Fatalf("expected status and body in error, got %v", err)
	}
}

func TestCreateOrGetUser(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(UserResolution{
			User:      domain.User{ID: "u1", Email: "ada@example.com"},
			Message:   "welcome back",
			IsNewUser: false,
		})
	}))
	defer srv.Close()

	got, err := client.CreateOrGetUser(context.Background(), UserInput{Name: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("CreateOrGetUser: %v", err)
	}
	if got.User.ID != "u1" || got.IsNewUser {
		t.Fatalf("unexpected resolution %+v", got)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := client.UpdateOrderStatus(context.Background(), "o1", domain.StatusPreparing); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if gotPath != "/api/orders/o1/status" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotBody["status"] != "preparing" {
		t.Fatalf("unexpected body %+v", gotBody)
	}
}

func TestAssignRider(t *testing.T) {
	var gotPath string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := client.AssignRider(context.Background(), "o1", "r9"); err != nil {
		t.Fatalf("AssignRider: %v", err)
	}
	if gotPath != "/api/orders/o1/rider" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}

func TestListProductsDecodesStringMoney(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Backend money fields sometimes arrive as strings.
		w.Write([]byte(`[{"id":"p1","name":"Vanilla Cone","price":"100.00","available":true}]`))
	}))
	defer srv.Close()

	got, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one product, got %d", len(got))
	}
	if !got[0].Price.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected price 100, got %s", got[0].Price)
	}
}
