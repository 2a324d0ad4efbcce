// Package backend is the REST client for the remote order API. The API is a
// black box consumed through fixed endpoint templates; this client does no
// retrying and no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"scoopdash/internal/domain"
)

// Client talks to the remote API. The zero value is not usable; call New.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// UserResolution is the create-or-get response for a customer identity.
type UserResolution struct {
	User      domain.User `json:"user"`
	Message   string      `json:"message"`
	IsNewUser bool        `json:"is_new_user"`
}

// UserInput carries the contact fields submitted at checkout.
type UserInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateOrder submits the full order payload and returns the persisted record,
// including the authoritative id and created_at.
func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrGetUser resolves a customer by email, creating one when missing.
func (c *Client) CreateOrGetUser(ctx context.Context, in UserInput) (*UserResolution, error) {
	var out UserResolution
	if err := c.do(ctx, http.MethodPost, "/api/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPatch, "/api/orders/"+orderID+"/status", body, nil)
}

func (c *Client) AssignRider(ctx context.Context, orderID, riderID string) error {
	body := map[string]string{"rider_id": riderID}
	return c.do(ctx, http.MethodPatch, "/api/orders/"+orderID+"/rider", body, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAddons(ctx context.Context) ([]domain.Addon, error) {
	var out []domain.Addon
	if err := c.do(ctx, http.MethodGet, "/api/addons", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var out []domain.Location
	if err := c.do(ctx, http.MethodGet, "/api/locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRiders(ctx context.Context) ([]domain.Rider, error) {
	var out []domain.Rider
	if err := c.do(ctx, http.MethodGet, "/api/riders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLocation(ctx context.Context, l domain.Location) (*domain.Location, error) {
	var out domain.Location
	if err := c.do(ctx, http.MethodPost, "/api/locations", l, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRider(ctx context.Context, r domain.Rider) (*domain.Rider, error) {
	var out domain.Rider
	if err := c.do(ctx, http.MethodPost, "/api/riders", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
