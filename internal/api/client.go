package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"cafeteria/internal/models"
)

// TokenSource supplies the current bearer token, empty when logged out.
type TokenSource func() string

// Client is the HTTP implementation of Backend. Requests carry the session's
// bearer token; response errors surface the backend's message verbatim when
// one is present, otherwise a generic string. No retries, no client-side
// timeout: cancellation is whatever the caller's context carries.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// NewClient creates a Client against baseURL (e.g. "http://localhost:5000").
func NewClient(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		token:   token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// decodeError turns an error response into a human-readable error, preferring
// the backend's own message.
func decodeError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			return fmt.Errorf("%s", payload.Message)
		}
		if payload.Error != "" {
			return fmt.Errorf("%s", payload.Error)
		}
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, user models.User) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", user, nil)
}

// Login authenticates and returns the token, role and user ID.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	req := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// ListUserItems lists the purchasable menu.
func (c *Client) ListUserItems(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := c.do(ctx, http.MethodGet, "/api/user/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListAdminItems lists every item, for the admin dashboard.
func (c *Client) ListAdminItems(ctx context.Context) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := c.do(ctx, http.MethodGet, "/api/admin/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UploadItem creates a menu item and returns it with its assigned ID.
func (c *Client) UploadItem(ctx context.Context, item models.FoodItem) (models.FoodItem, error) {
	var created models.FoodItem
	if err := c.do(ctx, http.MethodPost, "/api/admin/upload", item, &created); err != nil {
		return models.FoodItem{}, err
	}
	return created, nil
}

// DeleteItem removes a menu item.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/delete/"+id, nil, nil)
}

// PlaceOrder creates one order and returns the persisted record.
func (c *Client) PlaceOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order
	if err := c.do(ctx, http.MethodPost, "/api/user/placeOrder", order, &created); err != nil {
		return models.Order{}, err
	}
	return created, nil
}

// ListPurchasedItems lists the calling user's orders.
func (c *Client) ListPurchasedItems(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/user/purchasedItems", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAdminOrders lists every order in the system.
func (c *Client) ListAdminOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CompleteOrder marks a pending order completed.
func (c *Client) CompleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/admin/complete-order/"+id, nil, nil)
}

// RateOrder attaches a 1-5 rating to a completed order.
func (c *Client) RateOrder(ctx context.Context, id string, rating int) error {
	req := map[string]int{"rating": rating}
	return c.do(ctx, http.MethodPost, "/api/user/rateOrder/"+id, req, nil)
}

// SendNotification asks the backend to notify a user.
func (c *Client) SendNotification(ctx context.Context, n Notification) error {
	return c.do(ctx, http.MethodPost, "/api/user/sendNotification", n, nil)
}
