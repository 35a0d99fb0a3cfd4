// Package client wraps the vibecart HTTP API: it attaches the caller's user
// id, sends JSON, and normalizes error responses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vibecart/internal/domain"
	"vibecart/internal/services"
)

type Client struct {
	baseURL    string
	userID     int64
	httpClient *http.Client
}

func New(baseURL string, userID int64) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// SetUserID switches the identity attached to subsequent calls.
func (c *Client) SetUserID(id int64) { c.userID = id }

func (c *Client) UserID() int64 { return c.userID }

// APIError carries the server's status and, when the body was not the usual
// {"error": ...} JSON shape, the raw response text.
type APIError struct {
	Status  int
	Message string
	Raw     string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

func (c *Client) url(path string, withUser bool) string {
	u := c.baseURL + path
	if withUser {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		u += sep + "userId=" + strconv.FormatInt(c.userID, 10)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, rawurl string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, rd)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if jerr := json.Unmarshal(text, &e); jerr == nil && e.Error != "" {
			apiErr.Message = e.Error
		} else {
			apiErr.Raw = string(text)
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(text, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: "invalid JSON response", Raw: string(text)}
		}
	}
	return nil
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, http.MethodGet, c.url("/api/products", true), nil, &out)
	return out, err
}

func (c *Client) Cart(ctx context.Context) (domain.Cart, error) {
	var out domain.Cart
	err := c.do(ctx, http.MethodGet, c.url("/api/cart", true), nil, &out)
	return out, err
}

func (c *Client) AddToCart(ctx context.Context, productID int64, qty int) (domain.CartLine, error) {
	var out domain.CartLine
	body := map[string]any{"productId": productID, "qty": qty}
	err := c.do(ctx, http.MethodPost, c.url("/api/cart", true), body, &out)
	return out, err
}

func (c *Client) RemoveFromCart(ctx context.Context, lineID int64) error {
	path := "/api/cart/" + url.PathEscape(strconv.FormatInt(lineID, 10))
	return c.do(ctx, http.MethodDelete, c.url(path, true), nil, nil)
}

func (c *Client) Checkout(ctx context.Context, items []services.CheckoutItem, name, email string) (domain.Receipt, error) {
	var out struct {
		Receipt domain.Receipt `json:"receipt"`
	}
	body := map[string]any{"cartItems": items, "name": name, "email": email}
	err := c.do(ctx, http.MethodPost, c.url("/api/checkout", true), body, &out)
	return out.Receipt, err
}

func (c *Client) CreateUser(ctx context.Context, name, email string) (domain.User, error) {
	var out domain.User
	body := map[string]string{"name": name, "email": email}
	err := c.do(ctx, http.MethodPost, c.url("/api/users", false), body, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var out domain.User
	path := "/api/users/" + url.PathEscape(strconv.FormatInt(id, 10))
	err := c.do(ctx, http.MethodGet, c.url(path, false), nil, &out)
	return out, err
}
