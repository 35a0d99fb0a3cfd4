package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vibecart/internal/services"
	"vibecart/pkg/client"
)

func TestUserIDAttachedAsQueryParam(t *testing.T) {
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.URL.Query().Get("userId")
		switch r.URL.Path {
		case "/api/cart":
			_ = json.NewEncoder(w).Encode(map[string]any{"userId": 7, "items": []any{}, "total": 0})
		default:
			_ = json.NewEncoder(w).Encode([]any{})
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL, 42)
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotUser != "42" {
		t.Fatalf("want userId=42, got %q", gotUser)
	}

	c.SetUserID(7)
	if _, err := c.Cart(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotUser != "7" {
		t.Fatalf("want userId=7 after SetUserID, got %q", gotUser)
	}
}

func TestErrorBodyNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found or not yours"})
	}))
	defer srv.Close()

	c := client.New(srv.URL, 1)
	err := c.RemoveFromCart(context.Background(), 9)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "not found or not yours" {
		t.Fatalf("bad error: %+v", apiErr)
	}
}

func TestNonJSONErrorKeepsRawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	c := client.New(srv.URL, 1)
	_, err := c.Cart(context.Background())
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %T: %v", err, err)
	}
	if apiErr.Raw != "<html>boom</html>" {
		t.Fatalf("raw text not kept: %+v", apiErr)
	}
	if apiErr.Error() != "api error (status 500)" {
		t.Fatalf("unexpected message: %q", apiErr.Error())
	}
}

func TestCheckoutUnwrapsReceipt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CartItems []struct {
				ProductID int64 `json:"productId"`
				Qty       int   `json:"qty"`
			} `json:"cartItems"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.CartItems) != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"receipt": map[string]any{"ref": "r-1", "total": 20.00, "userId": 1},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL, 1)
	receipt, err := c.Checkout(context.Background(), []services.CheckoutItem{{ProductID: 1, Qty: 2}}, "Ada", "ada@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if receipt.Ref != "r-1" || receipt.Total != 20.00 {
		t.Fatalf("bad receipt: %+v", receipt)
	}
}
