package services

import (
	"time"

	"github.com/google/uuid"

	"vibecart/internal/domain"
	"vibecart/internal/money"
	"vibecart/internal/repos"
)

// CheckoutItem is a client-submitted {productId, qty} pair. Prices are never
// taken from the client; each line is re-priced from the current catalog.
type CheckoutItem struct {
	ProductID int64 `json:"productId"`
	Qty       int   `json:"qty"`
}

type CheckoutService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCheckoutService(carts *repos.CartRepo, prods *repos.ProductRepo) *CheckoutService {
	return &CheckoutService{Carts: carts, Prods: prods}
}

// Checkout re-prices the submitted items from current product prices and
// builds an ephemeral receipt. Product ids absent from the catalog price at 0
// rather than erroring. The cart clear that follows is the caller's job so a
// clear failure can be logged without voiding the receipt.
func (s *CheckoutService) Checkout(userID int64, items []CheckoutItem, name, email string) (domain.Receipt, error) {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	prices, err := s.Prods.PriceMap(ids)
	if err != nil {
		return domain.Receipt{}, err
	}

	lines := make([]money.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, money.Line{Price: prices[it.ProductID], Qty: it.Qty})
	}

	return domain.Receipt{
		Ref:       uuid.NewString(),
		Total:     money.Total(lines),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Name:      name,
		Email:     email,
		UserID:    userID,
	}, nil
}

// ClearCart empties the user's whole cart, including lines the checkout
// payload never mentioned.
func (s *CheckoutService) ClearCart(userID int64) error {
	return s.Carts.ClearUser(userID)
}
