package services

import (
	"errors"

	"vibecart/internal/domain"
	"vibecart/internal/money"
	"vibecart/internal/repos"
)

// ErrNotFound covers both a missing line and an ownership mismatch; the two
// are deliberately indistinguishable to the caller.
var ErrNotFound = errors.New("not found or not yours")

type CartService struct {
	Carts *repos.CartRepo
}

func NewCartService(carts *repos.CartRepo) *CartService {
	return &CartService{Carts: carts}
}

// View joins the user's lines to products. Line totals stay unrounded; the
// grand total is rounded to two decimals at the aggregate only.
func (s *CartService) View(userID int64) (domain.Cart, error) {
	items, err := s.Carts.ViewByUser(userID)
	if err != nil {
		return domain.Cart{}, err
	}
	lines := make([]money.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, money.Line{Price: it.Price, Qty: it.Qty})
	}
	return domain.Cart{UserID: userID, Items: items, Total: money.Total(lines)}, nil
}

// Add merges qty into the user's line for the product, creating the line if
// needed. The write is a single atomic upsert; the preliminary existence
// check only decides created-vs-updated for the caller.
func (s *CartService) Add(userID, productID int64, qty int) (domain.CartLine, bool, error) {
	existed, err := s.Carts.Exists(userID, productID)
	if err != nil {
		return domain.CartLine{}, false, err
	}
	if err := s.Carts.Upsert(userID, productID, qty); err != nil {
		return domain.CartLine{}, false, err
	}
	line, err := s.Carts.GetLine(userID, productID)
	if err != nil {
		return domain.CartLine{}, false, err
	}
	return line, !existed, nil
}

func (s *CartService) Remove(userID, lineID int64) error {
	n, err := s.Carts.Delete(lineID, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
