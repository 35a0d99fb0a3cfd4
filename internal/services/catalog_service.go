package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vibecart/internal/domain"
	"vibecart/internal/repos"
)

const fakeStoreURL = "https://fakestoreapi.com/products"

type CatalogService struct {
	Prods *repos.ProductRepo

	// HTTPClient is swappable for tests; nil means a 10s-timeout default.
	HTTPClient *http.Client
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

// SeedFromFakeStore replaces the catalog with products pulled from the
// fakestore API, keeping only name and price.
func (s *CatalogService) SeedFromFakeStore(ctx context.Context, url string) (int, error) {
	if url == "" {
		url = fakeStoreURL
	}
	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch products: status %d", resp.StatusCode)
	}

	var rows []struct {
		Title string  `json:"title"`
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return 0, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, domain.Product{Name: r.Title, Price: r.Price})
	}
	if err := s.Prods.ReplaceAll(products); err != nil {
		return 0, err
	}
	return len(products), nil
}
