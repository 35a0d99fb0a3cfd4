// Command seed-fakestore replaces the product catalog with items pulled from
// the fakestore API (name and price only).
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"vibecart/internal/config"
	"vibecart/internal/repos"
	"vibecart/internal/services"
)

func main() {
	url := flag.String("url", "", "source API URL (empty = fakestoreapi.com)")
	flag.Parse()

	cfg := config.Load()
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog := services.NewCatalogService(repos.NewProductRepo(db))
	n, err := catalog.SeedFromFakeStore(ctx, *url)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("seeded %d products", n)
}
