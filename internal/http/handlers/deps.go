package handlers

import (
	"github.com/jmoiron/sqlx"

	"vibecart/internal/config"
	"vibecart/internal/repos"
	"vibecart/internal/services"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	UserHandler     *UserHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(cartRepo)
	checkoutSvc := services.NewCheckoutService(cartRepo, prodRepo)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc, DefaultUserID: cfg.DefaultUserID},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc, DefaultUserID: cfg.DefaultUserID},
		UserHandler:     &UserHandler{Users: userRepo},
	}
}
