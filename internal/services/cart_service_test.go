package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"vibecart/internal/money"
	"vibecart/internal/repos"
	"vibecart/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema := `
	CREATE TABLE products(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL, price NUMERIC NOT NULL);
	CREATE TABLE cart(id INTEGER PRIMARY KEY AUTOINCREMENT, user_id INTEGER NOT NULL,
	  product_id INTEGER NOT NULL, qty INTEGER NOT NULL, UNIQUE(user_id, product_id));

	INSERT INTO products(id,name,price) VALUES (1,'A',10.00),(2,'B',0.335);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func TestAddSameProductTwiceMergesQty(t *testing.T) {
	svc := services.NewCartService(repos.NewCartRepo(memdb(t)))

	line, created, err := svc.Add(1, 1, 2)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, 2, line.Qty)

	line, created, err = svc.Add(1, 1, 3)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, 5, line.Qty)

	cart, err := svc.View(1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 50.00, cart.Total)
}

func TestViewTotalMatchesLineSum(t *testing.T) {
	svc := services.NewCartService(repos.NewCartRepo(memdb(t)))

	_, _, err := svc.Add(1, 1, 2)
	require.NoError(t, err)
	_, _, err = svc.Add(1, 2, 3)
	require.NoError(t, err)

	cart, err := svc.View(1)
	require.NoError(t, err)

	// The aggregate is rounded to two decimals; line totals are not.
	require.Equal(t, 21.01, cart.Total) // 20.00 + 1.005
	sum := 0.0
	for _, it := range cart.Items {
		sum += it.Price * float64(it.Qty)
	}
	require.Equal(t, money.Round2(sum), cart.Total)
}

func TestViewEmptyCart(t *testing.T) {
	svc := services.NewCartService(repos.NewCartRepo(memdb(t)))

	cart, err := svc.View(7)
	require.NoError(t, err)
	require.NotNil(t, cart.Items)
	require.Empty(t, cart.Items)
	require.Zero(t, cart.Total)
	require.EqualValues(t, 7, cart.UserID)
}

func TestRemoveWrongOwnerIsNotFound(t *testing.T) {
	svc := services.NewCartService(repos.NewCartRepo(memdb(t)))

	line, _, err := svc.Add(1, 1, 2)
	require.NoError(t, err)

	err = svc.Remove(2, line.ID)
	require.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, svc.Remove(1, line.ID))
}

func TestNegativeQtyPassesThrough(t *testing.T) {
	// The required check upstream is zero-values-only; negatives reach the
	// store untouched.
	svc := services.NewCartService(repos.NewCartRepo(memdb(t)))

	line, _, err := svc.Add(1, 1, -2)
	require.NoError(t, err)
	require.Equal(t, -2, line.Qty)
}
