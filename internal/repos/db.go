package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	applog "vibecart/internal/log"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a small catalog if the DB is empty (run cmd/seed-fakestore for a
	// bigger one).
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0)
);

-- One line per (user, product); adds are atomic upserts against this
-- constraint rather than lookup-then-insert.
CREATE TABLE IF NOT EXISTS cart(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL REFERENCES products(id),
  qty INTEGER NOT NULL,
  UNIQUE(user_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_cart_user ON cart(user_id);

CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(name,price) VALUES
	  ('Wireless Mouse',19.99),
	  ('Mechanical Keyboard',89.50),
	  ('USB-C Hub',34.00),
	  ('Laptop Stand',42.75),
	  ('Webcam 1080p',59.99)`)
	if err := tx.Commit(); err != nil {
		return err
	}
	applog.Info(nil, "seed.products", map[string]any{"count": 5})
	return nil
}
