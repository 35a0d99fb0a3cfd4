package repos

import (
	"github.com/jmoiron/sqlx"

	"vibecart/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT id, name, price FROM products ORDER BY id`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT id, name, price FROM products WHERE id = ?`, id)
	return p, err
}

// PriceMap returns current prices for the given ids. Ids with no matching
// product are simply absent from the map.
func (r *ProductRepo) PriceMap(ids []int64) (map[int64]float64, error) {
	out := map[int64]float64{}
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`SELECT id, price FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	rows := []domain.Product{}
	if err := r.db.Select(&rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p.Price
	}
	return out, nil
}

// ReplaceAll swaps the whole catalog in one transaction (used by the
// fakestore seeder).
func (r *ProductRepo) ReplaceAll(products []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(`INSERT INTO products(name,price) VALUES(?,?)`, p.Name, p.Price); err != nil {
			return err
		}
	}
	return tx.Commit()
}
