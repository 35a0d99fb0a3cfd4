package repos

import (
	"github.com/jmoiron/sqlx"

	"vibecart/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) ViewByUser(userID int64) ([]domain.CartItem, error) {
	rows := []domain.CartItem{}
	err := r.db.Select(&rows, `
	  SELECT c.id, c.product_id, p.name, p.price, c.qty
	  FROM cart c JOIN products p ON p.id = c.product_id
	  WHERE c.user_id = ?
	  ORDER BY c.id
	`, userID)
	return rows, err
}

func (r *CartRepo) Exists(userID, productID int64) (bool, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM cart WHERE user_id = ? AND product_id = ?`, userID, productID)
	return n > 0, err
}

// Upsert adds qty to the user's line for the product, inserting the line if
// none exists. Atomic against the UNIQUE(user_id, product_id) constraint.
func (r *CartRepo) Upsert(userID, productID int64, qty int) error {
	_, err := r.db.Exec(`
		INSERT INTO cart(user_id, product_id, qty) VALUES(?,?,?)
		ON CONFLICT(user_id, product_id) DO UPDATE SET qty = qty + excluded.qty
	`, userID, productID, qty)
	return err
}

func (r *CartRepo) GetLine(userID, productID int64) (domain.CartLine, error) {
	var l domain.CartLine
	err := r.db.Get(&l, `SELECT id, user_id, product_id, qty FROM cart WHERE user_id = ? AND product_id = ?`, userID, productID)
	return l, err
}

// Delete removes a line only if it belongs to the given user. Returns the
// number of rows removed; 0 means wrong id or wrong owner.
func (r *CartRepo) Delete(id, userID int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM cart WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CartRepo) ClearUser(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM cart WHERE user_id = ?`, userID)
	return err
}
