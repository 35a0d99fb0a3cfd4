package repos

import (
	"github.com/jmoiron/sqlx"

	"vibecart/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(name, email string) (domain.User, error) {
	res, err := r.db.Exec(`INSERT INTO users(name,email) VALUES(?,?)`, name, email)
	if err != nil {
		return domain.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: id, Name: name, Email: email}, nil
}

func (r *UserRepo) Get(id int64) (domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT id, name, COALESCE(email,'') AS email FROM users WHERE id = ?`, id)
	return u, err
}
