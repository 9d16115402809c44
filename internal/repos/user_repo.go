package repos

import (
	"shoppulse/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) ByEmail(email string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	q := r.db.Rebind(`
	  SELECT id, email, password_hash, CAST(created_at AS TEXT) AS created_at
	  FROM users WHERE LOWER(email)=LOWER(?)
	`)
	if err := r.db.Get(&u, q, email); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Insert(email, hash string) error {
	q := r.db.Rebind(`INSERT INTO users (id, email, password_hash) VALUES (?, ?, ?)`)
	_, err := r.db.Exec(q, uuid.NewString(), email, hash)
	return err
}
