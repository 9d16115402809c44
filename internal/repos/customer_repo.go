package repos

import (
	"shoppulse/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Insert writes one storefront customer. The password_hash column exists in
// the table but is never written by the webhook path.
func (r *CustomerRepo) Insert(x sqlx.Ext, id int64, firstName, lastName, email *string, acceptsMarketing *bool, createdAt *string, payload string) error {
	q := x.Rebind(`
	  INSERT INTO customers (id, first_name, last_name, email, accepts_marketing, created_at, payload)
	  VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := x.Exec(q, id, firstName, lastName, email, acceptsMarketing, createdAt, payload)
	return err
}

func (r *CustomerRepo) List() ([]domain.Customer, error) {
	out := []domain.Customer{}
	err := r.db.Select(&out, `
		SELECT id, first_name, last_name, email, accepts_marketing,
		       CAST(created_at AS TEXT) AS created_at,
		       payload
		FROM customers
		ORDER BY created_at DESC
	`)
	return out, err
}
