package repos

import (
	"shoppulse/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Insert(x sqlx.Ext, id int64, title, productType, vendor, createdAt *string, payload string) error {
	q := x.Rebind(`
	  INSERT INTO products (id, title, product_type, vendor, created_at, payload)
	  VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err := x.Exec(q, id, title, productType, vendor, createdAt, payload)
	return err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
		SELECT id, title, product_type, vendor,
		       CAST(created_at AS TEXT) AS created_at,
		       payload
		FROM products
		ORDER BY created_at DESC
	`)
	return out, err
}
