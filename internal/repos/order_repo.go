package repos

import (
	"shoppulse/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Insert writes one order row. x is a *sqlx.Tx when the caller also logs an
// event, so both writes commit or neither does.
func (r *OrderRepo) Insert(x sqlx.Ext, id int64, orderNumber *int64, totalPrice, currency, financialStatus, createdAt *string, customerID *int64, payload string) error {
	q := x.Rebind(`
	  INSERT INTO orders
	    (id, order_number, total_price, currency, financial_status, created_at, customer_id, payload)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := x.Exec(q, id, orderNumber, totalPrice, currency, financialStatus, createdAt, customerID, payload)
	return err
}

// List returns every order, newest first. Casts keep scan types identical
// across the sqlite and postgres drivers.
func (r *OrderRepo) List() ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `
		SELECT id, order_number,
		       CAST(total_price AS DOUBLE PRECISION) AS total_price,
		       currency, financial_status,
		       CAST(created_at AS TEXT) AS created_at,
		       customer_id, payload
		FROM orders
		ORDER BY created_at DESC
	`)
	return out, err
}
