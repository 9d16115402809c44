package repos

import "github.com/jmoiron/sqlx"

// Checkouts and carts are ingest-only: nothing in the dashboard reads them
// yet, but the rows (with full payloads) are kept for future funnel metrics.

type CheckoutRepo struct{ db *sqlx.DB }

func NewCheckoutRepo(db *sqlx.DB) *CheckoutRepo { return &CheckoutRepo{db: db} }

func (r *CheckoutRepo) Insert(x sqlx.Ext, id int64, cartToken *string, customerID *int64, totalPrice, createdAt *string, payload string) error {
	q := x.Rebind(`
	  INSERT INTO checkouts (id, cart_token, customer_id, total_price, created_at, payload)
	  VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err := x.Exec(q, id, cartToken, customerID, totalPrice, createdAt, payload)
	return err
}

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) Insert(x sqlx.Ext, id string, token *string, customerID *int64, payload string) error {
	q := x.Rebind(`
	  INSERT INTO carts (id, cart_token, customer_id, payload)
	  VALUES (?, ?, ?, ?)
	`)
	_, err := x.Exec(q, id, token, customerID, payload)
	return err
}
