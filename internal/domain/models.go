package domain

import "encoding/json"

// Storefront rows are keyed by the id Shopify supplies. Extracted columns are
// nullable: a webhook with missing fields still lands with its full payload.

type Order struct {
	ID              int64           `db:"id" json:"id"`
	OrderNumber     *int64          `db:"order_number" json:"order_number"`
	TotalPrice      *float64        `db:"total_price" json:"total_price"`
	Currency        *string         `db:"currency" json:"currency"`
	FinancialStatus *string         `db:"financial_status" json:"financial_status"`
	CreatedAt       *string         `db:"created_at" json:"created_at"`
	CustomerID      *int64          `db:"customer_id" json:"customer_id"`
	Payload         json.RawMessage `db:"payload" json:"payload"`
}

type Product struct {
	ID          int64           `db:"id" json:"id"`
	Title       *string         `db:"title" json:"title"`
	ProductType *string         `db:"product_type" json:"product_type"`
	Vendor      *string         `db:"vendor" json:"vendor"`
	CreatedAt   *string         `db:"created_at" json:"created_at"`
	Payload     json.RawMessage `db:"payload" json:"payload"`
}

type Customer struct {
	ID               int64           `db:"id" json:"id"`
	FirstName        *string         `db:"first_name" json:"first_name"`
	LastName         *string         `db:"last_name" json:"last_name"`
	Email            *string         `db:"email" json:"email"`
	AcceptsMarketing *bool           `db:"accepts_marketing" json:"accepts_marketing"`
	CreatedAt        *string         `db:"created_at" json:"created_at"`
	Payload          json.RawMessage `db:"payload" json:"payload"`
}

type Checkout struct {
	ID         int64           `db:"id" json:"id"`
	CartToken  *string         `db:"cart_token" json:"cart_token"`
	CustomerID *int64          `db:"customer_id" json:"customer_id"`
	TotalPrice *float64        `db:"total_price" json:"total_price"`
	CreatedAt  *string         `db:"created_at" json:"created_at"`
	Payload    json.RawMessage `db:"payload" json:"payload"`
}

// Cart ids are opaque Shopify tokens, not numeric ids.
type Cart struct {
	ID         string          `db:"id" json:"id"`
	CartToken  *string         `db:"cart_token" json:"cart_token"`
	CustomerID *int64          `db:"customer_id" json:"customer_id"`
	Payload    json.RawMessage `db:"payload" json:"payload"`
}

// Event is the append-only audit trail derived from a subset of topics.
type Event struct {
	ID        string          `db:"id" json:"id"`
	EventType string          `db:"event_type" json:"event_type"`
	EntityID  string          `db:"entity_id" json:"entity_id"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	CreatedAt string          `db:"created_at" json:"created_at"`
}

// AdminUser is a dashboard login, unrelated to storefront customers.
type AdminUser struct {
	ID        string `db:"id" json:"id"`
	Email     string `db:"email" json:"email"`
	Hash      string `db:"password_hash" json:"-"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
