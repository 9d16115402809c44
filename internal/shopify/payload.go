package shopify

import (
	"encoding/json"
	"fmt"
)

// Typed partial decodes per topic family. Only the columns we extract are
// declared; everything else stays in the raw payload, which is stored
// verbatim regardless of how much extraction succeeded. Missing fields decode
// to nil and land as NULL columns. Prices stay strings on the way in —
// Shopify sends them quoted ("199.00") and the database casts to numeric.

type OrderPayload struct {
	ID              int64   `json:"id"`
	OrderNumber     *int64  `json:"order_number"`
	TotalPrice      *string `json:"total_price"`
	Currency        *string `json:"currency"`
	FinancialStatus *string `json:"financial_status"`
	CreatedAt       *string `json:"created_at"`
	Customer        *struct {
		ID int64 `json:"id"`
	} `json:"customer"`
}

// CustomerID flattens the nested customer reference, nil when absent.
func (p *OrderPayload) CustomerID() *int64 {
	if p.Customer == nil {
		return nil
	}
	return &p.Customer.ID
}

type ProductPayload struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title"`
	ProductType *string `json:"product_type"`
	Vendor      *string `json:"vendor"`
	CreatedAt   *string `json:"created_at"`
}

type CustomerPayload struct {
	ID               int64   `json:"id"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Email            *string `json:"email"`
	AcceptsMarketing *bool   `json:"accepts_marketing"`
	CreatedAt        *string `json:"created_at"`
}

type CheckoutPayload struct {
	ID         int64   `json:"id"`
	CartToken  *string `json:"cart_token"`
	CustomerID *int64  `json:"customer_id"`
	TotalPrice *string `json:"total_price"`
	CreatedAt  *string `json:"created_at"`
}

// Carts are keyed by an opaque token, not a numeric id.
type CartPayload struct {
	ID       string  `json:"id"`
	Token    *string `json:"token"`
	Customer *struct {
		ID int64 `json:"id"`
	} `json:"customer"`
}

func (p *CartPayload) CustomerID() *int64 {
	if p.Customer == nil {
		return nil
	}
	return &p.Customer.ID
}

// Decode unmarshals raw into dst, failing only on structurally malformed
// JSON. Call after signature verification; never feed the result back into
// the verifier.
func Decode(raw []byte, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	return nil
}
