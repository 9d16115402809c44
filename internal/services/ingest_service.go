package services

import (
	"strconv"

	"shoppulse/internal/repos"
	"shoppulse/internal/shopify"

	"github.com/jmoiron/sqlx"
)

// IngestService routes a verified webhook to its target table and derives
// the audit event. Both writes run in one transaction: either the primary
// row and the event land together or the delivery fails whole.
type IngestService struct {
	db        *sqlx.DB
	Orders    *repos.OrderRepo
	Products  *repos.ProductRepo
	Customers *repos.CustomerRepo
	Checkouts *repos.CheckoutRepo
	Carts     *repos.CartRepo
	Events    *repos.EventRepo
}

func NewIngestService(db *sqlx.DB) *IngestService {
	return &IngestService{
		db:        db,
		Orders:    repos.NewOrderRepo(db),
		Products:  repos.NewProductRepo(db),
		Customers: repos.NewCustomerRepo(db),
		Checkouts: repos.NewCheckoutRepo(db),
		Carts:     repos.NewCartRepo(db),
		Events:    repos.NewEventRepo(db),
	}
}

type IngestOutcome struct {
	Ignored   bool
	Table     string
	EventType string
	EntityID  string
}

// Ingest decodes raw per topic family and persists it. raw must already be
// signature-verified. Unknown topics come back Ignored with no error so the
// handler can ACK them. Missing fields become NULL columns; only invalid
// JSON is an error.
func (s *IngestService) Ingest(topic string, raw []byte) (IngestOutcome, error) {
	var out IngestOutcome

	family := shopify.Classify(topic)
	if family == shopify.FamilyIgnored {
		out.Ignored = true
		return out, nil
	}

	payload := string(raw)
	var entityID string
	var insert func(x sqlx.Ext) error

	switch family {
	case shopify.FamilyOrder:
		var p shopify.OrderPayload
		if err := shopify.Decode(raw, &p); err != nil {
			return out, err
		}
		entityID = strconv.FormatInt(p.ID, 10)
		insert = func(x sqlx.Ext) error {
			return s.Orders.Insert(x, p.ID, p.OrderNumber, p.TotalPrice, p.Currency, p.FinancialStatus, p.CreatedAt, p.CustomerID(), payload)
		}
	case shopify.FamilyProduct:
		var p shopify.ProductPayload
		if err := shopify.Decode(raw, &p); err != nil {
			return out, err
		}
		entityID = strconv.FormatInt(p.ID, 10)
		insert = func(x sqlx.Ext) error {
			return s.Products.Insert(x, p.ID, p.Title, p.ProductType, p.Vendor, p.CreatedAt, payload)
		}
	case shopify.FamilyCustomer:
		var p shopify.CustomerPayload
		if err := shopify.Decode(raw, &p); err != nil {
			return out, err
		}
		entityID = strconv.FormatInt(p.ID, 10)
		insert = func(x sqlx.Ext) error {
			return s.Customers.Insert(x, p.ID, p.FirstName, p.LastName, p.Email, p.AcceptsMarketing, p.CreatedAt, payload)
		}
	case shopify.FamilyCheckout:
		var p shopify.CheckoutPayload
		if err := shopify.Decode(raw, &p); err != nil {
			return out, err
		}
		entityID = strconv.FormatInt(p.ID, 10)
		insert = func(x sqlx.Ext) error {
			return s.Checkouts.Insert(x, p.ID, p.CartToken, p.CustomerID, p.TotalPrice, p.CreatedAt, payload)
		}
	case shopify.FamilyCart:
		var p shopify.CartPayload
		if err := shopify.Decode(raw, &p); err != nil {
			return out, err
		}
		entityID = p.ID
		insert = func(x sqlx.Ext) error {
			return s.Carts.Insert(x, p.ID, p.Token, p.CustomerID(), payload)
		}
	}

	out.Table = family.String()
	out.EventType = family.EventType()
	out.EntityID = entityID

	tx, err := s.db.Beginx()
	if err != nil {
		return out, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insert(tx); err != nil {
		return out, err
	}
	if out.EventType != "" {
		if err := s.Events.Insert(tx, out.EventType, entityID, payload); err != nil {
			return out, err
		}
	}
	return out, tx.Commit()
}
