package shopify

// Topic strings Shopify delivers in the X-Shopify-Topic header.
const (
	TopicOrdersCreate    = "orders/create"
	TopicOrdersUpdated   = "orders/updated"
	TopicProductsCreate  = "products/create"
	TopicProductsUpdate  = "products/update"
	TopicCustomersCreate = "customers/create"
	TopicCustomersUpdate = "customers/update"
	TopicCheckoutsCreate = "checkouts/create"
	TopicCartsCreate     = "carts/create"
)

// Family is the table family a topic routes to. Unlisted topics map to
// FamilyIgnored and are acknowledged without storing anything, so Shopify
// does not retry harmless-but-unknown deliveries.
type Family int

const (
	FamilyIgnored Family = iota
	FamilyOrder
	FamilyProduct
	FamilyCustomer
	FamilyCheckout
	FamilyCart
)

func Classify(topic string) Family {
	switch topic {
	case TopicOrdersCreate, TopicOrdersUpdated:
		return FamilyOrder
	case TopicProductsCreate, TopicProductsUpdate:
		return FamilyProduct
	case TopicCustomersCreate, TopicCustomersUpdate:
		return FamilyCustomer
	case TopicCheckoutsCreate:
		return FamilyCheckout
	case TopicCartsCreate:
		return FamilyCart
	default:
		return FamilyIgnored
	}
}

func (f Family) String() string {
	switch f {
	case FamilyOrder:
		return "orders"
	case FamilyProduct:
		return "products"
	case FamilyCustomer:
		return "customers"
	case FamilyCheckout:
		return "checkouts"
	case FamilyCart:
		return "carts"
	default:
		return "ignored"
	}
}

// EventType returns the derived audit event for the family, or "" when the
// family produces no event. Classification is per family, not per sub-topic:
// orders/updated still logs order_created.
func (f Family) EventType() string {
	switch f {
	case FamilyOrder:
		return "order_created"
	case FamilyCheckout:
		return "checkout_started"
	case FamilyCart:
		return "cart_created"
	default:
		return ""
	}
}
