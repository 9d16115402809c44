package shopify

import "testing"

func TestClassifyKnownTopics(t *testing.T) {
	cases := []struct {
		topic  string
		family Family
		event  string
	}{
		{"orders/create", FamilyOrder, "order_created"},
		{"orders/updated", FamilyOrder, "order_created"},
		{"products/create", FamilyProduct, ""},
		{"products/update", FamilyProduct, ""},
		{"customers/create", FamilyCustomer, ""},
		{"customers/update", FamilyCustomer, ""},
		{"checkouts/create", FamilyCheckout, "checkout_started"},
		{"carts/create", FamilyCart, "cart_created"},
	}
	for _, tc := range cases {
		f := Classify(tc.topic)
		if f != tc.family {
			t.Errorf("%s: want family %v, got %v", tc.topic, tc.family, f)
		}
		if f.EventType() != tc.event {
			t.Errorf("%s: want event %q, got %q", tc.topic, tc.event, f.EventType())
		}
	}
}

func TestClassifyUnknownTopicsAreIgnored(t *testing.T) {
	for _, topic := range []string{"", "app/uninstalled", "orders/delete", "refunds/create", "ORDERS/CREATE"} {
		if f := Classify(topic); f != FamilyIgnored {
			t.Errorf("topic %q: want FamilyIgnored, got %v", topic, f)
		}
	}
	if got := FamilyIgnored.EventType(); got != "" {
		t.Errorf("ignored family should derive no event, got %q", got)
	}
}
