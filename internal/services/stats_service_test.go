package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"

	"shoppulse/internal/repos"
	"shoppulse/internal/services"
)

// seedStore loads three customers and a handful of orders through plain
// inserts: C1 has two paid orders totaling 150, C2 has none, C3 one paid
// order of 500. One pending order with no customer checks the revenue filter.
func seedStore(t *testing.T, db *sqlx.DB) {
	t.Helper()
	stmts := []string{
		`INSERT INTO customers (id, first_name, last_name, email, payload)
		   VALUES (1, 'Ada', 'Lovelace', 'ada@example.com', '{}')`,
		`INSERT INTO customers (id, first_name, last_name, email, payload)
		   VALUES (2, 'Beau', 'Brummell', 'beau@example.com', '{}')`,
		`INSERT INTO customers (id, first_name, last_name, email, payload)
		   VALUES (3, 'Cleo', 'Monroe', 'cleo@example.com', '{}')`,

		`INSERT INTO orders (id, order_number, total_price, currency, financial_status, created_at, customer_id, payload)
		   VALUES (101, 1, 100.00, 'USD', 'paid', '2026-08-01T10:00:00Z', 1, '{}')`,
		`INSERT INTO orders (id, order_number, total_price, currency, financial_status, created_at, customer_id, payload)
		   VALUES (102, 2, 50.00, 'USD', 'refunded', '2026-08-01T18:30:00Z', 1, '{}')`,
		`INSERT INTO orders (id, order_number, total_price, currency, financial_status, created_at, customer_id, payload)
		   VALUES (103, 3, 500.00, 'USD', 'paid', '2026-08-05T09:00:00Z', 3, '{}')`,
		`INSERT INTO orders (id, order_number, total_price, currency, financial_status, created_at, customer_id, payload)
		   VALUES (104, 4, 10.00, 'USD', 'pending', '2026-08-03T08:00:00Z', NULL, '{}')`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
}

func newStatsService(t *testing.T) *services.StatsService {
	t.Helper()
	db := memdb(t)
	seedStore(t, db)
	return &services.StatsService{Stats: repos.NewStatsRepo(db), Events: repos.NewEventRepo(db)}
}

func TestTotalsFilterRevenueByFinancialStatus(t *testing.T) {
	svc := newStatsService(t)

	got, err := svc.Totals()
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalCustomers != 3 {
		t.Errorf("total_customers: want 3, got %d", got.TotalCustomers)
	}
	if got.TotalOrders != 4 {
		t.Errorf("total_orders: want 4, got %d", got.TotalOrders)
	}
	// The pending order's 10.00 is excluded.
	if got.TotalRevenue != 650 {
		t.Errorf("total_revenue: want 650, got %v", got.TotalRevenue)
	}
}

func TestOrdersByDateInclusiveRange(t *testing.T) {
	svc := newStatsService(t)

	buckets, err := svc.OrdersByDate("2026-08-01", "2026-08-03")
	if err != nil {
		t.Fatal(err)
	}
	// 08-05 is outside the range; 08-01 holds two orders, 08-03 one.
	if len(buckets) != 2 {
		t.Fatalf("want 2 buckets, got %d: %+v", len(buckets), buckets)
	}
	if buckets[0].OrderDate != "2026-08-01" || buckets[0].OrderCount != 2 || buckets[0].TotalRevenue != 150 {
		t.Errorf("first bucket: %+v", buckets[0])
	}
	if buckets[1].OrderDate != "2026-08-03" || buckets[1].OrderCount != 1 || buckets[1].TotalRevenue != 10 {
		t.Errorf("second bucket: %+v", buckets[1])
	}

	// Boundary day alone
	only, err := svc.OrdersByDate("2026-08-05", "2026-08-05")
	if err != nil {
		t.Fatal(err)
	}
	if len(only) != 1 || only[0].OrderCount != 1 || only[0].TotalRevenue != 500 {
		t.Fatalf("single-day range: %+v", only)
	}
}

func TestOrdersByDateRejectsBadRange(t *testing.T) {
	svc := newStatsService(t)

	for _, tc := range [][2]string{
		{"", ""},
		{"2026-08-01", ""},
		{"08/01/2026", "2026-08-03"},
		{"2026-08-01", "not-a-date"},
	} {
		if _, err := svc.OrdersByDate(tc[0], tc[1]); !errors.Is(err, services.ErrBadDateRange) {
			t.Errorf("range %q..%q: want ErrBadDateRange, got %v", tc[0], tc[1], err)
		}
	}
}

func TestTopCustomersRankingWithZeroOrderCustomer(t *testing.T) {
	svc := newStatsService(t)

	rows, err := svc.TopCustomers()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 customers, got %d", len(rows))
	}

	wantOrder := []int64{3, 1, 2} // C3 (500) > C1 (150) > C2 (0)
	for i, want := range wantOrder {
		if rows[i].ID != want {
			t.Fatalf("rank %d: want customer %d, got %d (%+v)", i, want, rows[i].ID, rows)
		}
	}
	if rows[0].TotalSpend != 500 || rows[1].TotalSpend != 150 {
		t.Errorf("spends: %+v", rows)
	}
	if rows[2].TotalSpend != 0 || rows[2].TotalOrders != 0 {
		t.Errorf("zero-order customer must default to 0, got %+v", rows[2])
	}
}

func TestTopCustomersLimit(t *testing.T) {
	db := memdb(t)
	for i := 1; i <= 8; i++ {
		if _, err := db.Exec(fmt.Sprintf(
			`INSERT INTO customers (id, email, payload) VALUES (%d, 'c%d@example.com', '{}')`, i, i)); err != nil {
			t.Fatal(err)
		}
	}
	svc := &services.StatsService{Stats: repos.NewStatsRepo(db), Events: repos.NewEventRepo(db)}

	rows, err := svc.TopCustomers()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("top customers is capped at 5, got %d", len(rows))
	}
}
