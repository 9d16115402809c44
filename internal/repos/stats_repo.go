package repos

import (
	"shoppulse/internal/domain"

	"github.com/jmoiron/sqlx"
)

// StatsRepo holds the read-only aggregate queries behind the dashboard.
// Every query is independent and side-effect-free.
type StatsRepo struct{ db *sqlx.DB }

func NewStatsRepo(db *sqlx.DB) *StatsRepo { return &StatsRepo{db: db} }

// Revenue counts only settled money: paid, partially_paid and refunded
// orders. Pending and voided ones are excluded.
const revenueFilter = `financial_status IN ('paid','partially_paid','refunded')`

func (r *StatsRepo) Totals() (domain.Totals, error) {
	var t domain.Totals
	if err := r.db.Get(&t.TotalCustomers, `SELECT COUNT(*) FROM customers`); err != nil {
		return t, err
	}
	if err := r.db.Get(&t.TotalOrders, `SELECT COUNT(*) FROM orders`); err != nil {
		return t, err
	}
	err := r.db.Get(&t.TotalRevenue, `
		SELECT CAST(COALESCE(SUM(total_price), 0) AS DOUBLE PRECISION)
		FROM orders WHERE `+revenueFilter)
	return t, err
}

// OrdersByDate buckets orders per calendar day over the inclusive
// [start, end] range (YYYY-MM-DD), ascending.
func (r *StatsRepo) OrdersByDate(start, end string) ([]domain.DayBucket, error) {
	out := []domain.DayBucket{}
	q := r.db.Rebind(`
		SELECT CAST(DATE(created_at) AS TEXT) AS order_date,
		       COUNT(*) AS order_count,
		       CAST(COALESCE(SUM(total_price), 0) AS DOUBLE PRECISION) AS total_revenue
		FROM orders
		WHERE DATE(created_at) BETWEEN ? AND ?
		GROUP BY DATE(created_at)
		ORDER BY order_date ASC
	`)
	err := r.db.Select(&out, q, start, end)
	return out, err
}

// TopCustomers ranks customers by summed order total, left-joined so
// customers with no orders appear with total_spend 0.
func (r *StatsRepo) TopCustomers(limit int) ([]domain.TopCustomer, error) {
	if limit <= 0 {
		limit = 5
	}
	out := []domain.TopCustomer{}
	q := r.db.Rebind(`
		SELECT c.id, c.first_name, c.last_name, c.email,
		       COUNT(o.id) AS total_orders,
		       CAST(COALESCE(SUM(o.total_price), 0) AS DOUBLE PRECISION) AS total_spend
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.first_name, c.last_name, c.email
		ORDER BY total_spend DESC
		LIMIT ?
	`)
	err := r.db.Select(&out, q, limit)
	return out, err
}
