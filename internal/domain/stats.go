package domain

// Aggregate views served by the dashboard endpoints.

type Totals struct {
	TotalCustomers int64   `db:"total_customers" json:"total_customers"`
	TotalOrders    int64   `db:"total_orders" json:"total_orders"`
	TotalRevenue   float64 `db:"total_revenue" json:"total_revenue"`
}

type DayBucket struct {
	OrderDate    string  `db:"order_date" json:"order_date"`
	OrderCount   int64   `db:"order_count" json:"order_count"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
}

type TopCustomer struct {
	ID          int64   `db:"id" json:"id"`
	FirstName   *string `db:"first_name" json:"first_name"`
	LastName    *string `db:"last_name" json:"last_name"`
	Email       *string `db:"email" json:"email"`
	TotalOrders int64   `db:"total_orders" json:"total_orders"`
	TotalSpend  float64 `db:"total_spend" json:"total_spend"`
}
