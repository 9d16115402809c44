package handlers

import (
	"errors"
	"fmt"

	applog "shoppulse/internal/log"
	"shoppulse/internal/repos"
	"shoppulse/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the protected read-only endpoints behind the SPA.
type DashboardHandler struct {
	Stats     *services.StatsService
	Orders    *repos.OrderRepo
	Products  *repos.ProductRepo
	Customers *repos.CustomerRepo
}

// GET /api/metrics
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	t, err := h.Stats.Totals()
	if err != nil {
		applog.Error(c, "dashboard.metrics.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
	}
	return c.JSON(t)
}

// GET /api/orders-by-date?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *DashboardHandler) OrdersByDate(c *fiber.Ctx) error {
	start := c.Query("start_date")
	end := c.Query("end_date")
	buckets, err := h.Stats.OrdersByDate(start, end)
	if err != nil {
		if errors.Is(err, services.ErrBadDateRange) {
			return c.Status(fiber.StatusBadRequest).JSON(err.Error())
		}
		applog.Error(c, "dashboard.orders_by_date.fail", err, map[string]any{"start": start, "end": end})
		return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
	}
	return c.JSON(buckets)
}

// GET /api/top-customers
func (h *DashboardHandler) TopCustomers(c *fiber.Ctx) error {
	rows, err := h.Stats.TopCustomers()
	if err != nil {
		applog.Error(c, "dashboard.top_customers.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
	}
	message := "No customers found yet"
	if len(rows) > 0 {
		message = fmt.Sprintf("Found %d customer(s)", len(rows))
	}
	return c.JSON(fiber.Map{"topCustomers": rows, "message": message})
}

// GET /api/orders
func (h *DashboardHandler) ListOrders(c *fiber.Ctx) error {
	rows, err := h.Orders.List()
	if err != nil {
		applog.Error(c, "dashboard.orders.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
	}
	return c.JSON(rows)
}

// GET /api/products
func (h *DashboardHandler) ListProducts(c *fiber.Ctx) error {
	rows, err := h.Products.List()
	if err != nil {
		applog.Error(c, "dashboard.products.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
	}
	return c.JSON(rows)
}

// GET /api/customers
func (h *DashboardHandler) ListCustomers(c *fiber.Ctx) error {
	rows, err := h.Customers.List()
	if err != nil {
		applog.Error(c, "dashboard.customers.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
	}
	return c.JSON(rows)
}
