package handlers

import (
	"time"

	applog "shoppulse/internal/log"
	"shoppulse/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatusHandler renders the small operator-facing landing page. The real
// dashboard is the SPA; this page just shows the service is alive and
// ingesting.
type StatusHandler struct {
	Stats     *services.StatsService
	StartedAt time.Time
}

// GET /
func (h *StatusHandler) Page(c *fiber.Ctx) error {
	totals, err := h.Stats.Totals()
	if err != nil {
		applog.Error(c, "status.totals.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	events, err := h.Stats.EventCounts()
	if err != nil {
		applog.Error(c, "status.events.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	return c.Render("index", fiber.Map{
		"Uptime":    time.Since(h.StartedAt).Round(time.Second).String(),
		"Totals":    totals,
		"Events":    events,
		"Timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
