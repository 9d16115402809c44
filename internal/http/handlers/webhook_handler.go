package handlers

import (
	applog "shoppulse/internal/log"
	"shoppulse/internal/metrics"
	"shoppulse/internal/services"
	"shoppulse/internal/shopify"

	"github.com/gofiber/fiber/v2"
)

type WebhookHandler struct {
	Secret []byte
	Ingest *services.IngestService
}

// Receive handles POST /webhooks/shopify. The body is verified as raw bytes
// before any parsing; a rejected signature persists nothing. Unknown topics
// are ACKed with 200 so Shopify does not retry them.
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	raw := c.Body()
	topic := c.Get("X-Shopify-Topic")
	sig := c.Get("X-Shopify-Hmac-Sha256")

	metrics.WebhooksReceivedTotal.WithLabelValues(topic).Inc()

	if !shopify.VerifyWebhook(raw, sig, h.Secret) {
		metrics.WebhooksRejectedTotal.Inc()
		applog.Security(c, "webhook.reject.signature", nil)
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid HMAC")
	}

	out, err := h.Ingest.Ingest(topic, raw)
	if err != nil {
		metrics.WebhooksFailedTotal.Inc()
		applog.Error(c, "webhook.ingest.fail", err, map[string]any{"table": out.Table, "entity_id": out.EntityID})
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	if out.Ignored {
		metrics.WebhooksIgnoredTotal.Inc()
		applog.Info(c, "webhook.ignored", nil)
	} else {
		metrics.WebhooksStoredTotal.WithLabelValues(out.Table).Inc()
		applog.Info(c, "webhook.stored", map[string]any{
			"table": out.Table, "entity_id": out.EntityID, "event_type": out.EventType,
		})
	}
	return c.SendString("OK")
}
