package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shoppulse/internal/config"
	"shoppulse/internal/http/handlers"
	applog "shoppulse/internal/log"
	"shoppulse/internal/metrics"
	"shoppulse/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}

	metrics.Register()

	engine := html.New("./web/templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
		},
	})
	// Webhook payloads are small; anything above this is not Shopify.
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			// Shopify delivery bursts and scrapes must not be throttled.
			p := c.Path()
			return strings.HasPrefix(p, "/webhooks/") || p == "/metrics"
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, cfg)

	app.Get("/", deps.Status.Page)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/webhooks/shopify", deps.Webhook.Receive)

	api := app.Group("/api")
	api.Post("/register", deps.Auth.Register)
	api.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON("Too many attempts. Please try again later.")
		},
	}), deps.Auth.Login)

	authed := handlers.RequireAuth(deps.Tokens)
	api.Get("/metrics", authed, deps.Dashboard.Metrics)
	api.Get("/orders-by-date", authed, deps.Dashboard.OrdersByDate)
	api.Get("/top-customers", authed, deps.Dashboard.TopCustomers)
	api.Get("/orders", authed, deps.Dashboard.ListOrders)
	api.Get("/products", authed, deps.Dashboard.ListProducts)
	api.Get("/customers", authed, deps.Dashboard.ListCustomers)

	log.Fatal(app.Listen(":" + cfg.Port))
}
