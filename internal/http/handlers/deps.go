package handlers

import (
	"time"

	"shoppulse/internal/auth"
	"shoppulse/internal/config"
	"shoppulse/internal/repos"
	"shoppulse/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Webhook   *WebhookHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Status    *StatusHandler
	Tokens    *auth.Tokens
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	tokens := auth.NewTokens(cfg.TokenSecret, time.Hour)

	ingestSvc := services.NewIngestService(db)
	authSvc := &services.AuthService{Users: repos.NewUserRepo(db), Tokens: tokens}
	statsSvc := &services.StatsService{Stats: repos.NewStatsRepo(db), Events: repos.NewEventRepo(db)}

	return &Deps{
		Webhook: &WebhookHandler{Secret: []byte(cfg.WebhookSecret), Ingest: ingestSvc},
		Auth:    &AuthHandler{Auth: authSvc},
		Dashboard: &DashboardHandler{
			Stats:     statsSvc,
			Orders:    ingestSvc.Orders,
			Products:  ingestSvc.Products,
			Customers: ingestSvc.Customers,
		},
		Status: &StatusHandler{Stats: statsSvc, StartedAt: time.Now()},
		Tokens: tokens,
	}
}
