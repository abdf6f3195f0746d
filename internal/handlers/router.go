// Package handlers is the thin HTTP surface of the gateway: health and
// self-test probes, the Telegram webhook sink and the ledger websocket
// feed. All investor interaction happens in the bot package.
package handlers

import (
	"context"
	"net/http"

	"slhgateway/internal/config"
	"slhgateway/internal/middleware"
	"slhgateway/internal/monitoring"
	"slhgateway/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

// UpdateSink receives decoded Telegram updates. Satisfied by bot.Bot.
type UpdateSink interface {
	ProcessUpdate(u telebot.Update)
}

// SelfTester runs the health probes. Satisfied by monitoring.SelfTest.
type SelfTester interface {
	Run(ctx context.Context, quick bool) monitoring.Report
}

type Handler struct {
	cfg      config.Config
	bot      UpdateSink
	selftest SelfTester
	hub      *websocket.Hub
	logger   *zap.Logger
}

func New(cfg config.Config, bot UpdateSink, selftest SelfTester, hub *websocket.Hub, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		bot:      bot,
		selftest: selftest,
		hub:      hub,
		logger:   logger,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.CorrelationID)
	router.Use(middleware.RequestLogger(h.logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/", h.Root)
	router.Get("/health", h.Health)
	router.Get("/ready", h.Ready)
	router.With(middleware.Auth(h.cfg.AdminAPISecret)).Get("/selftest", h.SelfTest)

	router.Post("/webhook/telegram", h.TelegramWebhook)
	router.Get("/ws/ledger", h.WSLedger)

	return router
}
