package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"slhgateway/internal/bot"
	"slhgateway/internal/chain"
	"slhgateway/internal/config"
	"slhgateway/internal/db"
	"slhgateway/internal/handlers"
	"slhgateway/internal/ledger"
	"slhgateway/internal/logger"
	"slhgateway/internal/monitoring"
	"slhgateway/internal/store"
	"slhgateway/internal/websocket"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect database", zap.Error(err))
	}
	defer database.Close()

	users := store.NewUserStore(database)
	entries := store.NewLedgerStore(database)
	rewards := store.NewReferralStore(database)
	txRunner := db.NewTxRunner(database)
	hub := websocket.NewHub()
	service := ledger.NewService(txRunner, users, entries, rewards, hub, cfg.ReferralReward)

	chainClient, err := chain.NewClient(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to build chain client", zap.Error(err))
	}
	defer chainClient.Close()

	selftest := monitoring.NewSelfTest(database, chainClient, cfg, zlog)

	tgBot, err := bot.NewBot(cfg, service, chainClient, selftest, zlog)
	if err != nil {
		zlog.Fatal("failed to build telegram bot", zap.Error(err))
	}

	handler := handlers.New(cfg, tgBot, selftest, hub, zlog)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("gateway listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	if err := tgBot.SetWebhook(); err != nil {
		zlog.Fatal("failed to register webhook", zap.Error(err))
	}
	go tgBot.Start()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		runScheduledSelfTest(selftest, tgBot, zlog)
	}); err != nil {
		zlog.Fatal("failed to schedule self-test", zap.Error(err))
	}
	scheduler.Start()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	scheduler.Stop()
	tgBot.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Fatal("shutdown error", zap.Error(err))
	}
}

// runScheduledSelfTest pings the quick probes every hour and tells the
// admin when anything is off.
func runScheduledSelfTest(selftest *monitoring.SelfTest, tgBot *bot.Bot, zlog *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report := selftest.Run(ctx, true)
	if report.Status == monitoring.StatusOK {
		return
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("⚠️ Scheduled self-test: %s", report.Status))
	for name, check := range report.Checks {
		if check.OK || check.Skipped {
			continue
		}
		if len(check.Missing) > 0 {
			lines = append(lines, fmt.Sprintf("- %s: missing %s", name, strings.Join(check.Missing, ", ")))
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", name, check.Error))
	}
	zlog.Warn("scheduled self-test not ok", zap.String("status", string(report.Status)))
	tgBot.NotifyAdmin(strings.Join(lines, "\n"))
}
