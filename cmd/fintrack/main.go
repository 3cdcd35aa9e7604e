package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/config"
	"fintrack/internal/events"
	apphttp "fintrack/internal/http"
	applog "fintrack/internal/log"
	"fintrack/internal/seed"
	"fintrack/internal/services"
	"fintrack/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	data, err := seed.Load()
	if err != nil {
		logger.Error("Failed to load seed data", "error", err)
		os.Exit(1)
	}

	var delay store.Delayer
	if cfg.DelayMode == "demo" {
		delay = store.DemoDelays()
	}

	transactions := store.New("transaction", data.Transactions, delay)
	budgets := store.New("budget", data.Budgets, delay)
	goals := store.New("savings goal", data.Goals, delay)
	categories := store.New("category", data.Categories, delay)

	logger.Info("Stores seeded",
		"transactions", transactions.Len(),
		"budgets", budgets.Len(),
		"goals", goals.Len(),
		"categories", categories.Len(),
		"delay_mode", cfg.DelayMode)

	var eventsClient *events.Client
	if cfg.AMQPURL != "" {
		eventsClient, err = events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Events are best-effort; the tracker works without them.
			logger.Warn("Event publishing disabled", "error", err)
		} else {
			defer eventsClient.Close()
			logger.Info("Event publishing enabled",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	svcs := apphttp.Services{
		Transactions: services.NewTransactionService(transactions, budgets, categories, eventsClient),
		Budgets:      services.NewBudgetService(budgets, categories, transactions, eventsClient),
		Goals:        services.NewGoalService(goals, eventsClient),
		Categories:   services.NewCategoryService(categories, eventsClient),
		Dashboard:    services.NewDashboardService(transactions, budgets, goals, cfg.RecentLimit, cfg.TrendMonths),
	}

	srv := apphttp.NewServer(":"+cfg.Port, svcs)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting fintrack server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
