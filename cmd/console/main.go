package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/console"
	"github.com/noah-isme/escola-api/pkg/client"
	"github.com/noah-isme/escola-api/pkg/config"
	"github.com/noah-isme/escola-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	apiURL := flag.String("api", cfg.Console.APIURL, "base URL of the API, including its prefix")
	flag.Parse()

	logr, err := logger.NewFile(cfg, cfg.Console.LogFile)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(*apiURL, cfg.Console.Timeout)
	app := console.New(ctx, api, console.Options{
		SearchDebounce: cfg.Console.SearchDebounce,
		Logger:         logr,
	})

	logr.Info("console started", zap.String("api", *apiURL))
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logr.Error("console stopped", zap.Error(err))
		log.Fatalf("console: %v", err)
	}
}
