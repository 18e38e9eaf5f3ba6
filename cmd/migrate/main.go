package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/escola-api/internal/repository"
	"github.com/noah-isme/escola-api/internal/seed"
	"github.com/noah-isme/escola-api/internal/service"
	"github.com/noah-isme/escola-api/pkg/config"
	"github.com/noah-isme/escola-api/pkg/database"
	"github.com/noah-isme/escola-api/pkg/logger"
)

func main() {
	seedPath := flag.String("seed", "", "YAML fixture file to load after migrating")
	skipMigrate := flag.Bool("skip-migrate", false, "only load the seed file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if !*skipMigrate {
		if err := database.Migrate(ctx, db, logr); err != nil {
			logr.Fatal("migration failed", zap.Error(err))
		}
	}

	if *seedPath == "" {
		return
	}

	fixtures, err := seed.Load(*seedPath)
	if err != nil {
		logr.Fatal("failed to read seed file", zap.String("path", *seedPath), zap.Error(err))
	}

	validate := validator.New()
	seeder := seed.NewSeeder(
		service.NewClassService(repository.NewClassRepository(db), validate, nil, logr),
		service.NewTeacherService(repository.NewTeacherRepository(db), validate, nil, logr),
		service.NewStudentService(repository.NewStudentRepository(db), validate, nil, logr),
		logr,
	)
	res, err := seeder.Run(ctx, fixtures)
	if err != nil {
		logr.Fatal("seeding failed", zap.Error(err))
	}
	logr.Info("seeding complete", zap.Int("created", res.Created), zap.Int("skipped", res.Skipped))
}
