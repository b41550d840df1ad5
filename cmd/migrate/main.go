package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fkhayef/shopped/internal/config"
	"github.com/fkhayef/shopped/internal/database"
	"github.com/fkhayef/shopped/migrations"
	"github.com/fkhayef/shopped/pkg/logger"
)

func main() {
	command := flag.String("command", "up", "migrate command (up|status|down)")
	timeout := flag.Duration("timeout", time.Minute, "command timeout")
	target := flag.Int64("target", 0, "target version for down command (optional)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := database.NewPostgresConnection(ctx, cfg.DatabaseURL, database.Options{})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db, migrations.FS, zl)
	if err != nil {
		zl.Fatal("failed to configure migrator", zap.Error(err))
	}

	switch *command {
	case "up":
		err = migrator.Up(ctx)
	case "status":
		err = migrator.Status(ctx)
	case "down":
		err = migrator.Down(ctx, *target)
	default:
		zl.Error("unsupported command", zap.String("command", *command))
		os.Exit(2)
	}
	if err != nil {
		zl.Error("migrate command failed", zap.String("command", *command), zap.Error(err))
		os.Exit(1)
	}
}
