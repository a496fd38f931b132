package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dimitrije/teampulse-api/internal/config"
	"github.com/dimitrije/teampulse-api/internal/database"
	"github.com/dimitrije/teampulse-api/internal/logger"
	"github.com/dimitrije/teampulse-api/internal/repository"
	"github.com/dimitrije/teampulse-api/internal/seed"
)

func main() {
	if len(os.Args) != 1 {
		fmt.Println("Usage: seed")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	n, err := seed.TeamData(ctx, repository.NewTeamRepository(db))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed team data")
	}

	if n == 0 {
		fmt.Println("Team data already present, nothing to do")
		return
	}
	fmt.Printf("Seeded %d team members\n", n)
}
