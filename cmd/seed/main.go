// seed fills the configured history storage with a generated run through the program.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutprogress/internal"
	"github.com/2beens/workoutprogress/internal/config"
	"github.com/2beens/workoutprogress/internal/history"
	"github.com/2beens/workoutprogress/internal/logging"
	"github.com/2beens/workoutprogress/internal/seed"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	weeks := flag.Int("weeks", 4, "number of program weeks to generate [1-4]")
	randSeed := flag.Int64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
	})

	ctx := context.Background()
	storage, err := internal.NewSlotStorage(ctx, cfg, os.Getenv("REDIS_PASS"))
	if err != nil {
		log.Fatalf("history storage: %s", err)
	}

	store, err := history.NewStore(storage, nil)
	if err != nil {
		log.Fatalf("history store: %s", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("close history store: %s", err)
		}
	}()

	entries, err := seed.Generate(seed.Params{
		Weeks: *weeks,
		Seed:  *randSeed,
	})
	if err != nil {
		log.Fatalf("generate history: %s", err)
	}

	for _, e := range entries {
		if err := store.Upsert(ctx, e); err != nil {
			log.Fatalf("save %s: %s", e.Slot(), err)
		}
	}

	log.Infof("seeded %d workouts into [%s] storage", len(entries), cfg.StorageBackend)
}
