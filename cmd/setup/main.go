// Command setup resets the EduHub database, creates the validated collections
// and, unless -seed=false, loads the sample data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"eduhub/config"
	"eduhub/internal/di"
	"eduhub/pkg/logger"
)

func main() {
	seed := flag.Bool("seed", true, "insert sample data after provisioning")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load environment variables: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(config.Env.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	di.Initialize(log)

	if err := run(log, *seed, *timeout); err != nil {
		log.Error("Setup -> failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *logger.Logger, seed bool, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	defer func() {
		if err := di.Close(context.Background()); err != nil {
			log.Warn("Setup -> close connections failed", "error", err)
		}
	}()

	setupService, err := di.GetSetupService()
	if err != nil {
		return err
	}

	result, _, err := setupService.Run(ctx, seed)
	if err != nil {
		return err
	}

	log.Info("Setup -> done", "dropped", result.Dropped, "provisioned", result.Provisioned)
	if result.Seed != nil {
		for collection, n := range result.Seed.Inserted {
			log.Info("Setup -> seeded", "collection", collection, "inserted", n)
		}
		if len(result.Seed.Skipped) > 0 {
			log.Warn("Setup -> skipped sample keys", "keys", result.Seed.Skipped)
		}
	}
	return nil
}
