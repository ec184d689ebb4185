package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bloops-games/undercover/internal/cache"
	"github.com/bloops-games/undercover/internal/catalog"
	"github.com/bloops-games/undercover/internal/database"
	stateDb "github.com/bloops-games/undercover/internal/database/matchstate/database"
	rosterDb "github.com/bloops-games/undercover/internal/database/roster/database"
	"github.com/bloops-games/undercover/internal/logging"
	"github.com/bloops-games/undercover/internal/shutdown"
	"github.com/bloops-games/undercover/internal/undercover"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	ctx, done := shutdown.New()
	defer done()

	config := undercover.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logging.DefaultLogger().Fatalf("processing the config: %v", err)
	}

	if err := newCmd(&config).ExecuteContext(ctx); err != nil {
		logging.FromContext(ctx).Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, config *undercover.Config) error {
	logger := logging.FromContext(ctx)

	words, err := loadCatalog(config.WordsFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Infof("catalog ready: %d categories, %d pairs", len(words.Categories()), words.Len())

	db, err := database.NewFromEnv(ctx, &config.Db)
	if err != nil {
		return fmt.Errorf("new database from env: %w", err)
	}

	defer db.Close(ctx)

	rosterCache, err := cache.NewLRU(config.CacheSize)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	manager := undercover.NewManager(config, words, stateDb.New(db), rosterDb.New(db, rosterCache))
	if err := manager.Run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
