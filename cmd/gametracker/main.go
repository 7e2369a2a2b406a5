package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gametracker/internal/buildinfo"
	"github.com/dmitrijs2005/gametracker/internal/catalog"
	"github.com/dmitrijs2005/gametracker/internal/cli"
	"github.com/dmitrijs2005/gametracker/internal/config"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/storage"
	"github.com/dmitrijs2005/gametracker/internal/tracker"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		log.Fatalf("%v", err)
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer z.Sync()
	}

	store, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		log.Fatalf("%v", err)
	}
	kv := storage.NewAdapter(store, cfg.Namespace, logger)
	defer kv.Close()

	tr, err := tracker.New(ctx, kv, catalog.NewClient(cfg.CatalogOptions(), logger), logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	cli.NewApp(tr, logger, os.Stdin, os.Stdout).Run(ctx)
}
