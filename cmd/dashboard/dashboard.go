package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"pokeplot/config"
	"pokeplot/models"
	"pokeplot/sources"
	"pokeplot/store"
	"pokeplot/web/handlers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags, err := config.GetFlags(ctx)
	if err != nil {
		log.Fatalf("couldn't read config: %v", err)
	}

	// Load the data, a failure is shown on the page rather than ending the process
	var scatter *models.Scatter
	source, loadErr := sources.Open(flags.Data, sources.Options{Sheet: flags.Sheet, Timeout: flags.FetchTimeout})
	if loadErr == nil {
		var dataset *models.Dataset
		dataset, loadErr = sources.LoadDataset(ctx, source, flags.Columns)
		if loadErr == nil {
			scatter = models.NewScatter(dataset, store.Layout(flags.Columns), store.TypeColours)
		}
	}
	if loadErr != nil {
		log.Printf("couldn't load data: %s", loadErr)
	}

	// Initialise UI
	renderer, err := handlers.NewScatter(scatter, loadErr)
	if err != nil {
		log.Fatalf("couldn't create scatter: %v", err)
	}

	// Initialise Server
	server, err := handlers.NewServer(renderer)
	if err != nil {
		log.Fatalf("couldn't create server: %v", err)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return server.Start(ctx, flags.Addr)
	})
	group.Go(func() error {
		return renderer.SweepSessions(ctx, flags.SessionTTL)
	})
	if err := group.Wait(); err != nil {
		log.Fatalf("couldn't run server: %v", err)
	}
}
