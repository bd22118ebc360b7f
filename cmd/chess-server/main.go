// chess-server hosts chess games over HTTP, with websocket feeds for
// spectators.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/httpapi"
	"github.com/lgbarn/chess-rules-go/internal/logging"
	"github.com/lgbarn/chess-rules-go/internal/service"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chess-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.FromConfig(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}

	hub := httpapi.NewHub(log)
	games := store.NewMemoryStore(store.WithMaxGames(cfg.Games.MaxGames))
	svc := service.New(games,
		service.WithLogger(log),
		service.WithNotifier(hub),
		service.WithUndo(cfg.Games.AllowUndo),
	)
	srv := httpapi.NewServer(cfg.Server, log, svc, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.Server.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Close(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Hosts chess games over HTTP.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
