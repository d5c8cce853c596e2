package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kronuz/base-x-go/internal/app"
	"github.com/Kronuz/base-x-go/internal/biguint"
	"github.com/Kronuz/base-x-go/internal/config"
	"github.com/Kronuz/base-x-go/internal/logging"
	"github.com/Kronuz/base-x-go/internal/server"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	fs := flag.NewFlagSet("basex-server", flag.ContinueOnError)
	cfg, err := config.ParseServerFlags(fs, os.Args[1:])
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = config.ApplyAdaptiveThresholds(cfg)
	biguint.SetParallelKaratsubaThreshold(cfg.KaratsubaThreshold)

	logger := logging.NewDefaultLogger()
	srv := server.New(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server exited with error", err)
		os.Exit(1)
	}
}
