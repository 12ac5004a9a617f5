// SPDX-License-Identifier: MIT
// Package: deckentropy/cmd/deckentropy

// Package main runs the deck entropy sweep from the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	sweepcmd "github.com/katalvlaran/deckentropy/internal/cmd/deckentropy"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := sweepcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	logger, err := sweepcmd.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sweepcmd.Run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.WithError(err).Fatal("sweep failed")
	}
}
