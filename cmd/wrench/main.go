package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rexradio/wrench/internal/app"
	"github.com/rexradio/wrench/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override wrench config path (optional)")
	logPath := flag.String("log", "", "override log file path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, LogPath: *logPath}

	if err := app.Run(ctx, opts); err != nil {
		if errors.Is(err, session.ErrNoKey) {
			fmt.Fprintln(os.Stderr, "wrench: an authenticated flow ran without a signing key")
			return 1
		}
		fmt.Fprintf(os.Stderr, "wrench: %v\n", err)
		return 1
	}
	return 0
}
