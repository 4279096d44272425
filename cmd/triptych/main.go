package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwkelly/triptych/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	seedPath := flag.String("seed", "", "path to a TOML seed file (optional, defaults to the built-in board)")
	theme := flag.String("theme", "", "theme name override (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		SeedPath: *seedPath,
		Theme:    *theme,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "triptych: %v\n", err)
		return 1
	}
	return 0
}
