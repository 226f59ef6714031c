package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"FactScanner/internal/app"
	"FactScanner/internal/config"
	"FactScanner/internal/logging"
)

func main() {
	url := flag.String("url", "", "video URL or identifier to analyze")
	flag.Parse()

	if *url == "" && flag.NArg() > 0 {
		*url = flag.Arg(0)
	}
	if *url == "" {
		fmt.Fprintln(os.Stderr, "usage: factscanner -url <video url or id>")
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	application := app.New(cfg, logger)

	if err := application.Run(ctx, *url); err != nil {
		logger.Error("analysis run stopped", "error", err)
		os.Exit(1)
	}
}
