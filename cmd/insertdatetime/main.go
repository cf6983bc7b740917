// Package main contains the entrypoint for the insertdatetime command.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattst/insertdatetime/internal/app"
	"github.com/mattst/insertdatetime/internal/config"
	"github.com/mattst/insertdatetime/internal/editor"
	"github.com/mattst/insertdatetime/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run loads configuration, builds the host collaborators, and executes one
// insertion request, returning the process exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	formatArg := flag.String("format", "", "Format specifier to insert immediately, bypassing the selection panel")
	filePath := flag.String("file", "", "Insert into this file instead of writing to stdout")
	atArg := flag.String("at", "", "Comma-separated byte offsets in -file to insert at (default 0)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.New(cfg.Log.Level, cfg.Log.JSON)
	log.Debug("Configuration loaded", "path", *configPath, "formats", len(cfg.Formats))

	inserter, err := newInserter(*filePath, *atArg)
	if err != nil {
		log.Error("Invalid insertion target", "file", *filePath, "at", *atArg, "error", err)
		return 1
	}
	selector := editor.NewSelector(log, cfg.FixedWidthFont)

	if err := app.New(cfg, log, selector, inserter).Run(ctx, *formatArg); err != nil {
		log.Error("Insertion failed", "error", err)
		return 1
	}
	return 0
}

// newInserter picks the insertion target: a multi-offset file splice when
// -file is given, stdout otherwise.
func newInserter(path, at string) (editor.Inserter, error) {
	if path == "" {
		if at != "" {
			return nil, fmt.Errorf("-at requires -file")
		}
		return editor.NewWriterInserter(os.Stdout), nil
	}

	offsets := []int64{0}
	if at != "" {
		offsets = offsets[:0]
		for _, field := range strings.Split(at, ",") {
			off, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid offset %q: %v", field, err)
			}
			offsets = append(offsets, off)
		}
	}
	return editor.NewFileInserter(path, offsets), nil
}
