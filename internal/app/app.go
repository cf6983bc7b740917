// Package app wires the timestamp formatter and the host collaborators into
// the one-shot insertdatetime command.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/mattst/insertdatetime/internal/config"
	"github.com/mattst/insertdatetime/internal/editor"
	"github.com/mattst/insertdatetime/internal/timestamp"
)

// App holds the command's components.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	selector editor.Selector
	inserter editor.Inserter
}

// New creates the command from its configuration and host collaborators.
func New(cfg *config.Config, log *slog.Logger, selector editor.Selector, inserter editor.Inserter) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		selector: selector,
		inserter: inserter,
	}
}

// Run executes one insertion request. A non-empty formatArg is formatted and
// inserted immediately, bypassing the selection panel; otherwise the
// configured formats list is rendered and offered for selection. The clock
// is sampled exactly once so every candidate reflects the same instant.
//
// An empty candidate list and a canceled selection are successful no-ops;
// only collaborator failures return an error.
func (a *App) Run(ctx context.Context, formatArg string) error {
	now := time.Now()

	if formatArg != "" {
		text, err := timestamp.Format(formatArg, now)
		if err == nil {
			a.log.Debug("inserting immediate format", "format", formatArg)
			return a.inserter.Insert(text)
		}
		a.log.Warn("invalid format argument, falling back to selection", "format", formatArg, "error", err)
	}

	entries := timestamp.FormatAll(a.cfg.Formats, now)
	if len(entries) == 0 {
		a.log.Info("no date/time formats to show, set the formats list in the configuration file")
		return nil
	}

	idx, err := a.selector.Select(ctx, entries)
	if err != nil {
		return err
	}
	if idx == editor.Canceled {
		a.log.Debug("selection canceled")
		return nil
	}

	return a.inserter.Insert(entries[idx])
}
