package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goextract/internal/extract"
	"github.com/hyperifyio/goextract/internal/input"
)

type App struct {
	cfg       Config
	extractor extract.Extractor
}

// ErrNoOutput is returned by New when the configuration has nowhere to
// write results.
var ErrNoOutput = errors.New("no output writer")

func New(ctx context.Context, cfg Config) (*App, error) {
	if cfg.Stdout == nil {
		return nil, ErrNoOutput
	}
	log.Debug().
		Str("version", BuildVersion).
		Str("commit", BuildCommit).
		Str("date", BuildDate).
		Int("sources", len(cfg.InputPaths)).
		Msg("extract starting")
	return &App{cfg: cfg, extractor: extract.HeaderExtractor{}}, nil
}

func (a *App) Close() {
	// nothing yet
}

// Run buffers all input, extracts the header sections and writes them to
// the configured output. Nothing is written if reading fails.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text, err := input.ReadAll(a.cfg.InputPaths, a.cfg.Stdin)
	if err != nil {
		return err
	}
	log.Debug().Int("bytes", len(text)).Msg("input buffered")

	headers := a.extractor.Extract(text)
	log.Debug().Int("sections", len(headers)).Msg("headers extracted")

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := extract.Write(a.cfg.Stdout, headers); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
