package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goextract/internal/app"
	"github.com/hyperifyio/goextract/internal/input"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes one extraction and returns the process exit code. Every
// argument after the program name is an input path; there are no flags.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Logging setup. stdout carries extracted text only.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var paths []string
	if len(args) > 1 {
		paths = args[1:]
	}
	cfg := app.Config{
		InputPaths: paths,
		Stdin:      stdin,
		Stdout:     stdout,
	}

	if err := extract(cfg); err != nil {
		var ue *input.UnavailableError
		if errors.As(err, &ue) {
			log.Error().Err(ue.Err).Str("source", ue.Source).Msg("run failed: input unavailable")
		} else {
			log.Error().Err(err).Msg("run failed")
		}
		return 1
	}
	return 0
}

func extract(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
