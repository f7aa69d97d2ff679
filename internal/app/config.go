package app

import "io"

// Config holds runtime configuration for the application.
type Config struct {
	// InputPaths are read in order. Empty means standard input.
	InputPaths []string

	Stdin  io.Reader
	Stdout io.Writer
}
