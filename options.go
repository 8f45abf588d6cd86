package cipherkit

import (
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"
)

// engineConfig holds configuration for an Engine.
type engineConfig struct {
	random  io.Reader
	workers int
	logger  zerolog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

func defaultConfig() *engineConfig {
	return &engineConfig{
		random:  rand.Reader,
		workers: 1,
		logger:  zerolog.Nop(),
	}
}

// WithRandom sets the source of OAEP seeds. It must be a cryptographically
// secure generator outside of tests.
// Default: crypto/rand.Reader
func WithRandom(r io.Reader) Option {
	return func(c *engineConfig) {
		if r != nil {
			c.random = r
		}
	}
}

// WithWorkers sets how many blocks may be transformed concurrently.
// Values below 1 are treated as 1. Output is identical for every setting.
// Default: 1
func WithWorkers(n int) Option {
	return func(c *engineConfig) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithLogger sets the logger for per-operation debug events. Keys and
// payloads are never logged.
// Default: zerolog.Nop()
func WithLogger(logger zerolog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
