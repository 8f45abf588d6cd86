// Package config loads the settings of the cipherkit command from the
// environment.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Prefix is prepended to every environment variable, e.g. CIPHERKIT_WORKERS.
const Prefix = "cipherkit"

// Config uses envconfig to load settings from the environment and validate
// them before the command runs.
type Config struct {
	// Workers bounds how many blocks are transformed concurrently. Zero
	// means one worker per CPU.
	Workers int `default:"0" validate:"gte=0,lte=1024"`
	Log     LogConfig
}

// LogConfig controls where and how verbosely the command logs.
type LogConfig struct {
	Level      LogLevelDecoder `default:"info"`
	Console    bool            `default:"true"`
	File       string
	MaxSize    int `split_words:"true" default:"10" validate:"gte=1,lte=100"`
	MaxBackups int `split_words:"true" default:"3" validate:"gte=0,lte=10"`
	MaxAge     int `split_words:"true" default:"28" validate:"gte=1,lte=365"`
}

// New creates a new Config object, loading environment variables and defaults.
func New() (_ *Config, err error) {
	var conf Config
	if err = envconfig.Process(Prefix, &conf); err != nil {
		return nil, err
	}

	if err = conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks that all fields in Config are within range.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}
	return nil
}

// WorkerCount resolves Workers to the number of workers to run.
func (c *Config) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// LogLevelDecoder deserializes the log level from a config string.
type LogLevelDecoder zerolog.Level

// Decode implements envconfig.Decoder
func (ll *LogLevelDecoder) Decode(value string) error {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "panic":
		*ll = LogLevelDecoder(zerolog.PanicLevel)
	case "fatal":
		*ll = LogLevelDecoder(zerolog.FatalLevel)
	case "error":
		*ll = LogLevelDecoder(zerolog.ErrorLevel)
	case "warn", "warning":
		*ll = LogLevelDecoder(zerolog.WarnLevel)
	case "info":
		*ll = LogLevelDecoder(zerolog.InfoLevel)
	case "debug":
		*ll = LogLevelDecoder(zerolog.DebugLevel)
	case "trace":
		*ll = LogLevelDecoder(zerolog.TraceLevel)
	default:
		return fmt.Errorf("unknown log level %q", value)
	}
	return nil
}

// Level returns the decoded zerolog level.
func (ll LogLevelDecoder) Level() zerolog.Level {
	return zerolog.Level(ll)
}
