// Package logger builds the zerolog logger used by the cipherkit command.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vaultsandbox/cipherkit/internal/config"
)

// New creates a logger from conf. Human-readable output goes to stderr when
// conf.Console is set; JSON lines go to a rotating file when conf.File is
// set. With neither, JSON lines go to stderr.
//
// The returned Closer releases the log file and must be called on exit.
func New(conf config.LogConfig, stderr io.Writer) (zerolog.Logger, io.Closer) {
	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)

	if conf.File != "" {
		file := &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSize,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAge,
			Compress:   true,
		}
		writers = append(writers, file)
		closer = file
	}

	if conf.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339})
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = stderr
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(out).
		Level(conf.Level.Level()).
		With().
		Timestamp().
		Logger()

	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
