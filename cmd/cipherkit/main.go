// Command cipherkit encrypts and decrypts files with the cipherkit block
// cipher and RSA-OAEP schemes.
//
// Settings are read from CIPHERKIT_* environment variables, optionally
// loaded from a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/vaultsandbox/cipherkit"
	"github.com/vaultsandbox/cipherkit/cmd/cipherkit/internal/commands"
	"github.com/vaultsandbox/cipherkit/internal/config"
	"github.com/vaultsandbox/cipherkit/internal/logger"
)

// Config holds the standard streams used by the command.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func run(args []string, cfg Config) error {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closer := logger.New(conf.Log, cfg.Stderr)
	defer closer.Close()

	engine := cipherkit.New(
		cipherkit.WithWorkers(conf.WorkerCount()),
		cipherkit.WithLogger(log),
	)

	rootCmd := commands.NewRootCommand(engine, log)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(cfg.Stdin)
	rootCmd.SetOut(cfg.Stdout)
	rootCmd.SetErr(cfg.Stderr)

	return rootCmd.Execute()
}
