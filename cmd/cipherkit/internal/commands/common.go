// Package commands implements the cobra commands of the cipherkit CLI.
package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vaultsandbox/cipherkit"
	"github.com/vaultsandbox/cipherkit/internal/crypto"
)

// stdio is the file name that selects stdin or stdout.
const stdio = "-"

// NewRootCommand builds the command tree around engine.
func NewRootCommand(engine *cipherkit.Engine, logger zerolog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cipherkit",
		Short: "Block cipher and RSA-OAEP file encryption",
		Long: `cipherkit encrypts and decrypts files with a 256-bit Rijndael block
cipher or with RSA-OAEP (SHA-1) chained over as many blocks as needed.

Settings are read from the environment:
- CIPHERKIT_WORKERS     concurrent blocks (0 = one per CPU)
- CIPHERKIT_LOG_LEVEL   trace, debug, info, warn, error
- CIPHERKIT_LOG_CONSOLE human-readable logs on stderr
- CIPHERKIT_LOG_FILE    JSON logs to a rotating file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	InitAESCommands(rootCmd, engine, logger)
	InitRSACommands(rootCmd, engine, logger)
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cipherkit version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cipherkit.Version())
			return err
		},
	}
}

// readInput reads the named file, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdio {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// writeOutput writes data to the named file with owner-only permissions,
// or to stdout for "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == stdio {
		_, err := io.Copy(cmd.OutOrStdout(), bytes.NewReader(data))
		return err
	}

	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// addFileFlags registers the input and output flags shared by every
// encrypt and decrypt command.
func addFileFlags(cmd *cobra.Command, base64Usage string) {
	cmd.Flags().StringP("input-file", "i", "", `Path to the input file ("-" for stdin)`)
	cmd.Flags().StringP("output-file", "o", "", `Path to the output file ("-" for stdout); derived from the input name when empty`)
	cmd.Flags().Bool("base64", false, base64Usage)
	_ = cmd.MarkFlagRequired("input-file")
}

// armor encodes ciphertext as a line of standard base64 when --base64 is set.
func armor(cmd *cobra.Command, ciphertext []byte) ([]byte, error) {
	enabled, err := cmd.Flags().GetBool("base64")
	if err != nil || !enabled {
		return ciphertext, err
	}
	return []byte(crypto.ToBase64(ciphertext) + "\n"), nil
}

// dearmor reverses armor when --base64 is set. Either base64 alphabet is
// accepted, with or without padding.
func dearmor(cmd *cobra.Command, data []byte) ([]byte, error) {
	enabled, err := cmd.Flags().GetBool("base64")
	if err != nil || !enabled {
		return data, err
	}

	ciphertext, err := crypto.DecodeBase64(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return ciphertext, nil
}

// fileFlags returns the input path and the output path, deriving the latter
// with name when it was not given.
func fileFlags(cmd *cobra.Command, name func(string) string) (input, output string, err error) {
	if input, err = cmd.Flags().GetString("input-file"); err != nil {
		return "", "", err
	}
	if output, err = cmd.Flags().GetString("output-file"); err != nil {
		return "", "", err
	}

	if output == "" {
		if input == stdio {
			output = stdio
		} else {
			output = name(input)
		}
	}
	return input, output, nil
}
