package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vaultsandbox/cipherkit"
)

// AESCommandHandler encapsulates logic for handling block-cipher operations via CLI.
type AESCommandHandler struct {
	engine *cipherkit.Engine
	logger zerolog.Logger
}

// NewAESCommandHandler returns an AESCommandHandler using engine.
func NewAESCommandHandler(engine *cipherkit.Engine, logger zerolog.Logger) *AESCommandHandler {
	return &AESCommandHandler{
		engine: engine,
		logger: logger.With().Str("component", "aes").Logger(),
	}
}

// GenerateAESKeyCmd writes a random key to <uuid>-symmetric-key.bin in the key directory.
func (h *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) error {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return err
	}

	key, err := cipherkit.GenerateKey()
	if err != nil {
		return err
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, key, 0600); err != nil {
		return fmt.Errorf("write key: %w", err)
	}

	h.logger.Info().Str("path", keyFilePath).Msg("key saved")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return err
}

// EncryptAESCmd encrypts a file with the block cipher.
func (h *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	input, output, err := fileFlags(cmd, EncryptedName)
	if err != nil {
		return err
	}

	key, err := h.resolveKey(cmd)
	if err != nil {
		return err
	}

	plaintext, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	ciphertext, err := h.engine.AESEncrypt(plaintext, key)
	if err != nil {
		return err
	}

	armored, err := armor(cmd, ciphertext)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, output, armored); err != nil {
		return err
	}
	h.logger.Info().Str("input", input).Str("output", output).Int("bytes", len(ciphertext)).Msg("encrypted")
	return nil
}

// DecryptAESCmd decrypts a file with the block cipher.
func (h *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	input, output, err := fileFlags(cmd, DecryptedName)
	if err != nil {
		return err
	}

	key, err := h.resolveKey(cmd)
	if err != nil {
		return err
	}

	data, err := readInput(cmd, input)
	if err != nil {
		return err
	}
	ciphertext, err := dearmor(cmd, data)
	if err != nil {
		return err
	}

	plaintext, err := h.engine.AESDecrypt(ciphertext, key)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, output, plaintext); err != nil {
		return err
	}
	h.logger.Info().Str("input", input).Str("output", output).Int("bytes", len(plaintext)).Msg("decrypted")
	return nil
}

// resolveKey returns the key selected by exactly one of the key flags.
func (h *AESCommandHandler) resolveKey(cmd *cobra.Command) ([]byte, error) {
	flags := cmd.Flags()

	if flags.Changed("password") {
		password, err := flags.GetString("password")
		if err != nil {
			return nil, err
		}
		return cipherkit.KeyFromPassword(password), nil
	}

	if flags.Changed("key-hex") {
		hexKey, err := flags.GetString("key-hex")
		if err != nil {
			return nil, err
		}
		return cipherkit.ParseHexKey(hexKey)
	}

	keyFile, err := flags.GetString("key-file")
	if err != nil {
		return nil, err
	}
	key, err := os.ReadFile(filepath.Clean(keyFile))
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	if len(key) != cipherkit.KeySize {
		return nil, fmt.Errorf("%w: key file holds %d bytes, want %d", cipherkit.ErrKeyLength, len(key), cipherkit.KeySize)
	}
	return key, nil
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().String("key-file", "", "Path to a raw 32-byte key file")
	cmd.Flags().String("key-hex", "", "Key as 64 hex digits")
	cmd.Flags().String("password", "", "Password to derive the key from (SHA-256)")
	cmd.MarkFlagsMutuallyExclusive("key-file", "key-hex", "password")
	cmd.MarkFlagsOneRequired("key-file", "key-hex", "password")
}

// InitAESCommands registers block-cipher commands.
func InitAESCommands(rootCmd *cobra.Command, engine *cipherkit.Engine, logger zerolog.Logger) {
	handler := NewAESCommandHandler(engine, logger)

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate a random 256-bit key",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().String("key-dir", ".", "Directory to store the key")
	rootCmd.AddCommand(generateAESKeyCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file with the block cipher",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptAESCmd,
	}
	addFileFlags(encryptAESFileCmd, "Write the ciphertext as standard base64")
	addKeyFlags(encryptAESFileCmd)
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file with the block cipher",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptAESCmd,
	}
	addFileFlags(decryptAESFileCmd, "Read the ciphertext as base64")
	addKeyFlags(decryptAESFileCmd)
	rootCmd.AddCommand(decryptAESFileCmd)
}
