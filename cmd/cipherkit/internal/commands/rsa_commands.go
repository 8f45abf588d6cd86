package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vaultsandbox/cipherkit"
)

// RSACommandHandler encapsulates logic for handling RSA-OAEP operations via CLI.
type RSACommandHandler struct {
	engine *cipherkit.Engine
	logger zerolog.Logger
}

// NewRSACommandHandler returns an RSACommandHandler using engine.
func NewRSACommandHandler(engine *cipherkit.Engine, logger zerolog.Logger) *RSACommandHandler {
	return &RSACommandHandler{
		engine: engine,
		logger: logger.With().Str("component", "rsa").Logger(),
	}
}

// EncryptRSACmd encrypts a file with an RSA public key.
func (h *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	input, output, err := fileFlags(cmd, EncryptedName)
	if err != nil {
		return err
	}

	keyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return err
	}
	pub, err := loadPublicKey(keyPath)
	if err != nil {
		return err
	}

	plaintext, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	ciphertext, err := h.engine.EncryptWithKey(plaintext, pub)
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
	h.logger.Info().
		Str("input", input).
		Str("output", output).
		Int("blocks", len(ciphertext)/len(pub.Modulus)).
		Msg("encrypted")
	return nil
}

// DecryptRSACmd decrypts a file with an RSA private key.
func (h *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	input, output, err := fileFlags(cmd, DecryptedName)
	if err != nil {
		return err
	}

	keyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return err
	}
	priv, err := loadPrivateKey(keyPath)
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

	plaintext, err := h.engine.DecryptWithKey(ciphertext, priv)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, output, plaintext); err != nil {
		return err
	}
	h.logger.Info().Str("input", input).Str("output", output).Int("bytes", len(plaintext)).Msg("decrypted")
	return nil
}

// ExportJWKCmd prints the public half of a PEM or JWK key file as a JSON Web Key.
func (h *RSACommandHandler) ExportJWKCmd(cmd *cobra.Command, _ []string) error {
	keyPath, err := cmd.Flags().GetString("key")
	if err != nil {
		return err
	}
	pub, err := loadPublicKey(keyPath)
	if err != nil {
		return err
	}

	data, err := cipherkit.MarshalPublicKeyJWK(pub)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func isJWK(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
}

// loadPublicKey reads a public key from a PEM or JWK file. A private key
// file is accepted too and its public half used.
func loadPublicKey(path string) (*cipherkit.PublicKey, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}

	if isJWK(data) {
		return cipherkit.ParsePublicKeyJWK(data)
	}

	pub, err := cipherkit.ParsePublicKeyPEM(data)
	if err == nil {
		return pub, nil
	}
	if priv, privErr := cipherkit.ParsePrivateKeyPEM(data); privErr == nil {
		return priv.Public(), nil
	}
	return nil, err
}

// loadPrivateKey reads a private key from a PEM or JWK file.
func loadPrivateKey(path string) (*cipherkit.PrivateKey, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	if isJWK(data) {
		return cipherkit.ParsePrivateKeyJWK(data)
	}
	return cipherkit.ParsePrivateKeyPEM(data)
}

// InitRSACommands registers RSA-OAEP commands.
func InitRSACommands(rootCmd *cobra.Command, engine *cipherkit.Engine, logger zerolog.Logger) {
	handler := NewRSACommandHandler(engine, logger)

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a file with an RSA public key",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptRSACmd,
	}
	addFileFlags(encryptRSAFileCmd, "Write the ciphertext as standard base64")
	encryptRSAFileCmd.Flags().String("public-key", "", "Path to a PEM or JWK public key")
	_ = encryptRSAFileCmd.MarkFlagRequired("public-key")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a file with an RSA private key",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptRSACmd,
	}
	addFileFlags(decryptRSAFileCmd, "Read the ciphertext as base64")
	decryptRSAFileCmd.Flags().String("private-key", "", "Path to a PEM or JWK private key")
	_ = decryptRSAFileCmd.MarkFlagRequired("private-key")
	rootCmd.AddCommand(decryptRSAFileCmd)

	var exportJWKCmd = &cobra.Command{
		Use:   "export-jwk",
		Short: "Print the public half of an RSA key as a JSON Web Key",
		Args:  cobra.NoArgs,
		RunE:  handler.ExportJWKCmd,
	}
	exportJWKCmd.Flags().String("key", "", "Path to a PEM or JWK key, public or private")
	_ = exportJWKCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(exportJWKCmd)
}
