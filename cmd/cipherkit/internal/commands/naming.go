package commands

import (
	"path/filepath"
	"strings"
)

// EncryptedSuffix is appended to the names of encrypted files.
const EncryptedSuffix = ".encrypted"

// DecryptedSuffix is appended to decrypted files whose input name did not
// end in EncryptedSuffix.
const DecryptedSuffix = ".decrypted"

// EncryptedName returns the default output name for encrypting path.
func EncryptedName(path string) string {
	return path + EncryptedSuffix
}

// DecryptedName returns the default output name for decrypting path: the
// name with EncryptedSuffix removed, or with DecryptedSuffix appended when
// removing it would leave no file name.
func DecryptedName(path string) string {
	if filepath.Base(path) == EncryptedSuffix {
		return path + DecryptedSuffix
	}
	if trimmed, ok := strings.CutSuffix(path, EncryptedSuffix); ok {
		return trimmed
	}
	return path + DecryptedSuffix
}
