package aes256

const (
	// KeySize is the size of a cipher key in bytes.
	KeySize = 32
	// BlockSize is the size of a cipher block in bytes.
	BlockSize = 16
	// Rounds is the number of rounds for a 256-bit key.
	Rounds = 14

	// keyWords is the number of 32-bit words in the key (Nk).
	keyWords = KeySize / 4
	// blockWords is the number of 32-bit columns in the state (Nb).
	blockWords = BlockSize / 4
	// ScheduleWords is the length of the expanded key in words.
	ScheduleWords = blockWords * (Rounds + 1)
)
