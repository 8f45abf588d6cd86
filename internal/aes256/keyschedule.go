package aes256

import "fmt"

// word is one 32-bit column of a round key, most significant byte first.
type word [4]byte

// Schedule is an expanded key: round key r occupies words 4r through 4r+3.
type Schedule [ScheduleWords]word

// roundKey returns the four words of round key r.
func (s *Schedule) roundKey(r int) []word {
	return s[blockWords*r : blockWords*(r+1)]
}

// Expand derives the round-key schedule from a 32-byte key.
func Expand(key []byte) (*Schedule, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrKeyLength, len(key), KeySize)
	}

	var w Schedule
	for i := 0; i < keyWords; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := keyWords; i < ScheduleWords; i++ {
		temp := w[i-1]
		switch i % keyWords {
		case 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= roundConstant(i / keyWords)
		case 4:
			// 256-bit keys substitute the middle word of each group too.
			temp = subWord(temp)
		}
		for j := range temp {
			w[i][j] = w[i-keyWords][j] ^ temp[j]
		}
	}

	return &w, nil
}

func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

func subWord(w word) word {
	return word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}
