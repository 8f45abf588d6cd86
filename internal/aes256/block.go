package aes256

// state is the 4x4 byte matrix of one block in column-major order: the byte
// at row r, column c lives at index r + 4c.
type state [BlockSize]byte

func (s *state) addRoundKey(rk []word) {
	for c := 0; c < blockWords; c++ {
		for r := 0; r < 4; r++ {
			s[r+4*c] ^= rk[c][r]
		}
	}
}

func (s *state) subBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	old := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r+4*c] = old[r+4*((c+r)%4)]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	old := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r+4*((c+r)%4)] = old[r+4*c]
		}
	}
}

func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		col := s[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = mul(a0, 2) ^ mul(a1, 3) ^ a2 ^ a3
		col[1] = a0 ^ mul(a1, 2) ^ mul(a2, 3) ^ a3
		col[2] = a0 ^ a1 ^ mul(a2, 2) ^ mul(a3, 3)
		col[3] = mul(a0, 3) ^ a1 ^ a2 ^ mul(a3, 2)
	}
}

func (s *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		col := s[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = mul(a0, 0x0e) ^ mul(a1, 0x0b) ^ mul(a2, 0x0d) ^ mul(a3, 0x09)
		col[1] = mul(a0, 0x09) ^ mul(a1, 0x0e) ^ mul(a2, 0x0b) ^ mul(a3, 0x0d)
		col[2] = mul(a0, 0x0d) ^ mul(a1, 0x09) ^ mul(a2, 0x0e) ^ mul(a3, 0x0b)
		col[3] = mul(a0, 0x0b) ^ mul(a1, 0x0d) ^ mul(a2, 0x09) ^ mul(a3, 0x0e)
	}
}

// encryptBlock runs the forward cipher on one block. dst and src must each
// hold at least BlockSize bytes and may overlap entirely.
func encryptBlock(w *Schedule, dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])

	s.addRoundKey(w.roundKey(0))
	for round := 1; round < Rounds; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(w.roundKey(round))
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(w.roundKey(Rounds))

	copy(dst, s[:])
}

// decryptBlock runs the inverse cipher on one block.
func decryptBlock(w *Schedule, dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])

	s.addRoundKey(w.roundKey(Rounds))
	for round := Rounds - 1; round >= 1; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(w.roundKey(round))
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(w.roundKey(0))

	copy(dst, s[:])
}
