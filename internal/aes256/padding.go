package aes256

// Pad returns a copy of data extended to a whole number of blocks. Between 1
// and BlockSize bytes are always appended, each equal to the number added.
func Pad(data []byte) []byte {
	n := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad strips as many trailing bytes as the value of the final byte. The
// stripped bytes are not checked. A pad value larger than the buffer strips
// everything.
func Unpad(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	n := int(data[len(data)-1])
	if n > len(data) {
		n = len(data)
	}
	return data[:len(data)-n]
}
