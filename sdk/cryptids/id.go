// Package cryptids generates random identifiers from crypto/rand.
package cryptids

import (
	"crypto/rand"
	"fmt"
)

var (
	IDAlphabet = "bcdfghjklmnpqrstvwxyZBCDFGHJKLMNPQRSTVWXYZ0123456789"
	IDLength   = 18

	HexAlphabet = "0123456789abcdef"
)

// GenerateID creates a random string from the default alphabet and length.
func GenerateID() (string, error) {
	return generateID(IDAlphabet, IDLength)
}

// GenerateCustomID creates a random string of size characters drawn from alphabet.
func GenerateCustomID(alphabet string, size int) (string, error) {
	return generateID(alphabet, size)
}

// GenerateHex creates a random lowercase hex string of size characters.
func GenerateHex(size int) (string, error) {
	return generateID(HexAlphabet, size)
}

func generateID(alphabet string, size int) (string, error) {
	if len(alphabet) < 2 || len(alphabet) > 256 {
		return "", fmt.Errorf("alphabet must contain between 2 and 256 characters")
	}
	if size < 1 {
		return "", fmt.Errorf("size must be at least 1")
	}

	// smallest all-ones mask covering the alphabet; bytes past the
	// alphabet are rejected so every character stays equally likely
	mask := 1
	for mask < len(alphabet)-1 {
		mask = (mask << 1) | 1
	}

	step := size + size/2 + 1
	id := make([]byte, 0, size)
	buf := make([]byte, step)

	for len(id) < size {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			idx := int(b) & mask
			if idx >= len(alphabet) {
				continue
			}
			id = append(id, alphabet[idx])
			if len(id) == size {
				break
			}
		}
	}

	return string(id), nil
}
