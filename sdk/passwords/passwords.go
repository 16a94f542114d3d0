// Package passwords hashes and verifies user passwords with bcrypt.
//
// bcrypt reads at most 72 bytes, so plain passwords are reduced to a base64
// SHA-256 digest first and any length is accepted.
package passwords

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("password does not match")

// Cost is the bcrypt work factor used for new hashes.
var Cost = bcrypt.DefaultCost

// Hash derives a bcrypt hash from plain.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports ErrMismatch when plain does not produce hash.
func Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), digest(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("compare password: %w", err)
}

func digest(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
