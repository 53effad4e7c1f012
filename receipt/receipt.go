// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package receipt

import (
	"crypto/rand"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"sync"
)

const (
	// CodeLength is the number of characters in a verification code
	CodeLength = 8

	// Alphabet holds the characters a code is drawn from
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrInvalidCode = errors.New("invalid verification code")

// GenerateCode creates a random verification code using crypto/rand.
// Each character is uniform over Alphabet.
func GenerateCode() (string, error) {
	// Largest multiple of len(Alphabet) that fits in a byte; bytes at or
	// above it are rejected so the modulo stays unbiased.
	const limit = 256 - 256%len(Alphabet)

	code := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength*2)
	for len(code) < CodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate verification code: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			code = append(code, Alphabet[int(b)%len(Alphabet)])
			if len(code) == CodeLength {
				break
			}
		}
	}
	return string(code), nil
}

// Validate checks that code has the shape of a verification code
func Validate(code string) error {
	if len(code) != CodeLength {
		return fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidCode, CodeLength, len(code))
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidCode, c)
		}
	}
	return nil
}

// Seeded produces a reproducible sequence of verification codes.
// Used for demos and tests; never for real elections.
type Seeded struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewCode returns the next code in the sequence
func (s *Seeded) NewCode() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := make([]byte, CodeLength)
	for i := range code {
		code[i] = Alphabet[s.rng.IntN(len(Alphabet))]
	}
	return string(code), nil
}
