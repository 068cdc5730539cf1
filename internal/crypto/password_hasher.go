// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 round count used when none is configured.
	DefaultIterations = 600_000
	// MinIterations is the lowest round count NewPasswordHasher accepts.
	MinIterations = 100_000

	SaltSize   = 16
	DigestSize = 32
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	iterations int
	// pepper keys the password with HMAC-SHA256 before stretching when set.
	pepper string
}

// NewPasswordHasher constructs a [PasswordHasher] running PBKDF2-HMAC-SHA256
// with the given round count. Counts below [MinIterations] are raised to
// [DefaultIterations]. An empty pepper disables pre-keying.
func NewPasswordHasher(iterations int, pepper string) PasswordHasher {
	if iterations < MinIterations {
		iterations = DefaultIterations
	}

	return &passwordHasher{
		iterations: iterations,
		pepper:     pepper,
	}
}

// GenerateSalt implements [PasswordHasher].
func (p *passwordHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Derive implements [PasswordHasher].
func (p *passwordHasher) Derive(password string, salt []byte) []byte {
	return pbkdf2.Key(p.keyed(password), salt, p.iterations, DigestSize, sha256.New)
}

// Verify implements [PasswordHasher].
func (p *passwordHasher) Verify(password string, salt, expected []byte) bool {
	actual := p.Derive(password, salt)
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

func (p *passwordHasher) keyed(password string) []byte {
	if p.pepper == "" {
		return []byte(password)
	}
	return utils.HashBytes([]byte(password), p.pepper)
}
