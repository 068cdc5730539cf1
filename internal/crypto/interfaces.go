// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into salted, stretched digests.
// It knows nothing about storage or users; callers persist the salt and the
// digest side by side.
//
// Scheme:
//
//	Salt   = GenerateSalt()                    (16 random bytes)
//	Digest = Derive(password, Salt)            (PBKDF2-HMAC-SHA256, 32 bytes)
//	ok     = Verify(password, Salt, Digest)    (constant-time compare)
type PasswordHasher interface {
	// GenerateSalt returns 16 bytes from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// Derive stretches password with salt. The result is deterministic for a
	// given (password, salt) pair and the hasher's configuration.
	Derive(password string, salt []byte) []byte

	// Verify recomputes the digest for password and compares it with
	// expected in constant time.
	Verify(password string, salt, expected []byte) bool
}
