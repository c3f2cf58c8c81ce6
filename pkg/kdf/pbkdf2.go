// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.
//
// imagevault is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package kdf derives symmetric keys from the image hashes used as password
// material by the level crypto pipeline in pkg/bundle.
package kdf

import (
	"crypto/sha1" //nolint:gosec // required for bit-for-bit compatibility with the client's PBKDF2-HMAC-SHA1 derivation
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Params configures a PBKDF2 derivation.
type Params struct {
	// Salt is the per-level salt used as the PBKDF2 salt.
	Salt []byte

	// Iterations is the PBKDF2 iteration count.
	Iterations int

	// KeyLength is the desired derived key length in bytes.
	KeyLength int
}

// DeriveKey derives a key from ikm (the perceptual image hash) using
// PBKDF2-HMAC-SHA1, matching the client decryptor's KDF exactly.
func DeriveKey(ikm []byte, params Params) ([]byte, error) {
	if len(ikm) == 0 {
		return nil, fmt.Errorf("kdf: input key material cannot be empty")
	}
	if len(params.Salt) == 0 {
		return nil, fmt.Errorf("kdf: salt cannot be empty")
	}
	if params.Iterations <= 0 {
		return nil, fmt.Errorf("kdf: iterations must be positive, got %d", params.Iterations)
	}
	if params.KeyLength <= 0 {
		return nil, fmt.Errorf("kdf: key length must be positive, got %d", params.KeyLength)
	}

	return pbkdf2.Key(ikm, params.Salt, params.Iterations, params.KeyLength, sha1.New), nil
}
