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

// Package aesgcm wraps AES-GCM with an explicit, caller-supplied
// nonce/IV rather than generating one internally.
//
// Every (key, iv) pair the bundle pipeline uses is derived deterministically
// so that rebuilding the bundle from the same inputs reproduces the same
// ciphertexts byte-for-byte (see pkg/bundle). That rules out the usual
// random-nonce AEAD wrapper: the caller owns IV derivation and is
// responsible for never reusing a (key, iv) pair across distinct
// plaintexts.
package aesgcm

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Seal encrypts plaintext with AES-GCM under key and iv, returning
// ciphertext with the 16-byte authentication tag appended. The nonce size
// is taken from len(iv) — the bundle pipeline uses 16-byte salts directly
// as IVs, rather than the conventional 12-byte GCM nonce.
func Seal(key, iv, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, len(iv))
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, iv, plaintext, nil), nil
}

// Open decrypts and authenticates ciphertext (with its trailing tag) with
// AES-GCM under key and iv.
func Open(key, iv, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key, len(iv))
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("aesgcm: authentication failed: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte, nonceSize int) (cipher.AEAD, error) {
	if nonceSize <= 0 {
		return nil, fmt.Errorf("aesgcm: iv cannot be empty")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aesgcm: invalid key: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("aesgcm: failed to initialize GCM: %w", err)
	}
	return gcm, nil
}
