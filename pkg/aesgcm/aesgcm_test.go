// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package aesgcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip16ByteIV(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range iv {
		iv[i] = byte(255 - i)
	}
	plaintext := []byte("0123456789abcdef")

	ciphertext, err := Seal(key, iv, plaintext)
	require.NoError(t, err)
	assert.Len(t, ciphertext, len(plaintext)+16)

	recovered, err := Open(key, iv, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

func TestSeal_DeterministicForFixedIV(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	plaintext := []byte("deterministic ciphertext for a fixed key and iv")

	a, err := Seal(key, iv, plaintext)
	require.NoError(t, err)
	b, err := Seal(key, iv, plaintext)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestOpen_RejectsTamperedCiphertext(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	ciphertext, err := Seal(key, iv, []byte("secret"))
	require.NoError(t, err)

	ciphertext[0] ^= 0xFF
	_, err = Open(key, iv, ciphertext)
	assert.Error(t, err)
}

func TestSeal_RejectsEmptyIV(t *testing.T) {
	key := make([]byte, 16)
	_, err := Seal(key, nil, []byte("secret"))
	assert.Error(t, err)
}
