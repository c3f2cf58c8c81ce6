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

// Package bundle implements the cryptographic bundle builder: the
// per-level key hierarchy, the hint encryption pipeline, thumbnail prefix
// factoring, and the JSON/HTML assembly that ties them together.
package bundle

import (
	"crypto/sha512"
	"strconv"
)

// derivedKeyLength is the byte length of every key and salt derived from
// gameRandomSalt (spec invariant: SHA-512, first 16 bytes).
const derivedKeyLength = 16

// deriveKey computes SHA-512(gameRandomSalt + label + suffix) and returns
// its first 16 bytes. Every deterministic key and salt in the pipeline
// goes through this one function so that identical inputs always yield
// identical outputs.
func deriveKey(gameRandomSalt, label, suffix string) []byte {
	sum := sha512.Sum512([]byte(gameRandomSalt + label + suffix))
	out := make([]byte, derivedKeyLength)
	copy(out, sum[:derivedKeyLength])
	return out
}

// levelSalt is the 16-byte IV used both to wrap a level's LevelKey and,
// independently, as the IV for the level's encrypted secret blob.
func levelSalt(gameRandomSalt string, level int) []byte {
	return deriveKey(gameRandomSalt, "-salt-", strconv.Itoa(level))
}

// levelKey is the 16-byte AES-GCM key that wraps a level's secret blob.
func levelKey(gameRandomSalt string, level int) []byte {
	return deriveKey(gameRandomSalt, "-key-", strconv.Itoa(level))
}

// hintKey is the 16-byte AES-GCM key gating a hint-unlock threshold, split
// across levels via Shamir Secret Sharing.
func hintKey(gameRandomSalt string, thresholdIndex int) []byte {
	return deriveKey(gameRandomSalt, "-hint-", strconv.Itoa(thresholdIndex))
}

// languageSalt is the 16-byte value mixed into every hint's AES-GCM IV for
// a given language, alongside that level's levelSalt.
func languageSalt(gameRandomSalt, lang string) []byte {
	return deriveKey(gameRandomSalt, "-language-", lang)
}
