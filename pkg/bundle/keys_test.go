// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKey_DeterministicAndFixedLength(t *testing.T) {
	a := levelSalt("my-salt", 0)
	b := levelSalt("my-salt", 0)
	assert.Equal(t, a, b)
	assert.Len(t, a, derivedKeyLength)
}

func TestDeriveKey_DistinctLabelsDiffer(t *testing.T) {
	salt := levelSalt("my-salt", 0)
	key := levelKey("my-salt", 0)
	assert.NotEqual(t, salt, key)
}

func TestDeriveKey_DistinctIndicesDiffer(t *testing.T) {
	a := levelSalt("my-salt", 0)
	b := levelSalt("my-salt", 1)
	assert.NotEqual(t, a, b)
}

func TestLanguageSalt_DistinctLanguagesDiffer(t *testing.T) {
	en := languageSalt("my-salt", "en")
	fr := languageSalt("my-salt", "fr")
	assert.NotEqual(t, en, fr)
}
