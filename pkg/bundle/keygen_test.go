// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package bundle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeys_DefaultCount(t *testing.T) {
	out, err := GenerateKeys(0)
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(out, &records))
	assert.Len(t, records, DefaultKeyCount)
}

func TestGenerateKeys_ExplicitCount(t *testing.T) {
	out, err := GenerateKeys(5)
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(out, &records))
	assert.Len(t, records, 5)
	for _, r := range records {
		assert.NotEmpty(t, r["publicKey"])
		assert.NotEmpty(t, r["privateKey"])
	}
}
