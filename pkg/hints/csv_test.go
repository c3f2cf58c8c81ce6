// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_SkipsHeaderAndMapsByLevelID(t *testing.T) {
	csv := "rowid,level,h1,h2,h3,h4,notes\n" +
		"1,1,look up,check the door,try the attic,\"it's blue\",internal\n" +
		"2,2,under the rug,behind the clock,nothing,internal\n"

	rows := ParseCSV([]byte(csv))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"look up", "check the door", "try the attic", "it's blue"}, rows[1])
	assert.Equal(t, []string{"under the rug", "behind the clock", "nothing"}, rows[2])
}

func TestParseCSV_IgnoresBlankLines(t *testing.T) {
	csv := "rowid,level,h1,h2,notes\n\n1,1,a,b,notes\n\n"
	rows := ParseCSV([]byte(csv))
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a"}, rows[1])
}

func TestParseCSV_KeepsShortRowsWithEmptyHintFields(t *testing.T) {
	csv := "rowid,level,h1,notes\n1,1\n2,2,a,b,notes\n"
	rows := ParseCSV([]byte(csv))
	require.Len(t, rows, 2)
	assert.Empty(t, rows[1])
	assert.Equal(t, []string{"a", "b"}, rows[2])
}

func TestParseCSV_SkipsRowsWithNoLevelID(t *testing.T) {
	csv := "rowid,level,h1,notes\nonlyonefield\n2,2,a,b,notes\n"
	rows := ParseCSV([]byte(csv))
	require.Len(t, rows, 1)
	assert.Contains(t, rows, 2)
}

func TestParseCSV_EmptyInput(t *testing.T) {
	rows := ParseCSV([]byte(""))
	assert.Empty(t, rows)
}

func TestSplitHints_FewerThanThreeStaysAllPlain(t *testing.T) {
	plain, encrypted := SplitHints([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, plain)
	assert.Empty(t, encrypted)
}

func TestSplitHints_ExtraHintsGoToEncrypted(t *testing.T) {
	plain, encrypted := SplitHints([]string{"a", "b", "c", "d", "e"})
	assert.Equal(t, []string{"a", "b", "c"}, plain)
	assert.Equal(t, []string{"d", "e"}, encrypted)
}
