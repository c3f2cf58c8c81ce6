// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonPrefix_SharedHeader(t *testing.T) {
	a := []byte("HEADERaaaa")
	b := []byte("HEADERbbbb")
	c := []byte("HEADERcccc")

	prefix := commonPrefix([][]byte{a, b, c})
	assert.Equal(t, []byte("HEADER"), prefix)
}

func TestCommonPrefix_DisagreeAtFirstByte(t *testing.T) {
	prefix := commonPrefix([][]byte{{0x01, 0x02}, {0x09, 0x02}})
	assert.Empty(t, prefix)
	assert.NotNil(t, prefix)
}

func TestCommonPrefix_SingleThumbnail(t *testing.T) {
	prefix := commonPrefix([][]byte{{0xAA, 0xBB, 0xCC}})
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, prefix)
}

func TestCommonPrefix_CappedAt1000Bytes(t *testing.T) {
	a := make([]byte, 2000)
	b := make([]byte, 2000)
	prefix := commonPrefix([][]byte{a, b})
	assert.Len(t, prefix, thumbnailPrefixCap)
}

func TestCommonPrefix_Empty(t *testing.T) {
	prefix := commonPrefix(nil)
	assert.Empty(t, prefix)
	assert.NotNil(t, prefix)
}
