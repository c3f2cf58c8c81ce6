// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables_ExpLogCycle(t *testing.T) {
	tbl := Get()

	assert.Equal(t, byte(1), tbl.exp[0])
	assert.Equal(t, byte(29), tbl.exp[8])
	assert.Equal(t, byte(1), tbl.exp[255])

	for i := 0; i < 255; i++ {
		assert.Equal(t, byte(i), tbl.log[tbl.exp[i]])
	}
}

func TestMulDivInverse(t *testing.T) {
	tbl := Get()

	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			product := tbl.Mul(byte(a), byte(b))
			assert.Equal(t, byte(a), tbl.Div(product, byte(b)))
		}
	}
}

func TestMul_ZeroIsAbsorbing(t *testing.T) {
	tbl := Get()
	assert.Equal(t, byte(0), tbl.Mul(0, 200))
	assert.Equal(t, byte(0), tbl.Mul(200, 0))
}

func TestAdd_IsXor(t *testing.T) {
	assert.Equal(t, byte(0x0), Add(0xFF, 0xFF))
	assert.Equal(t, byte(0xFF), Add(0x00, 0xFF))
}
