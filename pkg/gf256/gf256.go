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

// Package gf256 implements arithmetic over the Galois field GF(2^8) used by
// the Shamir secret sharing scheme in pkg/threshold/shamir.
//
// The field is generated by the primitive polynomial x^8 + x^4 + x^3 + x^2 + 1
// (0x1D, commonly written as 29 once the leading term is dropped). Exponent
// and logarithm tables are built once, lazily, and reused for every
// multiplication, division and inverse for the lifetime of the process.
package gf256

import "sync"

const primitive = 0x1D

// Tables holds the exponent/logarithm lookup tables for GF(2^8).
type Tables struct {
	exp [256]byte // exp[i] = generator^i
	log [256]byte // log[generator^i] = i, log[0] is unused
}

var (
	tablesOnce sync.Once
	tables     Tables
)

// Get returns the process-wide GF(2^8) tables, building them on first use.
func Get() *Tables {
	tablesOnce.Do(buildTables)
	return &tables
}

func buildTables() {
	x := 1
	for i := 0; i < 255; i++ {
		tables.exp[i] = byte(x)
		tables.log[byte(x)] = byte(i)

		x <<= 1
		if x&0x100 != 0 {
			x ^= 0x100 | primitive
		}
	}
	// exp[255] closes the cycle back to exp[0] (generator^255 == 1).
	tables.exp[255] = tables.exp[0]
}

// Add returns a+b in GF(2^8), which is simply XOR. Also usable for
// subtraction since addition is its own inverse in this field.
func Add(a, b byte) byte {
	return a ^ b
}

// Mul returns a*b in GF(2^8) using the exponent/logarithm tables.
func (t *Tables) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(t.log[a]) + int(t.log[b])
	if sum >= 255 {
		sum -= 255
	}
	return t.exp[sum]
}

// Div returns a/b in GF(2^8). b must be non-zero.
func (t *Tables) Div(a, b byte) byte {
	if b == 0 {
		panic("gf256: division by zero")
	}
	if a == 0 {
		return 0
	}
	diff := int(t.log[a]) - int(t.log[b])
	if diff < 0 {
		diff += 255
	}
	return t.exp[diff]
}

// Pow returns g^power in GF(2^8) for the field's generator g.
func (t *Tables) Pow(power int) byte {
	power %= 255
	if power < 0 {
		power += 255
	}
	return t.exp[power]
}

// Log returns the discrete logarithm of a non-zero element.
func (t *Tables) Log(a byte) byte {
	if a == 0 {
		panic("gf256: log of zero is undefined")
	}
	return t.log[a]
}
