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

// Package shamir implements Shamir's Secret Sharing over GF(2^8) for
// splitting an arbitrary-length secret into N shares, any K of which
// reconstruct it.
//
// Unlike a textbook implementation that shares a single field element, this
// package treats the secret as a bitstream: a single 1 bit is prepended to
// mark the true start of the data (so that leading zero bytes of the secret
// are preserved through reconstruction), the bitstream is padded with zero
// bits out to a byte boundary, and each resulting byte is shared
// independently as the intercept of its own degree-(k-1) polynomial over
// GF(2^8). The y values are packed into each share in reverse chunk order;
// Combine reverses the same packing before stripping the marker bit.
package shamir

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jeremyhahn/imagevault/pkg/gf256"
)

// pad prepends a single 1 bit to secret (as the high-order bit of an
// (len(secret)*8+1)-bit value) and pads with zero bits out to the next byte
// boundary. Because the secret is already byte-aligned, the pad is always
// exactly 7 bits, so the result is always len(secret)+1 bytes.
func pad(secret []byte) []byte {
	v := new(big.Int).SetBytes(secret)
	marker := new(big.Int).Lsh(big.NewInt(1), uint(len(secret)*8))
	v.Or(v, marker)
	v.Lsh(v, 7)

	out := make([]byte, len(secret)+1)
	v.FillBytes(out)
	return out
}

// unpad is the inverse of pad: it drops the 7 padding bits and the leading
// marker bit, returning exactly secretLen bytes.
func unpad(padded []byte, secretLen int) []byte {
	v := new(big.Int).SetBytes(padded)
	v.Rsh(v, 7)

	marker := new(big.Int).Lsh(big.NewInt(1), uint(secretLen*8))
	v.AndNot(v, marker)

	out := make([]byte, secretLen)
	v.FillBytes(out)
	return out
}

// Split divides secret into total shares, any threshold of which combine to
// reconstruct it. threshold and total must each be in [2, 255], and total
// must be >= threshold.
func Split(secret []byte, threshold, total int) ([]Share, error) {
	if threshold < 2 || threshold > 255 {
		return nil, fmt.Errorf("shamir: threshold must be in [2, 255], got %d", threshold)
	}
	if total < 2 || total > 255 {
		return nil, fmt.Errorf("shamir: total must be in [2, 255], got %d", total)
	}
	if total < threshold {
		return nil, fmt.Errorf("shamir: total (%d) must be >= threshold (%d)", total, threshold)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("shamir: secret cannot be empty")
	}

	chunks := pad(secret)
	tbl := gf256.Get()

	shares := make([][]byte, total)
	for i := range shares {
		shares[i] = make([]byte, 1+len(chunks))
		shares[i][0] = byte(i + 1)
	}

	for c, intercept := range chunks {
		coeffs, err := randomCoefficients(threshold - 1)
		if err != nil {
			return nil, fmt.Errorf("shamir: failed to generate polynomial: %w", err)
		}

		// y-bytes are packed in reverse chunk order: chunk 0 ends up at the
		// least-significant (last) position of the emitted y-bytes.
		pos := len(chunks) - c
		for i := 0; i < total; i++ {
			x := byte(i + 1)
			shares[i][pos] = evaluate(tbl, intercept, coeffs, x)
		}
	}

	out := make([]Share, total)
	for i, s := range shares {
		out[i] = Share(s)
	}
	return out, nil
}

// Combine reconstructs the original secret from at least threshold shares.
// secretLen is the length, in bytes, of the original secret.
func Combine(shares []Share, secretLen int) ([]byte, error) {
	if len(shares) < 2 {
		return nil, fmt.Errorf("shamir: need at least 2 shares, got %d", len(shares))
	}
	numChunks := secretLen + 1
	shareLen := 1 + numChunks

	xs := make([]byte, len(shares))
	seen := make(map[byte]bool, len(shares))
	for i, s := range shares {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("shamir: invalid share %d: %w", i, err)
		}
		if len(s) != shareLen {
			return nil, fmt.Errorf("shamir: share %d has length %d, want %d", i, len(s), shareLen)
		}
		x := s.Index()
		if seen[x] {
			return nil, fmt.Errorf("shamir: duplicate share index %d", x)
		}
		seen[x] = true
		xs[i] = x
	}

	tbl := gf256.Get()
	chunks := make([]byte, numChunks)
	ys := make([]byte, len(shares))

	for c := 0; c < numChunks; c++ {
		pos := numChunks - c
		for i, s := range shares {
			ys[i] = s[pos]
		}
		chunks[c] = interpolateAtZero(tbl, xs, ys)
	}

	return unpad(chunks, secretLen), nil
}

// randomCoefficients returns n cryptographically random field elements, used
// as the non-intercept coefficients of a sharing polynomial.
func randomCoefficients(n int) ([]byte, error) {
	coeffs := make([]byte, n)
	if _, err := rand.Read(coeffs); err != nil {
		return nil, err
	}
	return coeffs, nil
}

// evaluate computes P(x) for P(0)=intercept and the given higher-order
// coefficients (coeffs[0] is the x^1 term, coeffs[1] the x^2 term, ...)
// using Horner's method in GF(2^8).
func evaluate(tbl *gf256.Tables, intercept byte, coeffs []byte, x byte) byte {
	result := byte(0)
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = gf256.Add(tbl.Mul(result, x), coeffs[i])
	}
	return gf256.Add(tbl.Mul(result, x), intercept)
}

// interpolateAtZero performs Lagrange interpolation of the polynomial
// defined by (xs[i], ys[i]) at x=0, i.e. it recovers the intercept.
func interpolateAtZero(tbl *gf256.Tables, xs, ys []byte) byte {
	var result byte
	for i := range xs {
		basis := byte(1)
		for j := range xs {
			if i == j {
				continue
			}
			num := xs[j]                  // 0 - xs[j] == xs[j] in GF(2^8)
			denom := gf256.Add(xs[i], xs[j])
			basis = tbl.Mul(basis, tbl.Div(num, denom))
		}
		result = gf256.Add(result, tbl.Mul(ys[i], basis))
	}
	return result
}
