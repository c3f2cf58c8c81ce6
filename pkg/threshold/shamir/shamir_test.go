// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package shamir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allSubsets(n, k int) [][]int {
	var out [][]int
	var pick func(start int, cur []int)
	pick = func(start int, cur []int) {
		if len(cur) == k {
			out = append(out, append([]int{}, cur...))
			return
		}
		for i := start; i < n; i++ {
			pick(i+1, append(cur, i))
		}
	}
	pick(0, nil)
	return out
}

func TestSplit_BasicShape(t *testing.T) {
	secret := []byte("This is a secret message!")
	threshold, total := 3, 5

	shares, err := Split(secret, threshold, total)
	require.NoError(t, err)
	require.Len(t, shares, total)

	for i, s := range shares {
		assert.Equal(t, byte(i+1), s.Index())
		assert.NoError(t, s.Validate())
		assert.Len(t, s, len(secret)+2)
	}
}

func TestCombine_ExactThreshold(t *testing.T) {
	secret := []byte("Secret key data 12345")
	threshold, total := 3, 5

	shares, err := Split(secret, threshold, total)
	require.NoError(t, err)

	reconstructed, err := Combine([]Share{shares[0], shares[2], shares[4]}, len(secret))
	require.NoError(t, err)
	assert.Equal(t, secret, reconstructed)
}

func TestCombine_MoreThanThreshold(t *testing.T) {
	secret := []byte("Another secret message")
	threshold, total := 3, 5

	shares, err := Split(secret, threshold, total)
	require.NoError(t, err)

	reconstructed, err := Combine(shares, len(secret))
	require.NoError(t, err)
	assert.Equal(t, secret, reconstructed)
}

func TestCombine_AllSubsetsOfThreshold(t *testing.T) {
	secret := []byte{0x42}
	threshold, total := 3, 5

	shares, err := Split(secret, threshold, total)
	require.NoError(t, err)

	for _, idxs := range allSubsets(total, threshold) {
		subset := make([]Share, 0, threshold)
		for _, idx := range idxs {
			subset = append(subset, shares[idx])
		}
		reconstructed, err := Combine(subset, len(secret))
		require.NoError(t, err)
		assert.Equal(t, secret, reconstructed)
	}
}

func TestCombine_SingleZeroByte(t *testing.T) {
	secret := []byte{0x00}
	shares, err := Split(secret, 2, 3)
	require.NoError(t, err)

	reconstructed, err := Combine([]Share{shares[0], shares[1]}, len(secret))
	require.NoError(t, err)
	assert.Equal(t, secret, reconstructed)
}

func TestCombine_LeadingZeroBytesPreserved(t *testing.T) {
	secret := []byte{0x00, 0x00, 0x01}
	shares, err := Split(secret, 3, 5)
	require.NoError(t, err)

	reconstructed, err := Combine([]Share{shares[0], shares[1], shares[2]}, len(secret))
	require.NoError(t, err)
	assert.Equal(t, secret, reconstructed)
}

func TestCombine_FewerThanThresholdDoesNotLeakSecret(t *testing.T) {
	secret := []byte{0x42}
	shares, err := Split(secret, 3, 5)
	require.NoError(t, err)

	reconstructed, err := Combine([]Share{shares[0], shares[1]}, len(secret))
	require.NoError(t, err)
	assert.NotEqual(t, secret, reconstructed)
}

func TestSplit_InvalidParameters(t *testing.T) {
	secret := []byte("secret")

	_, err := Split(secret, 1, 5)
	assert.Error(t, err)

	_, err = Split(secret, 5, 3)
	assert.Error(t, err)

	_, err = Split(secret, 2, 256)
	assert.Error(t, err)

	_, err = Split(nil, 2, 5)
	assert.Error(t, err)
}

func TestCombine_RequiresAtLeastTwoShares(t *testing.T) {
	secret := []byte("secret")
	shares, err := Split(secret, 2, 3)
	require.NoError(t, err)

	_, err = Combine(shares[:1], len(secret))
	assert.Error(t, err)
}

func TestCombine_DuplicateIndexRejected(t *testing.T) {
	secret := []byte("secret")
	shares, err := Split(secret, 2, 3)
	require.NoError(t, err)

	_, err = Combine([]Share{shares[0], shares[0]}, len(secret))
	assert.Error(t, err)
}
