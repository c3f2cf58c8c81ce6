// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.

package bundle

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/imagevault/pkg/imageio"
	"github.com/jeremyhahn/imagevault/pkg/keypair"
)

func gradientRGBA(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255,
			})
		}
	}
	return img
}

func TestBuildLevelMaterial_ProducesFixedShapeOutputs(t *testing.T) {
	rec, err := keypair.Generate()
	require.NoError(t, err)
	keys, err := keypair.Load([]keypair.Record{rec}, 1)
	require.NoError(t, err)

	adapter := imageio.NewStdlibAdapter()
	src := gradientRGBA(320, 240)
	thumbSrc := gradientRGBA(100, 100)

	m, err := buildLevelMaterial("salt", 0, src, thumbSrc, keys[0], adapter)
	require.NoError(t, err)

	assert.Len(t, m.salt, 16)
	assert.Len(t, m.key, 16)
	assert.Len(t, m.encryptedLevelKey, 32) // 16-byte ciphertext + 16-byte tag
	assert.Len(t, m.privateJWK, 206)
	assert.NotEmpty(t, m.thumbnail)
}

func TestSealLevelSecret_EmbedsSaltAndGrowsByTag(t *testing.T) {
	rec, err := keypair.Generate()
	require.NoError(t, err)
	keys, err := keypair.Load([]keypair.Record{rec}, 1)
	require.NoError(t, err)

	adapter := imageio.NewStdlibAdapter()
	m, err := buildLevelMaterial("salt", 0, gradientRGBA(320, 240), gradientRGBA(100, 100), keys[0], adapter)
	require.NoError(t, err)

	hintShares := [][]byte{make([]byte, 17)}
	header := m.thumbnail[:4]

	data, err := m.sealLevelSecret(hintShares, header)
	require.NoError(t, err)

	plaintextLen := 206 + 17 + (len(m.thumbnail) - len(header))
	assert.Len(t, data, 16+plaintextLen+16)
	assert.Equal(t, m.salt, data[:16])
}
