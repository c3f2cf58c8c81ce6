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

// Package imageio defines the image decode/resize/encode collaborator
// interfaces the bundle pipeline depends on, and a stdlib-backed default
// implementation.
//
// Image decoding and thumbnail generation are treated as external
// collaborators by design: the bundle pipeline only needs a decoded
// image.Image and a 64x64 JPEG tail, not a particular codec. No
// third-party image library appears anywhere in the example pack this
// module was built from, so the default adapter here is deliberately
// stdlib-only — see DESIGN.md for the justification.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	// Registers the PNG decoder with image.Decode; image/jpeg above
	// registers the JPEG decoder as a side effect of its own import.
	_ "image/png"
)

// ThumbnailSize is the fixed width and height, in pixels, of every level
// thumbnail (spec data model: LevelThumbnail).
const ThumbnailSize = 64

// ThumbnailQuality is the JPEG quality factor used when encoding
// thumbnails. Fixed so that thumbnails of equal dimensions share header and
// quantization-table bytes, which pkg/bundle's thumbnail prefix factoring
// depends on.
const ThumbnailQuality = 50

// desaturation is the fraction, in [0,1], that each thumbnail pixel is
// blended toward its own luminance.
const desaturation = 0.25

// Decoder decodes image bytes into an image.Image.
type Decoder interface {
	Decode(data []byte) (image.Image, error)
}

// Thumbnailer produces the fixed-size, fixed-quality, partially
// desaturated JPEG thumbnail bytes for an image.
type Thumbnailer interface {
	Thumbnail(img image.Image) ([]byte, error)
}

// StdlibAdapter implements Decoder and Thumbnailer using only the standard
// library's image, image/jpeg, image/png and image/draw packages.
type StdlibAdapter struct{}

// NewStdlibAdapter constructs a StdlibAdapter.
func NewStdlibAdapter() *StdlibAdapter {
	return &StdlibAdapter{}
}

// Decode decodes PNG or JPEG bytes into an image.Image.
func (StdlibAdapter) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageio: failed to decode image: %w", err)
	}
	return img, nil
}

// Thumbnail resizes img to ThumbnailSize x ThumbnailSize, desaturates it by
// 25%, and JPEG-encodes the result at ThumbnailQuality.
func (StdlibAdapter) Thumbnail(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("imageio: degenerate image dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}

	resized := resize(img, ThumbnailSize, ThumbnailSize)
	desaturate(resized, desaturation)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: ThumbnailQuality}); err != nil {
		return nil, fmt.Errorf("imageio: failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// resize produces a w x h image by area-averaging each destination pixel
// over the corresponding source rectangle — deterministic box resampling
// with no external dependency.
func resize(src image.Image, w, h int) *image.RGBA {
	srcBounds := src.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, srcW, srcH))
	draw.Draw(rgba, rgba.Bounds(), src, srcBounds.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for dy := 0; dy < h; dy++ {
		sy0 := dy * srcH / h
		sy1 := (dy + 1) * srcH / h
		if sy1 <= sy0 {
			sy1 = sy0 + 1
		}
		for dx := 0; dx < w; dx++ {
			sx0 := dx * srcW / w
			sx1 := (dx + 1) * srcW / w
			if sx1 <= sx0 {
				sx1 = sx0 + 1
			}

			var r, g, b, a, count uint32
			for sy := sy0; sy < sy1 && sy < srcH; sy++ {
				for sx := sx0; sx < sx1 && sx < srcW; sx++ {
					c := rgba.RGBAAt(sx, sy)
					r += uint32(c.R)
					g += uint32(c.G)
					b += uint32(c.B)
					a += uint32(c.A)
					count++
				}
			}
			if count == 0 {
				count = 1
			}
			dst.SetRGBA(dx, dy, color.RGBA{
				R: uint8(r / count),
				G: uint8(g / count),
				B: uint8(b / count),
				A: uint8(a / count),
			})
		}
	}
	return dst
}

// desaturate blends each pixel toward its own luminance in place.
func desaturate(img *image.RGBA, fraction float64) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			gray := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)

			img.SetRGBA(x, y, color.RGBA{
				R: blend(c.R, gray, fraction),
				G: blend(c.G, gray, fraction),
				B: blend(c.B, gray, fraction),
				A: c.A,
			})
		}
	}
}

func blend(channel uint8, gray, fraction float64) uint8 {
	v := float64(channel)*(1-fraction) + gray*fraction
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}
