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

// Package phash computes a perceptual gradient hash of an image, used as
// password material for the per-level key derivation in pkg/bundle.
//
// The hash frames the image to a centered 16:9 window, partitions that
// window into a 6x6 grid of overlapping sample patches (skipping the
// top-right cell, which the gradient comparisons never read), and encodes
// the row-wise and column-wise luminance gradients across the resulting 5x5
// interior as a fixed 18-byte digest.
package phash

import (
	"fmt"
	"image"
)

// Size is the length, in bytes, of a digest returned by Hash.
const Size = 18

const gridSize = 6

// Hash computes the 18-byte perceptual digest of img.
func Hash(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("phash: degenerate image dimensions %dx%d", w, h)
	}

	x0, y0, winW, winH := window(w, h)

	var gray [gridSize][gridSize]float64
	for cy := 0; cy < gridSize; cy++ {
		for cx := 0; cx < gridSize; cx++ {
			if cx == gridSize-1 && cy == 0 {
				continue // top-right cell is never read by the comparisons below
			}
			minX, minY, maxX, maxY := samplePatch(cx, cy, x0, y0, winW, winH)
			if maxX <= minX || maxY <= minY {
				return nil, fmt.Errorf("phash: degenerate sample patch for cell (%d,%d)", cx, cy)
			}
			gray[cx][cy] = averageLuminance(img, bounds, minX, minY, maxX, maxY)
		}
	}

	bits := make([]bool, 0, 50)

	// Horizontal pass: rows y=0..4, cols x=0..4, row-major.
	for y := 0; y < gridSize-1; y++ {
		for x := 0; x < gridSize-1; x++ {
			bits = append(bits, gray[x][y+1] < gray[x+1][y+1])
		}
	}

	// Vertical pass: cols x=0..4, rows y=0..4, col-major.
	for x := 0; x < gridSize-1; x++ {
		for y := 0; y < gridSize-1; y++ {
			bits = append(bits, gray[x][y] < gray[x][y+1])
		}
	}

	return packBits(bits), nil
}

// window computes the origin and dimensions of the centered 16:9 crop of a
// w x h image.
func window(w, h int) (x0, y0, winW, winH int) {
	if float64(w) > float64(h)*16.0/9.0 {
		winW = roundInt(float64(h) * 16.0 / 9.0)
		winH = h
	} else {
		winW = w
		winH = roundInt(float64(w) * 9.0 / 16.0)
	}
	x0 = (w - winW) / 2
	y0 = (h - winH) / 2
	return
}

// samplePatch returns the pixel bounds of cell (cx, cy)'s sample patch:
// the cell expanded by 25% of a cell's size in every direction, clamped to
// the window.
func samplePatch(cx, cy, x0, y0, winW, winH int) (minX, minY, maxX, maxY int) {
	cellW := float64(winW) / float64(gridSize)
	cellH := float64(winH) / float64(gridSize)

	cellMinX := float64(x0) + float64(cx)*cellW
	cellMinY := float64(y0) + float64(cy)*cellH
	cellMaxX := cellMinX + cellW
	cellMaxY := cellMinY + cellH

	expandX := cellW * 0.25
	expandY := cellH * 0.25

	winMinX, winMinY := float64(x0), float64(y0)
	winMaxX, winMaxY := float64(x0+winW), float64(y0+winH)

	minX = roundInt(clamp(cellMinX-expandX, winMinX, winMaxX))
	minY = roundInt(clamp(cellMinY-expandY, winMinY, winMaxY))
	maxX = roundInt(clamp(cellMaxX+expandX, winMinX, winMaxX))
	maxY = roundInt(clamp(cellMaxY+expandY, winMinY, winMaxY))
	return
}

// averageLuminance samples pixels in bounds [minX,maxX)x[minY,maxY) in a
// checkerboard pattern and returns the average weighted luminance
// (3R + 5G + B).
func averageLuminance(img image.Image, bounds image.Rectangle, minX, minY, maxX, maxY int) float64 {
	var sum float64
	var count int

	for y2 := minY; y2 < maxY; y2++ {
		start := minX + (y2 % 2)
		for x2 := start; x2 < maxX; x2 += 2 {
			r, g, b, _ := img.At(bounds.Min.X+x2, bounds.Min.Y+y2).RGBA()
			sum += 3*float64(r>>8) + 5*float64(g>>8) + float64(b>>8)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// packBits right-pads bits with zeros out to 144 bits (18 bytes) and packs
// them MSB-first.
func packBits(bits []bool) []byte {
	out := make([]byte, Size)
	for i, set := range bits {
		if !set {
			continue
		}
		byteIdx := i / 8
		bitIdx := 7 - (i % 8)
		out[byteIdx] |= 1 << bitIdx
	}
	return out
}

func roundInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
