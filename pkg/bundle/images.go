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

package bundle

import (
	"image"
	"os"

	"github.com/jeremyhahn/imagevault/pkg/imageio"
)

// loadImage reads and decodes the image file at path, wrapping any
// failure as an ImageError naming the path.
func loadImage(decoder imageio.Decoder, path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}

	img, err := decoder.Decode(data)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	return img, nil
}
