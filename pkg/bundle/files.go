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
	"fmt"
	"path/filepath"
)

// imageFileName returns the source image filename for the level at the
// given zero-based index (spec §6: data/<i>.png for i=1..levelCount).
func imageFileName(index int) string {
	return fmt.Sprintf("%d.png", index+1)
}

// thumbnailFileName returns the thumbnail source filename for the level
// at the given zero-based index (spec §6: data/<i>_thumb.png).
func thumbnailFileName(index int) string {
	return fmt.Sprintf("%d_thumb.png", index+1)
}

// templateFileName returns the HTML template filename for a language
// (spec §6: base-html/index-<lang>.html).
func templateFileName(lang string) string {
	return fmt.Sprintf("index-%s.html", lang)
}

// outputFileName returns the generated HTML output filename for a
// language (spec §6: generated-html/index-<lang>.html).
func outputFileName(lang string) string {
	return fmt.Sprintf("index-%s.html", lang)
}

func joinDataPath(dataDir, name string) string {
	return filepath.Join(dataDir, name)
}
