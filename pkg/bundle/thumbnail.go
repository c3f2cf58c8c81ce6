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

// thumbnailPrefixCap bounds how many leading bytes commonPrefix will ever
// compare, so a pathological input can't turn bundle assembly into an
// O(n * thumbnailSize) scan with no ceiling.
const thumbnailPrefixCap = 1000

// commonPrefix returns the longest byte prefix shared by every thumbnail,
// capped at thumbnailPrefixCap. If thumbnails disagree at byte 0 the
// result is an empty, non-nil slice — a zero-length prefix is a valid
// outcome, not an error.
func commonPrefix(thumbnails [][]byte) []byte {
	if len(thumbnails) == 0 {
		return []byte{}
	}

	first := thumbnails[0]
	limit := len(first)
	if limit > thumbnailPrefixCap {
		limit = thumbnailPrefixCap
	}

	t := 0
	for t < limit {
		match := true
		for _, th := range thumbnails[1:] {
			if t >= len(th) || th[t] != first[t] {
				match = false
				break
			}
		}
		if !match {
			break
		}
		t++
	}

	return append([]byte{}, first[:t]...)
}
