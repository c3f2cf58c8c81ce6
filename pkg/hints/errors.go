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

package hints

import "fmt"

// FetchError wraps a failure to retrieve a language's hint CSV.
type FetchError struct {
	Lang string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("hints: fetch %s: %v", e.Lang, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CSVShapeError reports that a level's hint row is missing entirely or
// does not carry enough hint fields.
type CSVShapeError struct {
	Lang    string
	LevelID int
	Have    int
}

func (e *CSVShapeError) Error() string {
	if e.Have == 0 {
		return fmt.Sprintf("hints: %s: level %d has no hint row", e.Lang, e.LevelID)
	}
	return fmt.Sprintf("hints: %s: level %d has %d hint fields, need at least 3", e.Lang, e.LevelID, e.Have)
}
