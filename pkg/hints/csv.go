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

// Package hints parses the per-language hint CSV and selects which hint
// strings stay in the clear versus which get Shamir-gated encryption.
//
// The CSV parser deliberately does not understand escaped quotes inside a
// quoted field. The sheets this reads are hand-maintained and controlled;
// upgrading to a fully RFC 4180 parser risks silently changing row counts
// against the client's own loader.
package hints

import (
	"context"
	"strconv"
	"strings"
)

// PlaintextHintCount is the number of leading hint strings per level that
// are always emitted unencrypted — free starting hints, never gated by a
// threshold regardless of configuration.
const PlaintextHintCount = 3

// Fetcher retrieves the raw CSV bytes for a language's hint sheet. Treated
// as an external collaborator: this package never dials out itself.
type Fetcher interface {
	Fetch(ctx context.Context, lang string) ([]byte, error)
}

// ParseCSV parses the hint sheet into a mapping of level id to its ordered
// hint strings. The first line is a header and is skipped. Each row's
// first column is ignored (row metadata), its second column is the level
// id, its last column is ignored (notes), and everything between is a
// hint string.
func ParseCSV(data []byte) map[int][]string {
	rows := map[int][]string{}

	lines := splitLines(string(data))
	if len(lines) <= 1 {
		return rows
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitCSVLine(line)
		if len(fields) < 2 {
			// No level id to key this row on at all; there's nothing
			// buildLevelHints could report a field count against.
			continue
		}

		levelID, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			continue
		}

		// A row may be present but short on hint fields — keep it (rather
		// than dropping it here) so the caller's "too few hint fields"
		// check reports the row's real field count. A row with no hint
		// fields at all carries a count of 0, which CSVShapeError reports
		// the same way as a missing row.
		upper := len(fields) - 1
		if upper < 2 {
			upper = 2
		}
		rows[levelID] = fields[2:upper]
	}

	return rows
}

// SplitHints separates a level's hint strings into the leading plaintext
// hints and the remainder destined for threshold-gated encryption.
func SplitHints(hintStrings []string) (plain, encrypted []string) {
	if len(hintStrings) <= PlaintextHintCount {
		return hintStrings, nil
	}
	return hintStrings[:PlaintextHintCount], hintStrings[PlaintextHintCount:]
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// splitCSVLine splits a single CSV row on commas, stripping surrounding
// double quotes from a field but not interpreting escaped quotes within
// one. This mirrors the source sheet's own loose parser rather than a
// strict RFC 4180 implementation.
func splitCSVLine(line string) []string {
	raw := strings.Split(line, ",")
	fields := make([]string, len(raw))
	for i, f := range raw {
		f = strings.TrimSpace(f)
		if len(f) >= 2 && strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`) {
			f = f[1 : len(f)-1]
		}
		fields[i] = f
	}
	return fields
}
