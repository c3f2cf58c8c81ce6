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
	"encoding/base64"
	"encoding/json"
)

// LevelEntry is one level's contribution to GameData[lang] (spec §3).
// Hints mixes plaintext strings with base64-encoded ciphertexts in a
// fixed order: the client knows the first three are always plaintext.
type LevelEntry struct {
	Key       string   `json:"key"`
	Data      string   `json:"data"`
	Hints     []string `json:"hints"`
	PublicKey string   `json:"publicKey"`
}

// GameData is the per-language bundle embedded in the built HTML page.
type GameData struct {
	Levels          []LevelEntry `json:"levels"`
	HintThresholds  []int        `json:"hintThresholds"`
	HintSalt        string       `json:"hintSalt"`
	ThumbnailHeader string       `json:"thumbnailHeader"`
	UnlockedLevels  int          `json:"unlockedLevels"`
}

// buildLevelEntry assembles one LevelEntry, base64-encoding every byte
// field and appending each encrypted hint as a base64 string after the
// plaintext ones.
func buildLevelEntry(m *levelMaterial, lh *levelHints) LevelEntry {
	hintStrings := make([]string, 0, len(lh.plain)+len(lh.encrypted))
	hintStrings = append(hintStrings, lh.plain...)
	for _, ct := range lh.encrypted {
		hintStrings = append(hintStrings, base64.StdEncoding.EncodeToString(ct))
	}

	return LevelEntry{
		Key:       base64.StdEncoding.EncodeToString(m.encryptedLevelKey),
		Data:      "", // filled in by the caller once the level secret is sealed
		Hints:     hintStrings,
		PublicKey: base64.StdEncoding.EncodeToString(m.publicKeyDER),
	}
}

// marshalGameData serializes GameData as compact JSON, matching the
// single-line embedding spec §4.7 substitutes into the template
// placeholder.
func marshalGameData(data GameData) ([]byte, error) {
	return json.Marshal(data)
}
