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
	"github.com/jeremyhahn/imagevault/pkg/aesgcm"
	"github.com/jeremyhahn/imagevault/pkg/hints"
	"github.com/jeremyhahn/imagevault/pkg/threshold/shamir"
)

// hintSetup holds every hint-unlock key and its Shamir shares, one per
// configured threshold, indexed by level position.
type hintSetup struct {
	keys   [][]byte
	shares [][]shamir.Share
}

// buildHintSetup derives each HintKey[h] and splits it (n=levelCount,
// k=hintThresholds[h]) so that share j is assigned to level j.
func buildHintSetup(gameRandomSalt string, hintThresholds []int, levelCount int) (*hintSetup, error) {
	keys := make([][]byte, len(hintThresholds))
	shares := make([][]shamir.Share, len(hintThresholds))

	for h, k := range hintThresholds {
		keys[h] = hintKey(gameRandomSalt, h)

		s, err := shamir.Split(keys[h], k, levelCount)
		if err != nil {
			return nil, &CryptoError{Op: "split hint key", Err: err}
		}
		shares[h] = s
	}

	return &hintSetup{keys: keys, shares: shares}, nil
}

// sharesForLevel returns, in ascending threshold order, the y-byte
// portion of each HintShares[h][i] for the level at the given index. The
// leading index byte is dropped: the client recovers a share's x
// coordinate from the level's own position, so it is never embedded.
func (h *hintSetup) sharesForLevel(index int) [][]byte {
	out := make([][]byte, len(h.shares))
	for i, shareSet := range h.shares {
		out[i] = []byte(shareSet[index])[1:]
	}
	return out
}

// levelHints is one level's hint strings split into the leading plaintext
// hints and the AES-GCM ciphertexts for everything past them.
type levelHints struct {
	plain     []string
	encrypted [][]byte
}

// buildLevelHints encrypts a level's gated hint strings with the setup's
// HintKeys, truncating if there are more encryptable hints than HintKeys
// (a logged warning, not a fatal error per spec §7).
func buildLevelHints(setup *hintSetup, lang string, levelID int, rows map[int][]string, languageSaltBytes []byte, levelSaltBytes []byte) (*levelHints, int, error) {
	strs, ok := rows[levelID]
	if !ok {
		return nil, 0, &hints.CSVShapeError{Lang: lang, LevelID: levelID, Have: 0}
	}
	if len(strs) < 3 {
		return nil, 0, &hints.CSVShapeError{Lang: lang, LevelID: levelID, Have: len(strs)}
	}

	plain, toEncrypt := hints.SplitHints(strs)

	n := len(toEncrypt)
	truncated := 0
	if n > len(setup.keys) {
		truncated = n - len(setup.keys)
		n = len(setup.keys)
	}

	iv := make([]byte, 0, len(languageSaltBytes)+len(levelSaltBytes))
	iv = append(iv, languageSaltBytes...)
	iv = append(iv, levelSaltBytes...)

	encrypted := make([][]byte, n)
	for i := 0; i < n; i++ {
		ct, err := aesgcm.Seal(setup.keys[i], iv, []byte(toEncrypt[i]))
		if err != nil {
			return nil, 0, &CryptoError{Op: "encrypt hint", Err: err}
		}
		encrypted[i] = ct
	}

	return &levelHints{plain: plain, encrypted: encrypted}, truncated, nil
}
