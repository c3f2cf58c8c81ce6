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
	"encoding/json"

	"github.com/jeremyhahn/imagevault/pkg/keypair"
)

// DefaultKeyCount is the number of key pairs generate-keys emits when the
// caller doesn't specify a count (spec §4.8).
const DefaultKeyCount = 30

// GenerateKeys produces n independent ECDSA P-256 key pairs (SPKI public,
// PKCS#8 private, both base64-encoded) and returns them as the compact
// JSON array spec §4.8 writes to stdout. n <= 0 falls back to
// DefaultKeyCount.
func GenerateKeys(n int) ([]byte, error) {
	if n <= 0 {
		n = DefaultKeyCount
	}

	records, err := keypair.GenerateN(n)
	if err != nil {
		return nil, &CryptoError{Op: "generate key pairs", Err: err}
	}

	return json.Marshal(records)
}
