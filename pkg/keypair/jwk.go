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

package keypair

import (
	"encoding/base64"
	"fmt"
)

// PrivateJWKSize is the exact byte length every canonical private JWK must
// serialize to. The client's companion decryptor parses HintShares and the
// thumbnail tail out of LevelSecret at this fixed offset, with no length
// prefix, so any deviation is fatal (spec invariant I2).
const PrivateJWKSize = 206

// fieldSize is the byte width of a P-256 field element; a left-padded,
// fixed-width encoding is required so D, X and Y always base64url-encode to
// exactly 43 characters.
const fieldSize = 32

// ExportPrivateJWK serializes the private key's EC JWK in the exact compact
// form and field order a WebCrypto runtime produces when it exports the
// same key material: {crv, d, ext, key_ops, kty, x, y}, alphabetically
// ordered, with no extraneous whitespace.
func ExportPrivateJWK(key VerificationKey) ([]byte, error) {
	priv := key.PrivateKey

	d := leftPad(priv.D.Bytes())
	x := leftPad(priv.X.Bytes())
	y := leftPad(priv.Y.Bytes())

	out := fmt.Sprintf(
		`{"crv":"P-256","d":"%s","ext":true,"key_ops":["sign"],"kty":"EC","x":"%s","y":"%s"}`,
		base64.RawURLEncoding.EncodeToString(d),
		base64.RawURLEncoding.EncodeToString(x),
		base64.RawURLEncoding.EncodeToString(y),
	)

	if len(out) != PrivateJWKSize {
		return nil, fmt.Errorf("keypair: canonical private JWK is %d bytes, want %d", len(out), PrivateJWKSize)
	}
	return []byte(out), nil
}

func leftPad(b []byte) []byte {
	if len(b) >= fieldSize {
		return b[len(b)-fieldSize:]
	}
	out := make([]byte, fieldSize)
	copy(out[fieldSize-len(b):], b)
	return out
}
