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

// Package keypair loads and generates the ECDSA P-256 verification key
// pairs that back each level's signature scheme, and exports private keys
// in the canonical JWK byte layout the client decryptor expects.
package keypair

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"fmt"
)

// Record is a single {publicKey, privateKey} entry as read from
// data/data-keys.json: base64-encoded SPKI and PKCS#8 DER respectively.
type Record struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// VerificationKey is a decoded level key pair: an SPKI public key emitted
// verbatim into the bundle, and the parsed private key used only to derive
// the level's canonical JWK.
type VerificationKey struct {
	PublicKeyDER []byte
	PrivateKey   *ecdsa.PrivateKey
}

// Load decodes records into VerificationKeys, requiring at least n entries.
func Load(records []Record, n int) ([]VerificationKey, error) {
	if len(records) < n {
		return nil, fmt.Errorf("keypair: need at least %d verification keys, got %d", n, len(records))
	}

	keys := make([]VerificationKey, n)
	for i := 0; i < n; i++ {
		pubDER, err := base64.StdEncoding.DecodeString(records[i].PublicKey)
		if err != nil {
			return nil, fmt.Errorf("keypair: level %d: failed to decode public key: %w", i, err)
		}

		privDER, err := base64.StdEncoding.DecodeString(records[i].PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("keypair: level %d: failed to decode private key: %w", i, err)
		}

		priv, err := x509.ParsePKCS8PrivateKey(privDER)
		if err != nil {
			return nil, fmt.Errorf("keypair: level %d: failed to parse PKCS#8 private key: %w", i, err)
		}

		ecKey, ok := priv.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("keypair: level %d: private key is %T, not ECDSA", i, priv)
		}
		if ecKey.Curve != elliptic.P256() {
			return nil, fmt.Errorf("keypair: level %d: private key is not on P-256", i)
		}

		keys[i] = VerificationKey{
			PublicKeyDER: pubDER,
			PrivateKey:   ecKey,
		}
	}

	return keys, nil
}

// Generate creates a new ECDSA P-256 key pair from a CSPRNG and returns it
// as a base64-encoded Record (SPKI public, PKCS#8 private).
func Generate() (Record, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return Record{}, fmt.Errorf("keypair: failed to generate key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return Record{}, fmt.Errorf("keypair: failed to marshal public key: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return Record{}, fmt.Errorf("keypair: failed to marshal private key: %w", err)
	}

	return Record{
		PublicKey:  base64.StdEncoding.EncodeToString(pubDER),
		PrivateKey: base64.StdEncoding.EncodeToString(privDER),
	}, nil
}

// GenerateN creates n independent key pairs.
func GenerateN(n int) ([]Record, error) {
	records := make([]Record, n)
	for i := 0; i < n; i++ {
		rec, err := Generate()
		if err != nil {
			return nil, fmt.Errorf("keypair: failed to generate key %d: %w", i, err)
		}
		records[i] = rec
	}
	return records, nil
}
