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

	"github.com/jeremyhahn/imagevault/pkg/aesgcm"
	"github.com/jeremyhahn/imagevault/pkg/imageio"
	"github.com/jeremyhahn/imagevault/pkg/kdf"
	"github.com/jeremyhahn/imagevault/pkg/keypair"
	"github.com/jeremyhahn/imagevault/pkg/phash"
)

const pbkdf2Iterations = 10000

// levelMaterial holds every value derived for a single level before the
// hint shares and thumbnail header are known, at which point it can be
// sealed into a LevelSecret.
type levelMaterial struct {
	index             int
	salt              []byte
	key               []byte
	encryptedLevelKey []byte
	privateJWK        []byte
	publicKeyDER      []byte
	thumbnail         []byte
}

// buildLevelMaterial runs spec §4.5 steps 1-6 for one level: derive the
// salt and key, hash the source image, derive the PBKDF2 encryption key,
// wrap the level key, export the private JWK, and render the thumbnail.
func buildLevelMaterial(
	gameRandomSalt string,
	index int,
	sourceImage image.Image,
	thumbnailSource image.Image,
	key keypair.VerificationKey,
	thumbnailer imageio.Thumbnailer,
) (*levelMaterial, error) {
	salt := levelSalt(gameRandomSalt, index)

	hash, err := phash.Hash(sourceImage)
	if err != nil {
		return nil, &ImageError{Path: levelImageLabel(index), Err: err}
	}

	encryptionKey, err := kdf.DeriveKey(hash, kdf.Params{
		Salt:       salt,
		Iterations: pbkdf2Iterations,
		KeyLength:  derivedKeyLength,
	})
	if err != nil {
		return nil, &CryptoError{Op: "pbkdf2", Err: err}
	}

	lk := levelKey(gameRandomSalt, index)

	encryptedLevelKey, err := aesgcm.Seal(encryptionKey, salt, lk)
	if err != nil {
		return nil, &CryptoError{Op: "wrap level key", Err: err}
	}

	jwk, err := keypair.ExportPrivateJWK(key)
	if err != nil {
		return nil, &KeyShapeError{Level: index, Size: len(jwk)}
	}

	thumb, err := thumbnailer.Thumbnail(thumbnailSource)
	if err != nil {
		return nil, &ImageError{Path: levelThumbnailLabel(index), Err: err}
	}

	return &levelMaterial{
		index:             index,
		salt:              salt,
		key:               lk,
		encryptedLevelKey: encryptedLevelKey,
		privateJWK:        jwk,
		publicKeyDER:      key.PublicKeyDER,
		thumbnail:         thumb,
	}, nil
}

// sealLevelSecret assembles LevelSecret[i] (spec §3: privateKeyJWK ∥ each
// HintShares[h][i] in ascending h ∥ the thumbnail with the shared header
// stripped) and AES-GCM-seals it under the level's own key and salt.
func (m *levelMaterial) sealLevelSecret(hintShares [][]byte, thumbnailHeader []byte) ([]byte, error) {
	tail := m.thumbnail[len(thumbnailHeader):]

	size := len(m.privateJWK) + len(tail)
	for _, s := range hintShares {
		size += len(s)
	}

	secret := make([]byte, 0, size)
	secret = append(secret, m.privateJWK...)
	for _, s := range hintShares {
		secret = append(secret, s...)
	}
	secret = append(secret, tail...)

	ciphertext, err := aesgcm.Seal(m.key, m.salt, secret)
	if err != nil {
		return nil, &CryptoError{Op: "seal level secret", Err: err}
	}

	data := make([]byte, 0, len(m.salt)+len(ciphertext))
	data = append(data, m.salt...)
	data = append(data, ciphertext...)
	return data, nil
}

func levelImageLabel(index int) string {
	return imageFileName(index)
}

func levelThumbnailLabel(index int) string {
	return thumbnailFileName(index)
}
