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

import "fmt"

// ImageError reports a source or thumbnail image that could not be
// decoded, or whose dimensions are degenerate.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("bundle: image %s: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// CryptoError wraps an unexpected failure from a cryptographic primitive
// (PBKDF2, AES-GCM, Shamir). These indicate an environment bug, not bad
// input, since every primitive here is called with fixed-size arguments
// validated ahead of time.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("bundle: crypto operation %s failed: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// KeyShapeError reports that a level's serialized private JWK is not
// exactly the byte length the client decryptor expects.
type KeyShapeError struct {
	Level int
	Size  int
}

func (e *KeyShapeError) Error() string {
	return fmt.Sprintf("bundle: level %d private JWK is %d bytes, want 206", e.Level, e.Size)
}

// TemplateError reports that an HTML template's game-data placeholder is
// missing or appears more than once.
type TemplateError struct {
	Lang   string
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("bundle: template for %s: %s", e.Lang, e.Reason)
}
