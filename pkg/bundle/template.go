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
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gameDataOpenTag and gameDataCloseTag bracket the JSON placeholder
// spec §4.7 requires every template to contain exactly once.
const (
	gameDataOpenTag  = `<script id="game-data" type="application/json">`
	gameDataCloseTag = `</script>`
	placeholderBody  = `{}`
)

var placeholder = gameDataOpenTag + placeholderBody + gameDataCloseTag

// TemplateLoader loads the HTML template for a language. Treated as an
// external collaborator: the build pipeline only needs template text back.
type TemplateLoader interface {
	Load(lang string) (string, error)
}

// FileTemplateLoader reads `<dir>/index-<lang>.html` from disk.
type FileTemplateLoader struct {
	Dir string
}

// NewFileTemplateLoader constructs a FileTemplateLoader rooted at dir.
func NewFileTemplateLoader(dir string) *FileTemplateLoader {
	return &FileTemplateLoader{Dir: dir}
}

// Load reads the template file for lang.
func (l *FileTemplateLoader) Load(lang string) (string, error) {
	path := filepath.Join(l.Dir, templateFileName(lang))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("bundle: read template %s: %w", path, err)
	}
	return string(data), nil
}

// injectGameData finds the unique game-data placeholder in template and
// replaces its `{}` body with the serialized GameData JSON. It is fatal
// (TemplateError) if the placeholder is absent or appears more than once.
func injectGameData(lang, template string, gameDataJSON []byte) (string, error) {
	count := strings.Count(template, placeholder)
	switch count {
	case 0:
		return "", &TemplateError{Lang: lang, Reason: "game-data placeholder not found"}
	case 1:
		// fall through
	default:
		return "", &TemplateError{Lang: lang, Reason: fmt.Sprintf("game-data placeholder appears %d times, want 1", count)}
	}

	replacement := gameDataOpenTag + string(gameDataJSON) + gameDataCloseTag
	return strings.Replace(template, placeholder, replacement, 1), nil
}
