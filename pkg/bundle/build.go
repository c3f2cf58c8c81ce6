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
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/jeremyhahn/imagevault/internal/config"
	"github.com/jeremyhahn/imagevault/pkg/hints"
	"github.com/jeremyhahn/imagevault/pkg/imageio"
	"github.com/jeremyhahn/imagevault/pkg/keypair"
	"github.com/jeremyhahn/imagevault/pkg/logging"
)

// Builder runs the full bundle build: per-level key derivation, hint
// setup, thumbnail prefix factoring, and per-language JSON/HTML assembly.
// Stages execute in declared order; per-level work within a stage has no
// dependency on emission order, only on the index it fills (spec §5).
type Builder struct {
	Config     *config.GlobalConfig
	KeyRecords []config.KeyRecord
	DataDir    string
	OutputDir  string
	Fetcher    hints.Fetcher
	Templates  TemplateLoader
	Logger     *logging.Logger
	DryRun     bool
}

// NewBuilder constructs a Builder. logger must not be nil.
func NewBuilder(cfg *config.GlobalConfig, keyRecords []config.KeyRecord, dataDir, outputDir string, fetcher hints.Fetcher, templates TemplateLoader, logger *logging.Logger, dryRun bool) *Builder {
	return &Builder{
		Config:     cfg,
		KeyRecords: keyRecords,
		DataDir:    dataDir,
		OutputDir:  outputDir,
		Fetcher:    fetcher,
		Templates:  templates,
		Logger:     logger,
		DryRun:     dryRun,
	}
}

// Build runs every stage and writes one HTML file per configured
// language. It aborts on the first fatal error (spec §5 fail-fast).
func (b *Builder) Build(ctx context.Context) error {
	levelCount := b.Config.LevelCount
	if len(b.KeyRecords) < levelCount {
		return &config.MissingKeyError{Have: len(b.KeyRecords), Want: levelCount}
	}

	records := make([]keypair.Record, levelCount)
	for i := 0; i < levelCount; i++ {
		records[i] = keypair.Record(b.KeyRecords[i])
	}
	keys, err := keypair.Load(records, levelCount)
	if err != nil {
		return err
	}

	decoder := imageio.NewStdlibAdapter()

	materials := make([]*levelMaterial, levelCount)
	for i := 0; i < levelCount; i++ {
		b.Logger.Info("building level", "level", i, "stage", "level-crypto")

		src, err := loadImage(decoder, joinDataPath(b.DataDir, imageFileName(i)))
		if err != nil {
			return err
		}
		thumbSrc, err := loadImage(decoder, joinDataPath(b.DataDir, thumbnailFileName(i)))
		if err != nil {
			return err
		}

		m, err := buildLevelMaterial(b.Config.GameRandomSalt, i, src, thumbSrc, keys[i], decoder)
		if err != nil {
			return err
		}
		materials[i] = m

		b.Logger.Info("level built", "level", i, "stage", "level-crypto")
	}

	thumbnails := make([][]byte, levelCount)
	for i, m := range materials {
		thumbnails[i] = m.thumbnail
	}
	header := commonPrefix(thumbnails)
	b.Logger.Info("computed thumbnail header", "bytes", len(header), "stage", "thumbnail-prefix")

	setup, err := buildHintSetup(b.Config.GameRandomSalt, b.Config.HintThresholds, levelCount)
	if err != nil {
		return err
	}

	levelData := make([]string, levelCount)
	for i, m := range materials {
		shares := setup.sharesForLevel(i)
		data, err := m.sealLevelSecret(shares, header)
		if err != nil {
			return err
		}
		levelData[i] = base64.StdEncoding.EncodeToString(data)
	}

	for _, lang := range b.Config.Languages {
		if err := b.buildLanguage(ctx, lang, levelCount, materials, levelData, setup, header); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) buildLanguage(
	ctx context.Context,
	lang string,
	levelCount int,
	materials []*levelMaterial,
	levelData []string,
	setup *hintSetup,
	header []byte,
) error {
	b.Logger.Info("building language bundle", "lang", lang, "stage", "bundle-assembly")

	langSalt := languageSalt(b.Config.GameRandomSalt, lang)

	csvData, err := b.Fetcher.Fetch(ctx, lang)
	if err != nil {
		return &hints.FetchError{Lang: lang, Err: err}
	}
	rows := hints.ParseCSV(csvData)

	levels := make([]LevelEntry, levelCount)
	for i, m := range materials {
		levelID := i + 1

		lh, truncated, err := buildLevelHints(setup, lang, levelID, rows, langSalt, levelSalt(b.Config.GameRandomSalt, i))
		if err != nil {
			return err
		}
		if truncated > 0 {
			b.Logger.Warn("truncated hints with no hint key", "lang", lang, "level", levelID, "truncated", truncated)
		}

		entry := buildLevelEntry(m, lh)
		entry.Data = levelData[i]
		levels[i] = entry
	}

	gameData := GameData{
		Levels:          levels,
		HintThresholds:  b.Config.HintThresholds,
		HintSalt:        base64.StdEncoding.EncodeToString(langSalt),
		ThumbnailHeader: base64.StdEncoding.EncodeToString(header),
		UnlockedLevels:  b.Config.UnlockedLevels,
	}

	gameDataJSON, err := marshalGameData(gameData)
	if err != nil {
		return &CryptoError{Op: "marshal game data", Err: err}
	}

	template, err := b.Templates.Load(lang)
	if err != nil {
		return err
	}

	page, err := injectGameData(lang, template, gameDataJSON)
	if err != nil {
		return err
	}

	if b.DryRun {
		b.Logger.Info("dry run: skipping write", "lang", lang, "bytes", len(page))
		return nil
	}

	if err := os.MkdirAll(b.OutputDir, 0755); err != nil {
		return fmt.Errorf("bundle: create output dir %s: %w", b.OutputDir, err)
	}

	outPath := joinDataPath(b.OutputDir, outputFileName(lang))
	if err := os.WriteFile(outPath, []byte(page), 0644); err != nil {
		return fmt.Errorf("bundle: write %s: %w", outPath, err)
	}

	b.Logger.Info("wrote bundle", "lang", lang, "path", outPath)
	return nil
}
