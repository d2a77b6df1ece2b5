package biome

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ewgtools/ewgpal/internal/log"
	"github.com/rs/zerolog"
)

// ErrNotWorldDir reports that a load root lacks the conventional
// settings/biomes directory structure.
var ErrNotWorldDir = errors.New("not a valid world directory (missing settings/biomes)")

// Entry is one renderable swatch: a single color of a single biome.
type Entry struct {
	Type    string // biome type, the grouping label
	Name    string // biome file base name without the .json extension
	Color   Color
	Index   int  // position among the biome's parsed colors, 0-based
	Enabled bool // the biome's enabled flag; informational only
}

// biomeFile is the subset of a biome definition that ewgpal reads. Enabled
// is a pointer so a missing flag defaults to true.
type biomeFile struct {
	BiomeType   string            `json:"biomeType"`
	Enabled     *bool             `json:"enabled"`
	BiomeColors []json.RawMessage `json:"biomeColors"`
}

// LoadWorld reads every biome definition under <root>/settings/biomes and
// returns one Entry per configured color. Type directories and files are
// visited in sorted name order. Files that cannot be parsed are skipped
// with a warning; only a missing settings/biomes structure aborts the load.
func LoadWorld(root string) ([]Entry, error) {
	biomesDir := filepath.Join(root, "settings", "biomes")
	info, err := os.Stat(biomesDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotWorldDir)
	}

	typeDirs, err := os.ReadDir(biomesDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", biomesDir, err)
	}

	logger := log.WithComponent("biome")

	var entries []Entry
	for _, td := range typeDirs {
		if !td.IsDir() {
			continue
		}
		dir := filepath.Join(biomesDir, td.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("skipping unreadable type directory")
			continue
		}
		for _, f := range files {
			if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
				continue
			}
			entries = append(entries, loadFile(logger, filepath.Join(dir, f.Name()), td.Name())...)
		}
	}
	return entries, nil
}

// loadFile parses one biome definition and emits one Entry per color.
// fallbackType names the enclosing type directory, used when the biomeType
// field is absent.
func loadFile(logger zerolog.Logger, path, fallbackType string) []Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("skipping unreadable biome file")
		return nil
	}

	var bf biomeFile
	if err := json.Unmarshal(data, &bf); err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("skipping malformed biome file")
		return nil
	}

	name := strings.TrimSuffix(filepath.Base(path), ".json")
	typ := bf.BiomeType
	if typ == "" {
		typ = fallbackType
	}
	enabled := bf.Enabled == nil || *bf.Enabled

	if len(bf.BiomeColors) == 0 {
		logger.Warn().Str("file", path).Msg("biome has no colors, nothing to render")
		return nil
	}

	entries := make([]Entry, 0, len(bf.BiomeColors))
	for i, raw := range bf.BiomeColors {
		col, err := ParseColor(raw)
		if err != nil {
			logger.Warn().Err(err).Str("file", path).Int("element", i).Msg("skipping unparsable color")
			continue
		}
		entries = append(entries, Entry{
			Type:    typ,
			Name:    name,
			Color:   col,
			Index:   len(entries),
			Enabled: enabled,
		})
	}

	logger.Debug().
		Str("file", path).
		Str("type", typ).
		Bool("enabled", enabled).
		Int("colors", len(entries)).
		Msg("loaded biome")

	return entries
}
