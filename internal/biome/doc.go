// Package biome loads biome definitions from a world directory.
//
// A world stores one JSON file per biome under
// settings/biomes/<type>/<name>.json. [LoadWorld] walks that structure in
// sorted name order and emits one [Entry] per configured color, so
// downstream grouping and layout never depend on filesystem iteration order.
//
// Loading is best-effort: malformed files, missing color lists, and
// unparsable color elements are skipped with a warning, and channel values
// outside [0, 255] are clamped. Only a root without the settings/biomes
// structure aborts the load, reported as [ErrNotWorldDir].
package biome
