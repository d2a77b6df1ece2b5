// Package palette turns the flat entry list produced by the biome loader
// into the grouped, sorted model consumed by the renderer.
//
// [Build] groups entries by biome type: group order is lexicographic by
// type, biomes within a group are ordered by name (duplicate names stay
// distinct), and each biome's colors keep the order they were listed in.
// The result is identical for any permutation of input discovery order.
// [Palette.Filter] narrows the model to selected types, suggesting the
// nearest existing type on a miss.
//
// The package performs no I/O.
package palette
