package palette

import (
	"sort"

	"github.com/ewgtools/ewgpal/internal/biome"
)

// Biome is one biome's content: its name and colors in listed order.
type Biome struct {
	Name    string
	Enabled bool
	Colors  []biome.Color
}

// Group collects the biomes of one type.
type Group struct {
	Type   string
	Biomes []Biome
}

// Swatches returns the number of swatches in the group.
func (g Group) Swatches() int {
	n := 0
	for _, b := range g.Biomes {
		n += len(b.Colors)
	}
	return n
}

// Palette is the full grouped model.
type Palette struct {
	Groups []Group
}

// Build groups a flat entry list by biome type. Group order is lexicographic
// by type and biomes within a group are sorted by name; two biomes with the
// same name both survive. Empty input yields an empty, non-nil palette.
//
// Entries of one biome must arrive as a contiguous run with ascending Index,
// which is how the loader emits them; Index 0 marks the start of a biome.
func Build(entries []biome.Entry) *Palette {
	byType := make(map[string][]Biome)
	for _, e := range entries {
		biomes := byType[e.Type]
		if e.Index == 0 || len(biomes) == 0 {
			biomes = append(biomes, Biome{Name: e.Name, Enabled: e.Enabled})
		}
		last := &biomes[len(biomes)-1]
		last.Colors = append(last.Colors, e.Color)
		byType[e.Type] = biomes
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	p := &Palette{Groups: make([]Group, 0, len(types))}
	for _, t := range types {
		biomes := byType[t]
		sort.SliceStable(biomes, func(i, j int) bool {
			return biomes[i].Name < biomes[j].Name
		})
		p.Groups = append(p.Groups, Group{Type: t, Biomes: biomes})
	}
	return p
}

// Swatches returns the total number of swatches across all groups.
func (p *Palette) Swatches() int {
	n := 0
	for _, g := range p.Groups {
		n += g.Swatches()
	}
	return n
}

// MaxGroupSwatches returns the largest swatch count of any single group.
func (p *Palette) MaxGroupSwatches() int {
	max := 0
	for _, g := range p.Groups {
		if n := g.Swatches(); n > max {
			max = n
		}
	}
	return max
}

// Biomes returns the total number of biomes across all groups.
func (p *Palette) Biomes() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Biomes)
	}
	return n
}
