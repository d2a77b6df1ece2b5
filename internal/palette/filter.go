package palette

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Filter returns a palette containing only the named biome types, keeping
// group order. Types match exactly. A requested type with no matching group
// is an error; the message suggests the nearest existing type when the miss
// looks like a typo.
func (p *Palette) Filter(types []string) (*Palette, error) {
	if len(types) == 0 {
		return p, nil
	}

	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}

	out := &Palette{}
	found := make(map[string]bool, len(types))
	for _, g := range p.Groups {
		if want[g.Type] {
			out.Groups = append(out.Groups, g)
			found[g.Type] = true
		}
	}

	for _, t := range types {
		if found[t] {
			continue
		}
		if near := p.nearestType(t); near != "" {
			return nil, fmt.Errorf("unknown biome type %q (did you mean %q?)", t, near)
		}
		return nil, fmt.Errorf("unknown biome type %q", t)
	}
	return out, nil
}

// nearestType returns the existing type closest to name by edit distance,
// or "" when nothing is within the length-scaled limit.
func (p *Palette) nearestType(name string) string {
	best := ""
	bestDist := 0
	for _, g := range p.Groups {
		dist := levenshtein.ComputeDistance(name, g.Type)
		if dist > levenshteinLimit(len(g.Type)) {
			continue
		}
		if best == "" || dist < bestDist {
			best = g.Type
			bestDist = dist
		}
	}
	return best
}

// levenshteinLimit scales the acceptable edit distance with the length of
// the candidate, so short type names only match near-exact typos.
func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
