// Ewgpal renders a palette image of the biomes configured in a world
// directory.
//
// It walks <world>/settings/biomes/<type>/<biome>.json, extracts each
// biome's colors, and draws one labeled swatch per color, grouped by biome
// type, with hex and decimal values printed in a contrasting text color.
//
// Usage:
//
//	ewgpal render -w ~/worlds/pve-dev              # write ewgpal.png
//	ewgpal render -w world -o palette.bmp --view   # pick format, open viewer
//	ewgpal render -w world --types desert,plains   # only some biome types
//	ewgpal list -w world                           # print the biome inventory
//	ewgpal formats                                 # supported output formats
//
// Exit codes: 0 success, 2 usage error, 3 invalid world directory, 4 render
// or output failure.
package main
