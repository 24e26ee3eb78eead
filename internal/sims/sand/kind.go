package sand

import (
	"image/color"
	"strings"
)

// Kind is the behaviour class of a cell.
type Kind uint8

const (
	// Empty cells are vacant and inert.
	Empty Kind = iota
	// Static cells occupy space and block movement but never move.
	Static
	// Granular cells fall under gravity and settle diagonally.
	Granular

	kindCount
)

// kindInfo is the per-kind table consulted by Set and Update. Adding a kind
// means adding a row here and, if it moves, a rule.
type kindInfo struct {
	name  string
	alias string
	base  color.NRGBA
	rule  func(g *Grid, x, y int)
}

var kinds = [kindCount]kindInfo{
	Empty:    {name: "empty", alias: "air"},
	Static:   {name: "static", alias: "wood", base: color.NRGBA{R: 70, G: 40, B: 29, A: 255}},
	Granular: {name: "granular", alias: "sand", base: color.NRGBA{R: 220, G: 177, B: 89, A: 255}},
}

func init() {
	kinds[Granular].rule = (*Grid).updateGranular
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kinds[k].name
}

// Material returns the user-facing material name of the kind.
func (k Kind) Material() string {
	if !k.Valid() {
		return "unknown"
	}
	return kinds[k].alias
}

// ParseKind accepts either a behaviour name ("granular") or a material name
// ("sand"), case-insensitively.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := Kind(0); k < kindCount; k++ {
		if kinds[k].name == s || kinds[k].alias == s {
			return k, true
		}
	}
	return Empty, false
}
