package atlas

import (
	"fmt"
	"sort"
)

// SentinelName is the reserved slot name meaning "no texture". Its cell is
// never loaded from disk and stays fully transparent in the composed atlas.
const SentinelName = "air"

// Slot maps a texture name to its integer position in the atlas grid.
type Slot struct {
	Name  string
	Index int
}

// Table is an ordered slot table. The order determines processing and log
// order but has no effect on the composed image, since every slot targets a
// disjoint cell.
type Table []Slot

// DefaultTable is the Kenney voxel pack layout the renderer was built around.
var DefaultTable = Table{
	{Name: "air", Index: 0},
	{Name: "greystone", Index: 1},
	{Name: "dirt", Index: 2},
	{Name: "grass_top", Index: 3},
	{Name: "dirt_grass", Index: 4},
	{Name: "sand", Index: 5},
	{Name: "water", Index: 6},
	{Name: "trunk_top", Index: 7},
	{Name: "trunk_side", Index: 8},
	{Name: "leaves", Index: 9},
	{Name: "glass", Index: 10},
	{Name: "stone", Index: 11},
	{Name: "wood", Index: 12},
	{Name: "rock", Index: 13},
	{Name: "gravel_stone", Index: 14},
	{Name: "brick_red", Index: 15},
	{Name: "snow", Index: 16},
	{Name: "ice", Index: 17},
}

// Lookup returns the slot for a texture name.
func (t Table) Lookup(name string) (Slot, bool) {
	for _, s := range t {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

// LookupIndex returns the slot occupying a grid index.
func (t Table) LookupIndex(index int) (Slot, bool) {
	for _, s := range t {
		if s.Index == index {
			return s, true
		}
	}
	return Slot{}, false
}

// Validate checks that the table fits an atlas with the given grid width:
// names must be non-empty and unique, indices unique and within
// [0, tilesPerRow^2).
func (t Table) Validate(tilesPerRow int) error {
	if tilesPerRow <= 0 {
		return fmt.Errorf("tiles per row must be positive, got %d", tilesPerRow)
	}

	maxIndex := tilesPerRow * tilesPerRow
	seenNames := make(map[string]bool, len(t))
	seenIndices := make(map[int]string, len(t))

	for _, s := range t {
		if s.Name == "" {
			return fmt.Errorf("slot table contains an empty texture name (index %d)", s.Index)
		}
		if seenNames[s.Name] {
			return fmt.Errorf("duplicate texture name %q in slot table", s.Name)
		}
		seenNames[s.Name] = true

		if s.Index < 0 || s.Index >= maxIndex {
			return fmt.Errorf("slot %q index %d out of range [0, %d)", s.Name, s.Index, maxIndex)
		}
		if other, ok := seenIndices[s.Index]; ok {
			return fmt.Errorf("slots %q and %q both map to index %d", other, s.Name, s.Index)
		}
		seenIndices[s.Index] = s.Name
	}

	return nil
}

// TableFromMap converts a name->index mapping (e.g. from a config file) into
// an ordered table. Config mappings carry no order, so entries are ordered by
// index to keep runs deterministic.
func TableFromMap(m map[string]int) Table {
	t := make(Table, 0, len(m))
	for name, index := range m {
		t = append(t, Slot{Name: name, Index: index})
	}
	sort.Slice(t, func(i, j int) bool { return t[i].Index < t[j].Index })
	return t
}
