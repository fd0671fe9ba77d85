package component

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// ItemKind identifies a pill type
type ItemKind int

const (
	KindGrowth ItemKind = iota // +1, grows
	KindBonus                  // +2, grows
	KindHazard                 // ends the session, expires
)

// KindInfo is the static property row of an item kind
type KindInfo struct {
	Name   string
	Points int
	Color  core.RGB
	Lethal bool
}

var kindTable = [...]KindInfo{
	KindGrowth: {Name: "growth", Points: parameter.GrowthPoints, Color: core.RGBGrowth},
	KindBonus:  {Name: "bonus", Points: parameter.BonusPoints, Color: core.RGBBonus},
	KindHazard: {Name: "hazard", Points: 0, Color: core.RGBHazard, Lethal: true},
}

// Info returns the property row for k
func (k ItemKind) Info() KindInfo {
	if k < 0 || int(k) >= len(kindTable) {
		return KindInfo{Name: "unknown"}
	}
	return kindTable[k]
}

func (k ItemKind) String() string {
	return k.Info().Name
}

// Item is a pill on the board
type Item struct {
	ID        uint64
	Cell      core.Cell
	Kind      ItemKind
	Pulse     float64
	CreatedAt time.Time
}

// ItemSet holds the active items in insertion order
// No two items share a cell; Add refuses occupied cells
type ItemSet struct {
	items []*Item
}

// Add inserts it unless its cell is taken; returns false on conflict
func (s *ItemSet) Add(it *Item) bool {
	if s.At(it.Cell) != nil {
		return false
	}
	s.items = append(s.items, it)
	return true
}

// At returns the item occupying c, or nil
func (s *ItemSet) At(c core.Cell) *Item {
	for _, it := range s.items {
		if it.Cell == c {
			return it
		}
	}
	return nil
}

// Remove deletes the item with the given ID; returns false if absent
func (s *ItemSet) Remove(id uint64) bool {
	for i, it := range s.items {
		if it.ID == id {
			copy(s.items[i:], s.items[i+1:])
			s.items[len(s.items)-1] = nil
			s.items = s.items[:len(s.items)-1]
			return true
		}
	}
	return false
}

// Get returns the item with the given ID
func (s *ItemSet) Get(id uint64) (*Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Count returns the number of items of kind k
func (s *ItemSet) Count(k ItemKind) int {
	n := 0
	for _, it := range s.items {
		if it.Kind == k {
			n++
		}
	}
	return n
}

// Len returns the total item count
func (s *ItemSet) Len() int {
	return len(s.items)
}

// All returns the live slice; callers must not mutate it
func (s *ItemSet) All() []*Item {
	return s.items
}

// Clear removes every item
func (s *ItemSet) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
