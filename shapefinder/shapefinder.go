// Package shapefinder enumerates every valid decomposition of a
// complete hand into shapes: 4 complete groups + 1 pair (standard), 7
// distinct pairs (chiitoitsu), or 13 orphans + 1 pair (kokushi).
package shapefinder

import (
	"sort"
	"strconv"
	"strings"

	"riichi-go/hand"
	"riichi-go/shape"
	"riichi-go/tile"
)

// Decomposition is one way to partition a complete hand into shapes,
// always including the hand's locked (called) melds verbatim.
type Decomposition struct {
	Shapes []shape.Shape
}

// FindAll returns every distinct valid decomposition of h. h must be
// a complete (winning) hand: 14 effective tiles. Decompositions are
// deduplicated by their canonical (sorted) shape representation.
func FindAll(h *hand.Hand) []Decomposition {
	locked := meldsToShapes(h.Melds())

	counts := h.Count34(false)
	var results []Decomposition
	seen := make(map[string]bool)
	current := make([]shape.Shape, 0, 5)

	var search func(pos int)
	search = func(pos int) {
		if pos >= 34 {
			if isValidVariant(locked, current) {
				all := append(append([]shape.Shape(nil), locked...), current...)
				key := canonicalKey(all)
				if !seen[key] {
					seen[key] = true
					results = append(results, Decomposition{Shapes: append([]shape.Shape(nil), all...)})
				}
			}
			return
		}

		if counts[pos] == 0 {
			search(pos + 1)
			return
		}

		isNumberSuit := pos < 27
		rankInSuit := pos % 9

		// Triplet.
		if counts[pos] >= 3 {
			counts[pos] -= 3
			current = append(current, shape.Shape{Kind: shape.Koutsu, Tiles: threeOf(pos)})
			advance(pos, counts, search)
			current = current[:len(current)-1]
			counts[pos] += 3
		}

		// Sequence.
		if isNumberSuit && rankInSuit <= 6 &&
			counts[pos] >= 1 && counts[pos+1] >= 1 && counts[pos+2] >= 1 {
			counts[pos]--
			counts[pos+1]--
			counts[pos+2]--
			current = append(current, shape.Shape{Kind: shape.Shuntsu, Tiles: []tile.Tile{
				{ID: pos + 1}, {ID: pos + 2}, {ID: pos + 3},
			}})
			advance(pos, counts, search)
			current = current[:len(current)-1]
			counts[pos]++
			counts[pos+1]++
			counts[pos+2]++
		}

		// Pair.
		if counts[pos] >= 2 {
			counts[pos] -= 2
			current = append(current, shape.Shape{Kind: shape.Toitsu, Tiles: twoOf(pos)})
			advance(pos, counts, search)
			current = current[:len(current)-1]
			counts[pos] += 2
		}

		// Single (kokushi bookkeeping only; filtered by isValidVariant
		// unless this really is a 13-orphans decomposition).
		counts[pos]--
		current = append(current, shape.Shape{Kind: shape.Single, Tiles: []tile.Tile{{ID: pos + 1}}})
		advance(pos, counts, search)
		current = current[:len(current)-1]
		counts[pos]++
	}

	search(0)
	return results
}

func advance(pos int, counts [34]int, search func(int)) {
	if counts[pos] > 0 {
		search(pos)
	} else {
		search(pos + 1)
	}
}

func threeOf(pos int) []tile.Tile {
	return []tile.Tile{{ID: pos + 1}, {ID: pos + 1}, {ID: pos + 1}}
}

func twoOf(pos int) []tile.Tile {
	return []tile.Tile{{ID: pos + 1}, {ID: pos + 1}}
}

func meldsToShapes(melds []hand.Meld) []shape.Shape {
	shapes := make([]shape.Shape, 0, len(melds))
	for _, m := range melds {
		kind := m.Kind
		if m.IsConcealed() {
			kind = shape.Kantsu
		}
		shapes = append(shapes, shape.Shape{Kind: kind, Tiles: m.Tiles})
	}
	return shapes
}

func isGroupKind(k shape.Kind) bool {
	switch k {
	case shape.Shuntsu, shape.Koutsu, shape.Kantsu, shape.Chi, shape.Pon, shape.Kan:
		return true
	default:
		return false
	}
}

// isValidVariant applies the standard/chiitoitsu/kokushi acceptance
// rule to one candidate full decomposition (locked melds + the
// concealed-portion shapes just extracted).
func isValidVariant(locked, extracted []shape.Shape) bool {
	groups, pairs, singles := 0, 0, 0
	for _, s := range append(append([]shape.Shape(nil), locked...), extracted...) {
		switch {
		case isGroupKind(s.Kind):
			groups++
		case s.Kind == shape.Toitsu:
			pairs++
		case s.Kind == shape.Single:
			singles++
		}
	}

	// A chiitoitsu or kokushi reading uses each tile kind in at most one
	// shape, and a kokushi reading holds terminals and honors only.
	distinct, orphansOnly := true, true
	kinds := make(map[int]bool)
	for _, s := range extracted {
		id := s.Tiles[0].ID
		if kinds[id] {
			distinct = false
		}
		kinds[id] = true
		if !s.Tiles[0].IsTerminalOrHonor() {
			orphansOnly = false
		}
	}

	switch {
	case singles > 0:
		return groups == 0 && pairs == 1 && singles == 12 && distinct && orphansOnly
	case pairs >= 2:
		return groups == 0 && pairs == 7 && distinct
	default:
		return groups == 4 && pairs == 1
	}
}

// canonicalKey renders a decomposition as a sorted, stable string so
// equivalent decompositions (same shapes, different discovery order)
// collapse to one entry.
func canonicalKey(shapes []shape.Shape) string {
	tokens := make([]string, 0, len(shapes))
	for _, s := range shapes {
		ids := make([]int, len(s.Tiles))
		for i, t := range s.Tiles {
			ids[i] = t.ID
		}
		sort.Ints(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		tokens = append(tokens, strconv.Itoa(int(s.Kind))+":"+strings.Join(parts, ","))
	}
	sort.Strings(tokens)
	return strings.Join(tokens, "|")
}
