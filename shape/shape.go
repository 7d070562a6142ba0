// Package shape implements the shape taxonomy a hand decomposes into:
// complete groups (closed or called) and the incomplete partial groups
// a tenpai hand is one tile away from completing.
package shape

import (
	"fmt"

	"riichi-go/riichierr"
	"riichi-go/tile"
)

// Kind identifies which of the thirteen shape varieties a Shape is.
type Kind int

const (
	// Complete, closed groups.
	Shuntsu Kind = iota // closed sequence, e.g. 456m
	Koutsu              // closed triplet
	Kantsu              // closed quad (ankan)
	Toitsu              // pair
	Single              // one isolated tile (kokushi/nine-gates bookkeeping)

	// Complete, called (open) groups.
	Chi // called sequence
	Pon // called triplet
	Kan // called quad (minkan or shouminkan)

	// Incomplete groups: one tile away from a group above.
	Shanpon // a pair that could become a Koutsu; waits on itself
	Kanchan // middle wait, e.g. 4-6m waiting on 5m
	Penchan // edge wait, e.g. 1-2m waiting on 3m, or 8-9m waiting on 7m
	Ryanmen // open wait, e.g. 4-5m waiting on 3m or 6m
	Tanki   // single tile waiting to become a pair
)

func (k Kind) String() string {
	switch k {
	case Shuntsu:
		return "shuntsu"
	case Koutsu:
		return "koutsu"
	case Kantsu:
		return "kantsu"
	case Toitsu:
		return "toitsu"
	case Single:
		return "single"
	case Chi:
		return "chi"
	case Pon:
		return "pon"
	case Kan:
		return "kan"
	case Shanpon:
		return "shanpon"
	case Kanchan:
		return "kanchan"
	case Penchan:
		return "penchan"
	case Ryanmen:
		return "ryanmen"
	case Tanki:
		return "tanki"
	default:
		return "?"
	}
}

// Shape is a group of related tiles: a completed meld/pair, or a
// partial group one tile away from completion.
type Shape struct {
	Kind  Kind
	Tiles []tile.Tile
}

// IsComplete reports whether this shape is a finished group rather than
// a wait.
func (s Shape) IsComplete() bool {
	return s.Kind <= Kan
}

// IsOpen reports whether this shape was formed by a call (chi/pon/kan)
// rather than built from concealed tiles.
func (s Shape) IsOpen() bool {
	return s.Kind == Chi || s.Kind == Pon || s.Kind == Kan
}

// FromTiles builds a complete shape from 1-4 concealed tiles, in the
// order given. Sequence/triplet membership is inferred from the tiles
// themselves; pair and single only qualify when onlyComplete is true,
// mirroring a context where a lone or doubled tile should be accepted
// as a finished shape (e.g. tanki/shanpon resolution) rather than left
// as a partial wait.
func FromTiles(tiles []tile.Tile, onlyComplete bool) (Shape, error) {
	n := len(tiles)
	if n < 1 || n > 4 {
		return Shape{}, riichierr.New(riichierr.CodeBadShapeTileCount, "not a valid shape - wrong tile count")
	}

	for i := 0; i < n-1; i++ {
		if !tile.AreRelated(tiles[i].ID, tiles[i+1].ID) {
			return Shape{}, riichierr.New(riichierr.CodeTilesNotRelated, "not a valid shape - tiles are not relevant to each other")
		}
	}

	switch n {
	case 4:
		return kantsuShapeType(tiles)
	case 3:
		return tripletOrSequence(tiles)
	case 2:
		if tile.SameType(tiles[0], tiles[1]) {
			if onlyComplete {
				return Shape{Kind: Toitsu, Tiles: tiles}, nil
			}
		}
	case 1:
		if onlyComplete {
			return Shape{Kind: Single, Tiles: tiles}, nil
		}
	}

	return Shape{}, riichierr.New(riichierr.CodeNoSuitableShape, "no suitable shape found")
}

func tripletOrSequence(tiles []tile.Tile) (Shape, error) {
	t1, t2, t3 := tiles[0], tiles[1], tiles[2]

	if t1.IsNumber() {
		if nextAfter(t1, t2) && nextAfter(t2, t3) {
			return Shape{Kind: Shuntsu, Tiles: []tile.Tile{t1, t2, t3}}, nil
		}
	}
	return koutsuShapeType(t1, t2, t3)
}

func nextAfter(a, b tile.Tile) bool {
	n, ok := a.Next(false)
	return ok && tile.SameType(n, b)
}

func koutsuShapeType(t1, t2, t3 tile.Tile) (Shape, error) {
	if tile.SameType(t1, t2) && tile.SameType(t2, t3) {
		return Shape{Kind: Koutsu, Tiles: []tile.Tile{t1, t2, t3}}, nil
	}
	return Shape{}, riichierr.New(riichierr.CodeNotATriplet, "bad shape")
}

func kantsuShapeType(tiles []tile.Tile) (Shape, error) {
	for i := 1; i < 4; i++ {
		if !tile.SameType(tiles[0], tiles[i]) {
			return Shape{}, riichierr.New(riichierr.CodeNotATriplet, "bad shape")
		}
	}
	return Shape{Kind: Kantsu, Tiles: tiles}, nil
}

// NewCalled builds an open (called) complete shape: Chi for a called
// sequence, Pon for a called triplet, Kan for a called quad.
func NewCalled(kind Kind, tiles []tile.Tile) (Shape, error) {
	if kind != Chi && kind != Pon && kind != Kan {
		return Shape{}, fmt.Errorf("shape: %s is not a called-group kind", kind)
	}
	closed, err := FromTiles(tiles, true)
	if err != nil {
		return Shape{}, err
	}
	return Shape{Kind: kind, Tiles: closed.Tiles}, nil
}

// NewTanki builds the incomplete shape of a single tile waiting to pair.
func NewTanki(t tile.Tile) Shape {
	return Shape{Kind: Tanki, Tiles: []tile.Tile{t}}
}

// NewShanpon builds the incomplete shape of a pair that could become a
// triplet on the same tile (used alongside a second such pair).
func NewShanpon(t tile.Tile) Shape {
	return Shape{Kind: Shanpon, Tiles: []tile.Tile{t, t}}
}

// NewPartial builds the incomplete two-tile run shape (Ryanmen,
// Penchan, or Kanchan), classifying it from the numeric gap between the
// two number tiles. Returns an error if the tiles aren't a valid
// two-away-or-closer same-suit pair.
func NewPartial(a, b tile.Tile) (Shape, error) {
	if !a.IsNumber() || !b.IsNumber() {
		return Shape{}, riichierr.New(riichierr.CodeTilesNotRelated, "partial waits are number-suit only")
	}
	lo, hi := a, b
	if lo.Number() > hi.Number() {
		lo, hi = hi, lo
	}
	if !tile.AreRelated(lo.ID, hi.ID) || tile.SameType(lo, hi) {
		return Shape{}, riichierr.New(riichierr.CodeTilesNotRelated, "not a valid partial shape")
	}

	diff := hi.Number() - lo.Number()
	switch diff {
	case 1:
		if lo.Number() == 1 || hi.Number() == 9 {
			return Shape{Kind: Penchan, Tiles: []tile.Tile{lo, hi}}, nil
		}
		return Shape{Kind: Ryanmen, Tiles: []tile.Tile{lo, hi}}, nil
	case 2:
		return Shape{Kind: Kanchan, Tiles: []tile.Tile{lo, hi}}, nil
	default:
		return Shape{}, riichierr.New(riichierr.CodeTilesNotRelated, "not a valid partial shape")
	}
}

// WaitTiles returns the tile ID(s) that would complete this incomplete
// shape. Complete shapes return nil.
func (s Shape) WaitTiles() []int {
	switch s.Kind {
	case Tanki:
		return []int{s.Tiles[0].ID}
	case Shanpon:
		return []int{s.Tiles[0].ID}
	case Kanchan:
		lo := s.Tiles[0]
		return []int{lo.ID + 1}
	case Penchan:
		lo, hi := s.Tiles[0], s.Tiles[1]
		if lo.Number() == 1 {
			return []int{hi.ID + 1}
		}
		return []int{lo.ID - 1}
	case Ryanmen:
		lo, hi := s.Tiles[0], s.Tiles[1]
		return []int{lo.ID - 1, hi.ID + 1}
	default:
		return nil
	}
}
