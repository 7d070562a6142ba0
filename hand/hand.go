// Package hand implements the tile-multiset-plus-melds container: text
// parsing per the hand notation grammar, mutation with cache
// invalidation, and the 34-count view every shanten/yaku computation
// is built on.
package hand

import (
	"sort"
	"strings"

	"riichi-go/riichierr"
	"riichi-go/shape"
	"riichi-go/tile"
)

// Meld is a called (or concealed-kan) group of 3 or 4 tiles.
type Meld struct {
	Kind   shape.Kind // Chi, Pon, or Kan
	Tiles  []tile.Tile
	Source int // 1 = shimocha (right), 2 = toimen (across), 3 = kamicha (left)
}

// IsConcealed reports whether this meld is an ankan (concealed kan) —
// the only meld kind that doesn't break a hand's closedness.
func (m Meld) IsConcealed() bool {
	return m.Kind == shape.Kan && m.Source == 0
}

// Hand is a canonically-sorted multiset of concealed tiles plus any
// called melds.
type Hand struct {
	tiles []tile.Tile
	melds []Meld

	countDirty   bool
	countClosed  [34]int
	countAll     [34]int
}

// New builds a Hand from concealed tiles and melds, validating the
// per-kind copy limit (4) and the 14-tile effective size (a meld of
// any kind counts as 3, per the "quad counts as 3" invariant).
func New(tiles []tile.Tile, melds []Meld) (*Hand, error) {
	h := &Hand{
		tiles: append([]tile.Tile(nil), tiles...),
		melds: append([]Meld(nil), melds...),
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	h.sortTiles()
	h.countDirty = true
	return h, nil
}

func (h *Hand) validate() error {
	if len(h.tiles) == 0 && len(h.melds) == 0 {
		return riichierr.New(riichierr.CodeEmptyHand, "hand has no tiles")
	}

	effective := len(h.tiles) + 3*len(h.melds)
	if effective > 14 {
		return riichierr.New(riichierr.CodeWrongTileCount, "hand exceeds 14 effective tiles")
	}

	var counts [35]int
	for _, t := range h.tiles {
		counts[t.ID]++
	}
	for _, m := range h.melds {
		for _, t := range m.Tiles {
			counts[t.ID]++
		}
	}
	for id, c := range counts {
		if id == 0 {
			continue
		}
		if c > 4 {
			return riichierr.New(riichierr.CodeTooManyOfOneTile, "more than 4 copies of one tile kind")
		}
	}
	return nil
}

func (h *Hand) sortTiles() {
	sort.Slice(h.tiles, func(i, j int) bool { return tile.Less(h.tiles[i], h.tiles[j]) })
}

// AddTile adds a drawn tile to the concealed portion, invalidating the
// count cache.
func (h *Hand) AddTile(t tile.Tile) error {
	h.tiles = append(h.tiles, t)
	if err := h.validate(); err != nil {
		h.tiles = h.tiles[:len(h.tiles)-1]
		return err
	}
	h.sortTiles()
	h.countDirty = true
	return nil
}

// RemoveTile discards a concealed tile matching id/redness, invalidating
// the count cache. Returns an error if no such tile is present.
func (h *Hand) RemoveTile(t tile.Tile) error {
	for i, candidate := range h.tiles {
		if candidate.ID == t.ID && candidate.IsRed == t.IsRed {
			h.tiles = append(h.tiles[:i], h.tiles[i+1:]...)
			h.countDirty = true
			return nil
		}
	}
	return riichierr.New(riichierr.CodeWrongTileCount, "tile not present in hand")
}

// CallMeld appends a new called meld of three or four tiles.
// It does not remove tiles from the concealed slice itself (callers
// claim an opponent's discard plus their own tiles); it only appends
// the meld and invalidates the cache, leaving concealed-tile removal
// to the caller via RemoveTile for the tiles contributed from hand.
func (h *Hand) CallMeld(m Meld) error {
	h.melds = append(h.melds, m)
	if err := h.validate(); err != nil {
		h.melds = h.melds[:len(h.melds)-1]
		return err
	}
	h.countDirty = true
	return nil
}

// Tiles returns the concealed tiles, canonically sorted.
func (h *Hand) Tiles() []tile.Tile { return append([]tile.Tile(nil), h.tiles...) }

// Melds returns the called (and concealed-kan) groups.
func (h *Hand) Melds() []Meld { return append([]Meld(nil), h.melds...) }

// IsClosed reports whether the hand has no called group other than
// ankan (concealed kan), which never breaks closedness.
func (h *Hand) IsClosed() bool {
	for _, m := range h.melds {
		if !m.IsConcealed() {
			return false
		}
	}
	return true
}

// TileCount returns the effective tile count, counting each meld as 3
// regardless of its physical tile count.
func (h *Hand) TileCount() int {
	return len(h.tiles) + 3*len(h.melds)
}

func (h *Hand) refreshCounts() {
	if !h.countDirty {
		return
	}
	h.countClosed = [34]int{}
	h.countAll = [34]int{}
	for _, t := range h.tiles {
		h.countClosed[t.ID-1]++
		h.countAll[t.ID-1]++
	}
	for _, m := range h.melds {
		for _, t := range m.Tiles {
			h.countAll[t.ID-1]++
		}
	}
	h.countDirty = false
}

// Count34 returns the 34-position count array. When includeOpen is
// true, called-meld tiles are included; shanten of the concealed
// portion always uses includeOpen=false, since called groups
// contribute no shanten.
func (h *Hand) Count34(includeOpen bool) [34]int {
	h.refreshCounts()
	if includeOpen {
		return h.countAll
	}
	return h.countClosed
}

// FromText parses the hand notation grammar: runs of
// <digits><suit> (suit in m/p/s/z, digit 0 = red five in m/p/s), plus
// parenthesized called groups `(<body><source>)` where body is either
// a plain <digits><suit> run (sequence/chi) or `p<digit><suit>` (pon).
// Example: "234m234s99p(p2m2)(345m1)".
func FromText(rep string) (*Hand, error) {
	var tiles []tile.Tile
	var melds []Meld

	var digits strings.Builder
	i := 0
	for i < len(rep) {
		c := rep[i]
		switch {
		case c == '(':
			end := strings.IndexByte(rep[i:], ')')
			if end < 0 {
				return nil, riichierr.New(riichierr.CodeBadTileText, "unterminated called group")
			}
			body := rep[i+1 : i+end]
			m, err := parseMeld(body)
			if err != nil {
				return nil, err
			}
			melds = append(melds, m)
			i += end + 1
		case c >= '0' && c <= '9':
			digits.WriteByte(c)
			i++
		case c == 'm' || c == 'p' || c == 's' || c == 'z':
			ts, err := digitsToTiles(digits.String(), c)
			if err != nil {
				return nil, err
			}
			tiles = append(tiles, ts...)
			digits.Reset()
			i++
		default:
			return nil, riichierr.New(riichierr.CodeBadTileText, "unexpected character in hand text")
		}
	}
	if digits.Len() > 0 {
		return nil, riichierr.New(riichierr.CodeBadTileText, "trailing digits with no suit")
	}

	return New(tiles, melds)
}

func digitsToTiles(digits string, suit byte) ([]tile.Tile, error) {
	ts := make([]tile.Tile, 0, len(digits))
	for i := 0; i < len(digits); i++ {
		t, err := tile.FromText(string([]byte{digits[i], suit}))
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

func parseMeld(body string) (Meld, error) {
	if len(body) == 0 {
		return Meld{}, riichierr.New(riichierr.CodeBadTileText, "empty called group")
	}

	if body[0] == 'p' {
		if len(body) < 4 {
			return Meld{}, riichierr.New(riichierr.CodeBadTileText, "malformed pon group")
		}
		t, err := tile.FromText(body[1:3])
		if err != nil {
			return Meld{}, err
		}
		source, err := parseSource(body[3:])
		if err != nil {
			return Meld{}, err
		}
		return Meld{Kind: shape.Pon, Tiles: []tile.Tile{t, t, t}, Source: source}, nil
	}

	suitIdx := strings.IndexAny(body, "mpsz")
	if suitIdx < 0 {
		return Meld{}, riichierr.New(riichierr.CodeBadSuitChar, "no suit character found in called group")
	}
	digits := body[:suitIdx]
	suit := body[suitIdx]
	sourceStr := body[suitIdx+1:]

	tiles, err := digitsToTiles(digits, suit)
	if err != nil {
		return Meld{}, err
	}
	source, err := parseSource(sourceStr)
	if err != nil {
		return Meld{}, err
	}

	switch len(tiles) {
	case 3:
		s, err := shape.FromTiles(tiles, true)
		if err != nil {
			return Meld{}, err
		}
		kind := shape.Chi
		if s.Kind == shape.Koutsu {
			kind = shape.Pon
		}
		return Meld{Kind: kind, Tiles: tiles, Source: source}, nil
	case 4:
		return Meld{Kind: shape.Kan, Tiles: tiles, Source: source}, nil
	default:
		return Meld{}, riichierr.New(riichierr.CodeBadShapeTileCount, "called group must have 3 or 4 tiles")
	}
}

func parseSource(s string) (int, error) {
	if len(s) != 1 || s[0] < '1' || s[0] > '3' {
		return 0, riichierr.New(riichierr.CodeBadTileText, "bad meld source encoding")
	}
	return int(s[0] - '0'), nil
}

// Text renders the hand back to its canonical notation.
func (h *Hand) Text() string {
	var b strings.Builder
	writeRun(&b, h.tiles, tile.Man, 'm')
	writeRun(&b, h.tiles, tile.Pin, 'p')
	writeRun(&b, h.tiles, tile.Sou, 's')
	writeHonorRun(&b, h.tiles)

	for _, m := range h.melds {
		b.WriteByte('(')
		if m.Kind == shape.Pon {
			b.WriteByte('p')
			b.WriteString(tileDigit(m.Tiles[0]))
			b.WriteByte(suitChar(m.Tiles[0]))
		} else {
			for _, t := range m.Tiles {
				b.WriteString(tileDigit(t))
			}
			b.WriteByte(suitChar(m.Tiles[0]))
		}
		b.WriteByte(byte('0' + m.Source))
		b.WriteByte(')')
	}
	return b.String()
}

func writeRun(b *strings.Builder, tiles []tile.Tile, suit tile.Suit, ch byte) {
	wrote := false
	for _, t := range tiles {
		if t.Suit() == suit {
			b.WriteString(tileDigit(t))
			wrote = true
		}
	}
	if wrote {
		b.WriteByte(ch)
	}
}

func writeHonorRun(b *strings.Builder, tiles []tile.Tile) {
	wrote := false
	for _, t := range tiles {
		if t.IsHonor() {
			b.WriteString(tileDigit(t))
			wrote = true
		}
	}
	if wrote {
		b.WriteByte('z')
	}
}

func tileDigit(t tile.Tile) string {
	if t.IsHonor() {
		return string([]byte{byte('0' + t.ID - 27)})
	}
	n := t.Number()
	if t.IsRed {
		n = 0
	}
	return string([]byte{byte('0' + n)})
}

func suitChar(t tile.Tile) byte {
	switch t.Suit() {
	case tile.Man:
		return 'm'
	case tile.Pin:
		return 'p'
	case tile.Sou:
		return 's'
	default:
		return 'z'
	}
}
