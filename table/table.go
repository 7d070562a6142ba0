// Package table implements the game-context aggregate (C9): seat and
// round winds, dora indicators, riichi/honba counters, opponents'
// discard piles, and the contextual win-condition flags the yaku and
// fu calculators consume.
package table

import (
	"fmt"

	"riichi-go/hand"
	"riichi-go/shanten"
	"riichi-go/tile"
)

// Wind is a round/seat wind, numbered East=1 through North=4, matching
// the teacher's own PrevalentWind/SeatWind convention.
type Wind int

const (
	East Wind = iota + 1
	South
	West
	North
)

// Rules holds the rule-variant toggles that affect scoring, kept as
// plain struct fields with explicit defaults rather than loaded from
// any file or environment variable.
type Rules struct {
	// KazoeYakuman, when true, pays a 13+ han hand as han/13 yakuman
	// (8000 base each, so 26 han pays a double yakuman); when false,
	// every 13+ han hand pays a single yakuman. Neither setting caps a
	// 13+ han hand at sanbaiman.
	KazoeYakuman bool
	// RyanhanShibariHonbaThreshold mirrors the teacher's
	// RyanhanShibariHonbaThreshold: once honba count reaches this many,
	// a win needs at least 2 non-dora han to be valid. Nothing in this
	// module reads it; yaku.Identify and score.Points do not apply it.
	RyanhanShibariHonbaThreshold int
}

// DefaultRules returns the common ruleset used when none is specified.
func DefaultRules() Rules {
	return Rules{KazoeYakuman: true, RyanhanShibariHonbaThreshold: 4}
}

// Opponent tracks the pieces of another player's state this engine
// needs for furiten/defence reasoning — never for running their turn.
type Opponent struct {
	Discards  []tile.Tile
	OpenMelds []hand.Meld
	IsRiichi  bool
	SeatWind  Wind
}

// Table aggregates everything the yaku/fu/score calculators need
// beyond the winning hand itself.
type Table struct {
	Hand *hand.Hand

	IsRiichi       bool
	IsDoubleRiichi bool
	IsIppatsu      bool
	IsTsumo        bool
	WinningTile    tile.Tile

	PrevalentWind Wind
	SeatWind      Wind
	RoundNumber   int
	WallRemaining int

	DoraIndicators    []tile.Tile
	UraDoraIndicators []tile.Tile

	RiichiSticksInPot int
	Honba             int

	MyDiscards []tile.Tile

	Shimocha Opponent // player to my right
	Kamicha  Opponent // player to my left
	Toimen   Opponent // player across from me

	IsRinshanWin         bool
	IsChankanOpportunity bool
	IsHaiteiHoutei       bool

	Rules Rules

	log []string
}

// New builds a Table for a single win/analysis request with the given
// hand and the default ruleset.
func New(h *hand.Hand) *Table {
	return &Table{Hand: h, Rules: DefaultRules()}
}

// AddLog appends one formatted line to the table's in-memory analysis
// log — never written to stdout/stderr directly, so the hot path stays
// free of I/O; a caller may print or discard Log() afterwards.
func (t *Table) AddLog(format string, args ...any) {
	t.log = append(t.log, fmt.Sprintf(format, args...))
}

// Log returns the accumulated analysis log lines, in order.
func (t *Table) Log() []string {
	return append([]string(nil), t.log...)
}

// IsDealer reports whether I am sitting East this hand.
func (t *Table) IsDealer() bool {
	return t.SeatWind == East
}

// Waits returns the tile IDs that would complete t.Hand if drawn or
// ronned, found by brute force: try every one of the 34 kinds and keep
// the ones that bring shanten to -1.
func (t *Table) Waits() []int {
	base := t.Hand.Count34(false)
	lockedGroups := len(t.Hand.Melds())
	closed := t.Hand.IsClosed() && lockedGroups == 0

	var waits []int
	for id := 1; id <= 34; id++ {
		if base[id-1] >= 4 {
			continue
		}
		trial := base
		trial[id-1]++
		if shanten.All(trial, lockedGroups, closed) == shanten.Complete {
			waits = append(waits, id)
		}
	}
	return waits
}

// IsFuriten reports whether I have already discarded the winning tile
// or any other tile that would complete my hand — a ron win is
// illegal in either case.
func (t *Table) IsFuriten() bool {
	waits := t.Waits()
	waitSet := make(map[int]bool, len(waits))
	for _, id := range waits {
		waitSet[id] = true
	}
	for _, discard := range t.MyDiscards {
		if waitSet[discard.ID] {
			return true
		}
	}
	return false
}

// DoraTiles returns the current dora tiles (one per indicator, in
// indicator order), derived via each indicator's next tile in rank
// order with wraparound enabled.
func (t *Table) DoraTiles() []tile.Tile {
	return indicatorsToDora(t.DoraIndicators)
}

// UraDoraTiles mirrors DoraTiles for the hidden (ura) indicators,
// revealed only after a riichi win.
func (t *Table) UraDoraTiles() []tile.Tile {
	return indicatorsToDora(t.UraDoraIndicators)
}

func indicatorsToDora(indicators []tile.Tile) []tile.Tile {
	dora := make([]tile.Tile, 0, len(indicators))
	for _, ind := range indicators {
		if next, ok := ind.Next(true); ok {
			dora = append(dora, next)
		}
	}
	return dora
}

// CountDora counts how many of the hand's tiles (concealed + melds)
// match a dora or ura-dora tile, once per held copy per matching
// indicator — a tile matching two indicators (or matching both a dora
// and an ura-dora indicator) counts that many times over.
func (t *Table) CountDora() int {
	doraHits := make(map[int]int)
	for _, d := range t.DoraTiles() {
		doraHits[d.ID]++
	}
	for _, d := range t.UraDoraTiles() {
		doraHits[d.ID]++
	}

	count := 0
	for _, tl := range t.Hand.Tiles() {
		count += doraHits[tl.ID]
	}
	for _, m := range t.Hand.Melds() {
		for _, tl := range m.Tiles {
			count += doraHits[tl.ID]
		}
	}
	return count
}

// CountRedDora counts the hand's red-five tiles (aka dora).
func (t *Table) CountRedDora() int {
	count := 0
	for _, tl := range t.Hand.Tiles() {
		if tl.IsRed {
			count++
		}
	}
	for _, m := range t.Hand.Melds() {
		for _, tl := range m.Tiles {
			if tl.IsRed {
				count++
			}
		}
	}
	return count
}
