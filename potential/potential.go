// Package potential implements the depth-first discard/draw search
// (C10): starting from an incomplete hand, try every discard-and-draw
// pair that brings shanten down, recurse, and collect every final hand
// reached along with its score.
package potential

import (
	"sort"

	"github.com/google/uuid"

	"riichi-go/hand"
	"riichi-go/score"
	"riichi-go/shanten"
	"riichi-go/table"
	"riichi-go/tile"
	"riichi-go/yaku"
)

// Swap is one (discard, draw) pair that strictly decreases shanten,
// together with how many copies of the draw tile are still unseen.
type Swap struct {
	Discard   tile.Tile
	Draw      tile.Tile
	Remaining int
}

// Outcome is one fully-explored branch: the complete hand it ends on,
// and its yaku/fu/points when that hand has a yaku. Results is nil for
// a complete hand with no yaku; a branch that runs out of improving
// tiles before completing produces no Outcome at all.
type Outcome struct {
	Hand    *hand.Hand
	Results []yaku.Result
	Han     int
	Fu      int
	Points  int
}

func (o Outcome) complete() bool { return o.Results != nil }

// Finder runs the search. It holds no state of its own — every call
// mutates the table's hand in place and undoes each trial before
// returning (only completed hands are cloned, into their Outcome), so
// a Finder is safe to reuse or leave zero.
type Finder struct{}

// SearchResult tags one Search invocation with a request id, so a
// caller embedding this engine behind a server can correlate a logged
// analysis run with the request that produced it.
type SearchResult struct {
	RequestID string
	Outcomes  []Outcome
}

// Search runs Find and wraps its result with a fresh request id.
func (f Finder) Search(t *table.Table) SearchResult {
	return SearchResult{RequestID: uuid.NewString(), Outcomes: f.Find(t)}
}

// Find explores every discard/draw path from t's current hand and
// returns every final hand reached, sorted by total points
// descending, with unscored (no-yaku) hands sinking to the end.
func (f Finder) Find(t *table.Table) []Outcome {
	outcomes := f.search(t, nil)

	sort.SliceStable(outcomes, func(i, j int) bool {
		a, b := outcomes[i], outcomes[j]
		if a.complete() != b.complete() {
			return a.complete()
		}
		if !a.complete() {
			return false
		}
		return a.Points > b.Points
	})
	return outcomes
}

// search is the recursive step. lastDrawn is the tile that was just
// drawn to reach this node (nil at the root, where t already carries
// whatever win condition the caller set up). Because every recursive
// call only happens after a swap that strictly reduced shanten, and
// shanten is bounded below by -1, the recursion terminates on its own
// within depth (starting shanten + 1) — no separate depth counter is
// needed.
func (f Finder) search(t *table.Table, lastDrawn *tile.Tile) []Outcome {
	h := t.Hand
	lockedGroups := len(h.Melds())
	closed := h.IsClosed() && lockedGroups == 0

	current := shanten.All(h.Count34(false), lockedGroups, closed)
	if current == shanten.Complete {
		if lastDrawn != nil {
			prevTile, prevTsumo := t.WinningTile, t.IsTsumo
			defer func() { t.WinningTile, t.IsTsumo = prevTile, prevTsumo }()
			t.WinningTile = *lastDrawn
			t.IsTsumo = true
		}
		results, total, decomp := yaku.IdentifyWithDecomposition(t)
		outcome := Outcome{Hand: cloneHand(h), Results: results}
		if results != nil {
			fu := score.Fu(t, decomp, results, h.IsClosed())
			payment := score.Points(total, fu, t.IsDealer(), t.IsTsumo, t.Honba, t.Rules.KazoeYakuman)
			outcome.Han = total
			outcome.Fu = fu
			outcome.Points = totalPoints(payment, t.IsDealer())
		}
		return []Outcome{outcome}
	}

	var results []Outcome

	if current == 0 {
		// Tenpai: no swap is needed, just the winning draw itself.
		for _, id := range directWins(t, lockedGroups, closed) {
			draw := tile.Tile{ID: id}
			_ = h.AddTile(draw)
			results = append(results, f.search(t, &draw)...)
			_ = h.RemoveTile(draw)
		}
	}

	swaps := f.ukeire(t, current)
	if len(swaps) == 0 {
		return results
	}

	visited := make(map[int]bool)
	for _, sw := range swaps {
		if visited[sw.Discard.ID] {
			continue
		}
		visited[sw.Discard.ID] = true

		sameDiscard := swapsFor(swaps, sw.Discard)
		_ = h.RemoveTile(sw.Discard)
		for _, s2 := range sameDiscard {
			_ = h.AddTile(s2.Draw)
			draw := s2.Draw
			results = append(results, f.search(t, &draw)...)
			_ = h.RemoveTile(s2.Draw)
		}
		_ = h.AddTile(sw.Discard)
	}
	return results
}

func swapsFor(swaps []Swap, discard tile.Tile) []Swap {
	var out []Swap
	for _, s := range swaps {
		if s.Discard.ID == discard.ID {
			out = append(out, s)
		}
	}
	return out
}

// directWins finds tile kinds that complete the hand immediately on
// the draw, with no discard needed — the tenpai case, found the same
// way table.Table.Waits derives a wait list.
func directWins(t *table.Table, lockedGroups int, closed bool) []int {
	h := t.Hand
	base := h.Count34(false)
	visible := visibleCounts(t)

	var ids []int
	for id := 1; id <= 34; id++ {
		if 4-visible[id-1] <= 0 {
			continue
		}
		trial := base
		trial[id-1]++
		if shanten.All(trial, lockedGroups, closed) == shanten.Complete {
			ids = append(ids, id)
		}
	}
	return ids
}

// ukeire finds every (discard, draw) pair that strictly improves
// shanten below currentShanten, skipping draw candidates with no
// copies left among the visible tiles.
func (f Finder) ukeire(t *table.Table, currentShanten int) []Swap {
	h := t.Hand
	lockedGroups := len(h.Melds())
	closed := h.IsClosed() && lockedGroups == 0

	visible := visibleCounts(t)

	var swaps []Swap
	triedDiscards := make(map[int]bool)
	for _, discard := range h.Tiles() {
		if triedDiscards[discard.ID] {
			continue
		}
		triedDiscards[discard.ID] = true

		base := h.Count34(false)
		base[discard.ID-1]--

		for id := 1; id <= 34; id++ {
			remaining := 4 - visible[id-1]
			if remaining <= 0 {
				continue
			}
			trial := base
			trial[id-1]++
			if shanten.All(trial, lockedGroups, closed) < currentShanten {
				swaps = append(swaps, Swap{
					Discard:   discard,
					Draw:      tile.Tile{ID: id},
					Remaining: remaining,
				})
			}
		}
	}
	return swaps
}

// visibleCounts tallies every tile kind visible to me: my own hand
// (concealed and called), my discards, every opponent's discards and
// called melds, and the face-up dora indicators. Ura-dora indicators
// stay hidden until a win is declared, so they never narrow the wall.
func visibleCounts(t *table.Table) [34]int {
	var counts [34]int
	add := func(ts []tile.Tile) {
		for _, tl := range ts {
			counts[tl.ID-1]++
		}
	}

	add(t.Hand.Tiles())
	for _, m := range t.Hand.Melds() {
		add(m.Tiles)
	}
	add(t.MyDiscards)
	add(t.DoraIndicators)

	for _, opp := range []table.Opponent{t.Shimocha, t.Kamicha, t.Toimen} {
		add(opp.Discards)
		for _, m := range opp.OpenMelds {
			add(m.Tiles)
		}
	}
	return counts
}

func cloneHand(h *hand.Hand) *hand.Hand {
	cloned, _ := hand.New(h.Tiles(), h.Melds())
	return cloned
}

func totalPoints(p score.Payment, isDealer bool) int {
	if p.RonPayment > 0 {
		return p.RonPayment
	}
	if isDealer {
		return p.TsumoNonDealerPay * 3
	}
	return p.TsumoDealerPay + p.TsumoNonDealerPay*2
}
