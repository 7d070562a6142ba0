// Package score computes fu and the resulting point payments for a
// won hand, from its decomposition and identified yaku.
package score

import (
	"math"

	"riichi-go/shape"
	"riichi-go/shapefinder"
	"riichi-go/table"
	"riichi-go/tile"
	"riichi-go/yaku"
)

// Fu computes the fu value of a standard-pattern or chiitoitsu-pattern
// winning hand. Kokushi and other yakuman hands never use fu in their
// point calculation, so callers should skip this call for those.
func Fu(t *table.Table, d shapefinder.Decomposition, results []yaku.Result, isMenzen bool) int {
	isPinfu, isChiitoitsu := false, false
	for _, r := range results {
		switch r.Name {
		case "Pinfu":
			isPinfu = true
		case "Chiitoitsu":
			isChiitoitsu = true
		}
	}

	if isChiitoitsu {
		return 25
	}

	fu := 20

	if t.IsTsumo && !isPinfu {
		fu += 2
	}
	if isMenzen && !t.IsTsumo {
		fu += 10
	}

	if isPinfu {
		if t.IsTsumo {
			return 20
		}
		return 30
	}

	fu += waitFu(t, d)
	fu += pairFu(t, d)
	fu += groupFu(d)

	if fu%10 != 0 {
		fu = int(math.Ceil(float64(fu)/10.0)) * 10
	}
	if fu < 30 {
		fu = 30
	}
	return fu
}

func containsID(tiles []tile.Tile, id int) bool {
	for _, tl := range tiles {
		if tl.ID == id {
			return true
		}
	}
	return false
}

// waitFu finds the shape the winning tile completed and scores the
// wait: tanki (+2), penchan (+2), kanchan (+2). Ryanmen and shanpon
// waits earn no wait-fu here — shanpon's value comes entirely from the
// completed triplet's own group fu.
func waitFu(t *table.Table, d shapefinder.Decomposition) int {
	winID := t.WinningTile.ID
	for _, s := range d.Shapes {
		if !containsID(s.Tiles, winID) {
			continue
		}
		switch s.Kind {
		case shape.Toitsu:
			return 2 // tanki
		case shape.Shuntsu, shape.Chi:
			ids := sortedIDs(s)
			low, mid, high := ids[0], ids[1], ids[2]
			lowRank := tile.Tile{ID: low}.Number()
			switch winID {
			case mid:
				return 2 // kanchan
			case low:
				if lowRank == 7 {
					return 2 // 7-8-9 penchan, waiting on 7
				}
			case high:
				if lowRank == 1 {
					return 2 // 1-2-3 penchan, waiting on 3
				}
			}
			return 0 // ryanmen
		default:
			return 0 // triplet/kan (shanpon), no wait fu here
		}
	}
	return 0
}

func pairFu(t *table.Table, d shapefinder.Decomposition) int {
	for _, s := range d.Shapes {
		if s.Kind != shape.Toitsu || len(s.Tiles) == 0 {
			continue
		}
		pairTile := s.Tiles[0]
		fu := 0
		if pairTile.Suit() == tile.Dragon {
			fu += 2
		}
		isSeat := pairTile.Suit() == tile.Wind && pairTile.Number() == int(t.SeatWind)
		isPrevalent := pairTile.Suit() == tile.Wind && pairTile.Number() == int(t.PrevalentWind)
		if isSeat {
			fu += 2
		}
		if isPrevalent && !(isSeat && t.SeatWind == t.PrevalentWind) {
			fu += 2
		}
		return fu
	}
	return 0
}

func groupFu(d shapefinder.Decomposition) int {
	total := 0
	for _, s := range d.Shapes {
		if len(s.Tiles) == 0 {
			continue
		}
		termOrHonor := s.Tiles[0].IsTerminalOrHonor()
		concealed := s.Kind == shape.Koutsu || s.Kind == shape.Kantsu

		switch s.Kind {
		case shape.Koutsu, shape.Pon:
			if concealed {
				total += pick(termOrHonor, 8, 4)
			} else {
				total += pick(termOrHonor, 4, 2)
			}
		case shape.Kantsu, shape.Kan:
			if concealed {
				total += pick(termOrHonor, 32, 16)
			} else {
				total += pick(termOrHonor, 16, 8)
			}
		}
	}
	return total
}

func pick(cond bool, ifTrue, ifFalse int) int {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func sortedIDs(s shape.Shape) []int {
	ids := make([]int, len(s.Tiles))
	for i, t := range s.Tiles {
		ids[i] = t.ID
	}
	// Shapes are built with at most 4 tiles; a tiny insertion sort
	// avoids pulling in sort for three or four elements.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
