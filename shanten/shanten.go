// Package shanten implements the classical recursive shanten
// calculator (the correctness oracle, C4) and a process-wide memoized
// fast-path wrapper around it (C5), for all three hand shapes: the
// standard 4-groups-1-pair pattern, chiitoitsu, and kokushi musou.
package shanten

import "sync"

// Complete is the sentinel shanten value for a finished winning hand.
const Complete = -1

// Kokushi returns the shanten of the thirteen-orphans pattern: for
// each of the 13 terminal/honor kinds, one copy advances the hand one
// step closer, and a duplicate among them serves as the required pair.
func Kokushi(counts [34]int) int {
	terminalsAndHonors := []int{0, 8, 9, 17, 18, 26, 27, 28, 29, 30, 31, 32, 33}

	distinct := 0
	hasPair := false
	for _, idx := range terminalsAndHonors {
		if counts[idx] >= 1 {
			distinct++
		}
		if counts[idx] >= 2 {
			hasPair = true
		}
	}

	shanten := 13 - distinct
	if hasPair {
		shanten--
	}
	return shanten
}

// Chiitoitsu returns the shanten of the seven-distinct-pairs pattern.
func Chiitoitsu(counts [34]int) int {
	pairs := 0
	kinds := 0
	for _, c := range counts {
		if c >= 1 {
			kinds++
		}
		if c >= 2 {
			pairs++
		}
	}
	shanten := 6 - pairs
	if missing := 7 - kinds; missing > 0 {
		shanten += missing
	}
	return shanten
}

// Standard returns the shanten of the 4-groups-1-pair pattern, given
// the concealed 34-count array and the number of groups already
// locked in by called melds (each meld counts as one complete group
// towards the 4 required).
func Standard(counts [34]int, lockedGroups int) int {
	working := counts
	best := 8
	search(&working, 0, lockedGroups, 0, 0, &best)
	return best
}

// search walks positions 0..33, at each one trying every way to
// extract a complete group, a partial group, or the hand's one pair
// from the tiles remaining there, backtracking (make-then-unmake) so
// every assignment of the same physical tiles to different roles is
// explored. groups+partials is capped at 4 (the four group slots);
// the pair is tracked separately since it fills a slot of its own.
func search(counts *[34]int, pos, groups, partials, pairs int, best *int) {
	if pos >= 34 {
		shanten := 8 - 2*groups - partials - pairs
		if shanten < *best {
			*best = shanten
		}
		return
	}

	if counts[pos] == 0 {
		search(counts, pos+1, groups, partials, pairs, best)
		return
	}

	canGrowBlocks := groups+partials < 4
	isNumberSuit := pos < 27
	rankInSuit := pos % 9

	if counts[pos] >= 3 && canGrowBlocks {
		counts[pos] -= 3
		search(counts, pos, groups+1, partials, pairs, best)
		counts[pos] += 3
	}

	if isNumberSuit && rankInSuit <= 6 && canGrowBlocks &&
		counts[pos] >= 1 && counts[pos+1] >= 1 && counts[pos+2] >= 1 {
		counts[pos]--
		counts[pos+1]--
		counts[pos+2]--
		search(counts, pos, groups+1, partials, pairs, best)
		counts[pos]++
		counts[pos+1]++
		counts[pos+2]++
	}

	if counts[pos] >= 2 {
		if pairs == 0 {
			counts[pos] -= 2
			search(counts, pos, groups, partials, 1, best)
			counts[pos] += 2
		}
		if canGrowBlocks {
			counts[pos] -= 2
			search(counts, pos, groups, partials+1, pairs, best)
			counts[pos] += 2
		}
	}

	if isNumberSuit && canGrowBlocks {
		if rankInSuit <= 7 && counts[pos] >= 1 && counts[pos+1] >= 1 {
			counts[pos]--
			counts[pos+1]--
			search(counts, pos, groups, partials+1, pairs, best)
			counts[pos]++
			counts[pos+1]++
		}
		if rankInSuit <= 6 && counts[pos] >= 1 && counts[pos+2] >= 1 {
			counts[pos]--
			counts[pos+2]--
			search(counts, pos, groups, partials+1, pairs, best)
			counts[pos]++
			counts[pos+2]++
		}
	}

	// Leave this tile unconsumed (a floater) and move on; without this
	// branch the search could never skip a tile that's better left
	// unused (e.g. a fourth copy once a triplet's already been taken).
	search(counts, pos+1, groups, partials, pairs, best)
}

// All returns the three-way minimum the hand actually plays by:
// standard, chiitoitsu (only if fully concealed), and kokushi (only if
// fully concealed). Called-meld hands can never complete chiitoitsu or
// kokushi, so the two closed-hand-only patterns are skipped.
func All(counts [34]int, lockedGroups int, fullyConcealed bool) int {
	best := Standard(counts, lockedGroups)
	if fullyConcealed {
		if c := Chiitoitsu(counts); c < best {
			best = c
		}
		if k := Kokushi(counts); k < best {
			best = k
		}
	}
	return best
}

type fastKey struct {
	counts [34]int
	locked int
}

var (
	fastMu    sync.Mutex
	fastOnce  sync.Once
	fastCache map[fastKey]int
)

// FastStandard is a memoized wrapper around Standard: the first call
// for a given (counts, lockedGroups) pair computes it via the
// classical recursive search; every subsequent call with the same key
// — across the whole process — is an O(1) cache hit. The cache is
// process-wide and starts empty: entries are added under a mutex on
// each miss, so nothing is precomputed and there are no per-suit
// lookup tables.
func FastStandard(counts [34]int, lockedGroups int) int {
	fastOnce.Do(func() {
		fastCache = make(map[fastKey]int)
	})

	key := fastKey{counts: counts, locked: lockedGroups}

	fastMu.Lock()
	if v, ok := fastCache[key]; ok {
		fastMu.Unlock()
		return v
	}
	fastMu.Unlock()

	v := Standard(counts, lockedGroups)

	fastMu.Lock()
	fastCache[key] = v
	fastMu.Unlock()

	return v
}
