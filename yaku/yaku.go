// Package yaku identifies every scoring pattern (yaku) a winning hand
// satisfies, yakuman first, then regular yaku, then dora, producing
// the total han a hand is worth.
package yaku

import (
	"fmt"
	"sort"
	"strings"

	"riichi-go/hand"
	"riichi-go/shape"
	"riichi-go/shapefinder"
	"riichi-go/table"
	"riichi-go/tile"
)

// Result names one identified yaku and the han it contributes.
type Result struct {
	Name string
	Han  int
}

// Identify evaluates every yaku against t.Hand under the conditions
// recorded on t (riichi/ippatsu/tsumo/seat and round wind/dora
// indicators), returning the full list of identified yaku and their
// combined han. An empty result with han 0 means the hand has no yaku
// and cannot legally win.
func Identify(t *table.Table) ([]Result, int) {
	results, total, _ := IdentifyWithDecomposition(t)
	return results, total
}

// IdentifyWithDecomposition is Identify, plus the exact decomposition
// the winning reading was scored against — the same 14 tiles can admit
// more than one legal grouping, so a caller computing fu (which
// depends on which shape the winning tile completed) needs the reading
// this package actually picked, not an arbitrary other one.
// The returned decomposition is the zero value for yakuman and
// chiitoitsu hands, neither of which scores fu by shape.
func IdentifyWithDecomposition(t *table.Table) ([]Result, int, shapefinder.Decomposition) {
	allTiles := allHandTiles(t.Hand)
	if n := t.Hand.TileCount(); n != 14 {
		t.AddLog("cannot evaluate yaku: hand has %d tiles, want 14", n)
		return nil, 0, shapefinder.Decomposition{}
	}
	isMenzen := t.Hand.IsClosed()
	decomps := shapefinder.FindAll(t.Hand)

	if yakuman := identifyYakuman(t, allTiles, isMenzen, decomps); len(yakuman) > 0 {
		total := sumHan(yakuman)
		t.AddLog("yakuman identified: %v (%d han)", yakuman, total)
		return yakuman, total, shapefinder.Decomposition{}
	}

	results, winner := bestRegularYaku(t, allTiles, isMenzen, decomps)
	final, total := finalize(t, results)
	return final, total, winner
}

// identifyYakuman runs the structural yakuman checks (luck-based ones
// such as Tenhou/Chihou require tracking whether this is any player's
// very first discard-free draw, which this single-hand-analysis engine
// does not model — see DESIGN.md).
func identifyYakuman(t *table.Table, allTiles []tile.Tile, isMenzen bool, decomps []shapefinder.Decomposition) []Result {
	var yakuman []Result

	if r, ok := checkKokushi(t, allTiles); ok {
		addUniqueYakuman(&yakuman, r)
	}
	if r, ok := checkSuuankou(t, decomps, isMenzen); ok {
		addUniqueYakuman(&yakuman, r)
	}
	if r, ok := checkDaisangen(decomps); ok {
		addUniqueYakuman(&yakuman, r)
	}

	daisuushiiFound := false
	if r, ok := checkDaisuushii(decomps); ok {
		addUniqueYakuman(&yakuman, r)
		daisuushiiFound = true
	}
	if !daisuushiiFound {
		if r, ok := checkShousuushii(decomps); ok {
			addUniqueYakuman(&yakuman, r)
		}
	}

	if r, ok := checkTsuuiisou(allTiles, decomps); ok {
		addUniqueYakuman(&yakuman, r)
	}
	if r, ok := checkChinroutou(allTiles, decomps); ok {
		addUniqueYakuman(&yakuman, r)
	}
	if r, ok := checkRyuuiisou(allTiles, decomps); ok {
		addUniqueYakuman(&yakuman, r)
	}
	if r, ok := checkChuurenPoutou(isMenzen, allTiles, t.WinningTile); ok {
		addUniqueYakuman(&yakuman, r)
	}
	if r, ok := checkSuukantsu(t.Hand); ok {
		addUniqueYakuman(&yakuman, r)
	}

	return yakuman
}

// bestRegularYaku evaluates the regular (non-yakuman) yaku over every
// candidate decomposition and keeps whichever reading of the hand
// scores the most han — the same hand can often be read more than one
// way (e.g. which tiles form the pair vs. a triplet), and the
// decomposition a human would actually declare is the one worth the
// most, not just the first one found.
func bestRegularYaku(t *table.Table, allTiles []tile.Tile, isMenzen bool, decomps []shapefinder.Decomposition) ([]Result, shapefinder.Decomposition) {
	var best []Result
	var bestDecomp shapefinder.Decomposition
	bestHan := -1

	tried := false
	for _, d := range decomps {
		if !isStandardPattern(d) {
			continue
		}
		tried = true
		results := append(commonYaku(t, allTiles, isMenzen), standardYaku(t, allTiles, isMenzen, d)...)
		if han := sumHan(results); han > bestHan {
			bestHan = han
			best = results
			bestDecomp = d
		}
	}
	if !tried {
		best = commonYaku(t, allTiles, isMenzen)
		bestHan = sumHan(best)
	}

	if isChiitoitsuPattern(decomps) {
		results := append(commonYaku(t, allTiles, isMenzen), chiitoitsuYaku(isMenzen)...)
		if han := sumHan(results); han > bestHan {
			best = results
			bestDecomp = shapefinder.Decomposition{}
		}
	}

	return best, bestDecomp
}

// finalize applies dora, then dedups by name (Yakuhai entries are
// allowed to repeat under distinct names; everything else must be
// unique), matching how a real scoresheet never double-counts a yaku.
func finalize(t *table.Table, results []Result) ([]Result, int) {
	regularHan := sumHan(results)
	if regularHan > 0 {
		if doraHan := t.CountDora() + t.CountRedDora(); doraHan > 0 {
			results = append(results, Result{fmt.Sprintf("Dora %d", doraHan), doraHan})
		}
	}

	final := make([]Result, 0, len(results))
	seen := make(map[string]bool)
	total := 0
	for _, r := range results {
		if seen[r.Name] {
			continue
		}
		if !strings.HasPrefix(r.Name, "Yakuhai") {
			seen[r.Name] = true
		}
		final = append(final, r)
		total += r.Han
	}

	if total == 0 || (len(final) == 1 && strings.HasPrefix(final[0].Name, "Dora")) {
		return nil, 0
	}
	return final, total
}

func sumHan(results []Result) int {
	total := 0
	for _, r := range results {
		total += r.Han
	}
	return total
}

func addUniqueYakuman(list *[]Result, r Result) {
	for i, existing := range *list {
		if existing.Name == r.Name {
			if r.Han > existing.Han {
				(*list)[i] = r
			}
			return
		}
		if strings.HasPrefix(r.Name, existing.Name) || strings.HasPrefix(existing.Name, r.Name) {
			if r.Han > existing.Han {
				(*list)[i] = r
			}
			return
		}
	}
	*list = append(*list, r)
}

// allHandTiles flattens a hand's concealed tiles and called-meld tiles
// into one slice, in hand-sorted-then-meld order.
func allHandTiles(h *hand.Hand) []tile.Tile {
	all := append([]tile.Tile(nil), h.Tiles()...)
	for _, m := range h.Melds() {
		all = append(all, m.Tiles...)
	}
	return all
}

func containsID(tiles []tile.Tile, id int) bool {
	for _, t := range tiles {
		if t.ID == id {
			return true
		}
	}
	return false
}

// isStandardPattern reports whether a decomposition is a 4-groups-1-pair
// reading (as opposed to the chiitoitsu or kokushi readings shapefinder
// can also produce for the same 14 tiles).
func isStandardPattern(d shapefinder.Decomposition) bool {
	groups, pairs := 0, 0
	for _, s := range d.Shapes {
		switch {
		case isGroupKind(s.Kind):
			groups++
		case s.Kind == shape.Toitsu:
			pairs++
		case s.Kind == shape.Single:
			return false
		}
	}
	return groups == 4 && pairs == 1
}

func isChiitoitsuPattern(decomps []shapefinder.Decomposition) bool {
	for _, d := range decomps {
		if len(d.Shapes) == 7 {
			allPairs := true
			for _, s := range d.Shapes {
				if s.Kind != shape.Toitsu {
					allPairs = false
					break
				}
			}
			if allPairs {
				return true
			}
		}
	}
	return false
}

func isGroupKind(k shape.Kind) bool {
	switch k {
	case shape.Shuntsu, shape.Koutsu, shape.Kantsu, shape.Chi, shape.Pon, shape.Kan:
		return true
	default:
		return false
	}
}

func isOpenKind(k shape.Kind) bool {
	return k == shape.Chi || k == shape.Pon || k == shape.Kan
}

func isTripletKind(k shape.Kind) bool {
	return k == shape.Koutsu || k == shape.Kantsu || k == shape.Pon || k == shape.Kan
}

// concealedTripletCount counts triplets/kans in the decomposition that
// count as "concealed" for Sanankou/Suuankou purposes: a closed kan
// always counts, a closed triplet counts unless it was completed by
// ronning the winning tile (you can't claim credit for concealing the
// very tile an opponent discarded).
func concealedTripletCount(d shapefinder.Decomposition, winningTileID int, isTsumo bool) int {
	count := 0
	for _, s := range d.Shapes {
		if !isTripletKind(s.Kind) || isOpenKind(s.Kind) {
			continue
		}
		if s.Kind == shape.Koutsu && !isTsumo && containsID(s.Tiles, winningTileID) {
			continue
		}
		count++
	}
	return count
}

func pairShape(d shapefinder.Decomposition) (shape.Shape, bool) {
	for _, s := range d.Shapes {
		if s.Kind == shape.Toitsu {
			return s, true
		}
	}
	return shape.Shape{}, false
}

func isDragon(t tile.Tile) bool { return t.Suit() == tile.Dragon }
func isWind(t tile.Tile) bool   { return t.Suit() == tile.Wind }

// == YAKUMAN ==

func checkKokushi(t *table.Table, allTiles []tile.Tile) (Result, bool) {
	for _, tl := range allTiles {
		if !tl.IsTerminalOrHonor() {
			return Result{}, false
		}
	}
	kinds := make(map[int]int)
	for _, tl := range allTiles {
		kinds[tl.ID]++
	}
	if len(kinds) != 13 {
		return Result{}, false
	}
	if kinds[t.WinningTile.ID] == 2 {
		return Result{"Kokushi Musou Juusanmenmachi", 26}, true
	}
	return Result{"Kokushi Musou", 13}, true
}

func checkSuuankou(t *table.Table, decomps []shapefinder.Decomposition, isMenzen bool) (Result, bool) {
	if !isMenzen {
		return Result{}, false
	}
	for _, d := range decomps {
		if !isStandardPattern(d) {
			continue
		}
		if concealedTripletCount(d, t.WinningTile.ID, t.IsTsumo) != 4 {
			continue
		}
		if pair, ok := pairShape(d); ok && containsID(pair.Tiles, t.WinningTile.ID) {
			return Result{"Suuankou Tanki", 26}, true
		}
		return Result{"Suuankou", 13}, true
	}
	return Result{}, false
}

func checkDaisangen(decomps []shapefinder.Decomposition) (Result, bool) {
	for _, d := range decomps {
		if !isStandardPattern(d) {
			continue
		}
		found := map[int]bool{}
		for _, s := range d.Shapes {
			if isTripletKind(s.Kind) && len(s.Tiles) > 0 && isDragon(s.Tiles[0]) {
				found[s.Tiles[0].Number()] = true
			}
		}
		if len(found) == 3 {
			return Result{"Daisangen", 13}, true
		}
	}
	return Result{}, false
}

func checkShousuushii(decomps []shapefinder.Decomposition) (Result, bool) {
	for _, d := range decomps {
		if !isStandardPattern(d) {
			continue
		}
		windTriplets := map[int]bool{}
		pairIsWind, pairWind := false, 0
		for _, s := range d.Shapes {
			if len(s.Tiles) == 0 {
				continue
			}
			if isTripletKind(s.Kind) && isWind(s.Tiles[0]) {
				windTriplets[s.Tiles[0].Number()] = true
			}
			if s.Kind == shape.Toitsu && isWind(s.Tiles[0]) {
				pairIsWind, pairWind = true, s.Tiles[0].Number()
			}
		}
		if len(windTriplets) == 3 && pairIsWind && !windTriplets[pairWind] {
			return Result{"Shousuushii", 13}, true
		}
	}
	return Result{}, false
}

func checkDaisuushii(decomps []shapefinder.Decomposition) (Result, bool) {
	for _, d := range decomps {
		if !isStandardPattern(d) {
			continue
		}
		windTriplets := map[int]bool{}
		for _, s := range d.Shapes {
			if len(s.Tiles) > 0 && isTripletKind(s.Kind) && isWind(s.Tiles[0]) {
				windTriplets[s.Tiles[0].Number()] = true
			}
		}
		if len(windTriplets) == 4 {
			return Result{"Daisuushii", 26}, true
		}
	}
	return Result{}, false
}

func checkTsuuiisou(allTiles []tile.Tile, decomps []shapefinder.Decomposition) (Result, bool) {
	for _, tl := range allTiles {
		if !tl.IsHonor() {
			return Result{}, false
		}
	}
	if isChiitoitsuPattern(decomps) || anyStandardPattern(decomps) {
		return Result{"Tsuuiisou", 13}, true
	}
	return Result{}, false
}

func checkChinroutou(allTiles []tile.Tile, decomps []shapefinder.Decomposition) (Result, bool) {
	for _, tl := range allTiles {
		if !tl.IsTerminal() {
			return Result{}, false
		}
	}
	if anyStandardPattern(decomps) {
		return Result{"Chinroutou", 13}, true
	}
	return Result{}, false
}

func checkRyuuiisou(allTiles []tile.Tile, decomps []shapefinder.Decomposition) (Result, bool) {
	greenSou := map[int]bool{2: true, 3: true, 4: true, 6: true, 8: true}
	for _, tl := range allTiles {
		switch tl.Suit() {
		case tile.Sou:
			if !greenSou[tl.Number()] {
				return Result{}, false
			}
		case tile.Dragon:
			if tl.Number() != 2 { // Green dragon
				return Result{}, false
			}
		default:
			return Result{}, false
		}
	}
	if isChiitoitsuPattern(decomps) || anyStandardPattern(decomps) {
		return Result{"Ryuuiisou", 13}, true
	}
	return Result{}, false
}

func checkChuurenPoutou(isMenzen bool, allTiles []tile.Tile, winningTile tile.Tile) (Result, bool) {
	if !isMenzen || len(allTiles) != 14 {
		return Result{}, false
	}
	suit := allTiles[0].Suit()
	if suit == tile.Wind || suit == tile.Dragon {
		return Result{}, false
	}
	var counts [9]int
	for _, tl := range allTiles {
		if tl.Suit() != suit {
			return Result{}, false
		}
		counts[tl.Number()-1]++
	}
	base := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	extra := -1
	for i := 0; i < 9 && extra < 0; i++ {
		if counts[i] == 0 {
			continue
		}
		trial := counts
		trial[i]--
		if trial == base {
			extra = i + 1
		}
	}
	if extra < 0 {
		return Result{}, false
	}
	if winningTile.Suit() == suit && winningTile.Number() == extra {
		return Result{"Junsei Chuuren Poutou", 26}, true
	}
	return Result{"Chuuren Poutou", 13}, true
}

func checkSuukantsu(h *hand.Hand) (Result, bool) {
	kans := 0
	for _, m := range h.Melds() {
		if m.Kind == shape.Kan {
			kans++
		}
	}
	if kans == 4 {
		return Result{"Suukantsu", 13}, true
	}
	return Result{}, false
}

func anyStandardPattern(decomps []shapefinder.Decomposition) bool {
	for _, d := range decomps {
		if isStandardPattern(d) {
			return true
		}
	}
	return false
}

// == DECOMPOSITION-INDEPENDENT (COMMON) YAKU ==

func commonYaku(t *table.Table, allTiles []tile.Tile, isMenzen bool) []Result {
	var results []Result

	if t.IsRiichi {
		results = append(results, Result{"Riichi", 1})
		if t.IsDoubleRiichi {
			results = append(results, Result{"Double Riichi", 1})
		}
		if t.IsIppatsu {
			results = append(results, Result{"Ippatsu", 1})
		}
	}

	if t.IsTsumo && isMenzen {
		results = append(results, Result{"Menzen Tsumo", 1})
	}

	simple := true
	for _, tl := range allTiles {
		if !tl.IsSimple() {
			simple = false
			break
		}
	}
	if simple {
		results = append(results, Result{"Tanyao", 1})
	}

	if t.IsHaiteiHoutei {
		if t.IsTsumo {
			results = append(results, Result{"Haitei Raoyue", 1})
		} else {
			results = append(results, Result{"Houtei Raoyui", 1})
		}
	}
	if t.IsRinshanWin && t.IsTsumo {
		results = append(results, Result{"Rinshan Kaihou", 1})
	}
	if t.IsChankanOpportunity && !t.IsTsumo {
		results = append(results, Result{"Chankan", 1})
	}

	if r, ok := checkHonitsuChinitsu(allTiles, isMenzen); ok {
		results = append(results, r)
	}

	return results
}

func checkHonitsuChinitsu(allTiles []tile.Tile, isMenzen bool) (Result, bool) {
	targetSuit := tile.Suit(-1)
	hasHonor, hasNumber := false, false
	for _, tl := range allTiles {
		if tl.IsHonor() {
			hasHonor = true
			continue
		}
		hasNumber = true
		if targetSuit == tile.Suit(-1) {
			targetSuit = tl.Suit()
		} else if tl.Suit() != targetSuit {
			return Result{}, false
		}
	}
	if !hasNumber {
		return Result{}, false
	}
	if hasHonor {
		han := 2
		if isMenzen {
			han = 3
		}
		return Result{"Honitsu", han}, true
	}
	han := 5
	if isMenzen {
		han = 6
	}
	return Result{"Chinitsu", han}, true
}

// == STANDARD-PATTERN (DECOMPOSITION-DEPENDENT) YAKU ==

func standardYaku(t *table.Table, allTiles []tile.Tile, isMenzen bool, d shapefinder.Decomposition) []Result {
	var results []Result

	if isMenzen {
		if r, ok := checkPinfu(t, d); ok {
			results = append(results, r)
		}
	}

	results = append(results, checkYakuhai(t, d)...)

	if r, ok := checkToitoi(d); ok {
		results = append(results, r)
	}
	if r, ok := checkSanankou(t, d); ok {
		results = append(results, r)
	}
	if r, ok := checkSanshokuDoukou(d); ok {
		results = append(results, r)
	}
	if r, ok := checkShousangen(d); ok {
		results = append(results, r)
	}
	if r, ok := checkSankantsu(t.Hand); ok {
		results = append(results, r)
	}
	if r, ok := checkHonroutou(allTiles); ok {
		results = append(results, r)
	}

	if r, ok := checkSanshokuDoujun(d, isMenzen); ok {
		results = append(results, r)
	}
	if r, ok := checkIttsuu(d, isMenzen); ok {
		results = append(results, r)
	}

	if isMenzen {
		if r, ok := checkRyanpeikou(d); ok {
			results = append(results, r)
		} else if r, ok := checkIipeikou(d); ok {
			results = append(results, r)
		}
	}

	if r, ok := checkJunchan(d, isMenzen); ok {
		results = append(results, r)
	}

	return results
}

func sequences(d shapefinder.Decomposition) []shape.Shape {
	var seqs []shape.Shape
	for _, s := range d.Shapes {
		if s.Kind == shape.Shuntsu || s.Kind == shape.Chi {
			seqs = append(seqs, s)
		}
	}
	return seqs
}

func triplets(d shapefinder.Decomposition) []shape.Shape {
	var trips []shape.Shape
	for _, s := range d.Shapes {
		if isTripletKind(s.Kind) {
			trips = append(trips, s)
		}
	}
	return trips
}

func sortedIDs(s shape.Shape) []int {
	ids := make([]int, len(s.Tiles))
	for i, t := range s.Tiles {
		ids[i] = t.ID
	}
	sort.Ints(ids)
	return ids
}

func sequencesEqual(a, b shape.Shape) bool {
	ai, bi := sortedIDs(a), sortedIDs(b)
	if len(ai) != len(bi) {
		return false
	}
	for i := range ai {
		if ai[i] != bi[i] {
			return false
		}
	}
	return true
}

func checkPinfu(t *table.Table, d shapefinder.Decomposition) (Result, bool) {
	seqs := sequences(d)
	if len(seqs) != 4 {
		return Result{}, false
	}
	pair, ok := pairShape(d)
	if !ok || len(pair.Tiles) == 0 {
		return Result{}, false
	}
	pairTile := pair.Tiles[0]
	if isDragon(pairTile) {
		return Result{}, false
	}
	if isWind(pairTile) && (pairTile.Number() == int(t.SeatWind) || pairTile.Number() == int(t.PrevalentWind)) {
		return Result{}, false
	}

	for _, s := range seqs {
		if !containsID(s.Tiles, t.WinningTile.ID) {
			continue
		}
		ids := sortedIDs(s)
		low, mid, high := ids[0], ids[1], ids[2]
		lowRank := tile.Tile{ID: low}.Number()
		switch t.WinningTile.ID {
		case mid:
			return Result{}, false // kanchan
		case low:
			if lowRank == 7 { // 7-8-9 waiting on 7: a one-sided edge wait
				return Result{}, false
			}
		case high:
			if lowRank == 1 { // 1-2-3 waiting on 3: a one-sided edge wait
				return Result{}, false
			}
		}
		return Result{"Pinfu", 1}, true
	}
	return Result{}, false
}

func checkYakuhai(t *table.Table, d shapefinder.Decomposition) []Result {
	var results []Result
	for _, s := range triplets(d) {
		if len(s.Tiles) == 0 {
			continue
		}
		tl := s.Tiles[0]
		switch {
		case isDragon(tl):
			results = append(results, Result{fmt.Sprintf("Yakuhai (%s)", tl.DisplayName()), 1})
		case isWind(tl):
			isSeat := tl.Number() == int(t.SeatWind)
			isPrevalent := tl.Number() == int(t.PrevalentWind)
			switch {
			case isSeat && isPrevalent:
				results = append(results, Result{fmt.Sprintf("Yakuhai (Seat & Round %s)", tl.DisplayName()), 2})
			case isSeat:
				results = append(results, Result{fmt.Sprintf("Yakuhai (Seat %s)", tl.DisplayName()), 1})
			case isPrevalent:
				results = append(results, Result{fmt.Sprintf("Yakuhai (Round %s)", tl.DisplayName()), 1})
			}
		}
	}
	return results
}

func checkToitoi(d shapefinder.Decomposition) (Result, bool) {
	if len(triplets(d)) == 4 {
		return Result{"Toitoi", 2}, true
	}
	return Result{}, false
}

func checkSanankou(t *table.Table, d shapefinder.Decomposition) (Result, bool) {
	if concealedTripletCount(d, t.WinningTile.ID, t.IsTsumo) == 3 {
		return Result{"Sanankou", 2}, true
	}
	return Result{}, false
}

func checkSanshokuDoukou(d shapefinder.Decomposition) (Result, bool) {
	byNumber := map[int]map[tile.Suit]bool{}
	for _, s := range triplets(d) {
		if len(s.Tiles) == 0 || s.Tiles[0].IsHonor() {
			continue
		}
		tl := s.Tiles[0]
		if byNumber[tl.Number()] == nil {
			byNumber[tl.Number()] = map[tile.Suit]bool{}
		}
		byNumber[tl.Number()][tl.Suit()] = true
	}
	for _, suits := range byNumber {
		if suits[tile.Man] && suits[tile.Pin] && suits[tile.Sou] {
			return Result{"Sanshoku Doukou", 2}, true
		}
	}
	return Result{}, false
}

func checkShousangen(d shapefinder.Decomposition) (Result, bool) {
	dragonTriplets := map[int]bool{}
	pairIsDragon, pairVal := false, 0
	for _, s := range d.Shapes {
		if len(s.Tiles) == 0 || !isDragon(s.Tiles[0]) {
			continue
		}
		if isTripletKind(s.Kind) {
			dragonTriplets[s.Tiles[0].Number()] = true
		}
		if s.Kind == shape.Toitsu {
			pairIsDragon, pairVal = true, s.Tiles[0].Number()
		}
	}
	if len(dragonTriplets) == 2 && pairIsDragon && !dragonTriplets[pairVal] {
		return Result{"Shousangen", 2}, true
	}
	return Result{}, false
}

func checkSankantsu(h *hand.Hand) (Result, bool) {
	kans := 0
	for _, m := range h.Melds() {
		if m.Kind == shape.Kan {
			kans++
		}
	}
	if kans == 3 {
		return Result{"Sankantsu", 2}, true
	}
	return Result{}, false
}

func checkHonroutou(allTiles []tile.Tile) (Result, bool) {
	for _, tl := range allTiles {
		if tl.IsSimple() {
			return Result{}, false
		}
	}
	return Result{"Honroutou", 2}, true
}

func checkSanshokuDoujun(d shapefinder.Decomposition, isMenzen bool) (Result, bool) {
	seqs := sequences(d)
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			for k := j + 1; k < len(seqs); k++ {
				a, b, c := seqs[i], seqs[j], seqs[k]
				if len(a.Tiles) == 0 || len(b.Tiles) == 0 || len(c.Tiles) == 0 {
					continue
				}
				an, bn, cn := lowNumber(a), lowNumber(b), lowNumber(c)
				if an != bn || an != cn {
					continue
				}
				suits := map[tile.Suit]bool{a.Tiles[0].Suit(): true, b.Tiles[0].Suit(): true, c.Tiles[0].Suit(): true}
				if suits[tile.Man] && suits[tile.Pin] && suits[tile.Sou] {
					han := 1
					if isMenzen {
						han = 2
					}
					return Result{"Sanshoku Doujun", han}, true
				}
			}
		}
	}
	return Result{}, false
}

func lowNumber(s shape.Shape) int {
	ids := sortedIDs(s)
	return tile.Tile{ID: ids[0]}.Number()
}

func checkIttsuu(d shapefinder.Decomposition, isMenzen bool) (Result, bool) {
	bySuit := map[tile.Suit]map[int]bool{}
	for _, s := range sequences(d) {
		if len(s.Tiles) == 0 || s.Tiles[0].IsHonor() {
			continue
		}
		suit := s.Tiles[0].Suit()
		if bySuit[suit] == nil {
			bySuit[suit] = map[int]bool{}
		}
		bySuit[suit][lowNumber(s)] = true
	}
	for _, starts := range bySuit {
		if starts[1] && starts[4] && starts[7] {
			han := 1
			if isMenzen {
				han = 2
			}
			return Result{"Ittsuu", han}, true
		}
	}
	return Result{}, false
}

func checkRyanpeikou(d shapefinder.Decomposition) (Result, bool) {
	seqs := sequences(d)
	if len(seqs) != 4 {
		return Result{}, false
	}
	sort.Slice(seqs, func(i, j int) bool {
		return sortedIDs(seqs[i])[0] < sortedIDs(seqs[j])[0]
	})
	if sequencesEqual(seqs[0], seqs[1]) && sequencesEqual(seqs[2], seqs[3]) && !sequencesEqual(seqs[0], seqs[2]) {
		return Result{"Ryanpeikou", 3}, true
	}
	return Result{}, false
}

func checkIipeikou(d shapefinder.Decomposition) (Result, bool) {
	seqs := sequences(d)
	pairs := 0
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			if sequencesEqual(seqs[i], seqs[j]) {
				pairs++
			}
		}
	}
	if pairs == 1 {
		return Result{"Iipeikou", 1}, true
	}
	return Result{}, false
}

func checkJunchan(d shapefinder.Decomposition, isMenzen bool) (Result, bool) {
	for _, s := range d.Shapes {
		hasTerminal := false
		for _, tl := range s.Tiles {
			if tl.IsHonor() {
				return Result{}, false
			}
			if tl.IsTerminal() {
				hasTerminal = true
			}
		}
		if !hasTerminal {
			return Result{}, false
		}
	}
	han := 2
	if isMenzen {
		han = 3
	}
	return Result{"Junchan Taiyou", han}, true
}

// == CHIITOITSU-PATTERN YAKU ==

func chiitoitsuYaku(isMenzen bool) []Result {
	if !isMenzen {
		return nil
	}
	return []Result{{"Chiitoitsu", 2}}
}
