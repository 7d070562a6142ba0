// Cross-package integration tests exercising the full
// hand -> yaku -> score pipeline end to end, one test per scenario,
// mirroring how the concrete scenarios are laid out.
package riichi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riichi-go/hand"
	"riichi-go/score"
	"riichi-go/shanten"
	"riichi-go/table"
	"riichi-go/tile"
	"riichi-go/yaku"
)

func mustHand(t *testing.T, text string) *hand.Hand {
	t.Helper()
	h, err := hand.FromText(text)
	require.NoError(t, err)
	return h
}

func mustTile(t *testing.T, text string) tile.Tile {
	t.Helper()
	tl, err := tile.FromText(text)
	require.NoError(t, err)
	return tl
}

func hasYaku(results []yaku.Result, substr string) bool {
	for _, r := range results {
		if strings.Contains(r.Name, substr) {
			return true
		}
	}
	return false
}

// S1: a thirteen-sided kokushi tenpai (one of each of the 13
// terminal/honor kinds) reports kokushi-shanten 0 and a non-negative
// standard shanten, and completing it yields the Kokushi yakuman.
func TestScenarioKokushiTenpaiAndWin(t *testing.T) {
	counts := [34]int{}
	for _, id := range []int{1, 9, 10, 18, 19, 27, 28, 29, 30, 31, 32, 33, 34} {
		counts[id-1] = 1
	}
	assert.Equal(t, 0, shanten.Kokushi(counts))
	assert.GreaterOrEqual(t, shanten.Standard(counts, 0), 0)

	h := mustHand(t, "19m19s19p1234567z")
	require.NoError(t, h.AddTile(mustTile(t, "1m")))

	tb := table.New(h)
	tb.WinningTile = mustTile(t, "1m")
	tb.IsTsumo = true

	results, total := yaku.Identify(tb)
	assert.True(t, hasYaku(results, "Kokushi"), "results: %v", results)
	assert.GreaterOrEqual(t, total, 13)
}

// S2: six pairs plus one lone kind is chiitoitsu-tenpai (shanten 0).
func TestScenarioChiitoitsuTenpai(t *testing.T) {
	h := mustHand(t, "1133557799p22s3z")
	assert.Equal(t, 0, shanten.Chiitoitsu(h.Count34(false)))
}

// S3: five pairs plus two lone kinds is one step further back
// (chiitoitsu-shanten 1).
func TestScenarioChiitoitsuIishanten(t *testing.T) {
	h := mustHand(t, "113355779p22s34z")
	assert.Equal(t, 1, shanten.Chiitoitsu(h.Count34(false)))
}

// S4: a closed tanyao/pinfu tsumo hand scores Menzen Tsumo + Pinfu +
// Tanyao for 3 han, 20 fu.
func TestScenarioTanyaoPinfuTsumo(t *testing.T) {
	h := mustHand(t, "23467m234567s88p5m")
	tb := table.New(h)
	tb.IsTsumo = true
	tb.WinningTile = mustTile(t, "5m")

	results, total, decomp := yaku.IdentifyWithDecomposition(tb)
	for _, name := range []string{"Menzen Tsumo", "Pinfu", "Tanyao"} {
		assert.True(t, hasYaku(results, name), "expected %q among %v", name, results)
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, 20, score.Fu(tb, decomp, results, h.IsClosed()))
}

// S5: a dealer tsumo with a double-East pair disqualified from Pinfu
// scores Menzen Tsumo alone, 1 han, floored to 30 fu, collecting 500
// from each of the three non-dealers (1500 total).
func TestScenarioDealerTsumoSplit(t *testing.T) {
	h := mustHand(t, "123m234s456789p11z")
	tb := table.New(h)
	tb.IsTsumo = true
	tb.WinningTile = mustTile(t, "9p")
	tb.SeatWind = table.East
	tb.PrevalentWind = table.East

	results, total, decomp := yaku.IdentifyWithDecomposition(tb)
	assert.True(t, hasYaku(results, "Menzen Tsumo"), "results: %v", results)
	assert.Equal(t, 1, total)

	fu := score.Fu(tb, decomp, results, h.IsClosed())
	assert.Equal(t, 30, fu)

	payment := score.Points(total, fu, tb.IsDealer(), tb.IsTsumo, tb.Honba, tb.Rules.KazoeYakuman)
	assert.Equal(t, 500, payment.TsumoNonDealerPay)
	assert.Equal(t, 1500, payment.TsumoNonDealerPay*3)
}

// S6: four concealed triplets plus a pair, won on the pair's own tile,
// is Suuankou (a yakuman) even though the completing tile is an honor
// the hand otherwise pairs on.
func TestScenarioSuuankouTankiRon(t *testing.T) {
	h := mustHand(t, "111m222555p777s22z")
	tb := table.New(h)
	tb.IsTsumo = false
	tb.WinningTile = mustTile(t, "2z")

	results, total := yaku.Identify(tb)
	assert.True(t, hasYaku(results, "Suuankou"), "results: %v", results)
	assert.GreaterOrEqual(t, total, 13)
}

// S7: a complete single-suit hand with no honors is Chinitsu.
func TestScenarioChinitsu(t *testing.T) {
	h := mustHand(t, "12322244467899p")
	tb := table.New(h)
	tb.WinningTile = mustTile(t, "9p")

	results, _ := yaku.Identify(tb)
	assert.True(t, hasYaku(results, "Chinitsu"), "results: %v", results)
}

// S8: the nine-gates shape (1112345678999 plus one more of the same
// suit) is Chuuren Poutou.
func TestScenarioChuurenPoutou(t *testing.T) {
	h := mustHand(t, "11123455678999p")
	tb := table.New(h)
	tb.WinningTile = mustTile(t, "5p")

	results, total := yaku.Identify(tb)
	assert.True(t, hasYaku(results, "Chuuren"), "results: %v", results)
	assert.GreaterOrEqual(t, total, 13)
}
