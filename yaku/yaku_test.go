package yaku

import (
	"testing"

	"riichi-go/hand"
	"riichi-go/table"
	"riichi-go/tile"
)

func mustHand(t *testing.T, text string) *hand.Hand {
	t.Helper()
	h, err := hand.FromText(text)
	if err != nil {
		t.Fatalf("FromText(%q) error: %v", text, err)
	}
	return h
}

func mustTile(t *testing.T, text string) tile.Tile {
	t.Helper()
	tl, err := tile.FromText(text)
	if err != nil {
		t.Fatalf("tile.FromText(%q) error: %v", text, err)
	}
	return tl
}

func findResult(results []Result, name string) (Result, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

func TestTanyaoPinfuTsumo(t *testing.T) {
	h := mustHand(t, "234m345p456s678s55p")
	tb := table.New(h)
	tb.IsTsumo = true
	tb.WinningTile = mustTile(t, "4s")

	results, total := Identify(tb)
	if total != 3 {
		t.Fatalf("total han = %d, want 3 (%v)", total, results)
	}
	for _, name := range []string{"Menzen Tsumo", "Tanyao", "Pinfu"} {
		if _, ok := findResult(results, name); !ok {
			t.Errorf("expected %q among results %v", name, results)
		}
	}
}

func TestYakuhaiDragonTriplet(t *testing.T) {
	h := mustHand(t, "234m456p789s555z11z")
	tb := table.New(h)
	tb.IsTsumo = false
	tb.WinningTile = mustTile(t, "9s")
	tb.SeatWind = table.South
	tb.PrevalentWind = table.East

	results, total := Identify(tb)
	if total != 1 {
		t.Fatalf("total han = %d, want 1 (%v)", total, results)
	}
	if _, ok := findResult(results, "Yakuhai (White)"); !ok {
		t.Errorf("expected Yakuhai (White) among results %v", results)
	}
}

func TestKokushiYakuman(t *testing.T) {
	h := mustHand(t, "119m19p19s1234567z")
	tb := table.New(h)
	tb.WinningTile = mustTile(t, "9s")

	results, total := Identify(tb)
	if total != 13 {
		t.Fatalf("total han = %d, want 13 (%v)", total, results)
	}
	if r, ok := findResult(results, "Kokushi Musou"); !ok || r.Han != 13 {
		t.Errorf("expected Kokushi Musou 13han, got %v", results)
	}
}

func TestNoYakuHandScoresZero(t *testing.T) {
	// 123m 456p 789s 123p, pair of North: terminals rule out Tanyao, the
	// pair isn't a yakuhai tile, and the winning tile lands in the
	// middle of 123p (a kanchan wait), which rules out Pinfu too.
	h := mustHand(t, "123m456p789s123p44z")
	tb := table.New(h)
	tb.IsTsumo = false
	tb.WinningTile = mustTile(t, "2p")
	tb.SeatWind = table.South
	tb.PrevalentWind = table.South

	results, total := Identify(tb)
	if total != 0 {
		t.Errorf("expected 0 han for a yaku-less hand, got %d (%v)", total, results)
	}
}
