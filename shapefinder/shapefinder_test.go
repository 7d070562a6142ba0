package shapefinder

import (
	"testing"

	"riichi-go/hand"
)

func TestFindAllStandardWinningHand(t *testing.T) {
	h, err := hand.FromText("123m456p789s123s55z")
	if err != nil {
		t.Fatalf("FromText error: %v", err)
	}
	decomps := FindAll(h)
	if len(decomps) == 0 {
		t.Fatal("expected at least one decomposition for a complete hand")
	}
	for _, d := range decomps {
		total := 0
		for _, s := range d.Shapes {
			total += len(s.Tiles)
		}
		if total != 14 {
			t.Errorf("decomposition covers %d tiles, want 14", total)
		}
	}
}

func TestFindAllChiitoitsu(t *testing.T) {
	h, err := hand.FromText("11223344556677z")
	if err != nil {
		t.Fatalf("FromText error: %v", err)
	}
	decomps := FindAll(h)
	if len(decomps) == 0 {
		t.Fatal("expected at least one chiitoitsu decomposition")
	}
	found := false
	for _, d := range decomps {
		if len(d.Shapes) == 7 {
			found = true
		}
	}
	if !found {
		t.Error("expected a 7-pair decomposition")
	}
}

func TestFindAllRyanpeikouHasTwoDecompositions(t *testing.T) {
	// 112233m 112233p 22s: read once as four sequences (two identical
	// pairs of runs) plus the 22s pair, and once as seven distinct pairs.
	h, err := hand.FromText("112233m112233p22s")
	if err != nil {
		t.Fatalf("FromText error: %v", err)
	}
	decomps := FindAll(h)
	if len(decomps) != 2 {
		t.Fatalf("got %d decompositions, want 2", len(decomps))
	}
}
