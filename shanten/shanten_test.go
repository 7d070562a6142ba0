package shanten

import (
	"testing"

	"riichi-go/hand"
)

func counts(t *testing.T, text string) [34]int {
	t.Helper()
	h, err := hand.FromText(text)
	if err != nil {
		t.Fatalf("FromText(%q) error: %v", text, err)
	}
	return h.Count34(false)
}

func TestKokushiTenpai(t *testing.T) {
	c := counts(t, "19m19s19p1234567z")
	if got := Kokushi(c); got != 0 {
		t.Errorf("Kokushi shanten = %d, want 0", got)
	}
}

func TestChiitoitsuTenpai(t *testing.T) {
	c := counts(t, "1133557799p22s3z")
	if got := Chiitoitsu(c); got != 0 {
		t.Errorf("Chiitoitsu shanten = %d, want 0", got)
	}
}

func TestChiitoitsuIishanten(t *testing.T) {
	c := counts(t, "113355779p22s34z")
	if got := Chiitoitsu(c); got != 1 {
		t.Errorf("Chiitoitsu shanten = %d, want 1", got)
	}
}

func TestStandardTenpaiHand(t *testing.T) {
	// 123m 456p 789s 11z 55z: three complete groups and two pairs, a
	// 13-tile shanpon wait on 1z or 5z; it is tenpai (shanten 0), not a
	// 14-tile winning hand.
	c := counts(t, "123m456p789s11z55z")
	if got := Standard(c, 0); got != 0 {
		t.Errorf("Standard shanten = %d, want 0 (tenpai)", got)
	}
}

func TestStandardWinningHand(t *testing.T) {
	c := counts(t, "123m456p789s123s55z")
	if got := Standard(c, 0); got != Complete {
		t.Errorf("Standard shanten = %d, want %d (complete)", got, Complete)
	}
}

func TestFastStandardAgreesWithClassical(t *testing.T) {
	texts := []string{
		"123m456p789s11z55z",
		"123m456p789s123s55z",
		"113355779p22s34z",
	}
	for _, text := range texts {
		c := counts(t, text)
		classical := Standard(c, 0)
		fast := FastStandard(c, 0)
		if classical != fast {
			t.Errorf("%q: classical=%d fast=%d, want equal", text, classical, fast)
		}
	}
}

func TestAllPrefersLowestAcrossPatterns(t *testing.T) {
	c := counts(t, "19m19s19p1234567z")
	if got := All(c, 0, true); got != 0 {
		t.Errorf("All shanten = %d, want 0 (kokushi tenpai dominates)", got)
	}
}
