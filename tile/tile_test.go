package tile

import "testing"

func TestFromText(t *testing.T) {
	cases := []struct {
		text    string
		wantID  int
		wantRed bool
	}{
		{"1m", 1, false},
		{"9m", 9, false},
		{"0m", 5, true},
		{"5p", 14, false},
		{"0s", 23, true},
		{"1z", 28, false},
		{"4z", 31, false},
		{"5z", 32, false},
		{"7z", 34, false},
	}
	for _, c := range cases {
		got, err := FromText(c.text)
		if err != nil {
			t.Fatalf("FromText(%q) error: %v", c.text, err)
		}
		if got.ID != c.wantID || got.IsRed != c.wantRed {
			t.Errorf("FromText(%q) = %+v, want {ID:%d IsRed:%v}", c.text, got, c.wantID, c.wantRed)
		}
	}
}

func TestFromTextErrors(t *testing.T) {
	bad := []string{"", "1", "111m", "1x", "8z", "0z"}
	for _, text := range bad {
		if _, err := FromText(text); err == nil {
			t.Errorf("FromText(%q) expected error, got nil", text)
		}
	}
}

func TestNextNumberLessThan9(t *testing.T) {
	tl := Tile{ID: 3}
	got, ok := tl.Next(false)
	if !ok || got.ID != 4 {
		t.Fatalf("Next(false) = %+v, %v; want ID 4, true", got, ok)
	}
}

func TestNextNumber9(t *testing.T) {
	tl := Tile{ID: 9}
	if _, ok := tl.Next(false); ok {
		t.Fatalf("Next(false) on 9m should have no successor")
	}
}

func TestNextNumber9Dora(t *testing.T) {
	tl := Tile{ID: 9}
	got, ok := tl.Next(true)
	if !ok || got.ID != 1 {
		t.Fatalf("Next(true) on 9m = %+v, %v; want ID 1, true", got, ok)
	}
}

func TestNextIDWindDora(t *testing.T) {
	tl := Tile{ID: 31} // North
	if got := tl.NextID(true, 1); got != 28 {
		t.Errorf("NextID(wind, dora) = %d, want 28", got)
	}
}

func TestNextIDDragonDora(t *testing.T) {
	tl := Tile{ID: 34} // Red
	if got := tl.NextID(true, 1); got != 31 {
		t.Errorf("NextID(dragon, dora) = %d, want 31", got)
	}
}

func TestPrevIDWindDora(t *testing.T) {
	tl := Tile{ID: 28} // East
	if got := tl.PrevID(true, 1); got != 31 {
		t.Errorf("PrevID(wind, dora) = %d, want 31", got)
	}
}

func TestPrevIDDragonDora(t *testing.T) {
	tl := Tile{ID: 32} // White
	if got := tl.PrevID(true, 1); got != 34 {
		t.Errorf("PrevID(dragon, dora) = %d, want 34", got)
	}
}

func TestNextIDDepth2(t *testing.T) {
	tl := Tile{ID: 7}
	if got := tl.NextID(false, 2); got != 9 {
		t.Errorf("NextID(depth 2) = %d, want 9", got)
	}
}

func TestPrevIDDepth2(t *testing.T) {
	tl := Tile{ID: 9}
	if got := tl.PrevID(false, 2); got != 7 {
		t.Errorf("PrevID(depth 2) = %d, want 7", got)
	}
}

func TestTerminalAndHonor(t *testing.T) {
	one, _ := New(1, false)
	five, _ := New(5, false)
	east, _ := New(28, false)

	if !one.IsTerminal() || !one.IsTerminalOrHonor() {
		t.Error("1m should be terminal")
	}
	if five.IsTerminal() || five.IsHonor() || !five.IsSimple() {
		t.Error("5m should be a plain simple tile")
	}
	if !east.IsHonor() || !east.IsTerminalOrHonor() || east.IsSimple() {
		t.Error("East should be honor, not simple")
	}
}

func TestAreRelated(t *testing.T) {
	if !AreRelated(1, 1) {
		t.Error("a tile is related to itself")
	}
	if !AreRelated(1, 3) {
		t.Error("1m and 3m are within a run of two")
	}
	if AreRelated(1, 4) {
		t.Error("1m and 4m are too far apart")
	}
	if AreRelated(9, 10) {
		t.Error("9m and 1p are different suits")
	}
	if AreRelated(28, 29) {
		t.Error("distinct honors are never related")
	}
}

func TestAll34(t *testing.T) {
	all := All34()
	if len(all) != 34 {
		t.Fatalf("All34() returned %d tiles, want 34", len(all))
	}
	for i, tl := range all {
		if tl.ID != i+1 {
			t.Fatalf("All34()[%d].ID = %d, want %d", i, tl.ID, i+1)
		}
	}
}
