package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riichi-go/hand"
	"riichi-go/shapefinder"
	"riichi-go/table"
	"riichi-go/tile"
	"riichi-go/yaku"
)

func TestFuPinfuTsumoIsTwentyFu(t *testing.T) {
	h, err := hand.FromText("234m345p456s678s55p")
	require.NoError(t, err)

	tb := table.New(h)
	tb.IsTsumo = true
	tb.WinningTile, err = tile.FromText("4s")
	require.NoError(t, err)

	decomps := shapefinder.FindAll(h)
	require.NotEmpty(t, decomps)

	results, _ := yaku.Identify(tb)
	assert.Equal(t, 20, Fu(tb, decomps[0], results, true))
}

func TestFuChiitoitsuIsTwentyFive(t *testing.T) {
	h, err := hand.FromText("11m33m55p77p99s22z44z")
	require.NoError(t, err)

	tb := table.New(h)
	tb.WinningTile, err = tile.FromText("4z")
	require.NoError(t, err)

	results := []yaku.Result{{Name: "Chiitoitsu", Han: 2}}
	assert.Equal(t, 25, Fu(tb, shapefinder.Decomposition{}, results, true))
}

func TestPointsHanFuLimitTable(t *testing.T) {
	cases := []struct {
		name       string
		han, fu    int
		isDealer   bool
		isTsumo    bool
		honba      int
		want       int // RonPayment
	}{
		{"non-dealer mangan ron", 5, 30, false, false, 0, 8000},
		{"dealer haneman ron", 6, 30, true, false, 0, 18000},
		{"non-dealer yakuman ron", 13, 0, false, false, 0, 32000},
		{"mangan ron with two honba", 5, 30, false, false, 2, 8000 + 600},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Points(c.han, c.fu, c.isDealer, c.isTsumo, c.honba, true)
			assert.Equal(t, c.want, p.RonPayment)
		})
	}
}

func TestPointsDealerTsumoThirtyFuFourHan(t *testing.T) {
	// base = 30 * 2^6 = 1920, dealer tsumo: each non-dealer pays
	// roundUp100(1920*2) = 3900.
	p := Points(4, 30, true, true, 0, true)
	assert.Equal(t, 3900, p.TsumoNonDealerPay)
	assert.Equal(t, 0, p.TsumoDealerPay)
}

func TestPointsNonDealerTsumoSplitsUnevenly(t *testing.T) {
	// 5 han is mangan: base is capped at 2000 (30 * 2^7 = 3840 would
	// exceed it); non-dealer tsumo: dealer pays double.
	p := Points(5, 30, false, true, 0, true)
	assert.Equal(t, 4000, p.TsumoDealerPay)
	assert.Equal(t, 2000, p.TsumoNonDealerPay)
}
