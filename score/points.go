package score

import "math"

// Payment describes the point transfer a won hand produces. RonPayment
// is what the discarder pays on a ron; the Tsumo fields are what each
// other seat pays on a self-draw, split by whether they're the dealer.
type Payment struct {
	Description       string
	RonPayment        int
	TsumoDealerPay    int // paid by the dealer when a non-dealer tsumos
	TsumoNonDealerPay int // paid by each non-dealer (and by all three, doubled, when the dealer tsumos)
}

// limit caps basePoints at the named score tier and gives it a
// description, mirroring the han/fu table every riichi ruleset shares.
type limit struct {
	name string
	cap  int
}

var (
	mangan     = limit{"Mangan", 2000}
	haneman    = limit{"Haneman", 3000}
	baiman     = limit{"Baiman", 4000}
	sanbaiman  = limit{"Sanbaiman", 6000}
	yakumanCap = limit{"Yakuman", 8000}
)

// Points converts han/fu into the point payment a win produces. honba
// adds its standard bonus on top of the base payment; riichi sticks in
// the pot are not an input here and are not included in the returned
// payment, since that's a pot transfer rather than a per-seat payment.
func Points(han, fu int, isDealer, isTsumo bool, honba int, kazoeYakuman bool) Payment {
	if han >= 13 {
		multiplier := 1
		if kazoeYakuman {
			multiplier = han / 13
		}
		return yakumanPayment(multiplier, isDealer, isTsumo, honba)
	}

	basePoints, name := basePointsAndLimit(han, fu)

	if isTsumo {
		if isDealer {
			each := roundUp100(basePoints*2) + honba*100
			return Payment{
				Description:       name,
				TsumoDealerPay:    0,
				TsumoNonDealerPay: each,
			}
		}
		dealerPay := roundUp100(basePoints*2) + honba*100
		otherPay := roundUp100(basePoints) + honba*100
		return Payment{
			Description:       name,
			TsumoDealerPay:    dealerPay,
			TsumoNonDealerPay: otherPay,
		}
	}

	multiplier := 4
	if isDealer {
		multiplier = 6
	}
	ron := roundUp100(basePoints*multiplier) + honba*300
	return Payment{Description: name, RonPayment: ron}
}

func yakumanPayment(multiplier int, isDealer, isTsumo bool, honba int) Payment {
	base := yakumanCap.cap * multiplier
	if isTsumo {
		if isDealer {
			return Payment{
				Description:       yakumanCap.name,
				TsumoNonDealerPay: roundUp100(base*2) + honba*100,
			}
		}
		return Payment{
			Description:       yakumanCap.name,
			TsumoDealerPay:    roundUp100(base*2) + honba*100,
			TsumoNonDealerPay: roundUp100(base) + honba*100,
		}
	}
	multiplierPay := 4
	if isDealer {
		multiplierPay = 6
	}
	return Payment{Description: yakumanCap.name, RonPayment: roundUp100(base*multiplierPay) + honba*300}
}

func basePointsAndLimit(han, fu int) (int, string) {
	switch {
	case han >= 11:
		return sanbaiman.cap, sanbaiman.name
	case han >= 8:
		return baiman.cap, baiman.name
	case han >= 6:
		return haneman.cap, haneman.name
	case han == 5:
		return mangan.cap, mangan.name
	case han == 4 && fu >= 40:
		return mangan.cap, mangan.name
	case han == 3 && fu >= 70:
		return mangan.cap, mangan.name
	}

	base := fu * pow2(han+2)
	if base > mangan.cap {
		return mangan.cap, mangan.name
	}
	return base, ""
}

func pow2(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 2
	}
	return p
}

func roundUp100(v int) int {
	return int(math.Ceil(float64(v)/100.0)) * 100
}
