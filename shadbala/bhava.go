package shadbala

import (
	"fmt"

	"github.com/vedastra/jyotisha/internal/angle"
	"github.com/vedastra/jyotisha/reftables"
)

// houseDirectionTarget maps each house to the group whose cusp longitude
// is its directional-strength target: East (1,5,9 -> house 1), North
// (4,8,12 -> house 4), West (3,7,11 -> house 7), South (2,6,10 -> house 10).
var houseDirectionTarget = map[int]int{
	1: 1, 5: 1, 9: 1,
	4: 4, 8: 4, 12: 4,
	3: 7, 7: 7, 11: 7,
	2: 10, 6: 10, 10: 10,
}

// BhavaDigBala is 60 virupas when a house cusp coincides with its
// direction-group's reference cusp, falling linearly to 0 at 180 degrees
// away.
func BhavaDigBala(houseNum int, cusps [12]float64) (float64, error) {
	target, ok := houseDirectionTarget[houseNum]
	if !ok {
		return 0, fmt.Errorf("shadbala: invalid house number %d", houseNum)
	}
	distance := angle.Distance(cusps[houseNum-1], cusps[target-1])
	value := 60.0 * (1 - distance/180.0)
	if value < 0 {
		value = 0
	}
	return value, nil
}

// BhavaSthanaBala is the fixed positional-strength table: trikona houses
// (1,5,9) score 60, kendra houses (4,7,10) score 45, upachaya houses
// (2,11) score 30, the 3rd house scores 15, dusthana houses (6,8,12)
// score 0.
func BhavaSthanaBala(houseNum int) (float64, error) {
	switch houseNum {
	case 1, 5, 9:
		return 60.0, nil
	case 4, 7, 10:
		return 45.0, nil
	case 2, 11:
		return 30.0, nil
	case 3:
		return 15.0, nil
	case 6, 8, 12:
		return 0.0, nil
	default:
		return 0, fmt.Errorf("shadbala: invalid house number %d", houseNum)
	}
}

// BhavaDrishtiBala nets the virupas a house cusp receives from every
// planet's Vedic aspect, using the same aspect-house rule drg bala uses,
// benefics adding and malefics subtracting, clamped to a minimum of 0.
func BhavaDrishtiBala(houseNum int, aspectFrom map[reftables.Planet]int) float64 {
	net := 0.0
	for p, house := range aspectFrom {
		for _, castHouses := range aspectHousesOf(p) {
			landedHouse := ((house-1+castHouses-1)%12 + 12) % 12 + 1
			if landedHouse != houseNum {
				continue
			}
			if naturalBenefics[p] {
				net += 60.0
			} else {
				net -= 60.0
			}
		}
	}
	if net < 0 {
		net = 0
	}
	return net
}

// BhavaBala sums bhavadhipati (the sign lord's own shadbala total),
// bhava dig, bhava drishti, and bhava sthana for one house.
type BhavaBala struct {
	Bhavadhipati float64
	Dig          float64
	Drishti      float64
	Sthana       float64
}

// Total sums the four bhava bala sub-components.
func (b BhavaBala) Total() float64 {
	return b.Bhavadhipati + b.Dig + b.Drishti + b.Sthana
}

// ComputeBhavaBala assembles one house's bhava bala, given the sign
// lord's already-computed total shadbala (in virupas) to use as
// bhavadhipati bala.
func ComputeBhavaBala(houseNum int, cusps [12]float64, lordVirupas float64, aspectFrom map[reftables.Planet]int) (BhavaBala, error) {
	dig, err := BhavaDigBala(houseNum, cusps)
	if err != nil {
		return BhavaBala{}, err
	}
	sthana, err := BhavaSthanaBala(houseNum)
	if err != nil {
		return BhavaBala{}, err
	}
	return BhavaBala{
		Bhavadhipati: lordVirupas,
		Dig:          dig,
		Drishti:      BhavaDrishtiBala(houseNum, aspectFrom),
		Sthana:       sthana,
	}, nil
}
