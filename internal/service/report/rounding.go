package report

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
)

// roundToSum rounds every value to precision decimal places so that the
// rounded values sum exactly to total, which must itself already be
// rounded to the same precision. Largest-remainder apportionment: each
// value is floored at the target precision and the leftover units are
// handed out to the values that lost the biggest fractional part, so no
// result deviates from plain rounding by more than one unit of the last
// decimal place.
func roundToSum(values []float64, total float64, precision int32) ([]float64, error) {
	scale := decimal.New(1, precision)

	floors := make([]decimal.Decimal, len(values))
	remainders := make([]decimal.Decimal, len(values))
	floorSum := decimal.Zero
	for i, value := range values {
		scaled := decimal.NewFromFloat(value).Mul(scale)
		floors[i] = scaled.Floor()
		remainders[i] = scaled.Sub(floors[i])
		floorSum = floorSum.Add(floors[i])
	}

	target := decimal.NewFromFloat(total).Mul(scale).Round(0)
	delta := target.Sub(floorSum).IntPart()
	if delta < 0 || delta > int64(len(values)) {
		return nil, fmt.Errorf("%w: sum of %v is not within one rounding unit per item of %v",
			report.ErrInconsistentTotals, values, total)
	}

	// Hand out the missing units, biggest dropped remainder first. The
	// stable sort keeps earlier items ahead on equal remainders.
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})

	one := decimal.New(1, 0)
	for i := int64(0); i < delta; i++ {
		idx := order[i]
		floors[idx] = floors[idx].Add(one)
	}

	result := make([]float64, len(values))
	for i := range floors {
		result[i], _ = floors[i].Div(scale).Float64()
	}
	return result, nil
}

// roundValue rounds a single value to precision decimal places.
func roundValue(value float64, precision int32) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(precision).Float64()
	return rounded
}
