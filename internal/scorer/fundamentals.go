package scorer

import (
	"time"

	"fundrank/internal/calculator"
	"fundrank/internal/domain"
)

// FundamentalsScorer builds the 30-point fundamentals component from
// fund metadata: expense ratio, assets under management and fund age.
// Individual missing fields take documented neutral values; the
// component itself always computes when metadata exists at all.
type FundamentalsScorer struct{}

type FundamentalsScore struct {
	ExpenseRatioScore float64
	AumScore          float64
	AgeScore          float64
	Total             float64
}

func (s FundamentalsScorer) Score(fund domain.Fund, asOf time.Time) *FundamentalsScore {
	out := &FundamentalsScore{
		ExpenseRatioScore: expenseRatioLadder(fund.ExpenseRatio),
		AumScore:          aumLadder(fund.AumCrores),
		AgeScore:          ageLadder(fund.InceptionDate, asOf),
	}
	out.Total = clamp(out.ExpenseRatioScore+out.AumScore+out.AgeScore, FundamentalsFloor, FundamentalsCap)
	return out
}

func expenseRatioLadder(expenseRatio *float64) float64 {
	if expenseRatio == nil {
		return 4
	}
	switch {
	case *expenseRatio <= 0.5:
		return 8
	case *expenseRatio <= 1.0:
		return 6
	case *expenseRatio <= 1.5:
		return 4
	}
	return 3
}

// aumLadder rewards the sweet spot: large enough to be stable, small
// enough that the fund can still move. Amounts are in crores.
func aumLadder(aumCrores *float64) float64 {
	if aumCrores == nil {
		return 4
	}
	aum := *aumCrores
	switch {
	case aum >= 1000 && aum <= 25000:
		return 7
	case aum >= 500 && aum < 1000:
		return 5
	case aum > 25000 && aum <= 50000:
		return 5
	case aum >= 100 && aum < 500:
		return 4
	case aum > 50000:
		return 4
	}
	return 2
}

func ageLadder(inceptionDate *time.Time, asOf time.Time) float64 {
	if inceptionDate == nil {
		return 0
	}
	years := calculator.YearsSince(*inceptionDate, asOf)
	switch {
	case years >= 10:
		return 8
	case years >= 5:
		return 6
	case years >= 3:
		return 4
	case years >= 1:
		return 2
	}
	return 0
}
