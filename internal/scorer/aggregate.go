package scorer

import (
	"fundrank/internal/domain"
)

// AggregateTotal sums the four component totals and clamps to the
// documented band. The 34-point floor is applied after summation, not
// derived from component floors.
func AggregateTotal(historicalReturns, riskGrade, fundamentals, otherMetrics float64) float64 {
	return clamp(
		historicalReturns+riskGrade+fundamentals+otherMetrics,
		TotalScoreFloor,
		TotalScoreCap,
	)
}

// DeriveRecommendation applies the labelling rules in priority order.
// quartile is 0 until the ranking pass runs, which disables the
// quartile-aware branches; the service re-derives labels once quartiles
// are known.
func DeriveRecommendation(total, riskGradeTotal, fundamentalsTotal float64, quartile int) domain.Recommendation {
	switch {
	case total >= 70,
		total >= 65 && quartile == 1 && riskGradeTotal >= 25:
		return domain.Recommendation_StrongBuy

	case total >= 60,
		total >= 55 && quartile >= 1 && quartile <= 2 && fundamentalsTotal >= 20:
		return domain.Recommendation_Buy

	case total >= 50,
		total >= 45 && quartile >= 1 && quartile <= 3 && riskGradeTotal >= 20:
		return domain.Recommendation_Hold

	case total >= 35,
		total >= 30 && riskGradeTotal >= 15:
		return domain.Recommendation_Sell
	}

	return domain.Recommendation_StrongSell
}
