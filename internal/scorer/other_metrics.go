package scorer

import (
	"strings"

	"fundrank/internal/domain"
)

// OtherMetricsScorer builds the 30-point catch-all component: a
// sectoral-similarity score from the subcategory label plus three
// neutral placeholders pending fuller implementations.
type OtherMetricsScorer struct{}

type OtherMetricsScore struct {
	SectoralScore    float64
	ForwardScore     float64
	MomentumScore    float64
	ConsistencyScore float64
	Total            float64
}

func (s OtherMetricsScorer) Score(fund domain.Fund) *OtherMetricsScore {
	out := &OtherMetricsScore{
		SectoralScore:    sectoralSimilarity(fund.Subcategory),
		ForwardScore:     ForwardNeutralScore,
		MomentumScore:    MomentumNeutralScore,
		ConsistencyScore: ConsistencyNeutralScore,
	}
	out.Total = clamp(
		out.SectoralScore+out.ForwardScore+out.MomentumScore+out.ConsistencyScore,
		OtherMetricsFloor,
		OtherMetricsCap,
	)
	return out
}

func sectoralSimilarity(subcategory string) float64 {
	sub := strings.ToLower(subcategory)
	switch {
	case strings.Contains(sub, "large cap") || strings.Contains(sub, "index"):
		return 8
	case strings.Contains(sub, "mid cap") || strings.Contains(sub, "multi cap"):
		return 6
	}
	return 4
}
