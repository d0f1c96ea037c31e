package ranking

import (
	"fmt"
	"sort"

	"fundrank/internal/domain"
	"fundrank/internal/scorer"
)

// MinPopulation is the smallest peer group that quartile analysis makes
// sense for. Subcategories below it are skipped outright.
const MinPopulation = 4

type PopulationTooSmallError struct {
	Subcategory string
	Population  int
}

func (e PopulationTooSmallError) Error() string {
	return fmt.Sprintf(
		"subcategory %q has %d eligible funds, need %d for quartile ranking",
		e.Subcategory, e.Population, MinPopulation,
	)
}

// RankSubcategory orders one subcategory's score records, assigns
// rank/percentile/quartile and re-derives recommendations with the
// quartile known. Input order is not assumed; ties on total score break
// by fund id ascending so repeated runs rank identically.
//
// Quartiles come from the contiguous split ceil(rank*4/population):
// rank 1 is always Q1 and the lowest rank is always Q4, for any
// population. The percentile-threshold framing can disagree with the
// split exactly at band boundaries, so only the split is authoritative
// here.
func RankSubcategory(subcategory string, records []domain.ScoreRecord) ([]domain.ScoreRecord, error) {
	if len(records) < MinPopulation {
		return nil, PopulationTooSmallError{Subcategory: subcategory, Population: len(records)}
	}

	ranked := make([]domain.ScoreRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].FundID < ranked[j].FundID
	})

	population := len(ranked)

	for i := range ranked {
		rank := i + 1
		ranked[i].Rank = rank
		ranked[i].Population = population
		ranked[i].Percentile = float64(population-rank) / float64(population) * 100
		ranked[i].Quartile = (rank*4 + population - 1) / population
		ranked[i].Recommendation = scorer.DeriveRecommendation(
			ranked[i].TotalScore,
			ranked[i].RiskGradeTotal,
			ranked[i].FundamentalsTotal,
			ranked[i].Quartile,
		)
	}

	return ranked, nil
}
