package ranking

import (
	"errors"
	"fmt"
	"testing"

	"fundrank/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func record(fundID string, total float64) domain.ScoreRecord {
	return domain.ScoreRecord{
		FundID:     fundID,
		TotalScore: total,
	}
}

func Test_RankSubcategory(t *testing.T) {
	t.Run("too few funds", func(t *testing.T) {
		records := []domain.ScoreRecord{
			record("F1", 60),
			record("F2", 55),
			record("F3", 50),
		}

		_, err := RankSubcategory("Small Cap", records)
		require.Error(t, err)

		var tooSmall PopulationTooSmallError
		require.True(t, errors.As(err, &tooSmall))
		require.Equal(t, 3, tooSmall.Population)
	})

	t.Run("contiguous quartile split", func(t *testing.T) {
		records := []domain.ScoreRecord{}
		for i := 0; i < 8; i++ {
			records = append(records, record(fmt.Sprintf("F%d", i+1), float64(80-i*5)))
		}

		ranked, err := RankSubcategory("Large Cap", records)
		require.NoError(t, err)
		require.Len(t, ranked, 8)

		wantQuartiles := []int{1, 1, 2, 2, 3, 3, 4, 4}
		for i, r := range ranked {
			require.Equal(t, i+1, r.Rank)
			require.Equal(t, 8, r.Population)
			require.Equal(t, wantQuartiles[i], r.Quartile)
		}

		// percentile decreases monotonically from the top
		require.InDelta(t, 87.5, ranked[0].Percentile, 1e-9)
		require.InDelta(t, 0.0, ranked[7].Percentile, 1e-9)
		for i := 1; i < len(ranked); i++ {
			require.Less(t, ranked[i].Percentile, ranked[i-1].Percentile)
		}
	})

	t.Run("uneven population", func(t *testing.T) {
		records := []domain.ScoreRecord{}
		for i := 0; i < 5; i++ {
			records = append(records, record(fmt.Sprintf("F%d", i+1), float64(80-i*5)))
		}

		ranked, err := RankSubcategory("Flexi Cap", records)
		require.NoError(t, err)

		wantQuartiles := []int{1, 2, 3, 4, 4}
		for i, r := range ranked {
			require.Equal(t, wantQuartiles[i], r.Quartile)
		}
	})

	t.Run("extremes land in the outer quartiles", func(t *testing.T) {
		for population := 4; population <= 12; population++ {
			records := []domain.ScoreRecord{}
			for i := 0; i < population; i++ {
				records = append(records, record(fmt.Sprintf("F%02d", i+1), float64(90-i)))
			}

			ranked, err := RankSubcategory("Large Cap", records)
			require.NoError(t, err)

			require.Equal(t, 1, ranked[0].Quartile, "population %d", population)
			require.Equal(t, 4, ranked[population-1].Quartile, "population %d", population)
			for i := 1; i < population; i++ {
				require.GreaterOrEqual(t, ranked[i].Quartile, ranked[i-1].Quartile)
			}
		}
	})

	t.Run("input order does not change the outcome", func(t *testing.T) {
		ordered := []domain.ScoreRecord{
			record("F1", 80), record("F2", 70), record("F3", 60), record("F4", 50),
		}
		shuffled := []domain.ScoreRecord{
			record("F3", 60), record("F1", 80), record("F4", 50), record("F2", 70),
		}

		fromOrdered, err := RankSubcategory("Large Cap", ordered)
		require.NoError(t, err)
		fromShuffled, err := RankSubcategory("Large Cap", shuffled)
		require.NoError(t, err)

		require.Empty(t, cmp.Diff(fromOrdered, fromShuffled))
	})

	t.Run("ties break by fund id", func(t *testing.T) {
		records := []domain.ScoreRecord{
			record("F4", 60), record("F2", 60), record("F3", 60), record("F1", 60),
		}

		ranked, err := RankSubcategory("Large Cap", records)
		require.NoError(t, err)

		for i, want := range []string{"F1", "F2", "F3", "F4"} {
			require.Equal(t, want, ranked[i].FundID)
		}
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		records := []domain.ScoreRecord{
			record("F1", 50), record("F2", 80), record("F3", 60), record("F4", 70),
		}

		_, err := RankSubcategory("Large Cap", records)
		require.NoError(t, err)

		require.Equal(t, "F1", records[0].FundID)
		require.Equal(t, 0, records[0].Rank)
	})
}
