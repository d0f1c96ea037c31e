package scorer

import (
	"testing"

	"fundrank/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_AggregateTotal(t *testing.T) {
	require.InDelta(t, 56.8, AggregateTotal(4.8, 24, 8, 20), 1e-9)

	// clamped to the documented band
	require.Equal(t, 100.0, AggregateTotal(32, 30, 30, 30))
	require.Equal(t, 34.0, AggregateTotal(-0.7, 13, 0, 4))
}

func Test_DeriveRecommendation(t *testing.T) {
	t.Run("thresholds without quartiles", func(t *testing.T) {
		require.Equal(t, domain.Recommendation_StrongBuy, DeriveRecommendation(70, 0, 0, 0))
		require.Equal(t, domain.Recommendation_Buy, DeriveRecommendation(60, 0, 0, 0))
		require.Equal(t, domain.Recommendation_Hold, DeriveRecommendation(50, 0, 0, 0))
		require.Equal(t, domain.Recommendation_Sell, DeriveRecommendation(35, 0, 0, 0))
		require.Equal(t, domain.Recommendation_StrongSell, DeriveRecommendation(34, 0, 0, 0))
	})

	t.Run("quartile-aware branches", func(t *testing.T) {
		require.Equal(t, domain.Recommendation_StrongBuy, DeriveRecommendation(66, 26, 0, 1))
		require.Equal(t, domain.Recommendation_Buy, DeriveRecommendation(56, 0, 21, 2))
		require.Equal(t, domain.Recommendation_Hold, DeriveRecommendation(46, 21, 0, 3))
		require.Equal(t, domain.Recommendation_Sell, DeriveRecommendation(31, 16, 0, 4))
	})

	t.Run("quartile zero disables the quartile branches", func(t *testing.T) {
		// same numbers, but before the ranking pass has assigned quartiles
		require.Equal(t, domain.Recommendation_Buy, DeriveRecommendation(66, 26, 0, 0))
		require.Equal(t, domain.Recommendation_Hold, DeriveRecommendation(56, 0, 21, 0))
		require.Equal(t, domain.Recommendation_Sell, DeriveRecommendation(46, 21, 0, 0))
	})
}

func Test_OtherMetricsScorer(t *testing.T) {
	largeCap := OtherMetricsScorer{}.Score(domain.Fund{Subcategory: "Large Cap"})
	require.Equal(t, 8.0, largeCap.SectoralScore)
	require.InDelta(t, 20.0, largeCap.Total, 1e-9)

	midCap := OtherMetricsScorer{}.Score(domain.Fund{Subcategory: "Mid Cap"})
	require.Equal(t, 6.0, midCap.SectoralScore)

	sectoral := OtherMetricsScorer{}.Score(domain.Fund{Subcategory: "Pharma"})
	require.Equal(t, 4.0, sectoral.SectoralScore)
	require.InDelta(t, 16.0, sectoral.Total, 1e-9)
}
