package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Portfolio_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := Portfolio{
			Name:        "retirement",
			Allocations: map[string]int{"F1": 60, "F2": 40},
		}
		require.NoError(t, p.Validate())
	})

	t.Run("empty", func(t *testing.T) {
		require.Error(t, Portfolio{Name: "empty"}.Validate())
	})

	t.Run("does not sum to 100", func(t *testing.T) {
		p := Portfolio{
			Name:        "short",
			Allocations: map[string]int{"F1": 60, "F2": 30},
		}
		require.Error(t, p.Validate())
	})

	t.Run("non-positive allocation", func(t *testing.T) {
		p := Portfolio{
			Name:        "negative",
			Allocations: map[string]int{"F1": 110, "F2": -10},
		}
		require.Error(t, p.Validate())
	})
}

func Test_Portfolio_FundIDs(t *testing.T) {
	p := Portfolio{
		Allocations: map[string]int{"F3": 20, "F1": 50, "F2": 30},
	}
	require.Equal(t, []string{"F1", "F2", "F3"}, p.FundIDs())
}

func Test_NormalizeAllocations(t *testing.T) {
	t.Run("exact split", func(t *testing.T) {
		out := NormalizeAllocations(map[string]float64{"F1": 0.5, "F2": 0.25, "F3": 0.25})
		require.Equal(t, map[string]int{"F1": 50, "F2": 25, "F3": 25}, out)
	})

	t.Run("remainder goes to the largest weight", func(t *testing.T) {
		out := NormalizeAllocations(map[string]float64{"F1": 1, "F2": 1, "F3": 1})
		require.Equal(t, 100, out["F1"]+out["F2"]+out["F3"])
		// equal weights tie-break to the lowest fund id
		require.Equal(t, 34, out["F1"])
	})

	t.Run("weights need not sum to anything", func(t *testing.T) {
		out := NormalizeAllocations(map[string]float64{"F1": 30, "F2": 10})
		require.Equal(t, map[string]int{"F1": 75, "F2": 25}, out)
	})

	t.Run("empty and zero inputs", func(t *testing.T) {
		require.Empty(t, NormalizeAllocations(nil))
		require.Empty(t, NormalizeAllocations(map[string]float64{"F1": 0}))
	})
}

func Test_RebalanceFrequency(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		freq, err := NewRebalanceFrequency("QUARTERLY")
		require.NoError(t, err)
		require.Equal(t, RebalanceFrequency_Quarterly, *freq)

		_, err = NewRebalanceFrequency("weekly")
		require.Error(t, err)
	})

	t.Run("next boundary", func(t *testing.T) {
		start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

		require.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), RebalanceFrequency_Monthly.Next(start))
		require.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), RebalanceFrequency_Quarterly.Next(start))
		require.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), RebalanceFrequency_Annually.Next(start))
	})
}

func Test_NewRiskProfile(t *testing.T) {
	profile, err := NewRiskProfile("BALANCED")
	require.NoError(t, err)
	require.Equal(t, RiskProfile_Balanced, *profile)

	_, err = NewRiskProfile("balanced")
	require.Error(t, err)

	_, err = NewRiskProfile("YOLO")
	require.Error(t, err)
}
