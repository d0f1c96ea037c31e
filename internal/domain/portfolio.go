package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Portfolio is a named set of fund allocations. Percentages are whole
// numbers summing to exactly 100; NormalizeAllocations produces that
// shape from fractional weights.
type Portfolio struct {
	Name        string
	Allocations map[string]int
}

func (p Portfolio) Validate() error {
	if len(p.Allocations) == 0 {
		return fmt.Errorf("portfolio %q has no allocations", p.Name)
	}
	sum := 0
	for fundID, pct := range p.Allocations {
		if pct <= 0 {
			return fmt.Errorf("portfolio %q has non-positive allocation %d%% for %s", p.Name, pct, fundID)
		}
		sum += pct
	}
	if sum != 100 {
		return fmt.Errorf("portfolio %q allocations sum to %d%%, want 100%%", p.Name, sum)
	}

	return nil
}

func (p Portfolio) FundIDs() []string {
	ids := make([]string, 0, len(p.Allocations))
	for fundID := range p.Allocations {
		ids = append(ids, fundID)
	}
	sort.Strings(ids)
	return ids
}

// NormalizeAllocations converts fractional weights into integer
// percentages summing to 100. The rounding remainder goes to the
// largest holding so small funds never get inflated.
func NormalizeAllocations(weights map[string]float64) map[string]int {
	if len(weights) == 0 {
		return map[string]int{}
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return map[string]int{}
	}

	out := map[string]int{}
	sum := 0
	largestID := ""
	largestWeight := -1.0
	for fundID, w := range weights {
		pct := int(w / total * 100)
		out[fundID] = pct
		sum += pct
		if w > largestWeight || (w == largestWeight && fundID < largestID) {
			largestWeight = w
			largestID = fundID
		}
	}
	out[largestID] += 100 - sum

	for fundID, pct := range out {
		if pct <= 0 {
			delete(out, fundID)
		}
	}

	return out
}

type RebalanceFrequency string

const (
	RebalanceFrequency_Monthly   RebalanceFrequency = "MONTHLY"
	RebalanceFrequency_Quarterly RebalanceFrequency = "QUARTERLY"
	RebalanceFrequency_Annually  RebalanceFrequency = "ANNUALLY"
)

func NewRebalanceFrequency(s string) (*RebalanceFrequency, error) {
	m := map[string]RebalanceFrequency{
		"MONTHLY":   RebalanceFrequency_Monthly,
		"QUARTERLY": RebalanceFrequency_Quarterly,
		"ANNUALLY":  RebalanceFrequency_Annually,
	}
	if value, ok := m[s]; ok {
		return &value, nil
	}

	return nil, fmt.Errorf("invalid rebalance frequency: %s", s)
}

// Next returns the rebalance boundary after t.
func (f RebalanceFrequency) Next(t time.Time) time.Time {
	switch f {
	case RebalanceFrequency_Quarterly:
		return t.AddDate(0, 3, 0)
	case RebalanceFrequency_Annually:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

type BacktestStatus string

const (
	BacktestStatus_Idle      BacktestStatus = "IDLE"
	BacktestStatus_Running   BacktestStatus = "RUNNING"
	BacktestStatus_Completed BacktestStatus = "COMPLETED"
	BacktestStatus_Failed    BacktestStatus = "FAILED"
)

type PortfolioValuePoint struct {
	Date  time.Time
	Value decimal.Decimal
}

type BacktestResult struct {
	BacktestID uuid.UUID
	Status     BacktestStatus

	StartDate     time.Time
	EndDate       time.Time
	InitialAmount decimal.Decimal
	FinalAmount   decimal.Decimal

	TotalReturnPct      float64
	AnnualizedReturnPct float64
	Volatility          float64
	MaxDrawdownPct      float64
	SharpeRatio         float64
	BenchmarkReturnPct  float64

	ValueSeries []PortfolioValuePoint
}
