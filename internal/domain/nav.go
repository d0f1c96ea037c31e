package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NavPoint is one published net asset value for a fund.
// Series are always handled sorted ascending by date, with at most
// one point per (fund, date).
type NavPoint struct {
	FundID string
	Date   time.Time
	Value  decimal.Decimal
}

// Usable reports whether the point can participate in return math.
// Zero or negative NAVs exist in upstream feeds and must be dropped,
// never treated as a 100% loss.
func (n NavPoint) Usable() bool {
	return n.Value.IsPositive()
}

type Fund struct {
	FundID        string
	Name          string
	Category      string
	Subcategory   string
	InceptionDate *time.Time
	ExpenseRatio  *float64
	AumCrores     *float64
	Manager       *string
}
