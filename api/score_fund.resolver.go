package api

import (
	"context"
	"fmt"
	"time"

	"fundrank/internal/domain"
	"fundrank/internal/util"

	"github.com/gin-gonic/gin"
)

type ScoreFundRequest struct {
	FundID string  `json:"fundID"`
	AsOf   *string `json:"asOf"`
}

type ScoreFundResponse struct {
	FundID string `json:"fundID"`
	AsOf   string `json:"asOf"`

	HistoricalReturnsTotal float64 `json:"historicalReturnsTotal"`
	RiskGradeTotal         float64 `json:"riskGradeTotal"`
	FundamentalsTotal      float64 `json:"fundamentalsTotal"`
	OtherMetricsTotal      float64 `json:"otherMetricsTotal"`

	TotalScore     float64 `json:"totalScore"`
	Recommendation string  `json:"recommendation"`

	Rank       int     `json:"rank,omitempty"`
	Population int     `json:"population,omitempty"`
	Percentile float64 `json:"percentile,omitempty"`
	Quartile   int     `json:"quartile,omitempty"`
}

func (m ApiHandler) scoreFund(c *gin.Context) {
	ctx := context.Background()

	var requestBody ScoreFundRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}
	if requestBody.FundID == "" {
		returnErrorJsonCode(fmt.Errorf("fundID is required"), c, 400)
		return
	}

	asOf, err := parseAsOf(requestBody.AsOf)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	record, err := m.ScoringService.ScoreFund(ctx, requestBody.FundID, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, scoreFundResponseFromRecord(*record))
}

func scoreFundResponseFromRecord(record domain.ScoreRecord) ScoreFundResponse {
	return ScoreFundResponse{
		FundID:                 record.FundID,
		AsOf:                   record.AsOf.Format("2006-01-02"),
		HistoricalReturnsTotal: record.HistoricalReturnsTotal,
		RiskGradeTotal:         record.RiskGradeTotal,
		FundamentalsTotal:      record.FundamentalsTotal,
		OtherMetricsTotal:      record.OtherMetricsTotal,
		TotalScore:             record.TotalScore,
		Recommendation:         string(record.Recommendation),
		Rank:                   record.Rank,
		Population:             record.Population,
		Percentile:             record.Percentile,
		Quartile:               record.Quartile,
	}
}

func parseAsOf(s *string) (time.Time, error) {
	if s == nil || *s == "" {
		now := time.Now().UTC()
		return util.NewDate(now.Year(), int(now.Month()), now.Day()), nil
	}
	asOf, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse asOf date %q: %w", *s, err)
	}
	return asOf, nil
}
