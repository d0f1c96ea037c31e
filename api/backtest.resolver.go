package api

import (
	"context"
	"fmt"
	"time"

	"fundrank/internal/domain"
	"fundrank/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BacktestRequest struct {
	// either inline allocations or the name of a stored portfolio
	Allocations   map[string]int `json:"allocations"`
	PortfolioName string         `json:"portfolioName"`

	BacktestStart      string  `json:"backtestStart"`
	BacktestEnd        string  `json:"backtestEnd"`
	InitialAmount      float64 `json:"initialAmount"`
	RebalanceFrequency string  `json:"rebalanceFrequency"`
}

type BacktestValuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type BacktestResponse struct {
	BacktestID string `json:"backtestID"`
	Status     string `json:"status"`

	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	InitialAmount float64 `json:"initialAmount"`
	FinalAmount   float64 `json:"finalAmount"`

	TotalReturnPct      float64 `json:"totalReturnPct"`
	AnnualizedReturnPct float64 `json:"annualizedReturnPct"`
	Volatility          float64 `json:"volatility"`
	MaxDrawdownPct      float64 `json:"maxDrawdownPct"`
	SharpeRatio         float64 `json:"sharpeRatio"`
	BenchmarkReturnPct  float64 `json:"benchmarkReturnPct"`

	ValueSeries []BacktestValuePoint `json:"valueSeries"`
}

func (m ApiHandler) backtest(c *gin.Context) {
	ctx := context.Background()

	var requestBody BacktestRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	startDate, err := time.Parse("2006-01-02", requestBody.BacktestStart)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse backtestStart %q: %w", requestBody.BacktestStart, err), c, 400)
		return
	}
	endDate, err := time.Parse("2006-01-02", requestBody.BacktestEnd)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse backtestEnd %q: %w", requestBody.BacktestEnd, err), c, 400)
		return
	}

	portfolio := domain.Portfolio{}
	if len(requestBody.Allocations) > 0 {
		portfolio = domain.Portfolio{
			Name:        "backtest",
			Allocations: requestBody.Allocations,
		}
	}

	result, err := m.BacktestService.Run(ctx, service.BacktestInput{
		Portfolio:          portfolio,
		PortfolioName:      requestBody.PortfolioName,
		StartDate:          startDate,
		EndDate:            endDate,
		InitialAmount:      decimal.NewFromFloat(requestBody.InitialAmount),
		RebalanceFrequency: domain.RebalanceFrequency(requestBody.RebalanceFrequency),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	valueSeries := make([]BacktestValuePoint, 0, len(result.ValueSeries))
	for _, point := range result.ValueSeries {
		valueSeries = append(valueSeries, BacktestValuePoint{
			Date:  point.Date.Format("2006-01-02"),
			Value: point.Value.InexactFloat64(),
		})
	}

	c.JSON(200, BacktestResponse{
		BacktestID:          result.BacktestID.String(),
		Status:              string(result.Status),
		StartDate:           result.StartDate.Format("2006-01-02"),
		EndDate:             result.EndDate.Format("2006-01-02"),
		InitialAmount:       result.InitialAmount.InexactFloat64(),
		FinalAmount:         result.FinalAmount.InexactFloat64(),
		TotalReturnPct:      result.TotalReturnPct,
		AnnualizedReturnPct: result.AnnualizedReturnPct,
		Volatility:          result.Volatility,
		MaxDrawdownPct:      result.MaxDrawdownPct,
		SharpeRatio:         result.SharpeRatio,
		BenchmarkReturnPct:  result.BenchmarkReturnPct,
		ValueSeries:         valueSeries,
	})
}
