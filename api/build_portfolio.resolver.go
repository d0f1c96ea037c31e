package api

import (
	"context"
	"fmt"

	"fundrank/internal/domain"
	"fundrank/internal/service"

	"github.com/gin-gonic/gin"
)

type BuildPortfolioRequest struct {
	Name        string  `json:"name"`
	RiskProfile string  `json:"riskProfile"`
	AsOf        *string `json:"asOf"`
}

type BuildPortfolioResponse struct {
	Name        string         `json:"name"`
	RiskProfile string         `json:"riskProfile"`
	Allocations map[string]int `json:"allocations"`
}

func (m ApiHandler) buildPortfolio(c *gin.Context) {
	ctx := context.Background()

	var requestBody BuildPortfolioRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	riskProfile, err := domain.NewRiskProfile(requestBody.RiskProfile)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	name := requestBody.Name
	if name == "" {
		name = fmt.Sprintf("%s portfolio", requestBody.RiskProfile)
	}

	input := service.BuildPortfolioInput{
		Name:        name,
		RiskProfile: *riskProfile,
	}
	if requestBody.AsOf != nil {
		asOf, err := parseAsOf(requestBody.AsOf)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		input.AsOf = &asOf
	}

	portfolio, err := m.PortfolioBuilderService.Build(ctx, input)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, BuildPortfolioResponse{
		Name:        portfolio.Name,
		RiskProfile: requestBody.RiskProfile,
		Allocations: portfolio.Allocations,
	})
}
