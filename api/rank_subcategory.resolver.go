package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
)

type RankSubcategoryRequest struct {
	Subcategory string  `json:"subcategory"`
	AsOf        *string `json:"asOf"`
}

type RankSubcategoryResponse struct {
	Subcategory string              `json:"subcategory"`
	AsOf        string              `json:"asOf"`
	Population  int                 `json:"population"`
	Funds       []ScoreFundResponse `json:"funds"`
}

func (m ApiHandler) rankSubcategory(c *gin.Context) {
	ctx := context.Background()

	var requestBody RankSubcategoryRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}
	if requestBody.Subcategory == "" {
		returnErrorJsonCode(fmt.Errorf("subcategory is required"), c, 400)
		return
	}

	asOf, err := parseAsOf(requestBody.AsOf)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	ranked, err := m.ScoringService.RankSubcategory(ctx, requestBody.Subcategory, asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	funds := make([]ScoreFundResponse, 0, len(ranked))
	for _, record := range ranked {
		funds = append(funds, scoreFundResponseFromRecord(record))
	}

	c.JSON(200, RankSubcategoryResponse{
		Subcategory: requestBody.Subcategory,
		AsOf:        asOf.Format("2006-01-02"),
		Population:  len(funds),
		Funds:       funds,
	})
}
