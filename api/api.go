package api

import (
	"database/sql"
	"errors"
	"fmt"

	"fundrank/internal/calculator"
	"fundrank/internal/logger"
	"fundrank/internal/ranking"
	"fundrank/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                      *sql.DB
	ScoringService          service.ScoringService
	BacktestService         service.BacktestService
	PortfolioBuilderService service.PortfolioBuilderService
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fundrank"})
	})
	router.POST("/scoreFund", m.scoreFund)
	router.POST("/rankSubcategory", m.rankSubcategory)
	router.POST("/backtest", m.backtest)
	router.POST("/buildPortfolio", m.buildPortfolio)

	logger.Info("listening on :%d", port)
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusForError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// statusForError maps domain failures onto http codes: bad input is
// 400, a fund or peer group without enough history is 422, anything
// else is a 500.
func statusForError(err error) int {
	var validation service.ValidationError
	if errors.As(err, &validation) {
		return 400
	}

	var insufficient calculator.InsufficientDataError
	if errors.As(err, &insufficient) {
		return 422
	}

	var tooSmall ranking.PopulationTooSmallError
	if errors.As(err, &tooSmall) {
		return 422
	}

	return 500
}
