package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/types"
)

func (s *Server) handleGenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must be JSON of the form {\"tickers\": [...]}")
		return
	}
	if len(req.Tickers) == 0 {
		badRequest(c, "tickers must be a non-empty list")
		return
	}

	tickers := make([]types.Ticker, 0, len(req.Tickers))
	for _, raw := range req.Tickers {
		t := types.NormalizeTicker(raw)
		if t == "" {
			badRequest(c, "tickers must not contain blank entries")
			return
		}
		tickers = append(tickers, t)
	}

	ctx := c.Request.Context()
	logger.Info(ctx, "Tickers received", "request_id", GetRequestID(c), "tickers", tickers)

	_ = s.pipeline.Deliver(ctx, tickers, &jsonRenderer{c: c})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
