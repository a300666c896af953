package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/report"
	"llm-stock-report/internal/types"
)

const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeMarketData     = "MARKET_DATA_ERROR"
	ErrCodeCompletion     = "COMPLETION_ERROR"
	ErrCodeInternal       = "INTERNAL_SERVER_ERROR"
)

type GenerateReportRequest struct {
	Tickers []string `json:"tickers"`
}

type GenerateReportResponse struct {
	Report string `json:"report"`
}

// ErrorResponse keeps the error message at the top level under "error"
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Ticker    string `json:"ticker,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(c *gin.Context, status int, code, message, ticker string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Ticker:    ticker,
		RequestID: GetRequestID(c),
	})
}

func badRequest(c *gin.Context, message string) {
	writeError(c, http.StatusBadRequest, ErrCodeInvalidRequest, message, "")
}

// jsonRenderer is the HTTP output adapter for one request
type jsonRenderer struct {
	c *gin.Context
}

var _ interfaces.Renderer = (*jsonRenderer)(nil)

func (r *jsonRenderer) RenderReport(_ context.Context, rep types.Report) error {
	r.c.JSON(http.StatusOK, GenerateReportResponse{Report: rep.String()})
	return nil
}

func (r *jsonRenderer) RenderError(_ context.Context, err error) error {
	_ = r.c.Error(err)

	var pe *report.PipelineError
	switch {
	case errors.Is(err, report.ErrNoTickers):
		badRequest(r.c, "tickers must be a non-empty list")
	case errors.As(err, &pe) && pe.Stage == report.FetchFailure:
		msg := "market data request failed"
		if pe.Ticker != "" {
			msg += " for " + pe.Ticker.String()
		}
		writeError(r.c, http.StatusBadGateway, ErrCodeMarketData, msg, pe.Ticker.String())
	case errors.As(err, &pe) && pe.Stage == report.SynthesisFailure:
		writeError(r.c, http.StatusBadGateway, ErrCodeCompletion, "report generation failed", "")
	default:
		writeError(r.c, http.StatusInternalServerError, ErrCodeInternal, "internal server error", "")
	}
	return nil
}
