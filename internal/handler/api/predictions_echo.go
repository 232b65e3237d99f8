package api

import (
	"net/http"

	"github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/models"
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/usecase"
	xhttp "github.com/pgmarco11/crypto-strategy-hub-api/pkg/http"
	xlogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionsEchoHandler proxies history-to-forecast requests.
type PredictionsEchoHandler struct {
	logger *xlogger.Logger
	svc    *usecase.PredictionService
}

func NewPredictionsEchoHandler(logger *xlogger.Logger, svc *usecase.PredictionService) *PredictionsEchoHandler {
	return &PredictionsEchoHandler{logger: logger, svc: svc}
}

func (h *PredictionsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/predictions/:coinId", h.PredictFromMarket)
	g.POST("/predictions/:coinId", h.PredictFromSeries)
}

func (h *PredictionsEchoHandler) PredictFromMarket(c echo.Context) error {
	payload, err := h.svc.PredictFromMarket(c.Request().Context(), c.Param("coinId"))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

func (h *PredictionsEchoHandler) PredictFromSeries(c echo.Context) error {
	req := &models.PredictRequest{}
	if msg := xhttp.ReadAndValidateRequest(c, req); msg != "" {
		return xhttp.BadRequestResponse(c, msg)
	}

	payload, err := h.svc.PredictFromSeries(c.Request().Context(), c.Param("coinId"), req.HistoricalData)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}
