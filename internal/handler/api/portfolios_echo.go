package api

import (
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/models"
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/usecase"
	xhttp "github.com/pgmarco11/crypto-strategy-hub-api/pkg/http"
	xlogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to the Crypto Strategy Hub API"

// PortfoliosEchoHandler exposes the portfolio CRUD surface.
type PortfoliosEchoHandler struct {
	logger *xlogger.Logger
	svc    *usecase.PortfolioService
}

func NewPortfoliosEchoHandler(logger *xlogger.Logger, svc *usecase.PortfolioService) *PortfoliosEchoHandler {
	return &PortfoliosEchoHandler{logger: logger, svc: svc}
}

func (h *PortfoliosEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Welcome)
	e.GET("/portfolios", h.List)
	e.GET("/portfolios/:id", h.Get)
	e.POST("/portfolios", h.Create)
	e.PUT("/portfolios/:id", h.Replace)
	e.PATCH("/portfolios/:id", h.Patch)
	e.DELETE("/portfolios/:id", h.Delete)
}

func (h *PortfoliosEchoHandler) Welcome(c echo.Context) error {
	return xhttp.SuccessResponse(c, welcomeMessage)
}

func (h *PortfoliosEchoHandler) List(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.svc.List())
}

func (h *PortfoliosEchoHandler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, p)
}

func (h *PortfoliosEchoHandler) Create(c echo.Context) error {
	body := models.Portfolio{}
	if err := c.Bind(&body); err != nil {
		return xhttp.BadRequestResponse(c, "invalid JSON body")
	}

	created, err := h.svc.Create(body)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, created)
}

func (h *PortfoliosEchoHandler) Replace(c echo.Context) error {
	body := models.Portfolio{}
	if err := c.Bind(&body); err != nil {
		return xhttp.BadRequestResponse(c, "invalid JSON body")
	}

	updated, err := h.svc.Replace(c.Param("id"), body)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.MessageResponse(c, "portfolio updated", updated)
}

func (h *PortfoliosEchoHandler) Patch(c echo.Context) error {
	body := models.Portfolio{}
	if err := c.Bind(&body); err != nil {
		return xhttp.BadRequestResponse(c, "invalid JSON body")
	}

	updated, err := h.svc.Patch(c.Param("id"), body)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.MessageResponse(c, "portfolio fields updated", updated)
}

func (h *PortfoliosEchoHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.MessageResponse(c, "portfolio deleted", nil)
}
