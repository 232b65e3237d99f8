package api

import (
	xhttp "github.com/pgmarco11/crypto-strategy-hub-api/pkg/http"

	"github.com/labstack/echo/v4"
)

// Router bundles the API handlers into a single route registrar for the
// server.
type Router struct {
	handlers []xhttp.Handler
}

func NewRouter(handlers ...xhttp.Handler) *Router {
	return &Router{handlers: handlers}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	for _, h := range r.handlers {
		h.RegisterRoutes(e)
	}
}
