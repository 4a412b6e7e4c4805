package http

import (
	"log/slog"

	"dispatch/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the echo instance. API routes come from the generated
// RegisterHandlers; access rules are applied per route by Authorize.
//
//	/health                              liveness
//	/swagger/*                           API docs
//	/api/v1/orders/:orderId/jobs         publish (order service)
//	/api/v1/jobs/...                     pool and lifecycle (agents, admins)
//	/api/v1/admin/...                    admin only
func NewEcho(s *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newBodyValidator()
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger.With("component", "http")))

	e.GET("/health", s.Health)
	if err := registerSwagger(e, doc); err != nil {
		return nil, err
	}

	validate, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e.Use(validate, Actors(), Authorize)
	servers.RegisterHandlers(e, s)

	return e, nil
}
