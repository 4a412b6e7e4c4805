package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const (
	HeaderAgentID   = "X-Agent-ID"
	HeaderActorRole = "X-Actor-Role"

	roleAdmin = "admin"
	actorKey  = "dispatch.actor"

	jobsPrefix  = "/api/v1/jobs/"
	adminPrefix = "/api/v1/admin/"
	claimRoute  = "/api/v1/jobs/:jobId/claim"
)

// RequestValidator rejects requests that do not match the API document with 400.
// Paths the document does not describe (health, swagger) pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: firstLine(validationErr.Error()),
				})
			}

			return next(c)
		}
	}, nil
}

// Actors reads the caller identity from headers. Authentication happens upstream;
// this service trusts the gateway to set them.
//
//	X-Actor-Role: admin   -> admin actor
//	X-Agent-ID: <uuid>    -> agent actor
func Actors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			if strings.EqualFold(req.Header.Get(HeaderActorRole), roleAdmin) {
				c.Set(actorKey, job.NewAdminActor())
				return next(c)
			}

			raw := req.Header.Get(HeaderAgentID)
			if raw == "" {
				return next(c)
			}

			agentID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: HeaderAgentID + " must be a UUID",
				})
			}
			actor, err := job.NewAgentActor(agentID)
			if err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// RequireActor rejects anonymous requests with 401.
func RequireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := actorFrom(c); !ok {
			return unauthorized(c)
		}
		return next(c)
	}
}

// RequireAgent admits agents only.
func RequireAgent(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := actorFrom(c)
		if !ok {
			return unauthorized(c)
		}
		if _, isAgent := actor.AgentID(); !isAgent {
			return c.JSON(http.StatusForbidden, servers.Error{
				Code:    http.StatusForbidden,
				Message: "only agents may do this",
			})
		}
		return next(c)
	}
}

// RequireAdmin admits admins only.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := actorFrom(c)
		if !ok {
			return unauthorized(c)
		}
		if !actor.IsAdmin() {
			return c.JSON(http.StatusForbidden, servers.Error{
				Code:    http.StatusForbidden,
				Message: "admin role required",
			})
		}
		return next(c)
	}
}

// Authorize applies the access rule of the matched route. Publishing is open to the
// order service, claiming is for agents, the rest of /jobs needs some actor and
// /admin needs an admin. It must run after Actors.
func Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	actor, agent, admin := RequireActor(next), RequireAgent(next), RequireAdmin(next)

	return func(c echo.Context) error {
		switch route := c.Path(); {
		case strings.HasPrefix(route, adminPrefix):
			return admin(c)
		case route == claimRoute:
			return agent(c)
		case strings.HasPrefix(route, jobsPrefix):
			return actor(c)
		default:
			return next(c)
		}
	}
}

// RequestLogger logs one line per request at Info, or at Error for 5xx responses.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			level := slog.LevelInfo
			if res.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(req.Context(), level, "request",
				"method", req.Method,
				"path", c.Path(),
				"status", res.Status,
				"bytes", res.Size,
			)

			return nil
		}
	}
}

func actorFrom(c echo.Context) (job.Actor, bool) {
	actor, ok := c.Get(actorKey).(job.Actor)
	return actor, ok
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "missing " + HeaderAgentID + " or " + HeaderActorRole + " header",
	})
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
