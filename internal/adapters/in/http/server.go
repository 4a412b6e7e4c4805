// Package http exposes the dispatch use cases over HTTP with echo.
//
// Agents identify themselves with X-Agent-ID, admins with X-Actor-Role: admin. Routes,
// request and response models come from internal/generated/servers; request shapes are
// checked against the same document before a handler runs.
package http

import (
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the server calls.
type Handlers struct {
	PublishJob     commands.PublishJobCommandHandler
	ClaimJob       commands.ClaimJobCommandHandler
	ReleaseJob     commands.ReleaseJobCommandHandler
	AdvanceJob     commands.AdvanceJobCommandHandler
	AdminCancelJob commands.AdminCancelJobCommandHandler
	ForceAssign    commands.ForceAssignCommandHandler
	UpdateProgress commands.UpdateProgressCommandHandler
	AttachProof    commands.AttachProofCommandHandler

	ListAvailableJobs queries.ListAvailableJobsQueryHandler
	ListPool          queries.ListPoolQueryHandler
	GetJob            queries.GetJobQueryHandler
	GetAgentEarnings  queries.GetAgentEarningsQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface generated from api/openapi.yaml. It translates
// HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// PublishJob handles POST /api/v1/orders/{orderId}/jobs.
func (s *Server) PublishJob(c echo.Context, orderId servers.OrderId) error {
	orderID, err := toKernelUUID(orderId, "orderId")
	if err != nil {
		return s.respondError(c, err)
	}

	var req servers.PublishJobJSONRequestBody
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewPublishJobCommand(orderID, req.DistanceKm, utc(req.ExpectedDeliveryTime))
	if err != nil {
		return s.respondError(c, err)
	}

	j, err := s.handlers.PublishJob.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, newJob(j))
}

// ListAvailableJobs handles GET /api/v1/jobs/available. Without a limit the whole
// pool comes back.
func (s *Server) ListAvailableJobs(c echo.Context, params servers.ListAvailableJobsParams) error {
	pageSize := 0
	if params.Limit != nil {
		pageSize = *params.Limit
	}

	query, err := queries.NewListAvailableJobsQuery(pageSize)
	if err != nil {
		return s.respondError(c, err)
	}

	views, err := s.handlers.ListAvailableJobs.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJobsFromViews(views))
}

// GetJob handles GET /api/v1/jobs/{jobId}.
func (s *Server) GetJob(c echo.Context, jobId servers.JobId) error {
	jobID, err := toKernelUUID(jobId, "jobId")
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return s.respondError(c, err)
	}

	view, err := s.handlers.GetJob.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJobFromView(view))
}

// ClaimJob handles POST /api/v1/jobs/{jobId}/claim. The caller claims for itself.
func (s *Server) ClaimJob(c echo.Context, jobId servers.JobId) error {
	jobID, err := toKernelUUID(jobId, "jobId")
	if err != nil {
		return s.respondError(c, err)
	}

	actor, _ := actorFrom(c)
	agentID, _ := actor.AgentID()

	cmd, err := commands.NewClaimJobCommand(jobID, actor, agentID)
	if err != nil {
		return s.respondError(c, err)
	}

	j, err := s.handlers.ClaimJob.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJob(j))
}

// ReleaseJob handles POST /api/v1/jobs/{jobId}/release.
func (s *Server) ReleaseJob(c echo.Context, jobId servers.JobId) error {
	jobID, err := toKernelUUID(jobId, "jobId")
	if err != nil {
		return s.respondError(c, err)
	}

	actor, _ := actorFrom(c)
	cmd, err := commands.NewReleaseJobCommand(jobID, actor)
	if err != nil {
		return s.respondError(c, err)
	}

	j, err := s.handlers.ReleaseJob.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJob(j))
}

// AdvanceJob handles POST /api/v1/jobs/{jobId}/events.
func (s *Server) AdvanceJob(c echo.Context, jobId servers.JobId) error {
	jobID, err := toKernelUUID(jobId, "jobId")
	if err != nil {
		return s.respondError(c, err)
	}

	var req servers.AdvanceJobJSONRequestBody
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	payload, err := toPayload(req)
	if err != nil {
		return s.respondError(c, err)
	}

	actor, _ := actorFrom(c)
	cmd, err := commands.NewAdvanceJobCommand(jobID, actor, payload)
	if err != nil {
		return s.respondError(c, err)
	}

	j, err := s.handlers.AdvanceJob.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJob(j))
}

// UpdateProgress handles PUT /api/v1/jobs/{jobId}/progress.
func (s *Server) UpdateProgress(c echo.Context, jobId servers.JobId) error {
	jobID, err := toKernelUUID(jobId, "jobId")
	if err != nil {
		return s.respondError(c, err)
	}

	var req servers.UpdateProgressJSONRequestBody
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	position, err := toPosition(req)
	if err != nil {
		return s.respondError(c, err)
	}

	actor, _ := actorFrom(c)
	cmd, err := commands.NewUpdateProgressCommand(jobID, actor, req.Percent, position)
	if err != nil {
		return s.respondError(c, err)
	}

	j, err := s.handlers.UpdateProgress.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJob(j))
}

// AttachProof handles PUT /api/v1/jobs/{jobId}/proof.
func (s *Server) AttachProof(c echo.Context, jobId servers.JobId) error {
	jobID, err := toKernelUUID(jobId, "jobId")
	if err != nil {
		return s.respondError(c, err)
	}

	var req servers.AttachProofJSONRequestBody
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	actor, _ := actorFrom(c)
	cmd, err := commands.NewAttachProofCommand(jobID, actor, deref(req.ImageRef), deref(req.SignatureRef), deref(req.Notes))
	if err != nil {
		return s.respondError(c, err)
	}

	j, err := s.handlers.AttachProof.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJob(j))
}

// ListPool handles GET /api/v1/admin/pool.
func (s *Server) ListPool(c echo.Context) error {
	views, err := s.handlers.ListPool.Handle(c.Request().Context(), queries.NewListPoolQuery())
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJobsFromViews(views))
}

// AdminCancelJob handles POST /api/v1/admin/jobs/{jobId}/cancel.
func (s *Server) AdminCancelJob(c echo.Context, jobId servers.JobId) error {
	jobID, err := toKernelUUID(jobId, "jobId")
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewAdminCancelJobCommand(jobID)
	if err != nil {
		return s.respondError(c, err)
	}

	j, err := s.handlers.AdminCancelJob.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJob(j))
}

// ForceAssign handles POST /api/v1/admin/orders/{orderId}/assign.
func (s *Server) ForceAssign(c echo.Context, orderId servers.OrderId) error {
	orderID, err := toKernelUUID(orderId, "orderId")
	if err != nil {
		return s.respondError(c, err)
	}

	var req servers.ForceAssignJSONRequestBody
	if err = bind(c, &req); err != nil {
		return s.respondError(c, err)
	}

	agentID, err := toKernelUUID(req.AgentId, "agent_id")
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewForceAssignCommand(orderID, agentID, req.DistanceKm, utc(req.ExpectedDeliveryTime))
	if err != nil {
		return s.respondError(c, err)
	}

	j, err := s.handlers.ForceAssign.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newJob(j))
}

// GetAgentEarnings handles GET /api/v1/admin/agents/{agentId}/earnings?from=&to=.
func (s *Server) GetAgentEarnings(
	c echo.Context,
	agentId openapi_types.UUID,
	params servers.GetAgentEarningsParams,
) error {
	agentID, err := toKernelUUID(agentId, "agentId")
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetAgentEarningsQuery(agentID, params.From, params.To)
	if err != nil {
		return s.respondError(c, err)
	}

	earnings, err := s.handlers.GetAgentEarnings.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, newAgentEarnings(earnings))
}
