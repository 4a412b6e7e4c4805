package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	redisout "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  *redisout.Publisher
	fanout     commands.Fanout
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient redis.UniversalClient, logger *slog.Logger) CompositionRoot {
	publisher := redisout.NewPublisher(redisClient, cfg.NotifyTimeout)

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, cfg.LockTimeout),
		publisher:  publisher,
		fanout:     commands.NewFanout(publisher, publisher, logger),
		clock:      kernel.SystemClock,
		logger:     logger,
	}
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignUoWFactory() commands.AssignUoWFactory {
	return FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePublishJobCommandHandler() commands.PublishJobCommandHandler {
	return commands.NewPublishJobCommandHandler(c.jobUoWFactory(), c.fanout, c.clock)
}

func (c *CompositionRoot) CreateClaimJobCommandHandler() commands.ClaimJobCommandHandler {
	return commands.NewClaimJobCommandHandler(c.assignUoWFactory(), c.fanout, c.clock)
}

func (c *CompositionRoot) CreateReleaseJobCommandHandler() commands.ReleaseJobCommandHandler {
	return commands.NewReleaseJobCommandHandler(c.jobUoWFactory(), c.fanout, c.clock)
}

func (c *CompositionRoot) CreateAdvanceJobCommandHandler() commands.AdvanceJobCommandHandler {
	fees := services.NewFeeCalculator(c.cfg.BaseFee, c.cfg.PerKmBonus, c.cfg.OnTimeBonus)
	return commands.NewAdvanceJobCommandHandler(c.uoWFactory(), fees, c.fanout, c.clock)
}

func (c *CompositionRoot) CreateAdminCancelJobCommandHandler() commands.AdminCancelJobCommandHandler {
	return commands.NewAdminCancelJobCommandHandler(c.CreateAdvanceJobCommandHandler())
}

func (c *CompositionRoot) CreateForceAssignCommandHandler() commands.ForceAssignCommandHandler {
	return commands.NewForceAssignCommandHandler(c.assignUoWFactory(), c.fanout, c.clock)
}

func (c *CompositionRoot) CreateUpdateProgressCommandHandler() commands.UpdateProgressCommandHandler {
	return commands.NewUpdateProgressCommandHandler(c.jobUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAttachProofCommandHandler() commands.AttachProofCommandHandler {
	return commands.NewAttachProofCommandHandler(c.jobUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateListAvailableJobsQueryHandler() queries.ListAvailableJobsQueryHandler {
	return queries.NewListAvailableJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPoolQueryHandler() queries.ListPoolQueryHandler {
	return queries.NewListPoolQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentEarningsQueryHandler() queries.GetAgentEarningsQueryHandler {
	return queries.NewGetAgentEarningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PublishJob:        c.CreatePublishJobCommandHandler(),
		ClaimJob:          c.CreateClaimJobCommandHandler(),
		ReleaseJob:        c.CreateReleaseJobCommandHandler(),
		AdvanceJob:        c.CreateAdvanceJobCommandHandler(),
		AdminCancelJob:    c.CreateAdminCancelJobCommandHandler(),
		ForceAssign:       c.CreateForceAssignCommandHandler(),
		UpdateProgress:    c.CreateUpdateProgressCommandHandler(),
		AttachProof:       c.CreateAttachProofCommandHandler(),
		ListAvailableJobs: c.CreateListAvailableJobsQueryHandler(),
		ListPool:          c.CreateListPoolQueryHandler(),
		GetJob:            c.CreateGetJobQueryHandler(),
		GetAgentEarnings:  c.CreateGetAgentEarningsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	monitor := jobs.NewPoolMonitorJob(
		c.CreateListPoolQueryHandler(),
		c.publisher,
		c.clock,
		c.cfg.PoolMonitorSchedule,
		c.cfg.StaleAfter,
		c.logger,
	)
	return jobs.NewJobManager(monitor)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
