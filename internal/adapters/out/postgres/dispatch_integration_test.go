package postgres_test

import (
	"context"

	"dispatch/internal/adapters/out/postgres/earningrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const claimants = 8

func (suite *IntegrationTestSuite) agentActor(agentID kernel.UUID) job.Actor {
	actor, err := job.NewAgentActor(agentID)
	suite.Require().NoError(err)
	return actor
}

func (suite *IntegrationTestSuite) claimHandler() commands.ClaimJobCommandHandler {
	return commands.NewClaimJobCommandHandler(assignUoWFactory{suite.factory}, suite.fanout, kernel.SystemClock)
}

func (suite *IntegrationTestSuite) advanceHandler() commands.AdvanceJobCommandHandler {
	return commands.NewAdvanceJobCommandHandler(
		lifecycleUoWFactory{suite.factory},
		services.NewFeeCalculator(300, 50, 0),
		suite.fanout,
		kernel.SystemClock,
	)
}

func (suite *IntegrationTestSuite) claim(jobID, agentID kernel.UUID) (*job.Job, error) {
	cmd, err := commands.NewClaimJobCommand(jobID, suite.agentActor(agentID), agentID)
	suite.Require().NoError(err)
	return suite.claimHandler().Handle(context.Background(), cmd)
}

func (suite *IntegrationTestSuite) advance(jobID kernel.UUID, actor job.Actor, payload job.Payload) (*job.Job, error) {
	cmd, err := commands.NewAdvanceJobCommand(jobID, actor, payload)
	suite.Require().NoError(err)
	return suite.advanceHandler().Handle(context.Background(), cmd)
}

// inTransit walks a fresh job to IN_TRANSIT for agentID.
func (suite *IntegrationTestSuite) inTransit(agentID kernel.UUID) *job.Job {
	j := suite.publish()
	_, err := suite.claim(j.ID(), agentID)
	suite.Require().NoError(err)
	_, err = suite.advance(j.ID(), suite.agentActor(agentID), job.PickupPayload{})
	suite.Require().NoError(err)
	j, err = suite.advance(j.ID(), suite.agentActor(agentID), job.DepartPayload{})
	suite.Require().NoError(err)
	suite.Require().Equal(job.InTransit, j.Status())
	return j
}

func (suite *IntegrationTestSuite) TestConcurrentClaims_ExactlyOneWins() {
	j := suite.publish()

	agents := make([]kernel.UUID, claimants)
	for i := range agents {
		agents[i] = suite.seedAgent()
	}

	results := make([]error, claimants)
	var g errgroup.Group
	for i, agentID := range agents {
		g.Go(func() error {
			_, results[i] = suite.claim(j.ID(), agentID)
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	winners := 0
	var winner kernel.UUID
	for i, err := range results {
		if err == nil {
			winners++
			winner = agents[i]
			continue
		}
		suite.ErrorIs(err, errs.ErrAlreadyClaimed)
	}
	suite.Require().Equal(1, winners)

	stored, err := suite.factory.Create().JobRepository().Get(context.Background(), j.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Assigned, stored.Status())
	suite.Require().NotNil(stored.AgentID())
	suite.Equal(winner, *stored.AgentID())
	suite.Equal(2, stored.Version())
}

func (suite *IntegrationTestSuite) TestConcurrentCompletes_OneEarningEntry() {
	agentID := suite.seedAgent()
	j := suite.inTransit(agentID)
	proof, err := job.NewProofOfDelivery("x", "", "")
	suite.Require().NoError(err)

	results := make([]error, claimants)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			_, results[i] = suite.advance(j.ID(), suite.agentActor(agentID), job.CompletePayload{Proof: &proof})
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		suite.ErrorIs(err, errs.ErrInvalidTransition)
	}
	suite.Equal(1, successes)
	suite.Equal(int64(1), suite.countRows("earning_entries"))
}

// Two agents race for the same job; the loser's view of the job is unchanged.
func (suite *IntegrationTestSuite) TestScenario_ClaimRaceBetweenTwoAgents() {
	a1, a2 := suite.seedAgent(), suite.seedAgent()
	j := suite.publish()

	var err1, err2 error
	var g errgroup.Group
	g.Go(func() error { _, err1 = suite.claim(j.ID(), a1); return nil })
	g.Go(func() error { _, err2 = suite.claim(j.ID(), a2); return nil })
	suite.Require().NoError(g.Wait())

	suite.Require().True((err1 == nil) != (err2 == nil), "exactly one claim must succeed: %v / %v", err1, err2)
	loserErr, winner := err2, a1
	if err1 != nil {
		loserErr, winner = err1, a2
	}
	suite.Require().ErrorIs(loserErr, errs.ErrAlreadyClaimed)

	stored, err := suite.factory.Create().JobRepository().Get(context.Background(), j.ID())
	suite.Require().NoError(err)
	suite.Equal(winner, *stored.AgentID())
	suite.False(stored.IsAvailable())
}

func (suite *IntegrationTestSuite) TestScenario_FullDeliveryRecordsEarning() {
	ctx := context.Background()
	agentID := suite.seedAgent()
	j := suite.inTransit(agentID)
	proof, err := job.NewProofOfDelivery("x", "", "")
	suite.Require().NoError(err)

	delivered, err := suite.advance(j.ID(), suite.agentActor(agentID), job.CompletePayload{Proof: &proof})
	suite.Require().NoError(err)
	suite.Equal(job.Delivered, delivered.Status())
	suite.Require().NotNil(delivered.DeliveredAt())
	suite.Require().NotNil(delivered.PickedUpAt())
	suite.False(delivered.DeliveredAt().Before(*delivered.PickedUpAt()))
	suite.False(delivered.PickedUpAt().Before(*delivered.AssignedAt()))

	entry, err := earningrepo.NewGormEarningRepository(suite.db, nil).GetByJob(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Equal(agentID, entry.AgentID())
	suite.Equal(int64(510), entry.Amount())
	suite.Equal(int64(1), suite.countRows("earning_entries"))
}

func (suite *IntegrationTestSuite) TestScenario_AdminCancelReturnsJobToPool() {
	ctx := context.Background()
	a1, a2 := suite.seedAgent(), suite.seedAgent()
	j := suite.publish()
	_, err := suite.claim(j.ID(), a1)
	suite.Require().NoError(err)

	cancel, err := commands.NewAdminCancelJobCommand(j.ID())
	suite.Require().NoError(err)
	pooled, err := commands.NewAdminCancelJobCommandHandler(suite.advanceHandler()).Handle(ctx, cancel)
	suite.Require().NoError(err)
	suite.Equal(job.Available, pooled.Status())
	suite.Nil(pooled.AgentID())

	_, err = commands.NewAdminCancelJobCommandHandler(suite.advanceHandler()).Handle(ctx, cancel)
	suite.Require().ErrorIs(err, errs.ErrInvalidTransition)

	claimed, err := suite.claim(j.ID(), a2)
	suite.Require().NoError(err)
	suite.Equal(a2, *claimed.AgentID())
}

func (suite *IntegrationTestSuite) TestScenario_FailedJobCannotBeCompleted() {
	agentID := suite.seedAgent()
	j := suite.inTransit(agentID)
	actor := suite.agentActor(agentID)

	failed, err := suite.advance(j.ID(), actor, job.FailPayload{Reason: "customer unreachable"})
	suite.Require().NoError(err)
	suite.Equal(job.Failed, failed.Status())
	suite.Equal("customer unreachable", failed.FailureReason())

	_, err = suite.advance(j.ID(), actor, job.CompletePayload{WaiveProof: true})
	suite.Require().ErrorIs(err, errs.ErrInvalidTransition)

	stored, err := suite.factory.Create().JobRepository().Get(context.Background(), j.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Failed, stored.Status())
	suite.Equal(failed.Version(), stored.Version())
	suite.Equal(int64(0), suite.countRows("earning_entries"))
}

func (suite *IntegrationTestSuite) TestScenario_FailedJobFreesOrderForRepublish() {
	agentID := suite.seedAgent()
	j := suite.inTransit(agentID)
	_, err := suite.advance(j.ID(), suite.agentActor(agentID), job.FailPayload{Reason: "address closed"})
	suite.Require().NoError(err)

	cmd, err := commands.NewPublishJobCommand(j.OrderID(), 4.2, nil)
	suite.Require().NoError(err)
	again, err := commands.NewPublishJobCommandHandler(
		jobUoWFactory{suite.factory}, suite.fanout, kernel.SystemClock,
	).Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	suite.NotEqual(j.ID(), again.ID())

	_, err = commands.NewPublishJobCommandHandler(
		jobUoWFactory{suite.factory}, suite.fanout, kernel.SystemClock,
	).Handle(context.Background(), cmd)
	suite.Require().ErrorIs(err, errs.ErrDuplicateActiveJob)
}
