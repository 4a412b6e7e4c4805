package redis_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	redis_adapter "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PublisherTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	publisher *redis_adapter.Publisher
}

func (suite *PublisherTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	suite.Require().NoError(suite.client.Ping(ctx).Err())

	suite.publisher = redis_adapter.NewPublisher(suite.client, time.Second)
}

func (suite *PublisherTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// subscribe returns once the subscription is confirmed, so nothing published after it
// is missed.
func (suite *PublisherTestSuite) subscribe(channel string) *redis.PubSub {
	ctx := context.Background()
	sub := suite.client.Subscribe(ctx, channel)
	_, err := sub.Receive(ctx)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = sub.Close() })
	return sub
}

func (suite *PublisherTestSuite) receive(sub *redis.PubSub, into any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg, err := sub.ReceiveMessage(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(json.Unmarshal([]byte(msg.Payload), into))
}

func (suite *PublisherTestSuite) TestNotifyNewJob() {
	sub := suite.subscribe(redis_adapter.ChannelNewJob)
	jobID, orderID := kernel.NewUUID(), kernel.NewUUID()

	err := suite.publisher.NotifyNewJob(context.Background(), ports.JobAnnouncement{
		JobID:      jobID,
		OrderID:    orderID,
		DistanceKm: 4.2,
	})
	suite.Require().NoError(err)

	var got redis_adapter.NewJobMessage
	suite.receive(sub, &got)
	suite.Equal(jobID.String(), got.JobID)
	suite.Equal(orderID.String(), got.OrderID)
	suite.InDelta(4.2, got.DistanceKm, 1e-9)
}

func (suite *PublisherTestSuite) TestNotifyStatusChanged() {
	sub := suite.subscribe(redis_adapter.ChannelJobStatus)
	jobID := kernel.NewUUID()

	suite.Require().NoError(suite.publisher.NotifyStatusChanged(context.Background(), jobID, job.InTransit))

	var got redis_adapter.StatusMessage
	suite.receive(sub, &got)
	suite.Equal(jobID.String(), got.JobID)
	suite.Equal(job.InTransit.String(), got.Status)
}

func (suite *PublisherTestSuite) TestNotifyJobRevoked() {
	sub := suite.subscribe(redis_adapter.ChannelJobRevoked)
	jobID, agentID := kernel.NewUUID(), kernel.NewUUID()

	suite.Require().NoError(suite.publisher.NotifyJobRevoked(context.Background(), jobID, agentID))

	var got redis_adapter.RevokedMessage
	suite.receive(sub, &got)
	suite.Equal(jobID.String(), got.JobID)
	suite.Equal(agentID.String(), got.AgentID)
}

func (suite *PublisherTestSuite) TestFulfillmentChanged() {
	sub := suite.subscribe(redis_adapter.ChannelFulfillment)
	orderID, jobID := kernel.NewUUID(), kernel.NewUUID()

	err := suite.publisher.FulfillmentChanged(context.Background(), ports.FulfillmentEvent{
		OrderID: orderID,
		JobID:   jobID,
		Outcome: ports.OutcomeDelivered,
	})
	suite.Require().NoError(err)

	var got redis_adapter.FulfillmentMessage
	suite.receive(sub, &got)
	suite.Equal(orderID.String(), got.OrderID)
	suite.Equal("DELIVERED", got.Outcome)
}

func (suite *PublisherTestSuite) TestPublishFailsWhenClosed() {
	client := redis.NewClient(&redis.Options{Addr: suite.client.Options().Addr})
	suite.Require().NoError(client.Close())

	err := redis_adapter.NewPublisher(client, time.Second).
		NotifyStatusChanged(context.Background(), kernel.NewUUID(), job.Assigned)

	suite.Require().Error(err)
	suite.Contains(err.Error(), redis_adapter.ChannelJobStatus)
}

func TestPublisherTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PublisherTestSuite))
}
