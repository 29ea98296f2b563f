package positionrepo_test

import (
	"context"
	"testing"
	"time"

	"yard/internal/adapters/out/postgres/positionrepo"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
	"yard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PositionRepositoryIntegrationTestSuite provides integration tests for
// PositionRepository using PostgreSQL containers to verify persistence
// behavior, including the coordinate uniqueness constraint.
type PositionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *positionrepo.GormPositionRepository
	tracker    *MockAggregateTracker
}

func (suite *PositionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError turns the coordinate unique-index violation into
	// gorm.ErrDuplicatedKey, which the repository maps to the domain error.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&positionrepo.PositionDTO{}))
}

func (suite *PositionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE positions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = positionrepo.NewGormPositionRepository(suite.db, suite.tracker)
}

func (suite *PositionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PositionRepositoryIntegrationTestSuite) TestAdd_ValidPosition_Success() {
	ctx := context.Background()

	position := suite.createTestPosition("A-03-12-1-A")
	suite.tracker.On("TrackAggregate", position.ID(), position).Once()

	err := suite.repository.Add(ctx, position)
	suite.Require().NoError(err)

	suite.assertPositionCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PositionRepositoryIntegrationTestSuite) TestAdd_DuplicateCoordinate_ReturnsOccupied() {
	ctx := context.Background()

	first := suite.createTestPosition("A-03-12-1-A")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestPosition("A-03-12-1-A")
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, yard.ErrPositionOccupied)
	suite.assertPositionCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PositionRepositoryIntegrationTestSuite) TestGet_ExistingPosition_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestPosition("A-01-05-2-B")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Coordinate().String(), retrieved.Coordinate().String())
	suite.Equal(original.ContainerID(), retrieved.ContainerID())
	suite.Equal(original.AutoAssigned(), retrieved.AutoAssigned())
	suite.WithinDuration(original.CreatedAt(), retrieved.CreatedAt(), time.Second)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PositionRepositoryIntegrationTestSuite) TestGet_NonExistentPosition_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PositionRepositoryIntegrationTestSuite) TestGetByContainer_ReturnsBoundPosition() {
	ctx := context.Background()

	position := suite.createTestPosition("A-10-20-1-A")
	suite.tracker.On("TrackAggregate", position.ID(), position).Once()
	suite.Require().NoError(suite.repository.Add(ctx, position))

	retrieved, err := suite.repository.GetByContainer(ctx, position.ContainerID())
	suite.Require().NoError(err)
	suite.Equal(position.ID(), retrieved.ID())

	_, err = suite.repository.GetByContainer(ctx, kernel.NewUUID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PositionRepositoryIntegrationTestSuite) TestUpdate_Relocation_PersistsNewCoordinate() {
	ctx := context.Background()

	position := suite.createTestPosition("A-02-02-1-A")
	suite.tracker.On("TrackAggregate", position.ID(), position).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, position))

	target, err := kernel.ParseCoordinate("A-02-03-1-B")
	suite.Require().NoError(err)
	suite.Require().NoError(position.Relocate(target))

	suite.Require().NoError(suite.repository.Update(ctx, position))

	retrieved, err := suite.repository.Get(ctx, position.ID())
	suite.Require().NoError(err)
	suite.Equal("A-02-03-1-B", retrieved.Coordinate().String())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PositionRepositoryIntegrationTestSuite) TestUpdate_NonExistentPosition_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestPosition("A-09-09-1-A"))

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PositionRepositoryIntegrationTestSuite) TestRemove_DeletesRecordAndFreesCoordinate() {
	ctx := context.Background()

	position := suite.createTestPosition("A-04-04-1-B")
	suite.tracker.On("TrackAggregate", position.ID(), position).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, position))

	suite.Require().NoError(suite.repository.Remove(ctx, position))
	suite.assertPositionCount(0)

	// The freed coordinate can be bound again.
	rebound := suite.createTestPosition("A-04-04-1-B")
	suite.tracker.On("TrackAggregate", rebound.ID(), rebound).Once()
	suite.Require().NoError(suite.repository.Add(ctx, rebound))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PositionRepositoryIntegrationTestSuite) TestGetAll_ReturnsEveryRecord() {
	ctx := context.Background()

	coordinates := []string{"A-01-01-1-A", "A-01-01-1-B", "A-05-07-1-A"}
	for _, raw := range coordinates {
		position := suite.createTestPosition(raw)
		suite.tracker.On("TrackAggregate", position.ID(), position).Once()
		suite.Require().NoError(suite.repository.Add(ctx, position))
	}

	positions, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(positions, len(coordinates))
	suite.tracker.AssertExpectations(suite.T())
}

// createTestPosition creates a position at the given coordinate with a fresh container.
func (suite *PositionRepositoryIntegrationTestSuite) createTestPosition(raw string) *yard.Position {
	coordinate, err := kernel.ParseCoordinate(raw)
	suite.Require().NoError(err)

	position, err := yard.NewPosition(kernel.NewUUID(), coordinate, kernel.NewUUID(), false)
	suite.Require().NoError(err)
	return position
}

// assertPositionCount verifies the number of occupancy records in the database.
func (suite *PositionRepositoryIntegrationTestSuite) assertPositionCount(expected int) {
	var count int64
	err := suite.db.Model(&positionrepo.PositionDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestPositionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PositionRepositoryIntegrationTestSuite))
}
