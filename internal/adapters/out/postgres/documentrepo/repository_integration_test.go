package documentrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/documentrepo"
	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

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

// DocumentRepositoryIntegrationTestSuite provides integration tests for DocumentRepository
// using PostgreSQL containers to verify database persistence behavior.
type DocumentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *documentrepo.GormDocumentRepository
	tracker    *MockAggregateTracker
}

func (suite *DocumentRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&documentrepo.DocumentDTO{}))
}

func (suite *DocumentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE documents").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = documentrepo.NewGormDocumentRepository(suite.db, suite.tracker)
}

func (suite *DocumentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestAdd_UploadedDocument_PersistsAsPending() {
	ctx := context.Background()

	testDocument := suite.createTestDocument(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testDocument.ID(), testDocument).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testDocument))

	retrieved, err := suite.repository.Get(ctx, testDocument.ID())
	suite.Require().NoError(err)
	suite.Equal(document.VerificationPending, retrieved.Verification())
	suite.Equal(document.KindDriversLicense, retrieved.Kind())
	suite.Equal(testDocument.OwnerID(), retrieved.OwnerID())
	suite.Nil(retrieved.VerifiedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestGet_NonExistentDocument_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestUpdate_RejectionThenApprovalOnFreshUpload() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	ownerID := kernel.NewUUID()
	rejected := suite.createTestDocument(ownerID)
	suite.Require().NoError(suite.repository.Add(ctx, rejected))
	suite.Require().NoError(rejected.Reject("photo is blurry"))
	suite.Require().NoError(suite.repository.Update(ctx, rejected))

	retrieved, err := suite.repository.Get(ctx, rejected.ID())
	suite.Require().NoError(err)
	suite.Equal(document.VerificationRejected, retrieved.Verification())
	suite.Equal("photo is blurry", retrieved.RejectionReason())
	suite.NotNil(retrieved.VerifiedAt())

	// Re-upload and approve
	fresh := suite.createTestDocument(ownerID)
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(fresh.Approve())
	suite.Require().NoError(suite.repository.Update(ctx, fresh))

	retrieved, err = suite.repository.Get(ctx, fresh.ID())
	suite.Require().NoError(err)
	suite.Equal(document.VerificationApproved, retrieved.Verification())
	suite.Empty(retrieved.RejectionReason())
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestGetAllByOwner_ReturnsOwnDocumentsOnly() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	ownerID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestDocument(ownerID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestDocument(ownerID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestDocument(kernel.NewUUID())))

	documents, err := suite.repository.GetAllByOwner(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Require().Len(documents, 2)
	for _, d := range documents {
		suite.Equal(ownerID, d.OwnerID())
	}
}

func (suite *DocumentRepositoryIntegrationTestSuite) TestGetAllPending_SkipsReviewedDocuments() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	pending := suite.createTestDocument(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	approved := suite.createTestDocument(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, approved))
	suite.Require().NoError(approved.Approve())
	suite.Require().NoError(suite.repository.Update(ctx, approved))

	documents, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(documents, 1)
	suite.Equal(pending.ID(), documents[0].ID())
}

// createTestDocument creates a pending courier drivers license upload.
func (suite *DocumentRepositoryIntegrationTestSuite) createTestDocument(ownerID kernel.UUID) *document.Document {
	testDocument, err := document.NewDocument(
		kernel.NewUUID(),
		ownerID,
		document.RoleCourier,
		document.KindDriversLicense,
		"https://files.example.com/license.pdf",
	)
	suite.Require().NoError(err)
	return testDocument
}

func TestDocumentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentRepositoryIntegrationTestSuite))
}
