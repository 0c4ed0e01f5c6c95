package postgres_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/distributorrepo"
	"dispatch/internal/adapters/out/postgres/documentrepo"
	"dispatch/internal/adapters/out/postgres/reviewrepo"
	"dispatch/internal/adapters/out/postgres/shipmentrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/distributor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across
// repositories using a PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&courierrepo.CourierDTO{},
		&documentrepo.DocumentDTO{},
		&reviewrepo.ReviewDTO{},
		&distributorrepo.DistributorDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE shipments, couriers, documents, reviews, distributors").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testDistributor := suite.createTestDistributor()
	suite.Require().NoError(uow.DistributorRepository().Add(ctx, testDistributor))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().DistributorRepository().Get(ctx, testDistributor.ID())
	suite.Require().NoError(err)
	suite.Equal(testDistributor.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testDistributor := suite.createTestDistributor()
	suite.Require().NoError(uow.DistributorRepository().Add(ctx, testDistributor))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().DistributorRepository().Get(ctx, testDistributor.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepository_OfferAcceptanceFlow() {
	ctx := context.Background()

	// Seed a shipment and an enabled courier outside the transaction
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))

	testShipment := suite.createTestShipment()
	suite.Require().NoError(seed.ShipmentRepository().Add(ctx, testShipment))

	testCourier, err := courier.NewCourier(kernel.NewUUID(), "Kemal", "+905551112233", courier.TransportCar)
	suite.Require().NoError(err)
	testCourier.Enable()
	suite.Require().NoError(seed.CourierRepository().Add(ctx, testCourier))
	suite.Require().NoError(seed.Commit(ctx))

	// Claim the shipment inside a fresh unit of work
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	won, err := uow.ShipmentRepository().TryAssign(ctx, testShipment.ID(), testCourier.ID())
	suite.Require().NoError(err)
	suite.Require().True(won)
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Courier())
	suite.Equal(testCourier.ID(), *retrieved.Courier())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDistributor() *distributor.Distributor {
	testDistributor, err := distributor.NewDistributor(
		kernel.NewUUID(),
		"Marmara Lojistik",
		"+902241234567",
		kernel.Address{Street: "Depot St 5", City: "Bursa"},
	)
	suite.Require().NoError(err)
	return testDistributor
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	pickupLocation, err := kernel.NewLocation(40.05, 29.05)
	suite.Require().NoError(err)
	deliveryLocation, err := kernel.NewLocation(40.2, 29.2)
	suite.Require().NoError(err)

	measure, err := shipment.NewMeasure(2.5, 20, 30, 15, shipment.SizeSmall)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		pickupLocation,
		kernel.Address{Street: "Pickup St 1", City: "Bursa"},
		deliveryLocation,
		kernel.Address{Street: "Delivery St 2", City: "Bursa"},
		measure,
		"+905551112233",
		"fragile parcel",
		shipment.NewVerificationCode(),
	)
	suite.Require().NoError(err)
	return testShipment
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
