package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/documentrepo"
	"dispatch/internal/adapters/out/postgres/reviewrepo"
	"dispatch/internal/adapters/out/postgres/shipmentrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/review"
	"dispatch/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker stands in for the unit of work in read model tests; seeded
// aggregates are written directly, nothing needs tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// ReadModelQueryHandlersTestSuite exercises the repository-backed read
// models against a real postgres schema.
type ReadModelQueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	couriers  *courierrepo.GormCourierRepository
	shipments *shipmentrepo.GormShipmentRepository
	documents *documentrepo.GormDocumentRepository
	reviews   *reviewrepo.GormReviewRepository
}

func (suite *ReadModelQueryHandlersTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&shipmentrepo.ShipmentDTO{},
		&documentrepo.DocumentDTO{},
		&reviewrepo.ReviewDTO{},
	)
	suite.Require().NoError(err)

	suite.couriers = courierrepo.NewGormCourierRepository(db, noopTracker{})
	suite.shipments = shipmentrepo.NewGormShipmentRepository(db, noopTracker{})
	suite.documents = documentrepo.NewGormDocumentRepository(db, noopTracker{})
	suite.reviews = reviewrepo.NewGormReviewRepository(db, noopTracker{})
}

func (suite *ReadModelQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ReadModelQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE couriers, shipments, documents, reviews CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ReadModelQueryHandlersTestSuite) seedCourier(name string, status courier.Status, enabled bool, at kernel.Location) kernel.UUID {
	c, err := courier.NewCourier(kernel.NewUUID(), name, "+90 555 222 33 44", courier.TransportMotorbike)
	suite.Require().NoError(err)
	if enabled {
		c.Enable()
	}
	if status != courier.StatusOffline {
		suite.Require().NoError(c.SetAvailability(status, at))
	}

	suite.Require().NoError(suite.couriers.Add(context.Background(), c))
	return c.ID()
}

func (suite *ReadModelQueryHandlersTestSuite) seedShipment(
	distributorID kernel.UUID,
	courierID *kernel.UUID,
	target shipment.Status,
) kernel.UUID {
	pickup, err := kernel.NewLocation(40.0, 29.0)
	suite.Require().NoError(err)
	delivery, err := kernel.NewLocation(40.1, 29.1)
	suite.Require().NoError(err)
	measure, err := shipment.NewMeasure(2.5, 20, 30, 15, shipment.SizeSmall)
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), distributorID,
		pickup, kernel.Address{Street: "Pickup St. 1"},
		delivery, kernel.Address{Street: "Delivery St. 2", City: "Bursa"},
		measure, "+90 555 000 11 22", "two boxes",
		shipment.NewVerificationCode())
	suite.Require().NoError(err)

	switch target {
	case shipment.Assigned:
		suite.Require().NoError(s.Assign(*courierID))
	case shipment.PickedUp:
		suite.Require().NoError(s.Assign(*courierID))
		suite.Require().NoError(s.Advance(*courierID, shipment.PickedUp))
	case shipment.Delivered:
		suite.Require().NoError(s.Assign(*courierID))
		suite.Require().NoError(s.Advance(*courierID, shipment.PickedUp))
		suite.Require().NoError(s.Advance(*courierID, shipment.Delivered))
	case shipment.Cancelled:
		suite.Require().NoError(s.Cancel())
	}

	suite.Require().NoError(suite.shipments.Add(context.Background(), s))
	return s.ID()
}

func (suite *ReadModelQueryHandlersTestSuite) seedReview(courierID kernel.UUID, rating int) {
	r, err := review.NewReview(
		kernel.NewUUID(), kernel.NewUUID(), courierID, rating, "", review.ReviewerCustomer)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.reviews.Add(context.Background(), r))
}

func (suite *ReadModelQueryHandlersTestSuite) seedDocument(ownerID kernel.UUID, approved bool) kernel.UUID {
	d, err := document.NewDocument(
		kernel.NewUUID(), ownerID, document.RoleCourier,
		document.KindDriversLicense, "s3://documents/file.pdf")
	suite.Require().NoError(err)
	if approved {
		suite.Require().NoError(d.Approve())
	}

	suite.Require().NoError(suite.documents.Add(context.Background(), d))
	return d.ID()
}

func (suite *ReadModelQueryHandlersTestSuite) testLocation(lat, lon float64) kernel.Location {
	location, err := kernel.NewLocation(lat, lon)
	suite.Require().NoError(err)
	return location
}

func (suite *ReadModelQueryHandlersTestSuite) TestCourierDashboard() {
	ctx := context.Background()
	courierID := suite.seedCourier("Mehmet", courier.StatusActive, true, suite.testLocation(40.05, 29.05))
	distributorID := kernel.NewUUID()

	suite.seedShipment(distributorID, &courierID, shipment.Delivered)
	suite.seedShipment(distributorID, &courierID, shipment.Delivered)
	suite.seedShipment(distributorID, &courierID, shipment.Assigned)
	suite.seedShipment(distributorID, nil, shipment.Created)
	suite.seedReview(courierID, 5)
	suite.seedReview(courierID, 4)

	handler := queries.NewGetCourierDashboardQueryHandler(suite.shipments, suite.reviews)
	query, err := queries.NewGetCourierDashboardQuery(courierID)
	suite.Require().NoError(err)

	dashboard, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(courierID, dashboard.CourierID)
	suite.InDelta(4.5, dashboard.AverageRating, 0.0001)
	suite.Equal(2, dashboard.TotalReviews)
	suite.Equal(2, dashboard.TotalDelivered)
	suite.Equal(1, dashboard.ActiveShipments)
	suite.Require().Len(dashboard.RecentDelivered, 2)
	suite.Equal("Delivery St. 2", dashboard.RecentDelivered[0].DeliveryAddress.Street)
	suite.False(dashboard.RecentDelivered[0].DeliveredAt.IsZero())
}

func (suite *ReadModelQueryHandlersTestSuite) TestDistributorDashboard() {
	ctx := context.Background()
	courierID := suite.seedCourier("Mehmet", courier.StatusActive, true, suite.testLocation(40.05, 29.05))
	distributorID := kernel.NewUUID()

	suite.seedShipment(distributorID, &courierID, shipment.Delivered)
	suite.seedShipment(distributorID, &courierID, shipment.PickedUp)
	suite.seedShipment(distributorID, nil, shipment.Created)
	suite.seedShipment(distributorID, nil, shipment.Cancelled)
	suite.seedShipment(kernel.NewUUID(), nil, shipment.Created)

	handler := queries.NewGetDistributorDashboardQueryHandler(suite.shipments)
	query, err := queries.NewGetDistributorDashboardQuery(distributorID)
	suite.Require().NoError(err)

	dashboard, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(4, dashboard.TotalShipments)
	suite.Equal(2, dashboard.ActiveShipments)
	suite.Equal(1, dashboard.TotalDelivered)
	suite.Equal(1, dashboard.TotalCancelled)
	suite.Require().Len(dashboard.RecentDelivered, 1)
}

func (suite *ReadModelQueryHandlersTestSuite) TestCourierRating() {
	ctx := context.Background()
	courierID := suite.seedCourier("Mehmet", courier.StatusActive, true, suite.testLocation(40.05, 29.05))
	suite.seedReview(courierID, 3)
	suite.seedReview(courierID, 5)

	handler := queries.NewGetCourierRatingQueryHandler(suite.reviews)
	query, err := queries.NewGetCourierRatingQuery(courierID)
	suite.Require().NoError(err)

	rating, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.InDelta(4.0, rating.AverageRating, 0.0001)
	suite.Equal(2, rating.TotalReviews)

	// An unreviewed courier is a zero, not an error.
	query, err = queries.NewGetCourierRatingQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	rating, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.InDelta(0.0, rating.AverageRating, 0.0001)
	suite.Equal(0, rating.TotalReviews)
}

func (suite *ReadModelQueryHandlersTestSuite) TestPendingDocuments() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()

	firstID := suite.seedDocument(ownerID, false)
	time.Sleep(10 * time.Millisecond)
	secondID := suite.seedDocument(ownerID, false)
	suite.seedDocument(ownerID, true)

	handler := queries.NewGetPendingDocumentsQueryHandler(suite.documents)

	pending, err := handler.Handle(ctx, queries.NewGetPendingDocumentsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(firstID, pending[0].ID)
	suite.Equal(secondID, pending[1].ID)
	suite.Equal(document.KindDriversLicense, pending[0].Kind)
	suite.Equal(ownerID, pending[0].OwnerID)
}

func (suite *ReadModelQueryHandlersTestSuite) TestAvailableCouriers() {
	ctx := context.Background()
	at := suite.testLocation(40.05, 29.05)
	activeID := suite.seedCourier("Mehmet", courier.StatusActive, true, at)
	suite.seedCourier("Ayşe", courier.StatusActive, false, at)
	suite.seedCourier("Kemal", courier.StatusOffline, true, at)
	suite.seedCourier("Zeynep", courier.StatusDestinationBased, true, at)

	handler := queries.NewGetAvailableCouriersQueryHandler(suite.couriers)

	couriers, err := handler.Handle(ctx, queries.NewGetAvailableCouriersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 1)
	suite.Equal(activeID, couriers[0].ID)
	suite.Equal("Mehmet", couriers[0].Name)
	suite.Equal(courier.TransportMotorbike, couriers[0].Transport)
	suite.InDelta(40.05, couriers[0].Location.Latitude(), 1e-9)
}

func (suite *ReadModelQueryHandlersTestSuite) TestAvailableCouriersNear() {
	ctx := context.Background()
	nearID := suite.seedCourier("Mehmet", courier.StatusActive, true, suite.testLocation(40.05, 29.05))
	suite.seedCourier("Emre", courier.StatusActive, true, suite.testLocation(41.5, 30.5))
	suite.seedCourier("Zeynep", courier.StatusDestinationBased, true, suite.testLocation(40.05, 29.05))

	handler := queries.NewGetAvailableCouriersQueryHandler(suite.couriers)
	query, err := queries.NewGetAvailableCouriersNearQuery(suite.testLocation(40.0, 29.0), 10)
	suite.Require().NoError(err)

	couriers, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(couriers, 1)
	suite.Equal(nearID, couriers[0].ID)
}

func TestReadModelQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelQueryHandlersTestSuite))
}
