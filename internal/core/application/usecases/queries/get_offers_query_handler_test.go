package queries_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetActiveNear(
	ctx context.Context,
	location kernel.Location,
	radiusKm float64,
) ([]*courier.Courier, error) {
	args := m.Called(ctx, location, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByVerificationCode(ctx context.Context, code string) (*shipment.Shipment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllCreatedNear(
	ctx context.Context,
	location kernel.Location,
	radiusKm float64,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, location, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllByDistributor(ctx context.Context, id kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllByCourier(ctx context.Context, id kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) TryAssign(ctx context.Context, id, courierID kernel.UUID) (bool, error) {
	args := m.Called(ctx, id, courierID)
	return args.Bool(0), args.Error(1)
}

func testLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func testShipment(t *testing.T, pickup, delivery kernel.Location) *shipment.Shipment {
	t.Helper()
	measure, err := shipment.NewMeasure(2.5, 30, 40, 20, shipment.SizeSmall)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		pickup, kernel.Address{Street: "Pickup St. 1"},
		delivery, kernel.Address{Street: "Delivery St. 2"},
		measure, "+90 555 000 11 22", "books",
		shipment.NewVerificationCode())
	require.NoError(t, err)
	return s
}

func activeCourier(t *testing.T, id kernel.UUID, at kernel.Location) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, "Mehmet", "+90 555 222 33 44", courier.TransportMotorbike)
	require.NoError(t, err)
	c.Enable()
	require.NoError(t, c.SetAvailability(courier.StatusActive, at))
	return c
}

func TestGetOffersQueryHandler_Handle_PricesNearbyShipments(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	at := testLocation(t, 40.0, 29.0)
	c := activeCourier(t, courierID, at)

	s := testShipment(t, testLocation(t, 40.05, 29.05), testLocation(t, 40.2, 29.2))

	couriers := &MockCourierRepository{}
	couriers.On("Get", ctx, courierID).Return(c, nil)

	shipments := &MockShipmentRepository{}
	shipments.On("GetAllCreatedNear", ctx, *c.Location(), queries.OfferRadiusKm).
		Return([]*shipment.Shipment{s}, nil)

	handler := queries.NewGetOffersQueryHandler(couriers, shipments)
	query, err := queries.NewGetOffersQuery(courierID)
	require.NoError(t, err)

	offers, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, offers, 1)

	assert.Equal(t, s.ID(), offers[0].ShipmentID)
	assert.InDelta(t, 7.0026, offers[0].DistanceToPickup, 0.001)
	assert.InDelta(t, 20.9965, offers[0].TotalDistance, 0.001)
	assert.InDelta(t, 72.491, offers[0].EstimatedEarning, 0.01)
}

func TestGetOffersQueryHandler_Handle_DisabledCourier(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	c, err := courier.NewCourier(courierID, "Mehmet", "+90 555", courier.TransportCar)
	require.NoError(t, err)
	require.NoError(t, c.SetAvailability(courier.StatusActive, testLocation(t, 40.0, 29.0)))

	couriers := &MockCourierRepository{}
	couriers.On("Get", ctx, courierID).Return(c, nil)

	shipments := &MockShipmentRepository{}

	handler := queries.NewGetOffersQueryHandler(couriers, shipments)
	query, err := queries.NewGetOffersQuery(courierID)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUserNotActive)
	shipments.AssertNotCalled(t, "GetAllCreatedNear", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOffersQueryHandler_Handle_NotAcceptingWork(t *testing.T) {
	ctx := t.Context()

	for _, status := range []courier.Status{courier.StatusInactive, courier.StatusOffline} {
		courierID := kernel.NewUUID()
		c := activeCourier(t, courierID, testLocation(t, 40.0, 29.0))
		require.NoError(t, c.SetAvailability(status, testLocation(t, 40.0, 29.0)))

		couriers := &MockCourierRepository{}
		couriers.On("Get", ctx, courierID).Return(c, nil)

		handler := queries.NewGetOffersQueryHandler(couriers, &MockShipmentRepository{})
		query, err := queries.NewGetOffersQuery(courierID)
		require.NoError(t, err)

		offers, err := handler.Handle(ctx, query)
		require.NoError(t, err, status.String())
		assert.Empty(t, offers, status.String())
	}
}

func TestGetOffersQueryHandler_Handle_NoLocation(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	c, err := courier.NewCourier(courierID, "Mehmet", "+90 555", courier.TransportVan)
	require.NoError(t, err)
	c.Enable()

	couriers := &MockCourierRepository{}
	couriers.On("Get", ctx, courierID).Return(c, nil)

	handler := queries.NewGetOffersQueryHandler(couriers, &MockShipmentRepository{})
	query, err := queries.NewGetOffersQuery(courierID)
	require.NoError(t, err)

	offers, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestGetOffersQueryHandler_Handle_DestinationBasedSeesOffers(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	at := testLocation(t, 40.0, 29.0)
	c := activeCourier(t, courierID, at)
	require.NoError(t, c.SetAvailability(courier.StatusDestinationBased, at))

	couriers := &MockCourierRepository{}
	couriers.On("Get", ctx, courierID).Return(c, nil)

	shipments := &MockShipmentRepository{}
	shipments.On("GetAllCreatedNear", ctx, at, queries.OfferRadiusKm).
		Return([]*shipment.Shipment{}, nil)

	handler := queries.NewGetOffersQueryHandler(couriers, shipments)
	query, err := queries.NewGetOffersQuery(courierID)
	require.NoError(t, err)

	offers, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, offers)
	shipments.AssertExpectations(t)
}
