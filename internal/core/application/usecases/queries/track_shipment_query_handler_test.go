package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackShipmentQueryHandler_Handle_CreatedShipment(t *testing.T) {
	ctx := t.Context()
	pickup := testLocation(t, 40.0, 29.0)
	s := testShipment(t, pickup, testLocation(t, 40.1, 29.1))

	shipments := &MockShipmentRepository{}
	shipments.On("GetByVerificationCode", ctx, s.VerificationCode()).Return(s, nil)

	handler := queries.NewTrackShipmentQueryHandler(shipments, &MockCourierRepository{})
	query, err := queries.NewTrackShipmentQuery(s.VerificationCode())
	require.NoError(t, err)

	view, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, shipment.Created, view.Status)
	assert.Equal(t, pickup, view.CurrentLocation)
	assert.Empty(t, view.CourierName)
	assert.Nil(t, view.EstimatedMinutes)
	assert.Nil(t, view.DeliveredAt)
}

func TestTrackShipmentQueryHandler_Handle_OutForDelivery(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	delivery := testLocation(t, 40.05, 29.05)
	s := testShipment(t, testLocation(t, 40.0, 29.0), delivery)
	require.NoError(t, s.Assign(courierID))
	require.NoError(t, s.Advance(courierID, shipment.PickedUp))

	at := testLocation(t, 40.0, 29.0)
	c := activeCourier(t, courierID, at)

	shipments := &MockShipmentRepository{}
	shipments.On("GetByVerificationCode", ctx, s.VerificationCode()).Return(s, nil)

	couriers := &MockCourierRepository{}
	couriers.On("Get", ctx, courierID).Return(c, nil)

	handler := queries.NewTrackShipmentQueryHandler(shipments, couriers)
	query, err := queries.NewTrackShipmentQuery(s.VerificationCode())
	require.NoError(t, err)

	view, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, shipment.PickedUp, view.Status)
	assert.Equal(t, at, view.CurrentLocation)
	assert.Equal(t, "Mehmet", view.CourierName)
	require.NotNil(t, view.EstimatedMinutes)
	// 7.0026 km at 40 km/h.
	assert.InDelta(t, 10.504, *view.EstimatedMinutes, 0.01)
}

func TestTrackShipmentQueryHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	s := testShipment(t, testLocation(t, 40.0, 29.0), testLocation(t, 40.1, 29.1))
	require.NoError(t, s.Assign(courierID))
	require.NoError(t, s.Advance(courierID, shipment.PickedUp))
	require.NoError(t, s.Advance(courierID, shipment.Delivered))

	c := activeCourier(t, courierID, testLocation(t, 40.1, 29.1))

	shipments := &MockShipmentRepository{}
	shipments.On("GetByVerificationCode", ctx, s.VerificationCode()).Return(s, nil)

	couriers := &MockCourierRepository{}
	couriers.On("Get", ctx, courierID).Return(c, nil)

	handler := queries.NewTrackShipmentQueryHandler(shipments, couriers)
	query, err := queries.NewTrackShipmentQuery(s.VerificationCode())
	require.NoError(t, err)

	view, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, shipment.Delivered, view.Status)
	require.NotNil(t, view.DeliveredAt)
	assert.Nil(t, view.EstimatedMinutes)
}

func TestTrackShipmentQueryHandler_Handle_UnknownCode(t *testing.T) {
	ctx := t.Context()

	shipments := &MockShipmentRepository{}
	shipments.On("GetByVerificationCode", ctx, "XXXXXXXX").
		Return(nil, errs.NewObjectNotFoundError("verificationCode", "XXXXXXXX"))

	handler := queries.NewTrackShipmentQueryHandler(shipments, &MockCourierRepository{})
	query, err := queries.NewTrackShipmentQuery("XXXXXXXX")
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
