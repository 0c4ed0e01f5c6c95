package commands_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/document"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func testMeasure(t *testing.T) shipment.Measure {
	t.Helper()
	m, err := shipment.NewMeasure(2.5, 30, 40, 20, shipment.SizeSmall)
	require.NoError(t, err)
	return m
}

func createdShipment(t *testing.T, distributorID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), distributorID,
		testLocation(t, 40.0, 29.0), kernel.Address{Street: "Pickup St. 1"},
		testLocation(t, 40.1, 29.1), kernel.Address{Street: "Delivery St. 2"},
		testMeasure(t), "+90 555 000 11 22", "two boxes",
		shipment.NewVerificationCode())
	require.NoError(t, err)
	return s
}

func assignedShipment(t *testing.T, distributorID, courierID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s := createdShipment(t, distributorID)
	require.NoError(t, s.Assign(courierID))
	return s
}

func deliveredShipment(t *testing.T, distributorID, courierID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s := assignedShipment(t, distributorID, courierID)
	require.NoError(t, s.Advance(courierID, shipment.PickedUp))
	require.NoError(t, s.Advance(courierID, shipment.Delivered))
	return s
}

func registeredCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, "Mehmet", "+90 555 222 33 44", courier.TransportMotorbike)
	require.NoError(t, err)
	return c
}

func enabledCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c := registeredCourier(t, id)
	c.Enable()
	return c
}

func pendingDocument(t *testing.T, ownerID kernel.UUID, kind document.Kind) *document.Document {
	t.Helper()
	d, err := document.NewDocument(kernel.NewUUID(), ownerID, document.RoleCourier, kind, "s3://documents/file.pdf")
	require.NoError(t, err)
	return d
}

func approvedDocument(t *testing.T, ownerID kernel.UUID, kind document.Kind) *document.Document {
	t.Helper()
	d := pendingDocument(t, ownerID, kind)
	require.NoError(t, d.Approve())
	return d
}
