package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/distributor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shipment"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateShipmentCommand(t *testing.T, distributorID kernel.UUID) commands.CreateShipmentCommand {
	t.Helper()
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), distributorID,
		testLocation(t, 40.0, 29.0), kernel.Address{Street: "Pickup St. 1"},
		testLocation(t, 40.1, 29.1), kernel.Address{Street: "Delivery St. 2"},
		testMeasure(t), "+90 555 000 11 22", "glassware")
	require.NoError(t, err)
	return cmd
}

func TestNewCreateShipmentCommand_MissingPhone(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		testLocation(t, 40.0, 29.0), kernel.Address{},
		testLocation(t, 40.1, 29.1), kernel.Address{},
		testMeasure(t), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecipientPhoneIsRequired)
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	distributorID := kernel.NewUUID()

	sender, err := distributor.NewDistributor(distributorID, "Hızlı Kargo", "+90 212 555 00 00", kernel.Address{})
	require.NoError(t, err)

	distributorRepo := &MockDistributorRepository{}
	distributorRepo.On("Get", ctx, distributorID).Return(sender, nil)

	shipmentRepo := &MockShipmentRepository{}
	shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil)

	uow := &MockUoW{}
	uow.On("Begin", ctx).Return(nil)
	uow.On("DistributorRepository").Return(distributorRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := &MockIntakeUoWFactory{}
	factory.On("Create").Return(uow)

	handler := commands.NewCreateShipmentCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, newCreateShipmentCommand(t, distributorID)))

	added := shipmentRepo.Calls[0].Arguments.Get(1).(*shipment.Shipment)
	assert.Equal(t, shipment.Created, added.Status())
	assert.Equal(t, distributorID, added.DistributorID())
	assert.Nil(t, added.Courier())
	assert.Len(t, added.VerificationCode(), 8)
}

func TestCreateShipmentCommandHandler_Handle_UnknownDistributor(t *testing.T) {
	ctx := t.Context()
	distributorID := kernel.NewUUID()

	distributorRepo := &MockDistributorRepository{}
	distributorRepo.On("Get", ctx, distributorID).
		Return(nil, errs.NewObjectNotFoundError("distributorID", distributorID))

	uow := &MockUoW{}
	uow.On("Begin", ctx).Return(nil)
	uow.On("DistributorRepository").Return(distributorRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := &MockIntakeUoWFactory{}
	factory.On("Create").Return(uow)

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err := handler.Handle(ctx, newCreateShipmentCommand(t, distributorID))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ShipmentRepository")
}
