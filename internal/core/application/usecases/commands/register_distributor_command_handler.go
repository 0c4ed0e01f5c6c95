package commands

import (
	"context"

	"dispatch/internal/core/domain/model/distributor"
)

// RegisterDistributorCommandHandler handles distributor registration.
type RegisterDistributorCommandHandler struct {
	uowFactory DistributorUoWFactory
}

// NewRegisterDistributorCommandHandler creates a handler for distributor registration.
func NewRegisterDistributorCommandHandler(uowFactory DistributorUoWFactory) RegisterDistributorCommandHandler {
	return RegisterDistributorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterDistributorCommandHandler) Handle(ctx context.Context, cmd RegisterDistributorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := distributor.NewDistributor(cmd.DistributorID(), cmd.Name(), cmd.Phone(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.DistributorRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
