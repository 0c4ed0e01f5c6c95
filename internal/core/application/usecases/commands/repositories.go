// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest unit of work it needs, so tests can mock
// exactly the repositories a command touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// DistributorRepoFactory provides access to the distributor repository within a transaction.
	DistributorRepoFactory interface {
		DistributorRepository() ports.DistributorRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// IntakeUoW manages transactions for shipment creation, which checks the
	// originating distributor before persisting the shipment.
	IntakeUoW interface {
		TxManager
		ShipmentRepoFactory
		DistributorRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// DispatchUoW manages transactions for offer acceptance, which claims a
	// shipment for a courier atomically.
	DispatchUoW interface {
		TxManager
		ShipmentRepoFactory
		CourierRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// DocumentUoW manages transactions for the document verification workflow.
	// Approval may also enable the owning courier's account.
	DocumentUoW interface {
		TxManager
		DocumentRepoFactory
		CourierRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	// ReviewUoW manages transactions for recording reviews, which verifies
	// the reviewed shipment before persisting.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		ShipmentRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// DistributorUoW manages transactions for distributor-only operations.
	DistributorUoW interface {
		TxManager
		DistributorRepoFactory
	}

	// DistributorUoWFactory creates new distributor unit of work instances.
	DistributorUoWFactory interface {
		Create() DistributorUoW
	}
)
