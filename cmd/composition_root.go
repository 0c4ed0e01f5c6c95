package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"
	"dispatch/internal/notifications"

	"gorm.io/gorm"
)

// CompositionRoot assembles use case handlers from their infrastructure
// dependencies. All handlers share one unit of work factory and one
// notification queue.
type CompositionRoot struct {
	uowFactory postgres.GormUnitOfWorkFactory
	queue      *notifications.Queue
	jobManager *jobs.JobManager
	logger     *slog.Logger
}

// NewCompositionRoot wires the application over an open database connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	queue := notifications.NewQueue(notifications.DefaultQueueCapacity)
	return CompositionRoot{
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      queue,
		jobManager: jobs.NewJobManager(queue, notifications.NewLogSender(logger), logger),
		logger:     logger,
	}
}

// JobManager returns the background job coordinator.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

// CreateHandlers builds the full handler set for the HTTP server.
func (c *CompositionRoot) CreateHandlers() http.Handlers {
	return http.Handlers{
		RegisterCourier:        c.CreateRegisterCourierCommandHandler(),
		RegisterDistributor:    c.CreateRegisterDistributorCommandHandler(),
		SetCourierAvailability: c.CreateSetCourierAvailabilityCommandHandler(),
		CreateShipment:         c.CreateCreateShipmentCommandHandler(),
		AcceptOffer:            c.CreateAcceptOfferCommandHandler(),
		AdvanceShipment:        c.CreateAdvanceShipmentCommandHandler(),
		CancelShipment:         c.CreateCancelShipmentCommandHandler(),
		AddDeliveryNote:        c.CreateAddDeliveryNoteCommandHandler(),
		AddReview:              c.CreateAddReviewCommandHandler(),
		UploadDocument:         c.CreateUploadDocumentCommandHandler(),
		ApproveDocument:        c.CreateApproveDocumentCommandHandler(),
		RejectDocument:         c.CreateRejectDocumentCommandHandler(),

		GetOffers:               c.CreateGetOffersQueryHandler(),
		TrackShipment:           c.CreateTrackShipmentQueryHandler(),
		GetShipment:             c.CreateGetShipmentQueryHandler(),
		GetDistributorShipments: c.CreateGetDistributorShipmentsQueryHandler(),
		GetCourierDashboard:     c.CreateGetCourierDashboardQueryHandler(),
		GetDistributorDashboard: c.CreateGetDistributorDashboardQueryHandler(),
		GetCourierRating:        c.CreateGetCourierRatingQueryHandler(),
		GetPendingDocuments:     c.CreateGetPendingDocumentsQueryHandler(),
		GetAvailableCouriers:    c.CreateGetAvailableCouriersQueryHandler(),
	}
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDistributorCommandHandler() commands.RegisterDistributorCommandHandler {
	var f commands.DistributorUoWFactory = FuncDistributorUoWFactory(func() commands.DistributorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDistributorCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceShipmentCommandHandler() commands.AdvanceShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAddDeliveryNoteCommandHandler() commands.AddDeliveryNoteCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDeliveryNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateUploadDocumentCommandHandler() commands.UploadDocumentCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUploadDocumentCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveDocumentCommandHandler() commands.ApproveDocumentCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveDocumentCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectDocumentCommandHandler() commands.RejectDocumentCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectDocumentCommandHandler(f, c.queue, c.logger)
}

func (c *CompositionRoot) CreateGetOffersQueryHandler() queries.GetOffersQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOffersQueryHandler(uow.CourierRepository(), uow.ShipmentRepository())
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewTrackShipmentQueryHandler(uow.ShipmentRepository(), uow.CourierRepository())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.uowFactory.Create().ShipmentRepository())
}

func (c *CompositionRoot) CreateGetDistributorShipmentsQueryHandler() queries.GetDistributorShipmentsQueryHandler {
	return queries.NewGetDistributorShipmentsQueryHandler(c.uowFactory.Create().ShipmentRepository())
}

func (c *CompositionRoot) CreateGetCourierDashboardQueryHandler() queries.GetCourierDashboardQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetCourierDashboardQueryHandler(uow.ShipmentRepository(), uow.ReviewRepository())
}

func (c *CompositionRoot) CreateGetDistributorDashboardQueryHandler() queries.GetDistributorDashboardQueryHandler {
	return queries.NewGetDistributorDashboardQueryHandler(c.uowFactory.Create().ShipmentRepository())
}

func (c *CompositionRoot) CreateGetCourierRatingQueryHandler() queries.GetCourierRatingQueryHandler {
	return queries.NewGetCourierRatingQueryHandler(c.uowFactory.Create().ReviewRepository())
}

func (c *CompositionRoot) CreateGetPendingDocumentsQueryHandler() queries.GetPendingDocumentsQueryHandler {
	return queries.NewGetPendingDocumentsQueryHandler(c.uowFactory.Create().DocumentRepository())
}

func (c *CompositionRoot) CreateGetAvailableCouriersQueryHandler() queries.GetAvailableCouriersQueryHandler {
	return queries.NewGetAvailableCouriersQueryHandler(c.uowFactory.Create().CourierRepository())
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncDistributorUoWFactory func() commands.DistributorUoW

func (f FuncDistributorUoWFactory) Create() commands.DistributorUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
