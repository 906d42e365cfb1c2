package cmd

import (
	"log/slog"
	"time"

	"produzione/internal/adapters/out/notifier"
	"produzione/internal/adapters/out/postgres"
	"produzione/internal/adapters/out/postgres/refdatarepo"
	"produzione/internal/core/application/usecases/commands"
	"produzione/internal/core/application/usecases/queries"
	"produzione/internal/core/domain/services"
	"produzione/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each Create
// method builds a fresh handler over the shared database connection.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	refData    ports.ReferenceDataGateway
	notifier   ports.CacheNotifier
	allocator  services.PlanningAllocator
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	allocator, err := services.NewPlanningAllocator(config.GranularityMinutes)
	if err != nil {
		return CompositionRoot{}, err
	}

	lockTimeout := time.Duration(config.LockTimeoutMS) * time.Millisecond

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, lockTimeout),
		refData:    refdatarepo.NewGormReferenceDataGateway(gormDB),
		notifier:   notifier.NewDBCacheNotifier(gormDB, logger),
		allocator:  allocator,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.processingUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRecordProcessingCommandHandler() commands.RecordProcessingCommandHandler {
	return commands.NewRecordProcessingCommandHandler(c.processingUoWFactory())
}

func (c *CompositionRoot) CreateSavePlanningCommandHandler() commands.SavePlanningCommandHandler {
	return commands.NewSavePlanningCommandHandler(c.planningUoWFactory(), c.refData, c.allocator)
}

func (c *CompositionRoot) CreateForceRescheduleCommandHandler() commands.ForceRescheduleCommandHandler {
	return commands.NewForceRescheduleCommandHandler(c.planningUoWFactory(), c.refData, c.allocator)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateReconcileWorkedQuantitiesCommandHandler() commands.ReconcileWorkedQuantitiesCommandHandler {
	return commands.NewReconcileWorkedQuantitiesCommandHandler(c.processingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRebuildSummariesCommandHandler() commands.RebuildSummariesCommandHandler {
	return commands.NewRebuildSummariesCommandHandler(c.planningUoWFactory())
}

func (c *CompositionRoot) CreateGetPlanningDataQueryHandler() queries.GetPlanningDataQueryHandler {
	return queries.NewGetPlanningDataQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckTodayQueryHandler() queries.CheckTodayQueryHandler {
	return queries.NewCheckTodayQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateHoursQueryHandler() queries.CalculateHoursQueryHandler {
	return queries.NewCalculateHoursQueryHandler(c.gormDB, c.allocator)
}

func (c *CompositionRoot) processingUoWFactory() commands.ProcessingUoWFactory {
	return FuncProcessingUoWFactory(func() commands.ProcessingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) planningUoWFactory() commands.PlanningUoWFactory {
	return FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncProcessingUoWFactory func() commands.ProcessingUoW

func (f FuncProcessingUoWFactory) Create() commands.ProcessingUoW {
	return f()
}

type FuncPlanningUoWFactory func() commands.PlanningUoW

func (f FuncPlanningUoWFactory) Create() commands.PlanningUoW {
	return f()
}
