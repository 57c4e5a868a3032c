package cmd

import (
	"log/slog"

	"purchase/internal/adapters/out/postgres"
	"purchase/internal/core/application/usecases/commands"
	"purchase/internal/core/application/usecases/queries"
	"purchase/internal/core/domain/services"
	"purchase/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	pipeline   services.SavePipeline
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		pipeline:   services.NewSavePipeline(logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pipeline)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.pipeline)
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.PurchaseUoWFactory = FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f, c.pipeline, c.logger)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderNotificationsQueryHandler() queries.GetOrderNotificationsQueryHandler {
	return queries.NewGetOrderNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchNotificationsCommandHandler(),
		c.config.NotificationDispatchSchedule,
		c.logger,
	)
}

type FuncPurchaseUoWFactory func() commands.PurchaseUoW

func (f FuncPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
