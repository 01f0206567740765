package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"atelier/internal/adapters/out/catalog"
	"atelier/internal/adapters/out/measurements"
	"atelier/internal/adapters/out/notify"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/razorpay"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/services"
	"atelier/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	gateway      *razorpay.Client
	catalog      *catalog.Client
	measurements *measurements.Client
	publisher    *notify.WebhookPublisher

	pricing services.PricingCalculator
	cache   *queries.BillSummaryCache
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	gateway, err := razorpay.NewClient(configs.GatewayBaseURL, configs.GatewayKeyID, configs.GatewayKeySecret)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("payment gateway client: %w", err)
	}

	catalogClient, err := catalog.NewClient(configs.CatalogBaseURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("fabric catalog client: %w", err)
	}

	measurementsClient, err := measurements.NewClient(configs.MeasurementsBaseURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("measurement service client: %w", err)
	}

	publisher, err := notify.NewWebhookPublisher(configs.NotifyWebhookURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("notification publisher: %w", err)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:       logger,
		gateway:      gateway,
		catalog:      catalogClient,
		measurements: measurementsClient,
		publisher:    publisher,
		pricing:      services.NewPricingCalculator(),
		cache:        queries.NewBillSummaryCache(),
	}, nil
}

func (c *CompositionRoot) CreateRegisterActorCommandHandler() commands.RegisterActorCommandHandler {
	var f commands.ActorUoWFactory = FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterActorCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderActorUoWFactory = FuncOrderActorUoWFactory(func() commands.OrderActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.measurements, c.pricing, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignTailorCommandHandler() commands.AssignTailorCommandHandler {
	var f commands.OrderActorUoWFactory = FuncOrderActorUoWFactory(func() commands.OrderActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTailorCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteEmbroideryCommandHandler() commands.CompleteEmbroideryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteEmbroideryCommandHandler(f)
}

func (c *CompositionRoot) CreateGenerateBillCommandHandler() commands.GenerateBillCommandHandler {
	var f commands.OrderBillUoWFactory = FuncOrderBillUoWFactory(func() commands.OrderBillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateBillCommandHandler(f, c.gateway, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.BillUoWFactory = FuncBillUoWFactory(func() commands.BillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.gateway, c.publisher, c.cache, c.logger)
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	var f commands.BillUoWFactory = FuncBillUoWFactory(func() commands.BillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefundPaymentCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateSendPaymentRemindersCommandHandler() commands.SendPaymentRemindersCommandHandler {
	var f commands.BillUoWFactory = FuncBillUoWFactory(func() commands.BillUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendPaymentRemindersCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBillByOrderQueryHandler() queries.GetBillByOrderQueryHandler {
	return queries.NewGetBillByOrderQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSendPaymentRemindersCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBillUoWFactory func() commands.BillUoW

func (f FuncBillUoWFactory) Create() commands.BillUoW {
	return f()
}

type FuncActorUoWFactory func() commands.ActorUoW

func (f FuncActorUoWFactory) Create() commands.ActorUoW {
	return f()
}

type FuncOrderActorUoWFactory func() commands.OrderActorUoW

func (f FuncOrderActorUoWFactory) Create() commands.OrderActorUoW {
	return f()
}

type FuncOrderBillUoWFactory func() commands.OrderBillUoW

func (f FuncOrderBillUoWFactory) Create() commands.OrderBillUoW {
	return f()
}
