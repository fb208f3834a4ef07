package cmd

import (
	"log/slog"

	httpin "kurye/internal/adapters/in/http"
	"kurye/internal/adapters/out/googlemaps"
	"kurye/internal/adapters/out/kafka"
	"kurye/internal/adapters/out/localization"
	"kurye/internal/adapters/out/postgres"
	"kurye/internal/adapters/out/postgres/campaignrepo"
	"kurye/internal/adapters/out/postgres/productrepo"
	"kurye/internal/adapters/out/rediscache"
	"kurye/internal/adapters/out/wallet"
	"kurye/internal/core/application/usecases/commands"
	"kurye/internal/core/application/usecases/queries"
	"kurye/internal/core/ports"
	"kurye/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Everything is
// built once at startup; handlers are cheap value types created on
// demand.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	campaigns    ports.CampaignRepository
	catalog      ports.ProductCatalog
	maps         ports.MapService
	notifier     ports.Notifier
	wallet       ports.WalletService
	localization ports.LocalizationService
	clock        ports.Clock
	logger       *slog.Logger
}

// NewCompositionRoot builds all shared adapters from the configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	campaigns := rediscache.NewCampaignCache(
		campaignrepo.NewGormCampaignRepository(gormDB),
		redisClient,
		rediscache.DefaultTTL,
		logger,
	)

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		campaigns:    campaigns,
		catalog:      productrepo.NewGormProductCatalog(gormDB),
		maps:         googlemaps.NewClient(config.GoogleMapsAPIKey, logger),
		notifier:     kafka.NewNotifier(config.KafkaBrokers, config.KafkaOrderTopic),
		wallet:       wallet.NewGormWalletService(gormDB),
		localization: localization.NewCatalog(config.DefaultLanguage),
		clock:        ports.SystemClock{},
		logger:       logger,
	}
}

// NewJobManager creates the background job manager with its handlers
// wired.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAutoAssignOrdersCommandHandler(),
		c.CreateSweepStaleCouriersCommandHandler(),
		c.CreateSyncEarningsCommandHandler(),
		c.logger,
	)
}

// NewHTTPServer creates the HTTP server with every handler wired.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		CalculateOrder: c.CreateCalculateOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),
		AdvancePrep:    c.CreateAdvanceOrderPrepCommandHandler(),

		CreateCourier:  c.CreateCreateCourierCommandHandler(),
		ChangeShift:    c.CreateChangeCourierShiftCommandHandler(),
		UpdateLocation: c.CreateUpdateCourierLocationCommandHandler(),

		AcceptOrder:   c.CreateAcceptOrderCommandHandler(),
		RejectOrder:   c.CreateRejectOrderCommandHandler(),
		PickUpOrder:   c.CreatePickUpOrderCommandHandler(),
		StartDelivery: c.CreateStartDeliveryCommandHandler(),
		DeliverOrder:  c.CreateDeliverOrderCommandHandler(),

		SetVendorBusy: c.CreateSetVendorBusyCommandHandler(),

		CourierActiveOrders: c.CreateGetCourierActiveOrdersQueryHandler(),
		OrderCourierHistory: c.CreateGetOrderCourierHistoryQueryHandler(),
	}

	return httpin.NewServer(handlers, c.localization, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderingUoWFactory(), c.campaigns, c.catalog, c.maps, c.clock)
}

func (c *CompositionRoot) CreateCalculateOrderCommandHandler() commands.CalculateOrderCommandHandler {
	return commands.NewCalculateOrderCommandHandler(c.orderingUoWFactory(), c.campaigns, c.catalog, c.maps, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.dispatchUoWFactory(), c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderPrepCommandHandler() commands.AdvanceOrderPrepCommandHandler {
	return commands.NewAdvanceOrderPrepCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeCourierShiftCommandHandler() commands.ChangeCourierShiftCommandHandler {
	return commands.NewChangeCourierShiftCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	return commands.NewUpdateCourierLocationCommandHandler(c.courierUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.dispatchUoWFactory(), c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.dispatchUoWFactory(), c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.dispatchUoWFactory(), c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.dispatchUoWFactory(), c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.settlementUoWFactory(), c.wallet, c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateSetVendorBusyCommandHandler() commands.SetVendorBusyCommandHandler {
	return commands.NewSetVendorBusyCommandHandler(c.orderingUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.dispatchUoWFactory(), c.maps, c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateAutoAssignOrdersCommandHandler() commands.AutoAssignOrdersCommandHandler {
	return commands.NewAutoAssignOrdersCommandHandler(
		c.dispatchUoWFactory(),
		c.CreateAssignOrderCommandHandler(),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSweepStaleCouriersCommandHandler() commands.SweepStaleCouriersCommandHandler {
	return commands.NewSweepStaleCouriersCommandHandler(c.courierUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateSyncEarningsCommandHandler() commands.SyncEarningsCommandHandler {
	return commands.NewSyncEarningsCommandHandler(c.settlementUoWFactory(), c.wallet, c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetCourierActiveOrdersQueryHandler() queries.GetCourierActiveOrdersQueryHandler {
	return queries.NewGetCourierActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderCourierHistoryQueryHandler() queries.GetOrderCourierHistoryQueryHandler {
	return queries.NewGetOrderCourierHistoryQueryHandler(c.gormDB)
}

// The use cases narrow the unit of work to the repositories they
// actually touch. The gorm unit of work satisfies every narrowed
// interface, so each factory just rewraps it.

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderingUoWFactory() commands.OrderingUoWFactory {
	return FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
