package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "courierhub/internal/adapters/in/http"
	"courierhub/internal/adapters/out/kafka"
	"courierhub/internal/adapters/out/logging"
	"courierhub/internal/adapters/out/postgres"
	presencestore "courierhub/internal/adapters/out/presence"
	"courierhub/internal/core/application/presence"
	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/ports"
	"courierhub/internal/jobs"
	"courierhub/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	logger     *slog.Logger

	producer *kafka.Producer
	redis    *redis.Client
	tracker  *presence.Tracker
}

// NewCompositionRoot connects the outbound adapters. Kafka and Redis are
// optional: without them events are logged and presence stays in memory.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		gormDB: gormDB,
		clock:  clock.NewSystem(),
		logger: logger,
	}

	var (
		publisher   ports.EventPublisher
		broadcaster ports.PresenceBroadcaster
	)
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		producer, err := kafka.NewProducer(brokers, logger)
		if err != nil {
			return nil, fmt.Errorf("create kafka producer: %w", err)
		}
		c.producer = producer
		publisher = kafka.NewEventPublisher(producer, config.KafkaDeliveryEventsTopic)
		broadcaster = kafka.NewPresenceBroadcaster(producer, config.KafkaPresenceTopic, c.clock)
	} else {
		logger.Warn("KAFKA_HOST is not set, events are only logged")
		publisher = logging.NewEventPublisher(logger)
		broadcaster = logging.NewPresenceBroadcaster(logger)
	}

	var store ports.PresenceStore
	if config.RedisAddr != "" {
		c.redis = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		if err := c.redis.Ping(ctx).Err(); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = presencestore.NewRedisStore(c.redis, "")
	} else {
		store = presencestore.NewMemoryStore()
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)
	c.tracker = presence.NewTracker(store, broadcaster, logger)

	return c, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) deliveryUoW() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) courierUoW() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateRateDeliveryCommandHandler() commands.RateDeliveryCommandHandler {
	return commands.NewRateDeliveryCommandHandler(c.deliveryUoW(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	return commands.NewUpdateDeliveryLocationCommandHandler(c.deliveryUoW(), c.clock)
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoW())
}

func (c *CompositionRoot) CreatePurgeStalePlaceholdersCommandHandler() commands.PurgeStalePlaceholdersCommandHandler {
	return commands.NewPurgeStalePlaceholdersCommandHandler(c.deliveryUoW(), c.clock)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.courierUoW(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	return commands.NewUpdateCourierLocationCommandHandler(c.courierUoW(), c.clock)
}

func (c *CompositionRoot) CreateGetLatestCourierLocationQueryHandler() queries.GetLatestCourierLocationQueryHandler {
	return queries.NewGetLatestCourierLocationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveCourierLocationsQueryHandler() queries.GetActiveCourierLocationsQueryHandler {
	return queries.NewGetActiveCourierLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierDeliveriesQueryHandler() queries.GetCourierDeliveriesQueryHandler {
	return queries.NewGetCourierDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOptimizedRouteQueryHandler() queries.GetOptimizedRouteQueryHandler {
	return queries.NewGetOptimizedRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierStatsQueryHandler() queries.GetCourierStatsQueryHandler {
	return queries.NewGetCourierStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		AssignCourier:             c.CreateAssignCourierCommandHandler(),
		AcceptOrder:               c.CreateAcceptOrderCommandHandler(),
		RejectOrder:               c.CreateRejectOrderCommandHandler(),
		CancelOrder:               c.CreateCancelOrderCommandHandler(),
		UpdateDeliveryStatus:      c.CreateUpdateDeliveryStatusCommandHandler(),
		RateDelivery:              c.CreateRateDeliveryCommandHandler(),
		UpdateDeliveryLocation:    c.CreateUpdateDeliveryLocationCommandHandler(),
		DeleteDelivery:            c.CreateDeleteDeliveryCommandHandler(),
		RegisterCourier:           c.CreateRegisterCourierCommandHandler(),
		UpdateCourierLocation:     c.CreateUpdateCourierLocationCommandHandler(),
		GetLatestCourierLocation:  c.CreateGetLatestCourierLocationQueryHandler(),
		GetActiveCourierLocations: c.CreateGetActiveCourierLocationsQueryHandler(),
		GetCourierDeliveries:      c.CreateGetCourierDeliveriesQueryHandler(),
		GetDelivery:               c.CreateGetDeliveryQueryHandler(),
		GetOptimizedRoute:         c.CreateGetOptimizedRouteQueryHandler(),
		GetCourierStats:           c.CreateGetCourierStatsQueryHandler(),
	}, c.tracker, c.logger)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpadapter.NewRouter(c.CreateServer(), c.config.JWTSecret, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewStalePlaceholderJob(
			c.CreatePurgeStalePlaceholdersCommandHandler(),
			c.config.PlaceholderTTL,
			c.config.PlaceholderPurgeSchedule,
			c.logger,
		),
		jobs.NewPresenceBroadcastJob(c.tracker, c.config.PresenceBroadcastSchedule, c.logger),
	)
}

// Close releases the Kafka producer and the Redis client.
func (c *CompositionRoot) Close() error {
	var errs []error
	if c.producer != nil {
		errs = append(errs, c.producer.Close())
	}
	if c.redis != nil {
		errs = append(errs, c.redis.Close())
	}
	return errors.Join(errs...)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}
