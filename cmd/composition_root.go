package cmd

import (
	"context"
	"fmt"

	"customs/api"
	httpin "customs/internal/adapters/in/http"
	"customs/internal/adapters/out/httpclient"
	"customs/internal/adapters/out/locks"
	"customs/internal/adapters/out/postgres"
	"customs/internal/adapters/out/sheets"
	"customs/internal/adapters/out/sms"
	"customs/internal/core/application/usecases/commands"
	"customs/internal/core/application/usecases/queries"
	"customs/internal/core/ports"
	"customs/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	locker     ports.PackageLocker
	redis      *locks.RedisLocker
	notifier   ports.Notifier
	syncer     ports.SheetSyncer
	logger     *zap.Logger
}

// NewCompositionRoot builds the outbound adapters. With REDIS_URL set,
// package locks are shared across instances through Redis.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	if config.RedisURL != "" {
		redisLocker, err := locks.NewRedisLocker(config.RedisURL, config.LockTTL)
		if err != nil {
			return nil, fmt.Errorf("create redis locker: %w", err)
		}
		if err := redisLocker.Ping(context.Background()); err != nil {
			_ = redisLocker.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		c.redis = redisLocker
		c.locker = redisLocker
	} else {
		logger.Warn("REDIS_URL is not set, package locks are local to this instance")
		c.locker = locks.NewLocalLocker()
	}

	client := httpclient.New(config.OutboundTimeout, logger)
	// Reads outside any transaction.
	importers := c.uowFactory.Create().ImporterRepository()

	c.notifier = sms.NewNotifier(sms.Config{
		BaseURL:    config.SMS.GatewayURL,
		AccountSID: config.SMS.AccountSID,
		AuthToken:  config.SMS.AuthToken,
	}, client, importers, logger)
	c.syncer = sheets.NewSyncer(config.Sheets.APIURL, client, importers, logger)

	return c, nil
}

// Close releases connections owned by the root. The database is closed by
// its opener.
func (c *CompositionRoot) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateTransitionPackageCommandHandler() commands.TransitionPackageCommandHandler {
	pool := c.uowFactory.Create()
	return commands.NewTransitionPackageCommandHandler(c.packageUoWFactory(), c.locker, commands.SideEffectPorts{
		ActivityLog: pool.ActivityLog(),
		Notifier:    c.notifier,
		Syncer:      c.syncer,
		SyncState:   pool.SyncState(),
	}, c.logger)
}

func (c *CompositionRoot) CreateSetPaymentStatusCommandHandler() commands.SetPaymentStatusCommandHandler {
	return commands.NewSetPaymentStatusCommandHandler(
		c.packageUoWFactory(),
		c.locker,
		c.uowFactory.Create().ActivityLog(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateResyncPackagesCommandHandler() commands.ResyncPackagesCommandHandler {
	return commands.NewResyncPackagesCommandHandler(
		c.packageUoWFactory(),
		c.locker,
		c.syncer,
		c.uowFactory.Create().SyncState(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageActivityQueryHandler() queries.GetPackageActivityQueryHandler {
	return queries.NewGetPackageActivityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreatePackage:      c.CreateCreatePackageCommandHandler(),
		TransitionPackage:  c.CreateTransitionPackageCommandHandler(),
		SetPaymentStatus:   c.CreateSetPaymentStatusCommandHandler(),
		GetPackage:         c.CreateGetPackageQueryHandler(),
		ListPackages:       c.CreateListPackagesQueryHandler(),
		GetPackageActivity: c.CreateGetPackageActivityQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateRequestValidator() (echo.MiddlewareFunc, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	return httpin.NewRequestValidator(doc)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateResyncPackagesCommandHandler(),
		c.config.SheetResyncSchedule,
		c.config.SheetResyncBatch,
		c.logger,
	)
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
