package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "frontdesk/internal/adapters/in/http"
	"frontdesk/internal/adapters/out/postgres"
	"frontdesk/internal/adapters/out/postgres/seed"
	"frontdesk/internal/core/application/usecases/commands"
	"frontdesk/internal/core/application/usecases/queries"
	"frontdesk/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires adapters and use cases around one connection pool.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// Seed inserts the configured tiers and facilities; existing rows are left untouched.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	file, err := seed.Load(c.config.SeedFile)
	if err != nil {
		return err
	}
	plan, err := file.Build()
	if err != nil {
		return fmt.Errorf("seed %q: %w", c.config.SeedFile, err)
	}
	if err = seed.Apply(ctx, c.uowFactory, plan); err != nil {
		return err
	}

	c.logger.Info("seed applied", "tiers", len(plan.Tiers), "facilities", len(plan.Facilities))
	return nil
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateStoreBoxCommandHandler() commands.StoreBoxCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewStoreBoxCommandHandler(f)
}

func (c *CompositionRoot) CreateRetrieveBoxCommandHandler() commands.RetrieveBoxCommandHandler {
	var f commands.StorageUoWFactory = FuncStorageUoWFactory(func() commands.StorageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetrieveBoxCommandHandler(f)
}

func (c *CompositionRoot) CreateHoldOpenSlotCommandHandler() commands.HoldOpenSlotCommandHandler {
	var f commands.OverflowUoWFactory = FuncOverflowUoWFactory(func() commands.OverflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewHoldOpenSlotCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailabilityQueryHandler() queries.GetAvailabilityQueryHandler {
	return queries.NewGetAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverflowAvailabilityQueryHandler() queries.GetOverflowAvailabilityQueryHandler {
	return queries.NewGetOverflowAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuditCapacityQueryHandler() queries.AuditCapacityQueryHandler {
	return queries.NewAuditCapacityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAuditCapacityQueryHandler(), c.config.AuditSchedule, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateCustomerCommandHandler(),
		c.CreateStoreBoxCommandHandler(),
		c.CreateRetrieveBoxCommandHandler(),
		c.CreateHoldOpenSlotCommandHandler(),
		c.CreateGetAvailabilityQueryHandler(),
		c.CreateGetOverflowAvailabilityQueryHandler(),
	)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncStorageUoWFactory func() commands.StorageUoW

func (f FuncStorageUoWFactory) Create() commands.StorageUoW {
	return f()
}

type FuncOverflowUoWFactory func() commands.OverflowUoW

func (f FuncOverflowUoWFactory) Create() commands.OverflowUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
