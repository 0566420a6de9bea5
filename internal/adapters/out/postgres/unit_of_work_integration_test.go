package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	postgres_adapter "frontdesk/internal/adapters/out/postgres"
	"frontdesk/internal/adapters/out/postgres/pgtest"
	"frontdesk/internal/core/application/usecases/commands"
	"frontdesk/internal/core/application/usecases/queries"
	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/domain/services"
	"frontdesk/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type uowFactory struct {
	inner ports.UnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.inner.Create()
}

type storageUoWFactory struct {
	inner ports.UnitOfWorkFactory
}

func (f storageUoWFactory) Create() commands.StorageUoW {
	return f.inner.Create()
}

// UnitOfWorkIntegrationTestSuite runs the unit of work and the store path
// against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedTier(size storage.Size, capacity int) {
	tier, err := storage.NewTier(size, capacity)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().StorageRepository().AddTier(context.Background(), tier))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedFacility(name string, spaceLeft int) {
	slots := make(map[storage.Size]facility.Slot)
	for _, size := range storage.AllSizes() {
		slot, err := facility.NewSlot(spaceLeft, spaceLeft)
		suite.Require().NoError(err)
		slots[size] = slot
	}
	f, err := facility.NewFacility(name, slots)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().FacilityRepository().Add(context.Background(), f))
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCustomer(first, last string) *customer.Customer {
	name, err := customer.NewName(first, last)
	suite.Require().NoError(err)
	c, err := customer.NewCustomer(kernel.NewUUID(), name, "555-0100")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().CustomerRepository().Add(context.Background(), c))
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(table string) int64 {
	var count int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	owner := suite.seedCustomer("Ada", "Lovelace")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	box, err := storage.NewBox(kernel.NewUUID(), storage.Small, owner.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.BoxRepository().Add(ctx, box))
	suite.Equal(1, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows("boxes"))
	suite.Equal(0, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitSpansRepositories() {
	ctx := context.Background()
	owner := suite.seedCustomer("Ada", "Lovelace")
	suite.seedFacility("Harbor", 3)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	box, err := storage.NewBox(kernel.NewUUID(), storage.Medium, owner.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.BoxRepository().Add(ctx, box))

	target, err := uow.FacilityRepository().GetForUpdate(ctx, "Harbor")
	suite.Require().NoError(err)
	hold, err := services.NewOverflowDirectory().HoldOpenSlot(services.FacilityLoad{Facility: target}, storage.Medium)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ReservationRepository().Add(ctx, hold))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows("boxes"))
	suite.Equal(int64(1), suite.countRows("reservations"))
}

// Scenario: capacity(Small)=1 and no facilities. Of many concurrent stores
// exactly one lands locally; the rest are rejected.
func (suite *UnitOfWorkIntegrationTestSuite) TestStoreBox_ConcurrentRequestsNeverOverfillTier() {
	suite.seedTier(storage.Small, 1)
	const workers = 8
	for i := range workers {
		suite.seedCustomer("Customer", fmt.Sprintf("No%d", i))
	}

	placements := suite.storeConcurrently(workers, storage.Small)

	suite.Equal(1, placements[services.PlacementLocal])
	suite.Equal(workers-1, placements[services.PlacementRejected])
	suite.Equal(int64(1), suite.countRows("boxes"))
}

// Scenario: the local tier is full and two facilities have one slot each.
// Exactly two concurrent stores go to overflow, one per facility.
func (suite *UnitOfWorkIntegrationTestSuite) TestStoreBox_ConcurrentRequestsNeverOverbookFacilities() {
	suite.seedTier(storage.Large, 0)
	suite.seedFacility("Harbor", 1)
	suite.seedFacility("Airport", 1)
	const workers = 6
	for i := range workers {
		suite.seedCustomer("Customer", fmt.Sprintf("No%d", i))
	}

	placements := suite.storeConcurrently(workers, storage.Large)

	suite.Equal(2, placements[services.PlacementOverflow])
	suite.Equal(workers-2, placements[services.PlacementRejected])

	tallies, err := suite.factory.Create().ReservationRepository().TallyBySize(context.Background(), storage.Large)
	suite.Require().NoError(err)
	suite.Equal(1, tallies["Harbor"].Bound)
	suite.Equal(1, tallies["Airport"].Bound)
}

// Scenario: a stored box that is retrieved gives its slot back, and a
// retrieve for a customer without a box writes nothing.
func (suite *UnitOfWorkIntegrationTestSuite) TestStoreThenRetrieve_RestoresAvailability() {
	ctx := context.Background()
	suite.seedTier(storage.Small, 2)
	suite.seedCustomer("Ada", "Lovelace")
	suite.seedCustomer("Grace", "Hopper")

	availability := queries.NewGetAvailabilityQueryHandler(suite.database.DB)
	before, err := availability.Handle(ctx, queries.NewGetAvailabilityQuery())
	suite.Require().NoError(err)

	store, err := commands.NewStoreBoxCommand("Ada", "Lovelace", storage.Small)
	suite.Require().NoError(err)
	placement, err := commands.NewStoreBoxCommandHandler(uowFactory{inner: suite.factory}).Handle(ctx, store)
	suite.Require().NoError(err)
	suite.Equal(services.PlacementLocal, placement.Kind)

	during, err := availability.Handle(ctx, queries.NewGetAvailabilityQuery())
	suite.Require().NoError(err)
	suite.Equal(before[storage.Small]-1, during[storage.Small])

	retriever := commands.NewRetrieveBoxCommandHandler(storageUoWFactory{inner: suite.factory})
	retrieve, err := commands.NewRetrieveBoxCommand("Ada", "Lovelace", storage.Small)
	suite.Require().NoError(err)
	retrieved, err := retriever.Handle(ctx, retrieve)
	suite.Require().NoError(err)
	suite.True(retrieved)

	after, err := availability.Handle(ctx, queries.NewGetAvailabilityQuery())
	suite.Require().NoError(err)
	suite.Equal(before, after)

	boxes, reservations := suite.countRows("boxes"), suite.countRows("reservations")
	empty, err := commands.NewRetrieveBoxCommand("Grace", "Hopper", storage.Small)
	suite.Require().NoError(err)
	retrieved, err = retriever.Handle(ctx, empty)
	suite.Require().NoError(err)
	suite.False(retrieved)
	suite.Equal(boxes, suite.countRows("boxes"))
	suite.Equal(reservations, suite.countRows("reservations"))
}

func (suite *UnitOfWorkIntegrationTestSuite) storeConcurrently(
	workers int,
	size storage.Size,
) map[services.PlacementKind]int {
	handler := commands.NewStoreBoxCommandHandler(uowFactory{inner: suite.factory})

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		placements = make(map[services.PlacementKind]int)
		failures   []error
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewStoreBoxCommand("Customer", fmt.Sprintf("No%d", i), size)
			var placement services.Placement
			if err == nil {
				placement, err = handler.Handle(context.Background(), cmd)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			placements[placement.Kind]++
		}()
	}
	wg.Wait()

	suite.Require().NoError(errors.Join(failures...))
	return placements
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
