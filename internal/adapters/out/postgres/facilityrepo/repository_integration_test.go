package facilityrepo_test

import (
	"context"
	"testing"

	"frontdesk/internal/adapters/out/postgres/facilityrepo"
	"frontdesk/internal/adapters/out/postgres/pgtest"
	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type FacilityRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *facilityrepo.GormFacilityRepository
}

func (suite *FacilityRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *FacilityRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = facilityrepo.NewGormFacilityRepository(suite.database.DB)
}

func (suite *FacilityRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

// newFacility gives each size distinct figures so column mix-ups show.
func (suite *FacilityRepositoryIntegrationTestSuite) newFacility(name string) *facility.Facility {
	slots := make(map[storage.Size]facility.Slot)
	for _, size := range storage.AllSizes() {
		slot, err := facility.NewSlot(int(size)*10, int(size))
		suite.Require().NoError(err)
		slots[size] = slot
	}
	f, err := facility.NewFacility(name, slots)
	suite.Require().NoError(err)
	return f
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestAdd_ThenGetForUpdate_RoundTripsEverySize() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newFacility("Harbor")))

	found, err := suite.repository.GetForUpdate(ctx, "Harbor")
	suite.Require().NoError(err)

	suite.Equal("Harbor", found.Name())
	for _, size := range storage.AllSizes() {
		slot, slotErr := found.Slot(size)
		suite.Require().NoError(slotErr)
		suite.Equal(int(size)*10, slot.Capacity(), size.String())
		suite.Equal(int(size), slot.SpaceLeft(), size.String())
	}
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestAdd_ExistingNameIsKept() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newFacility("Harbor")))

	slots := make(map[storage.Size]facility.Slot)
	for _, size := range storage.AllSizes() {
		slot, err := facility.NewSlot(999, 999)
		suite.Require().NoError(err)
		slots[size] = slot
	}
	replacement, err := facility.NewFacility("Harbor", slots)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, replacement))

	found, err := suite.repository.GetForUpdate(ctx, "Harbor")
	suite.Require().NoError(err)
	spaceLeft, err := found.SpaceLeft(storage.Large)
	suite.Require().NoError(err)
	suite.Equal(int(storage.Large), spaceLeft)
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestGetForUpdate_Unknown() {
	_, err := suite.repository.GetForUpdate(context.Background(), "Nowhere")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestListForUpdate_OrdersByName() {
	ctx := context.Background()
	for _, name := range []string{"Zephyr", "Airport", "Harbor"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newFacility(name)))
	}

	facilities, err := suite.repository.ListForUpdate(ctx)
	suite.Require().NoError(err)

	names := make([]string, 0, len(facilities))
	for _, f := range facilities {
		names = append(names, f.Name())
	}
	suite.Equal([]string{"Airport", "Harbor", "Zephyr"}, names)
}

func (suite *FacilityRepositoryIntegrationTestSuite) TestListForUpdate_Empty() {
	facilities, err := suite.repository.ListForUpdate(context.Background())

	suite.Require().NoError(err)
	suite.Empty(facilities)
}

func TestFacilityRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FacilityRepositoryIntegrationTestSuite))
}
