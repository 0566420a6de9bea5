package commands_test

import (
	"context"

	"frontdesk/internal/core/application/usecases/commands"
	"frontdesk/internal/core/domain/model/customer"
	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/reservation"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByName(ctx context.Context, name customer.Name) (*customer.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockStorageRepository struct{ mock.Mock }

func (m *MockStorageRepository) AddTier(ctx context.Context, tier storage.Tier) error {
	args := m.Called(ctx, tier)
	return args.Error(0)
}

func (m *MockStorageRepository) GetTierForUpdate(ctx context.Context, size storage.Size) (storage.Tier, error) {
	args := m.Called(ctx, size)
	return args.Get(0).(storage.Tier), args.Error(1)
}

type MockBoxRepository struct{ mock.Mock }

func (m *MockBoxRepository) Add(ctx context.Context, box *storage.Box) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockBoxRepository) CountBySize(ctx context.Context, size storage.Size) (int, error) {
	args := m.Called(ctx, size)
	return args.Int(0), args.Error(1)
}

func (m *MockBoxRepository) RemoveOne(ctx context.Context, size storage.Size, customerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, size, customerID)
	return args.Bool(0), args.Error(1)
}

type MockFacilityRepository struct{ mock.Mock }

func (m *MockFacilityRepository) Add(ctx context.Context, f *facility.Facility) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFacilityRepository) GetForUpdate(ctx context.Context, name string) (*facility.Facility, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityRepository) ListForUpdate(ctx context.Context) ([]*facility.Facility, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*facility.Facility), args.Error(1)
}

type MockReservationRepository struct{ mock.Mock }

func (m *MockReservationRepository) Add(ctx context.Context, r *reservation.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) Tally(
	ctx context.Context,
	facilityName string,
	size storage.Size,
) (reservation.Tally, error) {
	args := m.Called(ctx, facilityName, size)
	return args.Get(0).(reservation.Tally), args.Error(1)
}

func (m *MockReservationRepository) TallyBySize(
	ctx context.Context,
	size storage.Size,
) (map[string]reservation.Tally, error) {
	args := m.Called(ctx, size)
	return args.Get(0).(map[string]reservation.Tally), args.Error(1)
}

// MockUoW implements every unit of work facet.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) StorageRepository() ports.StorageRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageRepository)
}

func (m *MockUoW) BoxRepository() ports.BoxRepository {
	args := m.Called()
	return args.Get(0).(ports.BoxRepository)
}

func (m *MockUoW) FacilityRepository() ports.FacilityRepository {
	args := m.Called()
	return args.Get(0).(ports.FacilityRepository)
}

func (m *MockUoW) ReservationRepository() ports.ReservationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReservationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockStorageUoWFactory struct{ mock.Mock }

func (m *MockStorageUoWFactory) Create() commands.StorageUoW {
	args := m.Called()
	return args.Get(0).(commands.StorageUoW)
}

type MockOverflowUoWFactory struct{ mock.Mock }

func (m *MockOverflowUoWFactory) Create() commands.OverflowUoW {
	args := m.Called()
	return args.Get(0).(commands.OverflowUoW)
}
