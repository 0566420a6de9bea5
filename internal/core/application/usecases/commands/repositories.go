// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"frontdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest facet that covers the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	BoxRepoFactory interface {
		BoxRepository() ports.BoxRepository
	}

	StorageRepoFactory interface {
		StorageRepository() ports.StorageRepository
	}

	FacilityRepoFactory interface {
		FacilityRepository() ports.FacilityRepository
	}

	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	// CustomerUoW manages transactions for customer directory writes.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// StorageUoW manages transactions that touch local boxes only.
	// Used by retrieval, which never looks at overflow facilities.
	StorageUoW interface {
		TxManager
		CustomerRepoFactory
		BoxRepoFactory
	}

	StorageUoWFactory interface {
		Create() StorageUoW
	}

	// OverflowUoW manages transactions against facilities and their reservations.
	OverflowUoW interface {
		TxManager
		FacilityRepoFactory
		ReservationRepoFactory
	}

	OverflowUoWFactory interface {
		Create() OverflowUoW
	}

	// UoW spans every repository. Used by store, which may end in either
	// a local box or an overflow reservation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tier, err := uow.StorageRepository().GetTierForUpdate(ctx, size)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		StorageRepoFactory
		BoxRepoFactory
		FacilityRepoFactory
		ReservationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
