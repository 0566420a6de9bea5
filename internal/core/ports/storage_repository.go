package ports

import (
	"context"

	"frontdesk/internal/core/domain/model/kernel"
	"frontdesk/internal/core/domain/model/storage"
)

// StorageRepository reads local tier capacities.
type StorageRepository interface {
	// AddTier inserts the tier unless a tier of that size already exists.
	// Used by bootstrap only; capacities are never updated.
	AddTier(ctx context.Context, tier storage.Tier) error

	// GetTierForUpdate reads the tier of size and locks its row until the
	// surrounding transaction ends. All local placements of a size serialise on
	// this lock. Returns an error wrapping errs.ErrObjectNotFound for a missing tier.
	GetTierForUpdate(ctx context.Context, size storage.Size) (storage.Tier, error)
}

// BoxRepository stores live local boxes.
type BoxRepository interface {
	// Add persists a new box.
	Add(ctx context.Context, box *storage.Box) error

	// CountBySize returns the number of live boxes of size.
	CountBySize(ctx context.Context, size storage.Size) (int, error)

	// RemoveOne deletes one box of size owned by customerID, chosen arbitrarily.
	// Returns false when the customer holds no such box.
	RemoveOne(ctx context.Context, size storage.Size, customerID kernel.UUID) (bool, error)
}
