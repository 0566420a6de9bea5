// Package seed loads tier capacities and partner facilities from a YAML file
// and writes them into an empty or partially seeded database.
package seed

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"frontdesk/internal/core/domain/model/facility"
	"frontdesk/internal/core/domain/model/storage"
	"frontdesk/internal/core/ports"

	"gopkg.in/yaml.v3"
)

// Slot is one size's figures at a facility.
type Slot struct {
	Capacity  int `yaml:"capacity"`
	SpaceLeft int `yaml:"space_left"`
}

// Facility is a partner facility entry. Sizes missing from Slots get zero slots.
type Facility struct {
	Name  string          `yaml:"name"`
	Slots map[string]Slot `yaml:"slots"`
}

// File is a parsed seed file.
//
//	tiers:
//	  Small: 92
//	  Medium: 28
//	  Large: 24
//	facilities:
//	  - name: Harbor
//	    slots:
//	      Small: {capacity: 10, space_left: 4}
type File struct {
	Tiers      map[string]int `yaml:"tiers"`
	Facilities []Facility     `yaml:"facilities"`
}

// Default is used when no seed file is configured.
func Default() File {
	return File{
		Tiers: map[string]int{
			storage.Small.String():  92,
			storage.Medium.String(): 28,
			storage.Large.String():  24,
		},
	}
}

// Load reads and parses path. An empty path yields Default.
func Load(path string) (File, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var f File
	if err = yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing seed file: %w", err)
	}

	if len(f.Tiers) == 0 {
		return File{}, fmt.Errorf("seed file %s has no tiers defined", path)
	}

	return f, nil
}

// Plan is a validated seed, ready to write.
type Plan struct {
	Tiers      []storage.Tier
	Facilities []*facility.Facility
}

// Build validates the file and turns it into domain values. Tiers come out in
// size order and facilities in name order.
func (f File) Build() (Plan, error) {
	var plan Plan

	sizes := make(map[storage.Size]string, len(f.Tiers))
	for name, capacity := range f.Tiers {
		size, err := storage.ParseSize(name)
		if err != nil {
			return Plan{}, fmt.Errorf("tier %q: %w", name, err)
		}
		if other, dup := sizes[size]; dup {
			return Plan{}, fmt.Errorf("tiers %q and %q both name %s", other, name, size)
		}
		sizes[size] = name
		tier, err := storage.NewTier(size, capacity)
		if err != nil {
			return Plan{}, fmt.Errorf("tier %q: %w", name, err)
		}
		plan.Tiers = append(plan.Tiers, tier)
	}
	sort.Slice(plan.Tiers, func(i, j int) bool {
		return plan.Tiers[i].Size() < plan.Tiers[j].Size()
	})

	seen := make(map[string]struct{}, len(f.Facilities))
	for _, entry := range f.Facilities {
		key := strings.TrimSpace(entry.Name)
		if _, dup := seen[key]; dup {
			return Plan{}, fmt.Errorf("facility %q is listed twice", key)
		}
		seen[key] = struct{}{}

		built, err := entry.build()
		if err != nil {
			return Plan{}, fmt.Errorf("facility %q: %w", entry.Name, err)
		}
		plan.Facilities = append(plan.Facilities, built)
	}
	sort.Slice(plan.Facilities, func(i, j int) bool {
		return plan.Facilities[i].Name() < plan.Facilities[j].Name()
	})

	return plan, nil
}

func (e Facility) build() (*facility.Facility, error) {
	slots := make(map[storage.Size]facility.Slot, len(storage.AllSizes()))
	for _, size := range storage.AllSizes() {
		empty, err := facility.NewSlot(0, 0)
		if err != nil {
			return nil, fmt.Errorf("%s slot: %w", size, err)
		}
		slots[size] = empty
	}

	given := make(map[storage.Size]string, len(e.Slots))
	for name, raw := range e.Slots {
		size, err := storage.ParseSize(name)
		if err != nil {
			return nil, err
		}
		if other, dup := given[size]; dup {
			return nil, fmt.Errorf("slots %q and %q both name %s", other, name, size)
		}
		given[size] = name
		slot, err := facility.NewSlot(raw.Capacity, raw.SpaceLeft)
		if err != nil {
			return nil, fmt.Errorf("%s slot: %w", size, err)
		}
		slots[size] = slot
	}

	return facility.NewFacility(e.Name, slots)
}

// Apply writes the plan in one transaction. Rows that already exist are kept
// as they are, so Apply is safe to run on every start.
func Apply(ctx context.Context, factory ports.UnitOfWorkFactory, plan Plan) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, tier := range plan.Tiers {
		if err := uow.StorageRepository().AddTier(ctx, tier); err != nil {
			return fmt.Errorf("seeding %s tier: %w", tier.Size(), err)
		}
	}

	for _, f := range plan.Facilities {
		if err := uow.FacilityRepository().Add(ctx, f); err != nil {
			return fmt.Errorf("seeding facility %s: %w", f.Name(), err)
		}
	}

	return uow.Commit(ctx)
}
