package port

import (
	"context"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

// PartFilter narrows a catalog scan. Zero-value fields are not applied.
type PartFilter struct {
	// Equality matches against the corresponding columns.
	BoilerManufacturer string
	PartsManufacturer  string

	// Flag scans for the bestseller / new listings.
	Bestsellers bool
	New         bool

	// Case-insensitive substring match against the part name. An empty
	// string matches everything.
	Search string
}

// PageRequest is a validated limit/offset pair.
type PageRequest struct {
	Limit  int
	Offset int
}

type PartRepository interface {
	// Find retrieves a part by id, domain.ErrPartNotFound when absent.
	Find(ctx context.Context, id int64) (*domain.PartRecord, error)

	// FindByName retrieves a part by exact name. When several parts share
	// the name the one with the lowest id wins, so repeated calls are
	// deterministic. domain.ErrPartNotFound when absent.
	FindByName(ctx context.Context, name string) (*domain.PartRecord, error)

	// List returns the total number of parts matching the filter together
	// with the requested page of rows ordered by id ascending.
	List(ctx context.Context, filter PartFilter, page PageRequest) (int64, []domain.PartRecord, error)

	// Create persists a new part and assigns its id.
	Create(ctx context.Context, part *domain.PartRecord) error
}
