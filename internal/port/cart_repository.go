package port

import (
	"context"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

type CartRepository interface {
	// FindAllByUser returns every cart line of the user ordered by id
	// ascending. A user without lines yields an empty slice, not an error.
	FindAllByUser(ctx context.Context, userID int64) ([]domain.CartLine, error)

	// Create persists a new cart line and assigns its id. A line for the
	// same (userID, partID) pair may already exist; the repository does not
	// deduplicate.
	Create(ctx context.Context, line *domain.CartLine) error

	// UpdateCount sets the quantity on the line identified by lineID.
	// domain.ErrCartLineNotFound when the line does not exist.
	UpdateCount(ctx context.Context, lineID int64, count int) error

	// UpdateTotalPrice sets the total price on the line identified by
	// lineID. domain.ErrCartLineNotFound when the line does not exist.
	UpdateTotalPrice(ctx context.Context, lineID int64, totalPrice float64) error

	// Delete removes one line by its own id. Deleting a non-existent line
	// is a no-op.
	Delete(ctx context.Context, lineID int64) error

	// DeleteAllByUser removes every line of the user. Idempotent.
	DeleteAllByUser(ctx context.Context, userID int64) error
}
