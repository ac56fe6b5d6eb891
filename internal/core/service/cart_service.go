package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/port"
)

// CartService owns the per-user cart lines.
//
// Count and total price are updated through two independent calls, so between
// UpdateCount and UpdateTotalPrice a line can carry an inconsistent pair. That
// window is part of the contract: keeping the total in sync is the caller's
// responsibility, not the ledger's.
type CartService struct {
	carts port.CartRepository
	parts port.PartRepository
	users port.UserRepository
}

func NewCartService(carts port.CartRepository, parts port.PartRepository, users port.UserRepository) *CartService {
	return &CartService{carts: carts, parts: parts, users: users}
}

// FindAll returns the user's cart lines ordered by id ascending.
func (s *CartService) FindAll(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	return s.carts.FindAllByUser(ctx, userID)
}

// Add resolves the user and the part, then creates a new line snapshotting
// the part's manufacturer, price, stock, name and first image, with count 1
// and total price equal to the part price.
//
// Add does not check whether a line for the pair already exists: repeated
// calls create duplicate lines. Deduplication, if wanted, belongs to the
// caller.
func (s *CartService) Add(ctx context.Context, username string, partID int64) (*domain.CartLine, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	part, err := s.parts.Find(ctx, partID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	line := &domain.CartLine{
		UserID:             user.ID,
		PartID:             part.ID,
		BoilerManufacturer: part.BoilerManufacturer,
		PartsManufacturer:  part.PartsManufacturer,
		Price:              part.Price,
		InStock:            part.InStock,
		Image:              part.FirstImage(),
		Name:               part.Name,
		Count:              1,
		TotalPrice:         part.Price,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.carts.Create(ctx, line); err != nil {
		return nil, err
	}

	return line, nil
}

// UpdateCount sets the quantity on a line and returns the new value. The
// line's total price is left untouched.
func (s *CartService) UpdateCount(ctx context.Context, lineID int64, count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: count must be positive, got %d", domain.ErrInvalidArgument, count)
	}

	if err := s.carts.UpdateCount(ctx, lineID, count); err != nil {
		return 0, err
	}

	return count, nil
}

// UpdateTotalPrice sets the total price on a line and returns the new value.
func (s *CartService) UpdateTotalPrice(ctx context.Context, lineID int64, totalPrice float64) (float64, error) {
	if totalPrice < 0 {
		return 0, fmt.Errorf("%w: total price must not be negative, got %v", domain.ErrInvalidArgument, totalPrice)
	}

	if err := s.carts.UpdateTotalPrice(ctx, lineID, totalPrice); err != nil {
		return 0, err
	}

	return totalPrice, nil
}

// Remove deletes one line by its own id. Removing a non-existent line is a
// no-op.
func (s *CartService) Remove(ctx context.Context, lineID int64) error {
	return s.carts.Delete(ctx, lineID)
}

// RemoveAll deletes every line of the user. Idempotent.
func (s *CartService) RemoveAll(ctx context.Context, userID int64) error {
	return s.carts.DeleteAllByUser(ctx, userID)
}
