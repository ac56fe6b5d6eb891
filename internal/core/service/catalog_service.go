package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/port"
)

const (
	defaultLimit  = 20
	defaultOffset = 0
)

// CatalogService answers read-only catalog queries: keyed lookups, filtered
// pagination and the bestseller / new listings.
type CatalogService struct {
	parts port.PartRepository
}

func NewCatalogService(parts port.PartRepository) *CatalogService {
	return &CatalogService{parts: parts}
}

// PaginateAndFilter builds a filter from the raw query string and returns the
// matching page. Recognized keys are limit, offset, boiler_manufacturer and
// parts_manufacturer; unknown keys are ignored. Non-numeric or absent
// limit/offset fall back to the defaults, explicitly negative values are
// rejected with domain.ErrInvalidArgument.
func (s *CatalogService) PaginateAndFilter(ctx context.Context, query url.Values) (*domain.Page, error) {
	page, err := parsePage(query.Get("limit"), query.Get("offset"))
	if err != nil {
		return nil, err
	}

	filter := port.PartFilter{
		BoilerManufacturer: query.Get("boiler_manufacturer"),
		PartsManufacturer:  query.Get("parts_manufacturer"),
	}

	return s.list(ctx, filter, page)
}

// FindOne retrieves a single part by id.
func (s *CatalogService) FindOne(ctx context.Context, id int64) (*domain.PartRecord, error) {
	return s.parts.Find(ctx, id)
}

// Bestsellers lists parts flagged as bestsellers, default pagination.
func (s *CatalogService) Bestsellers(ctx context.Context) (*domain.Page, error) {
	return s.list(ctx, port.PartFilter{Bestsellers: true}, defaultPage())
}

// New lists parts flagged as new arrivals, default pagination.
func (s *CatalogService) New(ctx context.Context) (*domain.Page, error) {
	return s.list(ctx, port.PartFilter{New: true}, defaultPage())
}

// SearchByString matches the part name case-insensitively against the given
// substring. An empty string matches everything, consistent with the
// no-filter semantics of PaginateAndFilter.
func (s *CatalogService) SearchByString(ctx context.Context, search string) (*domain.Page, error) {
	return s.list(ctx, port.PartFilter{Search: search}, defaultPage())
}

// FindOneByName retrieves a single part by exact name. When several parts
// share the name the lowest id wins, so the result is deterministic.
func (s *CatalogService) FindOneByName(ctx context.Context, name string) (*domain.PartRecord, error) {
	return s.parts.FindByName(ctx, name)
}

func (s *CatalogService) list(ctx context.Context, filter port.PartFilter, page port.PageRequest) (*domain.Page, error) {
	count, rows, err := s.parts.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return &domain.Page{Count: count, Rows: rows}, nil
}

func defaultPage() port.PageRequest {
	return port.PageRequest{Limit: defaultLimit, Offset: defaultOffset}
}

func parsePage(rawLimit, rawOffset string) (port.PageRequest, error) {
	page := defaultPage()

	if n, err := strconv.Atoi(rawLimit); err == nil {
		if n < 0 {
			return port.PageRequest{}, fmt.Errorf("%w: negative limit %d", domain.ErrInvalidArgument, n)
		}
		page.Limit = n
	}

	if n, err := strconv.Atoi(rawOffset); err == nil {
		if n < 0 {
			return port.PageRequest{}, fmt.Errorf("%w: negative offset %d", domain.ErrInvalidArgument, n)
		}
		page.Offset = n
	}

	return page, nil
}
