package storage

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/port"
)

// `new` needs quoting, it is a reserved word in MySQL.
const partColumns = "id, boiler_manufacturer, parts_manufacturer, price, vendor_code, " +
	"name, description, images, in_stock, bestsellers, `new`, popularity, compatibility, " +
	"created_at, updated_at"

type MySQLPartRepository struct {
	db *sqlx.DB
}

func NewMySQLPartRepository(db *sqlx.DB) *MySQLPartRepository {
	return &MySQLPartRepository{db: db}
}

func (r *MySQLPartRepository) Find(ctx context.Context, id int64) (*domain.PartRecord, error) {
	var part domain.PartRecord
	err := r.db.GetContext(ctx, &part,
		"SELECT "+partColumns+" FROM boiler_parts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "select boiler part")
	}

	return &part, nil
}

func (r *MySQLPartRepository) FindByName(ctx context.Context, name string) (*domain.PartRecord, error) {
	var part domain.PartRecord
	// Lowest id wins when several parts share the name.
	err := r.db.GetContext(ctx, &part,
		"SELECT "+partColumns+" FROM boiler_parts WHERE name = ? ORDER BY id LIMIT 1", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "select boiler part by name")
	}

	return &part, nil
}

func (r *MySQLPartRepository) List(ctx context.Context, filter port.PartFilter, page port.PageRequest) (int64, []domain.PartRecord, error) {
	where, args := buildPartFilter(filter)

	var count int64
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM boiler_parts"+where, args...); err != nil {
		return 0, nil, errors.Wrap(err, "count boiler parts")
	}

	rows := []domain.PartRecord{}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT "+partColumns+" FROM boiler_parts"+where+" ORDER BY id LIMIT ? OFFSET ?",
		append(args, page.Limit, page.Offset)...)
	if err != nil {
		return 0, nil, errors.Wrap(err, "select boiler parts")
	}

	return count, rows, nil
}

func (r *MySQLPartRepository) Create(ctx context.Context, part *domain.PartRecord) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO boiler_parts
			(boiler_manufacturer, parts_manufacturer, price, vendor_code, name,
			 description, images, in_stock, bestsellers, `+"`new`"+`, popularity,
			 compatibility, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		part.BoilerManufacturer, part.PartsManufacturer, part.Price, part.VendorCode,
		part.Name, part.Description, part.Images, part.InStock, part.Bestsellers,
		part.New, part.Popularity, part.Compatibility, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "insert boiler part")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "boiler part insert id")
	}
	part.ID = id

	return nil
}

func buildPartFilter(filter port.PartFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.BoilerManufacturer != "" {
		conds = append(conds, "boiler_manufacturer = ?")
		args = append(args, filter.BoilerManufacturer)
	}
	if filter.PartsManufacturer != "" {
		conds = append(conds, "parts_manufacturer = ?")
		args = append(args, filter.PartsManufacturer)
	}
	if filter.Bestsellers {
		conds = append(conds, "bestsellers = TRUE")
	}
	if filter.New {
		conds = append(conds, "`new` = TRUE")
	}
	if filter.Search != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
