package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

const cartColumns = "id, user_id, part_id, boiler_manufacturer, parts_manufacturer, " +
	"price, in_stock, image, name, count, total_price, created_at, updated_at"

type MySQLCartRepository struct {
	db *sqlx.DB
}

func NewMySQLCartRepository(db *sqlx.DB) *MySQLCartRepository {
	return &MySQLCartRepository{db: db}
}

func (r *MySQLCartRepository) FindAllByUser(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	lines := []domain.CartLine{}
	err := r.db.SelectContext(ctx, &lines,
		"SELECT "+cartColumns+" FROM shopping_cart WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, errors.Wrap(err, "select cart lines")
	}

	return lines, nil
}

func (r *MySQLCartRepository) Create(ctx context.Context, line *domain.CartLine) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO shopping_cart
			(user_id, part_id, boiler_manufacturer, parts_manufacturer, price,
			 in_stock, image, name, count, total_price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		line.UserID, line.PartID, line.BoilerManufacturer, line.PartsManufacturer,
		line.Price, line.InStock, line.Image, line.Name, line.Count, line.TotalPrice,
		line.CreatedAt, line.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "insert cart line")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "cart line insert id")
	}
	line.ID = id

	return nil
}

func (r *MySQLCartRepository) UpdateCount(ctx context.Context, lineID int64, count int) error {
	return r.update(ctx, lineID,
		"UPDATE shopping_cart SET count = ?, updated_at = ? WHERE id = ?",
		count, time.Now().UTC(), lineID)
}

func (r *MySQLCartRepository) UpdateTotalPrice(ctx context.Context, lineID int64, totalPrice float64) error {
	return r.update(ctx, lineID,
		"UPDATE shopping_cart SET total_price = ?, updated_at = ? WHERE id = ?",
		totalPrice, time.Now().UTC(), lineID)
}

func (r *MySQLCartRepository) update(ctx context.Context, lineID int64, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "update cart line")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "cart line rows affected")
	}

	// The driver reports changed rows, not matched rows: 0 means either a
	// missing line or an update to the already-stored value. Only the first
	// is an error.
	if affected == 0 {
		var one int
		err := r.db.GetContext(ctx, &one, "SELECT 1 FROM shopping_cart WHERE id = ?", lineID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCartLineNotFound
		}
		if err != nil {
			return errors.Wrap(err, "check cart line")
		}
	}

	return nil
}

func (r *MySQLCartRepository) Delete(ctx context.Context, lineID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM shopping_cart WHERE id = ?", lineID)
	return errors.Wrap(err, "delete cart line")
}

func (r *MySQLCartRepository) DeleteAllByUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM shopping_cart WHERE user_id = ?", userID)
	return errors.Wrap(err, "delete cart lines")
}
