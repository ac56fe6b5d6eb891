package domain

import (
	"errors"
	"time"
)

var ErrCartLineNotFound = errors.New("cart line not found")

// CartLine is one item in a user's shopping cart. The manufacturer, price,
// stock, image and name fields are copied from the referenced PartRecord at
// add time; later changes to the catalog entry do not flow back into the line.
type CartLine struct {
	ID                 int64     `db:"id" json:"id"`
	UserID             int64     `db:"user_id" json:"userId"`
	PartID             int64     `db:"part_id" json:"partId"`
	BoilerManufacturer string    `db:"boiler_manufacturer" json:"boiler_manufacturer"`
	PartsManufacturer  string    `db:"parts_manufacturer" json:"parts_manufacturer"`
	Price              float64   `db:"price" json:"price"`
	InStock            int       `db:"in_stock" json:"in_stock"`
	Image              string    `db:"image" json:"image"`
	Name               string    `db:"name" json:"name"`
	Count              int       `db:"count" json:"count"`
	TotalPrice         float64   `db:"total_price" json:"total_price"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}
