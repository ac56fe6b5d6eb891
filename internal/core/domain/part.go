package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrPartNotFound    = errors.New("boiler part not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

type PartRecord struct {
	ID                 int64     `db:"id" json:"id"`
	BoilerManufacturer string    `db:"boiler_manufacturer" json:"boiler_manufacturer"`
	PartsManufacturer  string    `db:"parts_manufacturer" json:"parts_manufacturer"`
	Price              float64   `db:"price" json:"price"`
	VendorCode         string    `db:"vendor_code" json:"vendor_code"`
	Name               string    `db:"name" json:"name"`
	Description        string    `db:"description" json:"description"`
	Images             string    `db:"images" json:"images"` // JSON-encoded array of URLs
	InStock            int       `db:"in_stock" json:"in_stock"`
	Bestsellers        bool      `db:"bestsellers" json:"bestsellers"`
	New                bool      `db:"new" json:"new"`
	Popularity         int       `db:"popularity" json:"popularity"`
	Compatibility      string    `db:"compatibility" json:"compatibility"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

// FirstImage decodes the serialized image list and returns its first entry,
// or an empty string when the list is empty or malformed.
func (p PartRecord) FirstImage() string {
	var urls []string
	if err := json.Unmarshal([]byte(p.Images), &urls); err != nil || len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// Page decouples the total match count from the returned slice: Count is the
// number of rows matching the filter regardless of pagination, Rows is the
// requested page only.
type Page struct {
	Count int64        `json:"count"`
	Rows  []PartRecord `json:"rows"`
}
