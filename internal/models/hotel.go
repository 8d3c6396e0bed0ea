package models

import (
	"time"

	"gorm.io/datatypes"
)

// Hotel availability values.
const (
	HotelAvailable   = "available"
	HotelUnavailable = "unavailable"
)

// Location is a WGS84 point.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry mirrors the place-search payload the catalog is imported from.
type Geometry struct {
	Location Location `json:"location"`
}

// Hotel is a catalog record. PlaceID is the stable identifier issued by the
// third-party place catalog and is what clients use to address a hotel.
type Hotel struct {
	ID               uint                         `gorm:"primaryKey" json:"id"`
	PlaceID          string                       `gorm:"uniqueIndex;not null" json:"place_id"`
	Name             string                       `gorm:"not null;index" json:"name"`
	FormattedAddress string                       `gorm:"not null" json:"formatted_address"`
	Geometry         datatypes.JSONType[Geometry] `json:"geometry"`
	Rating           float64                      `json:"rating"`
	UserRatingsTotal int                          `json:"user_ratings_total"`
	CompoundCode     *string                      `json:"compound_code,omitempty"`
	Vicinity         *string                      `json:"vicinity,omitempty"`
	Status           string                       `gorm:"not null;default:available" json:"status"`
	CreatedAt        time.Time                    `json:"createdAt"`
	UpdatedAt        time.Time                    `json:"updatedAt"`
}
