package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale records quantity sold at an outlet on a date. Append-only,
// duplicate submissions create duplicate rows.
type Sale struct {
	BaseModel
	OutletID  uuid.UUID `gorm:"type:uuid;not null;index" json:"outlet_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  float64   `gorm:"type:decimal(12,2);not null" json:"quantity"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Outlet  *Outlet  `gorm:"foreignKey:OutletID" json:"outlet,omitempty"`
}
