package model

import (
	"time"

	"github.com/google/uuid"
)

// Inventory is a point-in-time stock count, not a running ledger.
// At most one row exists per (product, outlet, date); later writes upsert in place.
type Inventory struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_key" json:"product_id"`
	OutletID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_key" json:"outlet_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_inventory_key" json:"date"`
	Quantity  float64   `gorm:"type:decimal(12,2);not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Outlet  *Outlet  `gorm:"foreignKey:OutletID" json:"outlet,omitempty"`
}
