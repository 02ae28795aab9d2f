package model

import (
	"time"

	"github.com/google/uuid"
)

// Waste records spoiled or discarded stock at an outlet, with an
// optional reason and photo evidence. Append-only.
type Waste struct {
	BaseModel
	OutletID  uuid.UUID `gorm:"type:uuid;not null;index" json:"outlet_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  float64   `gorm:"type:decimal(12,2);not null" json:"quantity"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	ImageURL  string    `gorm:"type:varchar(255)" json:"image_url,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Outlet  *Outlet  `gorm:"foreignKey:OutletID" json:"outlet,omitempty"`
}
