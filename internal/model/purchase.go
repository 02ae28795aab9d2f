package model

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is an organization-wide stock intake event. Append-only.
type Purchase struct {
	BaseModel
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity    float64   `gorm:"type:decimal(12,2);not null" json:"quantity"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	EnteredByID uuid.UUID `gorm:"type:uuid;not null" json:"entered_by_id"`

	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	EnteredBy *User    `gorm:"foreignKey:EnteredByID" json:"entered_by,omitempty"`
}
