package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyClosing is the end-of-day cash count for one outlet.
// At most one row exists per (outlet, date); later writes upsert in place.
// NetCash intentionally equals CashSales until a deduction policy is defined.
type DailyClosing struct {
	BaseModel
	OutletID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_closing_key" json:"outlet_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_closing_key" json:"date"`
	CardSales float64   `gorm:"type:decimal(12,2);not null" json:"card_sales"`
	CashSales float64   `gorm:"type:decimal(12,2);not null" json:"cash_sales"`
	NetCash   float64   `gorm:"type:decimal(12,2);not null" json:"net_cash"`

	Outlet *Outlet `gorm:"foreignKey:OutletID" json:"outlet,omitempty"`
}
