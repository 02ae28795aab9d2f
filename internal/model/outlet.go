package model

// OutletType classifies a point of sale.
type OutletType string

const (
	OutletCafe       OutletType = "CAFE"
	OutletRestaurant OutletType = "RESTAURANT"
	OutletMiniMarket OutletType = "MINI_MARKET"
)

// Outlet is a physical point of sale. Static reference data, seeded once.
type Outlet struct {
	BaseModel
	Name string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Type OutletType `gorm:"type:varchar(20);not null" json:"type" validate:"required,oneof=CAFE RESTAURANT MINI_MARKET"`
}
