package model

// Product is static reference data shared by every outlet.
type Product struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Unit     string `gorm:"type:varchar(20)" json:"unit"`
	Category string `gorm:"type:varchar(100)" json:"category"`
	IsFixed  bool   `gorm:"default:false" json:"is_fixed"`
}
