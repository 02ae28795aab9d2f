package repository

import (
	"go-outlet-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WasteRepository interface {
	Create(waste *model.Waste) error
	Find(outletID *uuid.UUID, dates DateRange) ([]model.Waste, error)
	SumQuantity(productID uuid.UUID, outletID *uuid.UUID, dates DateRange) (float64, error)
}

type wasteRepo struct {
	db *gorm.DB
}

func NewWasteRepo(db *gorm.DB) WasteRepository {
	return &wasteRepo{db}
}

func (r *wasteRepo) Create(waste *model.Waste) error {
	return r.db.Create(waste).Error
}

func (r *wasteRepo) Find(outletID *uuid.UUID, dates DateRange) ([]model.Waste, error) {
	q := r.db.Preload("Product").Preload("Outlet").Order("date DESC")
	if outletID != nil {
		q = q.Where("outlet_id = ?", *outletID)
	}
	q = dates.apply(q)

	var waste []model.Waste
	err := q.Find(&waste).Error
	return waste, err
}

func (r *wasteRepo) SumQuantity(productID uuid.UUID, outletID *uuid.UUID, dates DateRange) (float64, error) {
	var total float64
	q := r.db.Model(&model.Waste{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID)
	if outletID != nil {
		q = q.Where("outlet_id = ?", *outletID)
	}
	q = dates.apply(q)
	err := q.Scan(&total).Error
	return total, err
}
