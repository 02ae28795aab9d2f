package repository

import (
	"go-outlet-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(purchase *model.Purchase) error
	Find(productID *uuid.UUID, dates DateRange) ([]model.Purchase, error)
	SumQuantity(productID uuid.UUID, dates DateRange) (float64, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(purchase *model.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *purchaseRepo) Find(productID *uuid.UUID, dates DateRange) ([]model.Purchase, error) {
	q := r.db.Preload("Product").Preload("EnteredBy").Order("date DESC")
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	q = dates.apply(q)

	var purchases []model.Purchase
	err := q.Find(&purchases).Error
	return purchases, err
}

// SumQuantity totals purchased quantity for one product. Purchases are
// organization-wide, so there is no outlet filter here.
func (r *purchaseRepo) SumQuantity(productID uuid.UUID, dates DateRange) (float64, error) {
	var total float64
	q := r.db.Model(&model.Purchase{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID)
	q = dates.apply(q)
	err := q.Scan(&total).Error
	return total, err
}
