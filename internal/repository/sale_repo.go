package repository

import (
	"go-outlet-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	Find(outletID *uuid.UUID, dates DateRange) ([]model.Sale, error)
	FindAscending(outletID *uuid.UUID, dates DateRange) ([]model.Sale, error)
	SumQuantity(productID uuid.UUID, outletID *uuid.UUID, dates DateRange) (float64, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) Find(outletID *uuid.UUID, dates DateRange) ([]model.Sale, error) {
	return r.find(outletID, dates, "date DESC")
}

// FindAscending is used by the sales report, which groups rows by date in
// first-occurrence order of the ascending-sorted input.
func (r *saleRepo) FindAscending(outletID *uuid.UUID, dates DateRange) ([]model.Sale, error) {
	return r.find(outletID, dates, "date ASC, created_at ASC")
}

func (r *saleRepo) find(outletID *uuid.UUID, dates DateRange, order string) ([]model.Sale, error) {
	q := r.db.Preload("Product").Preload("Outlet").Order(order)
	if outletID != nil {
		q = q.Where("outlet_id = ?", *outletID)
	}
	q = dates.apply(q)

	var sales []model.Sale
	err := q.Find(&sales).Error
	return sales, err
}

func (r *saleRepo) SumQuantity(productID uuid.UUID, outletID *uuid.UUID, dates DateRange) (float64, error) {
	var total float64
	q := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID)
	if outletID != nil {
		q = q.Where("outlet_id = ?", *outletID)
	}
	q = dates.apply(q)
	err := q.Scan(&total).Error
	return total, err
}
