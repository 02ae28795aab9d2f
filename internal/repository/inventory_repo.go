package repository

import (
	"time"

	"go-outlet-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	Upsert(entry *model.Inventory) (*model.Inventory, error)
	Find(outletID *uuid.UUID, date *time.Time) ([]model.Inventory, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

// Upsert writes the snapshot keyed by (product, outlet, date); a second
// write for the same key overwrites the quantity in place.
func (r *inventoryRepo) Upsert(entry *model.Inventory) (*model.Inventory, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "outlet_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return nil, err
	}

	// Re-read by natural key so the caller sees the stored row (the
	// generated ID is discarded when the write hit an existing row).
	var stored model.Inventory
	err = r.db.Preload("Product").Preload("Outlet").
		Where("product_id = ? AND outlet_id = ? AND date = ?", entry.ProductID, entry.OutletID, entry.Date).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *inventoryRepo) Find(outletID *uuid.UUID, date *time.Time) ([]model.Inventory, error) {
	q := r.db.Preload("Product").Preload("Outlet").Order("date DESC")
	if outletID != nil {
		q = q.Where("outlet_id = ?", *outletID)
	}
	if date != nil {
		q = q.Where("date = ?", *date)
	}

	var entries []model.Inventory
	err := q.Find(&entries).Error
	return entries, err
}
