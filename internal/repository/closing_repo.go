package repository

import (
	"go-outlet-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClosingRepository interface {
	Upsert(closing *model.DailyClosing) (*model.DailyClosing, error)
	Find(outletID *uuid.UUID, dates DateRange) ([]model.DailyClosing, error)
	FindAllOrdered(dates DateRange) ([]model.DailyClosing, error)
}

type closingRepo struct {
	db *gorm.DB
}

func NewClosingRepo(db *gorm.DB) ClosingRepository {
	return &closingRepo{db}
}

// Upsert writes the closing keyed by (outlet, date); resubmitting for the
// same key overwrites the amounts in place (last write wins).
func (r *closingRepo) Upsert(closing *model.DailyClosing) (*model.DailyClosing, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outlet_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"card_sales", "cash_sales", "net_cash", "updated_at"}),
	}).Create(closing).Error
	if err != nil {
		return nil, err
	}

	var stored model.DailyClosing
	err = r.db.Preload("Outlet").
		Where("outlet_id = ? AND date = ?", closing.OutletID, closing.Date).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *closingRepo) Find(outletID *uuid.UUID, dates DateRange) ([]model.DailyClosing, error) {
	q := r.db.Preload("Outlet").Order("date DESC")
	if outletID != nil {
		q = q.Where("outlet_id = ?", *outletID)
	}
	q = dates.apply(q)

	var closings []model.DailyClosing
	err := q.Find(&closings).Error
	return closings, err
}

// FindAllOrdered fetches closings across every outlet ordered by date then
// outlet, as the daily summary and dashboard reductions expect.
func (r *closingRepo) FindAllOrdered(dates DateRange) ([]model.DailyClosing, error) {
	q := r.db.Preload("Outlet").Order("date ASC, outlet_id ASC")
	q = dates.apply(q)

	var closings []model.DailyClosing
	err := q.Find(&closings).Error
	return closings, err
}
