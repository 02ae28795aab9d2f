package repository

import (
	"go-outlet-ops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OutletRepository interface {
	FindAll() ([]model.Outlet, error)
	FindByID(id uuid.UUID) (*model.Outlet, error)
	FindByName(name string) (*model.Outlet, error)
	Count() (int64, error)
	Create(outlet *model.Outlet) error
}

type outletRepo struct {
	db *gorm.DB
}

func NewOutletRepo(db *gorm.DB) OutletRepository {
	return &outletRepo{db}
}

func (r *outletRepo) FindAll() ([]model.Outlet, error) {
	var outlets []model.Outlet
	err := r.db.Order("name ASC").Find(&outlets).Error
	return outlets, err
}

func (r *outletRepo) FindByID(id uuid.UUID) (*model.Outlet, error) {
	var outlet model.Outlet
	if err := r.db.First(&outlet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &outlet, nil
}

func (r *outletRepo) FindByName(name string) (*model.Outlet, error) {
	var outlet model.Outlet
	if err := r.db.First(&outlet, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &outlet, nil
}

func (r *outletRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Outlet{}).Count(&count).Error
	return count, err
}

func (r *outletRepo) Create(outlet *model.Outlet) error {
	return r.db.Create(outlet).Error
}
