package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-outlet-ops/internal/model"
	"go-outlet-ops/internal/repository"
	"go-outlet-ops/pkg/jwt"
)

// Each test gets its own in-memory database to avoid cross-test collisions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Outlet{}, &model.User{}, &model.Product{},
		&model.Inventory{}, &model.Purchase{}, &model.Sale{},
		&model.Waste{}, &model.DailyClosing{},
	)
	require.NoError(t, err)
	return db
}

func seedOutlet(t *testing.T, db *gorm.DB, name string, typ model.OutletType) *model.Outlet {
	t.Helper()
	outlet := &model.Outlet{Name: name, Type: typ}
	require.NoError(t, db.Create(outlet).Error)
	return outlet
}

func seedProduct(t *testing.T, db *gorm.DB, name, unit string) *model.Product {
	t.Helper()
	product := &model.Product{Name: name, Unit: unit, Category: "Test"}
	require.NoError(t, db.Create(product).Error)
	return product
}

func ownerClaims() *jwt.Claims {
	return &jwt.Claims{UserID: uuid.New(), Email: "owner@inventory.com", Role: model.RoleOwner}
}

func purchasingClaims() *jwt.Claims {
	return &jwt.Claims{UserID: uuid.New(), Email: "purchasing@inventory.com", Role: model.RolePurchasing}
}

func outletClaims(outletID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{
		UserID:   uuid.New(),
		Email:    "cafe@inventory.com",
		Role:     model.RoleOutletCafe,
		OutletID: &outletID,
	}
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate("date", value)
	require.NoError(t, err)
	return d
}

func newRecordService(db *gorm.DB) RecordService {
	return NewRecordService(
		repository.NewProductRepo(db),
		repository.NewOutletRepo(db),
		repository.NewInventoryRepo(db),
		repository.NewPurchaseRepo(db),
		repository.NewSaleRepo(db),
		repository.NewWasteRepo(db),
		repository.NewClosingRepo(db),
		nil, // no image store
		nil, // no ws hub
	)
}

func newReportService(db *gorm.DB, clock Clock) ReportService {
	return NewReportService(
		repository.NewProductRepo(db),
		repository.NewPurchaseRepo(db),
		repository.NewSaleRepo(db),
		repository.NewWasteRepo(db),
		repository.NewClosingRepo(db),
		repository.NewOutletRepo(db),
		clock,
		time.UTC,
	)
}

func dateRangeAll() repository.DateRange {
	return repository.DateRange{}
}

func f64(v float64) *float64 {
	return &v
}
