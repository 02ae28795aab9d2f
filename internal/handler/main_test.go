package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-outlet-ops/internal/middleware"
	"go-outlet-ops/internal/model"
	"go-outlet-ops/internal/repository"
	"go-outlet-ops/internal/service"
	"go-outlet-ops/pkg/jwt"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

// setupEnv builds the full HTTP surface against an in-memory database, with
// the same middleware chain and role gates as the real server.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Outlet{}, &model.User{}, &model.Product{},
		&model.Inventory{}, &model.Purchase{}, &model.Sale{},
		&model.Waste{}, &model.DailyClosing{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepo(db)
	outletRepo := repository.NewOutletRepo(db)
	productRepo := repository.NewProductRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	wasteRepo := repository.NewWasteRepo(db)
	closingRepo := repository.NewClosingRepo(db)

	authService := service.NewAuthService(userRepo)
	recordService := service.NewRecordService(
		productRepo, outletRepo, inventoryRepo, purchaseRepo,
		saleRepo, wasteRepo, closingRepo, nil, nil,
	)
	reportService := service.NewReportService(
		productRepo, purchaseRepo, saleRepo, wasteRepo,
		closingRepo, outletRepo, nil, time.UTC,
	)

	authHandler := NewAuthHandler(authService)
	inventoryHandler := NewInventoryHandler(recordService)
	purchaseHandler := NewPurchaseHandler(recordService)
	saleHandler := NewSaleHandler(recordService)
	wasteHandler := NewWasteHandler(recordService)
	closingHandler := NewClosingHandler(recordService)
	reportHandler := NewReportHandler(reportService)
	catalogHandler := NewCatalogHandler(productRepo, outletRepo)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth())
	ownerOnly := middleware.RequireRoles(model.RoleOwner)
	buyers := middleware.RequireRoles(model.RoleOwner, model.RolePurchasing)
	sellers := middleware.RequireRoles(append([]model.Role{model.RoleOwner}, model.OutletRoles()...)...)

	protected.Get("/inventory", inventoryHandler.List)
	protected.Post("/inventory", buyers, inventoryHandler.Upsert)
	protected.Get("/sales", saleHandler.List)
	protected.Post("/sales", sellers, saleHandler.Record)
	protected.Get("/purchases", purchaseHandler.List)
	protected.Post("/purchases", buyers, purchaseHandler.Record)
	protected.Get("/waste", wasteHandler.List)
	protected.Post("/waste", sellers, wasteHandler.Record)
	protected.Get("/daily-closing", closingHandler.List)
	protected.Post("/daily-closing", sellers, closingHandler.Upsert)
	protected.Get("/reports/inventory", reportHandler.Inventory)
	protected.Get("/reports/sales", reportHandler.Sales)
	protected.Get("/reports/daily-summary", ownerOnly, reportHandler.DailySummary)
	protected.Get("/reports/dashboard-stats", ownerOnly, reportHandler.DashboardStats)
	protected.Get("/products", catalogHandler.Products)
	protected.Get("/outlets", catalogHandler.Outlets)

	return &testEnv{app: app, db: db}
}

func (e *testEnv) seedOutlet(t *testing.T, name string, outletType model.OutletType) *model.Outlet {
	t.Helper()
	outlet := &model.Outlet{Name: name, Type: outletType}
	require.NoError(t, e.db.Create(outlet).Error)
	return outlet
}

func (e *testEnv) seedProduct(t *testing.T, name, unit string) *model.Product {
	t.Helper()
	product := &model.Product{Name: name, Unit: unit}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

func (e *testEnv) seedUser(t *testing.T, email string, role model.Role, outletID *uuid.UUID) *model.User {
	t.Helper()
	user := &model.User{Email: email, Name: email, Role: role, OutletID: outletID}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := jwt.GenerateToken(user.ID, user.Email, user.Role, user.OutletID)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	return resp, envelope
}
