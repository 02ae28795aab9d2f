package service

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"go-outlet-ops/internal/model"
	"go-outlet-ops/internal/repository"
	"go-outlet-ops/internal/ws"
	"go-outlet-ops/pkg/imagestore"
	"go-outlet-ops/pkg/jwt"
	"go-outlet-ops/pkg/validator"
)

// RecordService is the shared pipeline behind the five record types:
// validate the payload, resolve the target outlet from the caller's
// credential, check references, then append or upsert a single row.
type RecordService interface {
	UpsertInventory(claims *jwt.Claims, req *InventoryRequest) (*model.Inventory, error)
	ListInventory(claims *jwt.Claims, outletID *uuid.UUID, date *time.Time) ([]model.Inventory, error)

	RecordPurchase(claims *jwt.Claims, req *PurchaseRequest) (*model.Purchase, error)
	ListPurchases(productID *uuid.UUID, dates repository.DateRange) ([]model.Purchase, error)

	RecordSale(claims *jwt.Claims, req *SaleRequest) (*model.Sale, error)
	ListSales(claims *jwt.Claims, outletID *uuid.UUID, dates repository.DateRange) ([]model.Sale, error)

	RecordWaste(claims *jwt.Claims, req *WasteRequest, image *multipart.FileHeader) (*model.Waste, error)
	ListWaste(claims *jwt.Claims, outletID *uuid.UUID, dates repository.DateRange) ([]model.Waste, error)

	UpsertClosing(claims *jwt.Claims, req *ClosingRequest) (*model.DailyClosing, error)
	ListClosings(claims *jwt.Claims, outletID *uuid.UUID, dates repository.DateRange) ([]model.DailyClosing, error)
}

type InventoryRequest struct {
	ProductID uuid.UUID  `json:"productId" validate:"uuid_required"`
	OutletID  *uuid.UUID `json:"outletId"`
	Quantity  *float64   `json:"quantity" validate:"required,gte=0"`
	Date      string     `json:"date" validate:"required"`
}

type PurchaseRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"uuid_required"`
	Quantity  *float64  `json:"quantity" validate:"required,gte=0"`
	Date      string    `json:"date" validate:"required"`
}

type SaleRequest struct {
	ProductID uuid.UUID  `json:"productId" validate:"uuid_required"`
	OutletID  *uuid.UUID `json:"outletId"`
	Quantity  *float64   `json:"quantity" validate:"required,gte=0"`
	Date      string     `json:"date" validate:"required"`
}

type WasteRequest struct {
	ProductID uuid.UUID  `json:"productId" validate:"uuid_required"`
	OutletID  *uuid.UUID `json:"outletId"`
	Quantity  *float64   `json:"quantity" validate:"required,gte=0"`
	Date      string     `json:"date" validate:"required"`
	Reason    string     `json:"reason"`
}

type ClosingRequest struct {
	OutletID  *uuid.UUID `json:"outletId"`
	CardSales *float64   `json:"cardSales" validate:"required,gte=0"`
	CashSales *float64   `json:"cashSales" validate:"required,gte=0"`
	Date      string     `json:"date" validate:"required"`
}

type recordService struct {
	productRepo   repository.ProductRepository
	outletRepo    repository.OutletRepository
	inventoryRepo repository.InventoryRepository
	purchaseRepo  repository.PurchaseRepository
	saleRepo      repository.SaleRepository
	wasteRepo     repository.WasteRepository
	closingRepo   repository.ClosingRepository
	images        *imagestore.Store
	hub           *ws.Hub
}

func NewRecordService(
	productRepo repository.ProductRepository,
	outletRepo repository.OutletRepository,
	inventoryRepo repository.InventoryRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	wasteRepo repository.WasteRepository,
	closingRepo repository.ClosingRepository,
	images *imagestore.Store,
	hub *ws.Hub,
) RecordService {
	return &recordService{
		productRepo:   productRepo,
		outletRepo:    outletRepo,
		inventoryRepo: inventoryRepo,
		purchaseRepo:  purchaseRepo,
		saleRepo:      saleRepo,
		wasteRepo:     wasteRepo,
		closingRepo:   closingRepo,
		images:        images,
		hub:           hub,
	}
}

// validateFirst runs struct validation and surfaces only the first failing field.
func validateFirst(req interface{}) error {
	if failed := validator.First(req); failed != nil {
		return validationErr(failed.FailedField, failed.Message())
	}
	return nil
}

func (s *recordService) checkProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return validationErr("productId", "Product not found")
	}
	return nil
}

func (s *recordService) checkOutlet(id uuid.UUID) error {
	if _, err := s.outletRepo.FindByID(id); err != nil {
		return validationErr("outletId", "Outlet not found")
	}
	return nil
}

func (s *recordService) UpsertInventory(claims *jwt.Claims, req *InventoryRequest) (*model.Inventory, error) {
	if err := validateFirst(req); err != nil {
		return nil, err
	}
	date, err := ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	outletID, err := TargetOutlet(claims, req.OutletID)
	if err != nil {
		return nil, err
	}
	if err := s.checkProduct(req.ProductID); err != nil {
		return nil, err
	}
	if err := s.checkOutlet(outletID); err != nil {
		return nil, err
	}

	entry := &model.Inventory{
		ProductID: req.ProductID,
		OutletID:  outletID,
		Quantity:  *req.Quantity,
		Date:      date,
	}
	stored, err := s.inventoryRepo.Upsert(entry)
	if err != nil {
		return nil, err
	}

	s.hub.Publish("inventory_recorded", stored)
	return stored, nil
}

func (s *recordService) ListInventory(claims *jwt.Claims, outletID *uuid.UUID, date *time.Time) ([]model.Inventory, error) {
	return s.inventoryRepo.Find(EffectiveOutlet(claims, outletID), date)
}

func (s *recordService) RecordPurchase(claims *jwt.Claims, req *PurchaseRequest) (*model.Purchase, error) {
	if err := validateFirst(req); err != nil {
		return nil, err
	}
	date, err := ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.checkProduct(req.ProductID); err != nil {
		return nil, err
	}

	purchase := &model.Purchase{
		ProductID:   req.ProductID,
		Quantity:    *req.Quantity,
		Date:        date,
		EnteredByID: claims.UserID,
	}
	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	s.hub.Publish("purchase_recorded", purchase)
	return purchase, nil
}

func (s *recordService) ListPurchases(productID *uuid.UUID, dates repository.DateRange) ([]model.Purchase, error) {
	return s.purchaseRepo.Find(productID, dates)
}

func (s *recordService) RecordSale(claims *jwt.Claims, req *SaleRequest) (*model.Sale, error) {
	if err := validateFirst(req); err != nil {
		return nil, err
	}
	date, err := ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	outletID, err := TargetOutlet(claims, req.OutletID)
	if err != nil {
		return nil, err
	}
	if err := s.checkProduct(req.ProductID); err != nil {
		return nil, err
	}
	if err := s.checkOutlet(outletID); err != nil {
		return nil, err
	}

	sale := &model.Sale{
		OutletID:  outletID,
		ProductID: req.ProductID,
		Quantity:  *req.Quantity,
		Date:      date,
	}
	if err := s.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	s.hub.Publish("sale_recorded", sale)
	return sale, nil
}

func (s *recordService) ListSales(claims *jwt.Claims, outletID *uuid.UUID, dates repository.DateRange) ([]model.Sale, error) {
	return s.saleRepo.Find(EffectiveOutlet(claims, outletID), dates)
}

func (s *recordService) RecordWaste(claims *jwt.Claims, req *WasteRequest, image *multipart.FileHeader) (*model.Waste, error) {
	if err := validateFirst(req); err != nil {
		return nil, err
	}
	date, err := ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	outletID, err := TargetOutlet(claims, req.OutletID)
	if err != nil {
		return nil, err
	}
	if err := s.checkProduct(req.ProductID); err != nil {
		return nil, err
	}
	if err := s.checkOutlet(outletID); err != nil {
		return nil, err
	}

	var imageURL string
	if image != nil && s.images != nil {
		imageURL, err = s.images.SaveResized(image)
		if err != nil {
			return nil, err
		}
	}

	waste := &model.Waste{
		OutletID:  outletID,
		ProductID: req.ProductID,
		Quantity:  *req.Quantity,
		Date:      date,
		Reason:    req.Reason,
		ImageURL:  imageURL,
	}
	if err := s.wasteRepo.Create(waste); err != nil {
		return nil, err
	}

	s.hub.Publish("waste_recorded", waste)
	return waste, nil
}

func (s *recordService) ListWaste(claims *jwt.Claims, outletID *uuid.UUID, dates repository.DateRange) ([]model.Waste, error) {
	return s.wasteRepo.Find(EffectiveOutlet(claims, outletID), dates)
}

func (s *recordService) UpsertClosing(claims *jwt.Claims, req *ClosingRequest) (*model.DailyClosing, error) {
	if err := validateFirst(req); err != nil {
		return nil, err
	}
	date, err := ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	outletID, err := TargetOutlet(claims, req.OutletID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOutlet(outletID); err != nil {
		return nil, err
	}

	closing := &model.DailyClosing{
		OutletID:  outletID,
		Date:      date,
		CardSales: *req.CardSales,
		CashSales: *req.CashSales,
		// Net cash currently equals cash sales; no deduction policy is defined.
		NetCash: *req.CashSales,
	}
	stored, err := s.closingRepo.Upsert(closing)
	if err != nil {
		return nil, err
	}

	s.hub.Publish("closing_recorded", stored)
	return stored, nil
}

func (s *recordService) ListClosings(claims *jwt.Claims, outletID *uuid.UUID, dates repository.DateRange) ([]model.DailyClosing, error) {
	return s.closingRepo.Find(EffectiveOutlet(claims, outletID), dates)
}
