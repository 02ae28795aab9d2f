package service

import (
	"time"

	"github.com/google/uuid"

	"go-outlet-ops/internal/model"
	"go-outlet-ops/internal/repository"
	"go-outlet-ops/pkg/jwt"
)

// Clock supplies "now" so the dashboard windows are testable.
type Clock func() time.Time

// ReportService derives every figure from the raw Purchase/Sale/Waste/
// DailyClosing rows on each request; no materialized ledger exists.
type ReportService interface {
	InventoryReport(claims *jwt.Claims, outletID *uuid.UUID, dates repository.DateRange) ([]InventoryReportRow, error)
	SalesReport(claims *jwt.Claims, outletID *uuid.UUID, start, end time.Time) ([]SalesReportBucket, error)
	DailySummary(start, end time.Time) (*DailySummaryReport, error)
	DashboardStats() (*DashboardStats, error)
}

type InventoryReportRow struct {
	Product   model.Product `json:"product"`
	Purchased float64       `json:"purchased"`
	Sold      float64       `json:"sold"`
	Wasted    float64       `json:"wasted"`
	Remaining float64       `json:"remaining"`
}

type SalesReportBucket struct {
	Date          string       `json:"date"`
	Items         []model.Sale `json:"items"`
	TotalQuantity float64      `json:"totalQuantity"`
}

type ClosingTotals struct {
	TotalCardSales float64 `json:"totalCardSales"`
	TotalCashSales float64 `json:"totalCashSales"`
	TotalNetCash   float64 `json:"totalNetCash"`
}

type DailySummaryReport struct {
	Closings []model.DailyClosing `json:"closings"`
	Totals   ClosingTotals        `json:"totals"`
}

type PeriodTotals struct {
	CardSales  float64 `json:"cardSales"`
	CashSales  float64 `json:"cashSales"`
	TotalSales float64 `json:"totalSales"`
}

type OutletTotals struct {
	PeriodTotals
	Type model.OutletType `json:"type"`
}

type DashboardStats struct {
	Today           PeriodTotals             `json:"today"`
	Monthly         PeriodTotals             `json:"monthly"`
	OutletBreakdown map[string]*OutletTotals `json:"outletBreakdown"`
	OutletCount     int64                    `json:"outletCount"`
	Month           string                   `json:"month"`
}

type reportService struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	wasteRepo    repository.WasteRepository
	closingRepo  repository.ClosingRepository
	outletRepo   repository.OutletRepository
	clock        Clock
	loc          *time.Location
}

// NewReportService wires the aggregation layer. clock and loc may be nil;
// they default to the wall clock and the configured process location.
func NewReportService(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	wasteRepo repository.WasteRepository,
	closingRepo repository.ClosingRepository,
	outletRepo repository.OutletRepository,
	clock Clock,
	loc *time.Location,
) ReportService {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &reportService{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		wasteRepo:    wasteRepo,
		closingRepo:  closingRepo,
		outletRepo:   outletRepo,
		clock:        clock,
		loc:          loc,
	}
}

// InventoryReport computes remaining = purchased - sold - wasted per product.
// Purchases are organization-wide and never outlet-filtered; sales and waste
// honor the effective outlet. A negative remainder is surfaced as-is: it
// flags an inconsistency in the recorded events.
func (s *reportService) InventoryReport(claims *jwt.Claims, outletID *uuid.UUID, dates repository.DateRange) ([]InventoryReportRow, error) {
	effective := EffectiveOutlet(claims, outletID)

	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	report := make([]InventoryReportRow, 0, len(products))
	for _, product := range products {
		purchased, err := s.purchaseRepo.SumQuantity(product.ID, dates)
		if err != nil {
			return nil, err
		}
		sold, err := s.saleRepo.SumQuantity(product.ID, effective, dates)
		if err != nil {
			return nil, err
		}
		wasted, err := s.wasteRepo.SumQuantity(product.ID, effective, dates)
		if err != nil {
			return nil, err
		}

		report = append(report, InventoryReportRow{
			Product:   product,
			Purchased: purchased,
			Sold:      sold,
			Wasted:    wasted,
			Remaining: purchased - sold - wasted,
		})
	}
	return report, nil
}

// SalesReport buckets sales by calendar date. Rows are fetched in ascending
// date order and buckets are appended on first occurrence, so bucket order
// is ascending by construction without a separate sort.
func (s *reportService) SalesReport(claims *jwt.Claims, outletID *uuid.UUID, start, end time.Time) ([]SalesReportBucket, error) {
	effective := EffectiveOutlet(claims, outletID)

	sales, err := s.saleRepo.FindAscending(effective, repository.DateRange{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	buckets := make([]SalesReportBucket, 0)
	index := make(map[string]int)
	for _, sale := range sales {
		key := sale.Date.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, SalesReportBucket{Date: key, Items: []model.Sale{}})
		}
		buckets[i].Items = append(buckets[i].Items, sale)
		buckets[i].TotalQuantity += sale.Quantity
	}
	return buckets, nil
}

func (s *reportService) DailySummary(start, end time.Time) (*DailySummaryReport, error) {
	closings, err := s.closingRepo.FindAllOrdered(repository.DateRange{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	var totals ClosingTotals
	for _, closing := range closings {
		totals.TotalCardSales += closing.CardSales
		totals.TotalCashSales += closing.CashSales
		totals.TotalNetCash += closing.NetCash
	}

	return &DailySummaryReport{Closings: closings, Totals: totals}, nil
}

// DashboardStats sums daily closings over the current calendar month and
// day, using the injected clock and the configured organizational location.
func (s *reportService) DashboardStats() (*DashboardStats, error) {
	now := s.clock().In(s.loc)
	year, month, day := now.Date()

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	monthEnd := time.Date(year, month+1, 0, 23, 59, 59, 0, s.loc)
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, s.loc)
	dayEnd := time.Date(year, month, day, 23, 59, 59, 0, s.loc)

	monthly, err := s.closingRepo.FindAllOrdered(repository.DateRange{Start: &monthStart, End: &monthEnd})
	if err != nil {
		return nil, err
	}
	today, err := s.closingRepo.FindAllOrdered(repository.DateRange{Start: &dayStart, End: &dayEnd})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		Monthly:         sumClosings(monthly),
		Today:           sumClosings(today),
		OutletBreakdown: make(map[string]*OutletTotals),
		Month:           monthStart.Format("January 2006"),
	}

	for _, closing := range monthly {
		if closing.Outlet == nil {
			continue
		}
		entry, ok := stats.OutletBreakdown[closing.Outlet.Name]
		if !ok {
			entry = &OutletTotals{Type: closing.Outlet.Type}
			stats.OutletBreakdown[closing.Outlet.Name] = entry
		}
		entry.CardSales += closing.CardSales
		entry.CashSales += closing.CashSales
		entry.TotalSales += closing.CardSales + closing.CashSales
	}

	count, err := s.outletRepo.Count()
	if err != nil {
		return nil, err
	}
	stats.OutletCount = count

	return stats, nil
}

func sumClosings(closings []model.DailyClosing) PeriodTotals {
	var totals PeriodTotals
	for _, closing := range closings {
		totals.CardSales += closing.CardSales
		totals.CashSales += closing.CashSales
		totals.TotalSales += closing.CardSales + closing.CashSales
	}
	return totals
}
