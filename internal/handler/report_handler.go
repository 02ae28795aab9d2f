package handler

import (
	"go-outlet-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Inventory returns remaining stock per product for an optional date range.
// GET /api/reports/inventory?outletId=&startDate=&endDate=
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	outletID, err := parseUUIDQuery(c, "outletId")
	if err != nil {
		return respondServiceError(c, err)
	}
	dates, err := parseDateRangeQuery(c, false)
	if err != nil {
		return respondServiceError(c, err)
	}

	report, err := h.reports.InventoryReport(claimsFrom(c), outletID, dates)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, report)
}

// Sales returns date-bucketed sales for a mandatory date range.
// GET /api/reports/sales?outletId=&startDate=&endDate=
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	outletID, err := parseUUIDQuery(c, "outletId")
	if err != nil {
		return respondServiceError(c, err)
	}
	dates, err := parseDateRangeQuery(c, true)
	if err != nil {
		return respondServiceError(c, err)
	}

	report, err := h.reports.SalesReport(claimsFrom(c), outletID, *dates.Start, *dates.End)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, report)
}

// DailySummary sums closings across all outlets. Owner-only.
// GET /api/reports/daily-summary?startDate=&endDate=
func (h *ReportHandler) DailySummary(c *fiber.Ctx) error {
	dates, err := parseDateRangeQuery(c, true)
	if err != nil {
		return respondServiceError(c, err)
	}

	report, err := h.reports.DailySummary(*dates.Start, *dates.End)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, report)
}

// DashboardStats returns the month-to-date and today KPI snapshot. Owner-only.
// GET /api/reports/dashboard-stats
func (h *ReportHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.reports.DashboardStats()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, stats)
}
