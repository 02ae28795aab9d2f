package handler

import (
	"go-outlet-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	records service.RecordService
}

func NewSaleHandler(records service.RecordService) *SaleHandler {
	return &SaleHandler{records: records}
}

// GET /api/sales?outletId=&startDate=&endDate=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	outletID, err := parseUUIDQuery(c, "outletId")
	if err != nil {
		return respondServiceError(c, err)
	}
	dates, err := parseDateRangeQuery(c, false)
	if err != nil {
		return respondServiceError(c, err)
	}

	sales, err := h.records.ListSales(claimsFrom(c), outletID, dates)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, sales)
}

// POST /api/sales
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var req service.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	sale, err := h.records.RecordSale(claimsFrom(c), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondCreated(c, sale)
}
