package handler

import (
	"go-outlet-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	records service.RecordService
}

func NewPurchaseHandler(records service.RecordService) *PurchaseHandler {
	return &PurchaseHandler{records: records}
}

// List returns purchases. Purchases are organization-wide, so there is no
// outlet scoping here.
// GET /api/purchases?productId=&startDate=&endDate=
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	productID, err := parseUUIDQuery(c, "productId")
	if err != nil {
		return respondServiceError(c, err)
	}
	dates, err := parseDateRangeQuery(c, false)
	if err != nil {
		return respondServiceError(c, err)
	}

	purchases, err := h.records.ListPurchases(productID, dates)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, purchases)
}

// Record appends one purchase row. Duplicates are rows by design.
// POST /api/purchases
func (h *PurchaseHandler) Record(c *fiber.Ctx) error {
	var req service.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	purchase, err := h.records.RecordPurchase(claimsFrom(c), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondCreated(c, purchase)
}
