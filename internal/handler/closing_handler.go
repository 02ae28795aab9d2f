package handler

import (
	"go-outlet-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClosingHandler struct {
	records service.RecordService
}

func NewClosingHandler(records service.RecordService) *ClosingHandler {
	return &ClosingHandler{records: records}
}

// GET /api/daily-closing?outletId=&startDate=&endDate=
func (h *ClosingHandler) List(c *fiber.Ctx) error {
	outletID, err := parseUUIDQuery(c, "outletId")
	if err != nil {
		return respondServiceError(c, err)
	}
	dates, err := parseDateRangeQuery(c, false)
	if err != nil {
		return respondServiceError(c, err)
	}

	closings, err := h.records.ListClosings(claimsFrom(c), outletID, dates)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, closings)
}

// Upsert creates or overwrites the closing for (outlet, date).
// POST /api/daily-closing
func (h *ClosingHandler) Upsert(c *fiber.Ctx) error {
	var req service.ClosingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	closing, err := h.records.UpsertClosing(claimsFrom(c), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondCreated(c, closing)
}
