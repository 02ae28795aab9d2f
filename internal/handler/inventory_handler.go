package handler

import (
	"go-outlet-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	records service.RecordService
}

func NewInventoryHandler(records service.RecordService) *InventoryHandler {
	return &InventoryHandler{records: records}
}

// List returns inventory snapshots, outlet-scoped for non-owner callers.
// GET /api/inventory?outletId=&date=
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	outletID, err := parseUUIDQuery(c, "outletId")
	if err != nil {
		return respondServiceError(c, err)
	}
	date, err := parseDateQuery(c, "date", false)
	if err != nil {
		return respondServiceError(c, err)
	}

	entries, err := h.records.ListInventory(claimsFrom(c), outletID, date)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, entries)
}

// Upsert creates or overwrites the snapshot for (product, outlet, date).
// POST /api/inventory
func (h *InventoryHandler) Upsert(c *fiber.Ctx) error {
	var req service.InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	entry, err := h.records.UpsertInventory(claimsFrom(c), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondCreated(c, entry)
}
