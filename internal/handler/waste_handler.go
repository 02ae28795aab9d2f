package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-outlet-ops/internal/service"
)

type WasteHandler struct {
	records service.RecordService
}

func NewWasteHandler(records service.RecordService) *WasteHandler {
	return &WasteHandler{records: records}
}

// GET /api/waste?outletId=&startDate=&endDate=
func (h *WasteHandler) List(c *fiber.Ctx) error {
	outletID, err := parseUUIDQuery(c, "outletId")
	if err != nil {
		return respondServiceError(c, err)
	}
	dates, err := parseDateRangeQuery(c, false)
	if err != nil {
		return respondServiceError(c, err)
	}

	waste, err := h.records.ListWaste(claimsFrom(c), outletID, dates)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, waste)
}

// Record appends one waste row with an optional photo. The body is
// multipart form data so the image can ride along with the fields.
// POST /api/waste
func (h *WasteHandler) Record(c *fiber.Ctx) error {
	req, err := parseWasteForm(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	// Missing file is simply "no image attached".
	var image *multipart.FileHeader
	if fh, err := c.FormFile("image"); err == nil {
		image = fh
	}

	waste, err := h.records.RecordWaste(claimsFrom(c), req, image)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondCreated(c, waste)
}

func parseWasteForm(c *fiber.Ctx) (*service.WasteRequest, error) {
	req := &service.WasteRequest{
		Date:   c.FormValue("date"),
		Reason: c.FormValue("reason"),
	}

	if raw := c.FormValue("productId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, &service.ValidationError{Field: "productId", Message: "Product ID is required"}
		}
		req.ProductID = id
	}

	if raw := c.FormValue("outletId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, &service.ValidationError{Field: "outletId", Message: "Invalid outletId"}
		}
		req.OutletID = &id
	}

	// An absent quantity stays nil and fails the required validation.
	if raw := c.FormValue("quantity"); raw != "" {
		qty, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &service.ValidationError{Field: "quantity", Message: "Quantity must be a number"}
		}
		req.Quantity = &qty
	}

	return req, nil
}
