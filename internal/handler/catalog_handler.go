package handler

import (
	"go-outlet-ops/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the static reference data (products and outlets).
type CatalogHandler struct {
	productRepo repository.ProductRepository
	outletRepo  repository.OutletRepository
}

func NewCatalogHandler(productRepo repository.ProductRepository, outletRepo repository.OutletRepository) *CatalogHandler {
	return &CatalogHandler{productRepo: productRepo, outletRepo: outletRepo}
}

// GET /api/products
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	products, err := h.productRepo.FindAll()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, products)
}

// GET /api/outlets
func (h *CatalogHandler) Outlets(c *fiber.Ctx) error {
	outlets, err := h.outletRepo.FindAll()
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, outlets)
}
