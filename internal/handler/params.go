package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-outlet-ops/internal/repository"
	"go-outlet-ops/internal/service"
)

func parseUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, &service.ValidationError{Field: name, Message: "Invalid " + name}
	}
	return &id, nil
}

func parseDateQuery(c *fiber.Ctx, name string, required bool) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		if required {
			return nil, &service.ValidationError{Field: name, Message: name + " is required"}
		}
		return nil, nil
	}
	t, err := service.ParseDate(name, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDateRangeQuery(c *fiber.Ctx, required bool) (repository.DateRange, error) {
	start, err := parseDateQuery(c, "startDate", required)
	if err != nil {
		return repository.DateRange{}, err
	}
	end, err := parseDateQuery(c, "endDate", required)
	if err != nil {
		return repository.DateRange{}, err
	}
	return repository.DateRange{Start: start, End: end}, nil
}
