package controllers

import (
	"errors"
	"strconv"
	"time"

	"crm-service/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// statusForFailure maps an envelope failure to an HTTP status: validation
// failures are the caller's to fix, anything else is a storage fault.
func statusForFailure(message string) int {
	if message == models.MsgValidationFailed {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func notFoundOrInternal(ctx *fiber.Ctx, kind string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": kind + " not found"})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func invalidQuery(ctx *fiber.Ctx, name string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameter: " + name})
}

func parseIDParam(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func timeQuery(ctx *fiber.Ctx, name string) (*time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	// RFC3339 first; bare dates are accepted for the job scripts.
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func decimalQuery(ctx *fiber.Ctx, name string) (*decimal.Decimal, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func intQuery(ctx *fiber.Ctx, name string) (*int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func uintQuery(ctx *fiber.Ctx, name string) (*uint, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	u := uint(n)
	return &u, nil
}
