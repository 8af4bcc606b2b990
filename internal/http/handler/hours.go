package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hourlog/internal/model"
	"hourlog/internal/service"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheck pings the database. A nil Pinger (in-memory backend) is always healthy.
//
//	@Summary	Dependency health
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	errorPayload
//	@Router		/health [get]
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 with an empty body.
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Success	200
//	@Router		/api/health_check [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListHours returns every logged entry.
//
//	@Summary	List logged hours
//	@Tags		hours
//	@Produce	json
//	@Success	200	{array}		model.Hours
//	@Failure	500	{object}	errorPayload
//	@Router		/api/hours [get]
func ListHours(svc service.HoursService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hours, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(hours)
	}
}

// LogHours stores a new entry.
//
//	@Summary	Log hours
//	@Tags		hours
//	@Accept		json
//	@Produce	json
//	@Param		hours	body		model.NewHours	true	"Hours to log"
//	@Success	201		{object}	model.Hours
//	@Failure	400		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/api/hours [post]
func LogHours(svc service.HoursService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.NewHours
		if err := c.App().Config().JSONDecoder(c.Body(), &in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}

		h, err := svc.Log(c.UserContext(), in)
		if err != nil {
			var fields model.FieldErrors
			if errors.As(err, &fields) {
				return writeValidationError(c, fields)
			}
			return internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(h)
	}
}

// GetHours returns a single entry by ID.
//
//	@Summary	Get logged hours
//	@Tags		hours
//	@Produce	json
//	@Param		id	path		string	true	"Entry ID"	format(uuid)
//	@Success	200	{object}	model.Hours
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/api/hours/{id} [get]
func GetHours(svc service.HoursService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		h, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "hours not found")
			}
			return internalError(c, err)
		}
		return c.JSON(h)
	}
}

// DeleteHours removes an entry by ID.
//
//	@Summary	Delete logged hours
//	@Tags		hours
//	@Param		id	path	string	true	"Entry ID"	format(uuid)
//	@Success	204
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/api/hours/{id} [delete]
func DeleteHours(svc service.HoursService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "hours not found")
			}
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ExportHours uploads a JSON snapshot to object storage.
//
//	@Summary	Export logged hours
//	@Tags		hours
//	@Produce	json
//	@Success	201	{object}	service.ExportResult
//	@Failure	501	{object}	errorPayload
//	@Failure	500	{object}	errorPayload
//	@Router		/api/hours/export [post]
func ExportHours(svc service.HoursService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrExportDisabled) {
				return writeError(c, fiber.StatusNotImplemented, "EXPORT_DISABLED", "export storage is not configured")
			}
			return internalError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
