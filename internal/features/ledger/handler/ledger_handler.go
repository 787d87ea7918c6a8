package handler

import (
	"errors"

	"parcel-ledger/internal/core/server"
	"parcel-ledger/internal/features/ledger/domain"
	"parcel-ledger/internal/features/ledger/ports"

	"github.com/gofiber/fiber/v2"
)

// LedgerHandler handles HTTP requests that change the ledger.
type LedgerHandler struct {
	service ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(service ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		service: service,
	}
}

// Import godoc
// @Summary Import a shipment batch
// @Description Merges a loadsheet batch into the ledger. The whole batch is rejected if any tracking id already exists.
// @Tags ledger
// @Accept json
// @Produce json
// @Param batch body domain.ImportBatch true "Batch rows with their header"
// @Success 201 {object} domain.ImportResult
// @Failure 400 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /ledger/import [post]
func (h *LedgerHandler) Import(c *fiber.Ctx) error {
	var batch domain.ImportBatch
	if err := c.BodyParser(&batch); err != nil {
		return server.RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := server.ValidateBody(&batch); err != nil {
		return server.RespondError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.Import(c.UserContext(), &batch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSchemaViolation):
			return server.RespondError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrDuplicateRecord), errors.Is(err, domain.ErrLedgerBusy):
			return server.RespondError(c, fiber.StatusConflict, err.Error())
		default:
			return server.RespondError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Sort godoc
// @Summary Sort the ledger by booking date
// @Description Reorders rows ascending by booking date; undated rows keep their order at the end
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.SortResult
// @Failure 404 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /ledger/sort [post]
func (h *LedgerHandler) Sort(c *fiber.Ctx) error {
	result, err := h.service.SortByBookingDate(c.UserContext())
	if err != nil {
		return RespondLedgerError(c, err)
	}
	return c.JSON(result)
}

// RespondLedgerError maps ledger read failures to HTTP statuses.
func RespondLedgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return server.RespondError(c, fiber.StatusNotFound, "ledger not found")
	case errors.Is(err, domain.ErrMissingColumns):
		return server.RespondError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrLedgerBusy):
		return server.RespondError(c, fiber.StatusConflict, err.Error())
	default:
		return server.RespondError(c, fiber.StatusInternalServerError, err.Error())
	}
}
