package handler

import (
	"errors"

	"parcel-ledger/internal/core/server"
	"parcel-ledger/internal/features/enrichment/domain"
	"parcel-ledger/internal/features/enrichment/ports"

	"github.com/gofiber/fiber/v2"
)

// SyncHandler handles HTTP requests for background sync runs.
type SyncHandler struct {
	service ports.SyncService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(service ports.SyncService) *SyncHandler {
	return &SyncHandler{
		service: service,
	}
}

// StartRun godoc
// @Summary Start a sync run
// @Description Starts a tracking or payment sync against the courier in the background
// @Tags sync
// @Produce json
// @Param mode path string true "Sync mode (tracking or payment)"
// @Success 202 {object} domain.Run
// @Failure 400 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /sync/{mode} [post]
func (h *SyncHandler) StartRun(c *fiber.Ctx) error {
	mode, err := domain.ParseMode(c.Params("mode"))
	if err != nil {
		return server.RespondError(c, fiber.StatusBadRequest, err.Error())
	}

	run, err := h.service.Start(c.UserContext(), mode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMode):
			return server.RespondError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrRunInProgress):
			return server.RespondError(c, fiber.StatusConflict, err.Error())
		default:
			return server.RespondError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(run)
}

// GetRun godoc
// @Summary Get a sync run
// @Description Returns progress, errors and result of a sync run
// @Tags sync
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} domain.Run
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /sync/runs/{id} [get]
func (h *SyncHandler) GetRun(c *fiber.Ctx) error {
	run, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			return server.RespondError(c, fiber.StatusNotFound, "sync run not found")
		}
		return server.RespondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(run)
}
