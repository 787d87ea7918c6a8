package handler

import (
	"context"

	"parcel-ledger/internal/features/analytics/domain"
	ledgerhandler "parcel-ledger/internal/features/ledger/handler"

	"github.com/gofiber/fiber/v2"
)

// Reporter produces the analytics reports. AnalyticsService implements it.
type Reporter interface {
	Summary(ctx context.Context) (*domain.SummaryReport, error)
	Breakdown(ctx context.Context) ([]domain.BucketShare, error)
	Highlights(ctx context.Context) ([]domain.RowHighlight, error)
}

// AnalyticsHandler handles HTTP requests for ledger reports.
type AnalyticsHandler struct {
	reporter Reporter
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(reporter Reporter) *AnalyticsHandler {
	return &AnalyticsHandler{
		reporter: reporter,
	}
}

// Summary godoc
// @Summary Payment summary
// @Description Total COD, pending payment, delivered-but-unpaid amount and the count of placeholder payments
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.SummaryReport
// @Failure 404 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /ledger/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	report, err := h.reporter.Summary(c.UserContext())
	if err != nil {
		return ledgerhandler.RespondLedgerError(c, err)
	}
	return c.JSON(report)
}

// Analytics godoc
// @Summary Status breakdown
// @Description Row counts per status bucket derived from the recent location
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.BucketShare
// @Failure 404 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Router /ledger/analytics [get]
func (h *AnalyticsHandler) Analytics(c *fiber.Ctx) error {
	shares, err := h.reporter.Breakdown(c.UserContext())
	if err != nil {
		return ledgerhandler.RespondLedgerError(c, err)
	}
	return c.JSON(shares)
}

// Highlights godoc
// @Summary Row highlights
// @Description Per-row highlight decisions for amount, status, location and payment
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.RowHighlight
// @Failure 404 {object} server.ErrorResponse
// @Router /ledger/highlights [get]
func (h *AnalyticsHandler) Highlights(c *fiber.Ctx) error {
	highlights, err := h.reporter.Highlights(c.UserContext())
	if err != nil {
		return ledgerhandler.RespondLedgerError(c, err)
	}
	return c.JSON(highlights)
}
