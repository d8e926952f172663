// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"context"
	"reflect"
	"strings"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SweepTrigger runs one expiry sweep unless another is in flight.
type SweepTrigger interface {
	RunOnce(ctx context.Context) (entities.SweepResult, error)
}

// Handler serves the ledger operations using service layer interfaces.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	sweeps   SweepTrigger
	validate *validator.Validate
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, sweeps SweepTrigger) *Handler {
	vld := validator.New(validator.WithRequiredStructEnabled())
	vld.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{
		log:      log,
		uc:       usecase,
		sweeps:   sweeps,
		validate: vld,
	}
}

// RegisterRoutes mounts the ledger API on router.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Post("/players", h.PostPlayer)
	router.Get("/players", h.GetPlayers)
	router.Delete("/players/:id", h.DeletePlayer)
	router.Post("/players/:id/transfer", h.PostTransfer)
	router.Post("/players/:id/loan", h.PostLoan)
	router.Get("/budgets", h.GetBudgets)
	router.Post("/loans/sweep", h.PostSweep)
}
