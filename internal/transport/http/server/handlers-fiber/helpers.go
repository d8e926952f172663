package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"

	"club-transfer-ledger/internal/entities"
	"club-transfer-ledger/internal/jobs"
	"club-transfer-ledger/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const codeSweepInProgress = "SweepInProgress"

var statusByKind = map[string]int{
	"PlayerNotFound":     http.StatusNotFound,
	"AlreadyRegistered":  http.StatusConflict,
	"InsufficientBudget": http.StatusConflict,
	"UnknownClub":        http.StatusBadRequest,
	"InvalidAmount":      http.StatusBadRequest,
	"InvalidDuration":    http.StatusBadRequest,
	"InvalidArgument":    http.StatusBadRequest,
	"PersistenceFailure": http.StatusServiceUnavailable,
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jobs.ErrSweepInProgress) {
		return c.Status(http.StatusConflict).JSON(errorResponse(codeSweepInProgress, err.Error()))
	}

	kind := entities.Kind(err)
	status, ok := statusByKind[kind]
	if !ok {
		h.log.Errorw("request failed", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(errorResponse("Internal", "internal error"))
	}
	if status >= http.StatusInternalServerError {
		h.log.Errorw("request failed", "path", c.Path(), "error", err)
	} else {
		h.log.Infow("request rejected", "path", c.Path(), "code", kind, "error", err)
	}
	return c.Status(status).JSON(errorResponse(kind, err.Error()))
}

func errorResponse(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}

// parseBody decodes the JSON body into payload and validates its tags.
func (h *Handler) parseBody(c *fiber.Ctx, payload any) error {
	if err := c.BodyParser(payload); err != nil {
		return fmt.Errorf("%w: invalid body", entities.ErrInvalidArgument)
	}
	if err := h.validate.Struct(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Tag() == "required" {
				return fmt.Errorf("%w: '%s' is required", entities.ErrInvalidArgument, fe.Field())
			}
			return fmt.Errorf("%w: '%s' failed '%s' check", entities.ErrInvalidArgument, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %w", entities.ErrInvalidArgument, err)
	}
	return nil
}

// parsePrice accepts whole non-negative amounts that fit in int64.
func parsePrice(raw string) (int64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", entities.ErrInvalidAmount, raw)
	}
	if !d.IsInteger() || d.IsNegative() || !d.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %q", entities.ErrInvalidAmount, raw)
	}
	return d.IntPart(), nil
}
