package handlers_fiber

import (
	"net/http"

	"club-transfer-ledger/internal/mapper"
	"club-transfer-ledger/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetBudgets lists every club with its budget.
func (h *Handler) GetBudgets(c *fiber.Ctx) error {
	clubs, err := h.uc.ListBudgets(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Budgets []dto.Club `json:"budgets"`
	}{Budgets: mapper.ToClubs(clubs)})
}
