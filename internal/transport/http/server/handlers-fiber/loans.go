package handlers_fiber

import (
	"net/http"

	"club-transfer-ledger/internal/mapper"
	"club-transfer-ledger/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostLoan loans a player to another club for a number of days.
func (h *Handler) PostLoan(c *fiber.Ctx) error {
	var body dto.LoanRequest
	if err := h.parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}

	res, err := h.uc.Loan(c.Context(), c.Params("id"), body.ToClub, body.Duration)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToLoanResult(*res))
}

// PostSweep runs the expiry sweep now.
func (h *Handler) PostSweep(c *fiber.Ctx) error {
	res, err := h.sweeps.RunOnce(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToSweepResult(res))
}
