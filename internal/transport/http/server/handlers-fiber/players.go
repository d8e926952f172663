package handlers_fiber

import (
	"net/http"

	"club-transfer-ledger/internal/mapper"
	"club-transfer-ledger/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostPlayer registers a player.
func (h *Handler) PostPlayer(c *fiber.Ctx) error {
	var body dto.RegisterPlayerRequest
	if err := h.parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}

	player, err := h.uc.Register(c.Context(), mapper.FromRegisterRequest(body))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Player dto.Player `json:"player"`
	}{Player: mapper.ToPlayer(*player)})
}

// GetPlayers lists players with their active loans.
func (h *Handler) GetPlayers(c *fiber.Ctx) error {
	views, err := h.uc.ListPlayers(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Players []dto.Player `json:"players"`
	}{Players: mapper.ToPlayerViews(views)})
}

// DeletePlayer removes a player and its loan.
func (h *Handler) DeletePlayer(c *fiber.Ctx) error {
	player, err := h.uc.RemovePlayer(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Player dto.Player `json:"player"`
	}{Player: mapper.ToPlayer(*player)})
}

// PostTransfer moves a player permanently to another club.
func (h *Handler) PostTransfer(c *fiber.Ctx) error {
	var body dto.TransferRequest
	if err := h.parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}
	price, err := parsePrice(body.Price.String())
	if err != nil {
		return h.writeError(c, err)
	}

	res, err := h.uc.Transfer(c.Context(), c.Params("id"), body.ToClub, price)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTransferResult(*res))
}
