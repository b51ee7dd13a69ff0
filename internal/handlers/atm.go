package handlers

import (
	"strconv"

	"facilita/internal/models"
	"facilita/internal/services/atm"
	"facilita/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ATMHandler struct {
	atmService atm.Service
}

func NewATMHandler(atmService atm.Service) *ATMHandler {
	return &ATMHandler{atmService: atmService}
}

// ListATMs returns the community ATM registry.
func (h *ATMHandler) ListATMs(c *fiber.Ctx) error {
	atms, err := h.atmService.List()
	if err != nil {
		return utils.InternalError(c, "Failed to load ATMs")
	}
	return utils.Success(c, atms)
}

func (h *ATMHandler) CreateATM(c *fiber.Ctx) error {
	var a models.ATM
	if err := c.BodyParser(&a); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.atmService.Create(&a)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, created)
}

func (h *ATMHandler) UpdateATM(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid ATM ID")
	}

	var a models.ATM
	if err := c.BodyParser(&a); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	a.ID = uint(id)

	updated, err := h.atmService.Update(&a)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, updated)
}

func (h *ATMHandler) DeleteATM(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid ATM ID")
	}

	if err := h.atmService.Delete(uint(id)); err != nil {
		return utils.NotFound(c, "ATM not found")
	}
	return utils.Success(c, fiber.Map{"message": "ATM removed"})
}

// VoteATM toggles the caller's availability confirmation.
func (h *ATMHandler) VoteATM(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid ATM ID")
	}

	votes, voted, err := h.atmService.Vote(claims.UserID, uint(id))
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.Map{"votes": votes, "voted": voted})
}

// SetATMStatus reports whether an ATM currently has money.
func (h *ATMHandler) SetATMStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid ATM ID")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	updated, err := h.atmService.SetStatus(uint(id), input.Status)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, updated)
}
