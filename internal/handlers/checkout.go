package handlers

import (
	"facilita/internal/services/checkout"
	"facilita/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	checkoutService checkout.Service
}

func NewCheckoutHandler(checkoutService checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout charges the cart and writes the ledger entries.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		Items    []checkout.CartLine `json:"items"`
		Method   string              `json:"method"`
		ProofURL string              `json:"proof_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	transactions, err := h.checkoutService.Checkout(c.Context(), claims.UserID, input.Items, input.Method, input.ProofURL)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, fiber.Map{"transactions": transactions})
}

// PurchasePlan charges a subscription plan and, once settled, applies
// the quota carry-over.
func (h *CheckoutHandler) PurchasePlan(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		PlanType string `json:"plan_type"`
		Method   string `json:"method"`
		ProofURL string `json:"proof_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	tx, err := h.checkoutService.PurchasePlan(c.Context(), claims.UserID, input.PlanType, input.Method, input.ProofURL)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, fiber.Map{"transaction": tx})
}
