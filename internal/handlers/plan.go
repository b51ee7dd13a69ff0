package handlers

import (
	"facilita/internal/repositories"
	"facilita/internal/services/plan"
	"facilita/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PlanHandler struct {
	planService plan.Service
	users       repositories.UserRepository
}

func NewPlanHandler(planService plan.Service, users repositories.UserRepository) *PlanHandler {
	return &PlanHandler{planService: planService, users: users}
}

// ListPlans returns the subscription catalog, cheapest first.
func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.planService.Catalog()
	if err != nil {
		return utils.InternalError(c, "Failed to load plans")
	}
	return utils.Success(c, plans)
}

// GetMyLimits reports the caller's effective quota.
func (h *PlanHandler) GetMyLimits(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	user, err := h.users.GetByID(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	limits, err := h.planService.EffectiveLimits(user)
	if err != nil {
		return utils.InternalError(c, "Failed to resolve limits")
	}
	return utils.Success(c, fiber.Map{
		"plan":   user.Plan,
		"limits": limits,
	})
}
