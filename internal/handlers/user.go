package handlers

import (
	"strconv"

	"facilita/internal/services/user"
	"facilita/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	u, err := h.userService.Get(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.Success(c, u)
}

// UpdateProfile patches the editable profile fields.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var update user.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	u, err := h.userService.UpdateProfile(claims.UserID, update)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, u)
}

// UpgradeToBusiness converts the account to a business account.
func (h *UserHandler) UpgradeToBusiness(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		NIF string `json:"nif"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	u, err := h.userService.UpgradeToBusiness(claims.UserID, input.NIF)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.Map{
		"user":    u,
		"message": "Account upgraded; please sign in again",
	})
}

// ToggleFavorite flips a product favorite and returns the new state.
func (h *UserHandler) ToggleFavorite(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	productID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product ID")
	}

	added, err := h.userService.ToggleFavorite(claims.UserID, uint(productID))
	if err != nil {
		return utils.InternalError(c, "Failed to update favorites")
	}
	return utils.Success(c, fiber.Map{"favorited": added})
}

// GetFavorites lists the user's favorite product ids.
func (h *UserHandler) GetFavorites(c *fiber.Ctx) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	ids, err := h.userService.Favorites(userID)
	if err != nil {
		return utils.InternalError(c, "Failed to load favorites")
	}
	return utils.Success(c, fiber.Map{"favorites": ids})
}

// GetFollowing lists the company ids the user follows.
func (h *UserHandler) GetFollowing(c *fiber.Ctx) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	ids, err := h.userService.Following(userID)
	if err != nil {
		return utils.InternalError(c, "Failed to load followed companies")
	}
	return utils.Success(c, fiber.Map{"following": ids})
}
