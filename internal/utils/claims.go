package utils

import (
	"errors"

	"facilita/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserClaims extracts the user claims stored by the auth middleware.
// It returns an error if the claims are missing or of an invalid type.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	v := c.Locals("claims")
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.UserClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// GetUserID is a shortcut for handlers that only need the acting user.
func GetUserID(c *fiber.Ctx) (uint, error) {
	claims, err := GetUserClaims(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
