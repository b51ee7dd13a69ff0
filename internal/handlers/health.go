package handlers

import (
	"facilita/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	redisStatus := "connected"
	if repositories.CacheService != nil {
		if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
			redisStatus = "unavailable"
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"database": "connected",
			"redis":    redisStatus,
		},
	})
}

func CacheStats(c *fiber.Ctx) error {
	if repositories.CacheService == nil {
		return c.JSON(fiber.Map{"cache_stats": nil})
	}
	return c.JSON(fiber.Map{
		"cache_stats": repositories.CacheService.GetStats(c.Context()),
	})
}
