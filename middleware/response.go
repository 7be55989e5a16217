package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const startKey = "requestStart"

// Timing records the request start time so the envelope helpers can report
// generation time. Mount it before the routes.
func Timing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(startKey, time.Now())
		return c.Next()
	}
}

func elapsedMs(c *fiber.Ctx) float64 {
	start, ok := c.Locals(startKey).(time.Time)
	if !ok {
		return 0
	}
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// Success writes the generic single-result envelope.
func Success(c *fiber.Ctx, statusCode int, message string, result interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"result":            result,
		"results":           nil,
		"generationTime_ms": elapsedMs(c),
		"success":           true,
		"message":           message,
	})
}

// SuccessList writes the generic list-result envelope.
func SuccessList(c *fiber.Ctx, statusCode int, message string, results interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"result":            nil,
		"results":           results,
		"generationTime_ms": elapsedMs(c),
		"success":           true,
		"message":           message,
	})
}

// Failure writes the generic error envelope.
func Failure(c *fiber.Ctx, statusCode int, message string, errDetail interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success":           false,
		"message":           message,
		"error":             errDetail,
		"generationTime_ms": elapsedMs(c),
	})
}
