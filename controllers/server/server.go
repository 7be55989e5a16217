package serverController

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"guildtrivia/schemas"
)

// Version is set at build time.
var Version = "dev"

var startedAt = time.Now()

// Health reports service liveness. The payload is written directly (no
// envelope) and checked against the HealthCheck schema by the router.
func Health(c *fiber.Ctx) error {
	now := time.Now()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return c.Status(fiber.StatusOK).JSON(schemas.HealthCheck{
		Status:      "OK",
		Uptime:      fmt.Sprintf("%d seconds", int(now.Sub(startedAt).Seconds())),
		Message:     "Server is running",
		Timestamp:   now.UTC().Format(time.RFC3339),
		Version:     Version,
		Environment: env,
		Unix:        now.UnixMilli(),
	})
}
