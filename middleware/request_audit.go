package middleware

import (
	"osg-portal/logger"
	"osg-portal/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestAudit records every request and its response into the async DB
// logger after the handler chain finishes
func RequestAudit(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		asyncLogger.Log(utils.CreateSanitizedLogEntry(c))
		return err
	}
}
