package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"guildtrivia/schemas"
)

// Locals keys for the parsed values handed to the next handler.
const (
	LocalBody   = "validatedBody"
	LocalParams = "validatedParams"
	LocalQuery  = "validatedQuery"
)

// BodyParser parses raw JSON bytes against a schema.
type BodyParser func(data []byte, strict bool) (interface{}, *schemas.IssueList)

// ValuesParser parses a flat string map (params, query, headers) against a
// schema.
type ValuesParser func(values map[string]string, strict bool) (interface{}, *schemas.IssueList)

// Body binds a schema type as a body parser.
func Body[T any]() BodyParser {
	return func(data []byte, strict bool) (interface{}, *schemas.IssueList) {
		v, issues := schemas.Parse[T](data, strict)
		if issues != nil {
			return nil, issues
		}
		return v, nil
	}
}

// Values binds a schema type as a params/query/headers parser.
func Values[T any]() ValuesParser {
	return func(values map[string]string, strict bool) (interface{}, *schemas.IssueList) {
		v, issues := schemas.ParseValues[T](values, strict)
		if issues != nil {
			return nil, issues
		}
		return v, nil
	}
}

// ValidateConfig configures one validation middleware instance. Any subset
// of targets may be set; Response wraps the outbound payload.
type ValidateConfig struct {
	Body   BodyParser
	Params ValuesParser
	Query  ValuesParser

	// Headers is always checked non-strict: requests carry transport
	// headers beyond any schema, so unknown keys stay legal here even
	// when Strict is set.
	Headers ValuesParser

	Response BodyParser

	// Strict rejects payload keys not declared on the schema. Defaults on.
	Strict *bool
}

func (cfg ValidateConfig) strict() bool {
	if cfg.Strict == nil {
		return true
	}
	return *cfg.Strict
}

// Validate builds the validation middleware: each configured target is
// checked independently, the first failure short-circuits with a 400 and
// the structured issue list, success replaces the request data with the
// parsed value before the next handler runs.
func Validate(cfg ValidateConfig, log *logrus.Logger) fiber.Handler {
	strict := cfg.strict()

	return func(c *fiber.Ctx) (err error) {
		// A schema that panics is a programmer error, not a client one.
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Validation middleware error")
				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"isSuccess": false,
					"message":   "Internal server error",
					"error":     "Validation failed",
				})
			}
		}()

		if cfg.Body != nil {
			parsed, issues := cfg.Body(c.Body(), strict)
			if issues != nil {
				return rejected(c, log, "body", issues)
			}
			c.Locals(LocalBody, parsed)
		}

		if cfg.Params != nil {
			parsed, issues := cfg.Params(c.AllParams(), strict)
			if issues != nil {
				return rejected(c, log, "params", issues)
			}
			c.Locals(LocalParams, parsed)
		}

		if cfg.Query != nil {
			parsed, issues := cfg.Query(c.Queries(), strict)
			if issues != nil {
				return rejected(c, log, "query", issues)
			}
			c.Locals(LocalQuery, parsed)
		}

		if cfg.Headers != nil {
			// Headers carry arbitrary transport keys, unknown keys stay legal.
			if _, issues := cfg.Headers(headerMap(c), false); issues != nil {
				return rejected(c, log, "headers", issues)
			}
		}

		if cfg.Response == nil {
			return c.Next()
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Outbound check: an invalid payload is replaced wholesale so it
		// can never leak to the client.
		status := c.Response().StatusCode()
		body := c.Response().Body()
		if status >= fiber.StatusBadRequest || len(body) == 0 {
			return nil
		}
		if _, issues := cfg.Response(body, strict); issues != nil {
			log.WithFields(logrus.Fields{
				"path":   c.Path(),
				"issues": issues.Issues,
			}).Warn("Invalid response data")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"isSuccess": false,
				"message":   "Internal server error",
				"error":     "Response validation failed",
			})
		}
		return nil
	}
}

func rejected(c *fiber.Ctx, log *logrus.Logger, target string, issues *schemas.IssueList) error {
	log.WithFields(logrus.Fields{
		"target": target,
		"path":   c.Path(),
		"issues": issues.Issues,
	}).Warn("Invalid request " + target)

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"isSuccess": false,
		"message":   "Invalid request " + target,
		"error":     issues,
	})
}

func headerMap(c *fiber.Ctx) map[string]string {
	flat := make(map[string]string)
	for key, values := range c.GetReqHeaders() {
		if len(values) > 0 {
			flat[key] = values[0]
		}
	}
	return flat
}
