package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildtrivia/middleware"
	"guildtrivia/schemas"
)

type echoBody struct {
	Name string `json:"name" validate:"required"`
}

type idParam struct {
	ID string `json:"id" validate:"required,uuid4"`
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestValidateBodyPassesParsedValue(t *testing.T) {
	app := fiber.New()
	app.Post("/echo",
		middleware.Validate(middleware.ValidateConfig{
			Body: middleware.Body[echoBody](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error {
			parsed := c.Locals(middleware.LocalBody).(*echoBody)
			return c.JSON(fiber.Map{"name": parsed.Name})
		},
	)

	status, body := doRequest(t, app, "POST", "/echo", `{"name":"Alice"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Alice", body["name"])
}

func TestValidateBodyRejection(t *testing.T) {
	app := fiber.New()
	app.Post("/echo",
		middleware.Validate(middleware.ValidateConfig{
			Body: middleware.Body[echoBody](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error {
			t.Fatal("handler must not run on invalid input")
			return nil
		},
	)

	status, body := doRequest(t, app, "POST", "/echo", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["isSuccess"])
	assert.Equal(t, "Invalid request body", body["message"])

	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	issues, ok := errObj["issues"].([]interface{})
	require.True(t, ok)
	require.Len(t, issues, 1)
	issue := issues[0].(map[string]interface{})
	assert.Equal(t, "name", issue["path"])
	assert.Equal(t, "required", issue["code"])
}

func TestValidateStrictRejectsExtraKeys(t *testing.T) {
	app := fiber.New()
	app.Post("/echo",
		middleware.Validate(middleware.ValidateConfig{
			Body: middleware.Body[echoBody](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) },
	)

	status, body := doRequest(t, app, "POST", "/echo", `{"name":"Alice","role":"admin"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestValidateLenientMode(t *testing.T) {
	lenient := false

	app := fiber.New()
	app.Post("/echo",
		middleware.Validate(middleware.ValidateConfig{
			Body:   middleware.Body[echoBody](),
			Strict: &lenient,
		}, newTestLogger()),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) },
	)

	status, _ := doRequest(t, app, "POST", "/echo", `{"name":"Alice","role":"admin"}`)
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestValidateParams(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id",
		middleware.Validate(middleware.ValidateConfig{
			Params: middleware.Values[idParam](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error {
			parsed := c.Locals(middleware.LocalParams).(*idParam)
			return c.JSON(fiber.Map{"id": parsed.ID})
		},
	)

	status, body := doRequest(t, app, "GET", "/items/123e4567-e89b-42d3-a456-426614174000", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "123e4567-e89b-42d3-a456-426614174000", body["id"])

	status, body = doRequest(t, app, "GET", "/items/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request params", body["message"])
}

func TestValidateQueryDefaults(t *testing.T) {
	app := fiber.New()
	app.Get("/list",
		middleware.Validate(middleware.ValidateConfig{
			Query: middleware.Values[schemas.Pagination](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error {
			parsed := c.Locals(middleware.LocalQuery).(*schemas.Pagination)
			return c.JSON(parsed)
		},
	)

	status, body := doRequest(t, app, "GET", "/list", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(10), body["limit"])

	status, body = doRequest(t, app, "GET", "/list?page=2&limit=5", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(5), body["limit"])

	status, body = doRequest(t, app, "GET", "/list?page=zero", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request query", body["message"])
}

type apiKeyHeader struct {
	Key string `json:"x-api-key" validate:"required"`
}

func TestValidateHeadersIgnoreUnknownKeys(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded",
		middleware.Validate(middleware.ValidateConfig{
			Headers: middleware.Values[apiKeyHeader](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) },
	)

	// Transport headers beyond the schema never fail the request, even
	// though strict mode defaults on.
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("X-Api-Key", "secret")
	req.Header.Set("X-Request-Id", "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// The declared constraint still applies.
	resp, err = app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestValidateResponseSubstitution(t *testing.T) {
	app := fiber.New()
	app.Get("/broken",
		middleware.Validate(middleware.ValidateConfig{
			Response: middleware.Body[echoBody](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error {
			// Violates the declared response shape.
			return c.JSON(fiber.Map{"name": ""})
		},
	)

	status, body := doRequest(t, app, "GET", "/broken", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["isSuccess"])
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, "Response validation failed", body["error"])
}

func TestValidateResponsePassthrough(t *testing.T) {
	app := fiber.New()
	app.Get("/ok",
		middleware.Validate(middleware.ValidateConfig{
			Response: middleware.Body[echoBody](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"name": "Alice"})
		},
	)

	status, body := doRequest(t, app, "GET", "/ok", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Alice", body["name"])
}

func TestValidateResponseSkipsErrorsAndEmptyBodies(t *testing.T) {
	app := fiber.New()
	app.Get("/missing",
		middleware.Validate(middleware.ValidateConfig{
			Response: middleware.Body[echoBody](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		},
	)
	app.Get("/empty",
		middleware.Validate(middleware.ValidateConfig{
			Response: middleware.Body[echoBody](),
		}, newTestLogger()),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNoContent)
		},
	)

	status, body := doRequest(t, app, "GET", "/missing", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Not found", body["error"])

	status, _ = doRequest(t, app, "GET", "/empty", "")
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestValidatePanicBecomes500(t *testing.T) {
	panicking := func(data []byte, strict bool) (interface{}, *schemas.IssueList) {
		panic("schema misconfigured")
	}

	app := fiber.New()
	app.Post("/boom",
		middleware.Validate(middleware.ValidateConfig{
			Body: panicking,
		}, newTestLogger()),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) },
	)

	status, body := doRequest(t, app, "POST", "/boom", `{}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["isSuccess"])
	assert.Equal(t, "Internal server error", body["message"])
	assert.Equal(t, "Validation failed", body["error"])
}
