package courseValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cab/store"
)

func contentTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/course/:course_id/module/:module_id/content/:kind",
		CreateContentAdmin(),
		func(c *fiber.Ctx) error {
			attrs := c.Locals("itemAttrs").(store.ItemAttrs)
			return c.JSON(fiber.Map{"kind": c.Locals("contentKind"), "title": attrs.Title})
		})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateContentUnknownKindIsNotFound(t *testing.T) {
	app := contentTestApp()

	code := postJSON(t, app, "/course/1/module/2/content/audio", `{"title":"x"}`)
	assert.Equal(t, fiber.StatusNotFound, code)

	code = postJSON(t, app, "/course/1/module/2/content/TEXT", `{"title":"x"}`)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestCreateContentRejectsReservedFields(t *testing.T) {
	app := contentTestApp()

	for _, body := range []string{
		`{"title":"x","body":"b","owner":7}`,
		`{"title":"x","body":"b","owner_id":7}`,
		`{"title":"x","body":"b","position":0}`,
		`{"title":"x","body":"b","created":"2024-01-01"}`,
		`{"title":"x","body":"b","updated_at":"2024-01-01"}`,
		`{"title":"x","body":"b","file_path":"../../etc/passwd"}`,
	} {
		code := postJSON(t, app, "/course/1/module/2/content/text", body)
		assert.Equal(t, fiber.StatusUnprocessableEntity, code, body)
	}

	// The same payload without reserved keys goes through.
	code := postJSON(t, app, "/course/1/module/2/content/text", `{"title":"x","body":"b"}`)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestCreateContentBadPathIDs(t *testing.T) {
	app := contentTestApp()

	code := postJSON(t, app, "/course/abc/module/2/content/text", `{"title":"x","body":"b"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code = postJSON(t, app, "/course/1/module/0/content/text", `{"title":"x","body":"b"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}
