package courseValidator

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reorderTestApp(got *map[uint]int) *fiber.App {
	app := fiber.New()
	app.Post("/order", ReorderBatch(), func(c *fiber.Ctx) error {
		*got = c.Locals("reorderUpdates").(map[uint]int)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestReorderBatchParsesUpdates(t *testing.T) {
	var got map[uint]int
	app := reorderTestApp(&got)

	code := postJSON(t, app, "/order", `{"12": 0, "15": 2}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, map[uint]int{12: 0, 15: 2}, got)
}

func TestReorderBatchRejectsBadEntries(t *testing.T) {
	var got map[uint]int
	app := reorderTestApp(&got)

	for _, body := range []string{
		`{"abc": 1}`,
		`{"0": 1}`,
		`{"12": -1}`,
		`[1, 2, 3]`,
		`"12"`,
	} {
		code := postJSON(t, app, "/order", body)
		assert.NotEqual(t, fiber.StatusOK, code, body)
	}
	assert.Nil(t, got)
}
