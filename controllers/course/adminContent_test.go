package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cab/config"
	"cab/store"
)

// blobTestApp routes a multipart upload through blobAttrs the way the
// content handlers do: a returned error stops the request, everything
// after it only runs on nil.
func blobTestApp(attrs *store.ItemAttrs, required bool) *fiber.App {
	app := fiber.New()
	app.Post("/blob", func(c *fiber.Ctx) error {
		if err := blobAttrs(c, attrs, required); err != nil {
			return blobErrorResponse(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func multipartUpload(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("title", "Lecture slides"))
	if withFile {
		fw, err := w.CreateFormFile("file", "slides.pdf")
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 test"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func postBlob(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) int {
	t.Helper()

	req := httptest.NewRequest("POST", "/blob", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestBlobAttrsMissingRequiredFileStopsRequest(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: t.TempDir()}

	var attrs store.ItemAttrs
	app := blobTestApp(&attrs, true)

	body, ctype := multipartUpload(t, false)
	code := postBlob(t, app, body, ctype)

	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Empty(t, attrs.FilePath)
}

func TestBlobAttrsMissingFileIsFineOnEdit(t *testing.T) {
	config.AppConfig = &config.Config{UploadDir: t.TempDir()}

	var attrs store.ItemAttrs
	app := blobTestApp(&attrs, false)

	body, ctype := multipartUpload(t, false)
	code := postBlob(t, app, body, ctype)

	assert.Equal(t, fiber.StatusOK, code)
	assert.Empty(t, attrs.FilePath)
}

func TestBlobAttrsStoresUpload(t *testing.T) {
	dir := t.TempDir()
	config.AppConfig = &config.Config{UploadDir: dir}

	var attrs store.ItemAttrs
	app := blobTestApp(&attrs, true)

	body, ctype := multipartUpload(t, true)
	code := postBlob(t, app, body, ctype)

	require.Equal(t, fiber.StatusOK, code)
	require.NotEmpty(t, attrs.FilePath)
	_, err := os.Stat(filepath.Join(dir, attrs.FilePath))
	assert.NoError(t, err)
}

func TestBlobAttrsStorageFailureIsNotSuccess(t *testing.T) {
	// Point the upload dir below a regular file so storing must fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	config.AppConfig = &config.Config{UploadDir: filepath.Join(blocker, "uploads")}

	var attrs store.ItemAttrs
	app := blobTestApp(&attrs, false)

	body, ctype := multipartUpload(t, true)
	code := postBlob(t, app, body, ctype)

	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Empty(t, attrs.FilePath)
}
