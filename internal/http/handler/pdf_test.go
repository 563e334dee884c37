package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pdfscan/internal/model"
	"pdfscan/internal/service"
	"pdfscan/internal/service/mocks"
)

// multipartUpload builds a multipart body with a single "pdf" part carrying
// the given content type.
func multipartUpload(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="pdf"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/pdf/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadPDF(t *testing.T) {
	t.Run("anonymous upload returns 201 with metadata", func(t *testing.T) {
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("Upload", mock.Anything, []byte("%PDF-1.4 data"), "report.pdf", "application/pdf", mock.Anything, (*int64)(nil)).
			Return(&model.DocumentInfo{ID: 1, Filename: "report.pdf", Size: 13, Pages: 2}, nil)

		app, _ := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})

		resp, err := app.Test(multipartUpload(t, "report.pdf", "application/pdf", []byte("%PDF-1.4 data")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "PDF uploaded and scanned successfully", body["message"])

		pdf := body["pdf"].(map[string]any)
		assert.Equal(t, "report.pdf", pdf["filename"])
		assert.NotContains(t, pdf, "text")
		pdfSvc.AssertExpectations(t)
	})

	t.Run("authenticated upload attaches the owner", func(t *testing.T) {
		owner := int64(7)
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("Upload", mock.Anything, mock.Anything, "report.pdf", "application/pdf", mock.Anything, &owner).
			Return(&model.DocumentInfo{ID: 1, Filename: "report.pdf", OwnerID: &owner}, nil)

		app, tokens := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})
		token, err := tokens.Issue(owner, "alice")
		require.NoError(t, err)

		req := multipartUpload(t, "report.pdf", "application/pdf", []byte("%PDF-1.4 data"))
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		pdfSvc.AssertExpectations(t)
	})

	t.Run("missing file part returns 400", func(t *testing.T) {
		app, _ := newTestApp(t, Services{PDF: new(mocks.MockPDFService)}, Capabilities{})

		req := httptest.NewRequest("POST", "/api/pdf/upload", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "No PDF file uploaded", decodeBody(t, resp)["message"])
	})

	t.Run("non-pdf content type returns 400", func(t *testing.T) {
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("Upload", mock.Anything, mock.Anything, "notes.txt", "text/plain", mock.Anything, (*int64)(nil)).
			Return(nil, service.ErrNotPDF)

		app, _ := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})

		resp, err := app.Test(multipartUpload(t, "notes.txt", "text/plain", []byte("hello")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Only PDF files are allowed", decodeBody(t, resp)["message"])
	})

	t.Run("extraction failure returns 500 envelope", func(t *testing.T) {
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("Upload", mock.Anything, mock.Anything, "report.pdf", "application/pdf", mock.Anything, (*int64)(nil)).
			Return(nil, assert.AnError)

		app, _ := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})

		resp, err := app.Test(multipartUpload(t, "report.pdf", "application/pdf", []byte("%PDF-1.4 data")))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Error processing PDF file", body["message"])
	})
}

func TestScanPDF(t *testing.T) {
	t.Run("returns the full record with text", func(t *testing.T) {
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("Scan", mock.Anything, int64(3)).
			Return(&model.Document{ID: 3, Filename: "report.pdf", Pages: 2, Text: "hello world"}, nil)

		app, _ := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/pdf/scan/3", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		pdf := decodeBody(t, resp)["pdf"].(map[string]any)
		assert.Equal(t, "hello world", pdf["text"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("Scan", mock.Anything, int64(99)).Return(nil, service.ErrNotFound)

		app, _ := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/pdf/scan/99", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "PDF not found", decodeBody(t, resp)["message"])
	})

	t.Run("non-numeric id returns 404", func(t *testing.T) {
		app, _ := newTestApp(t, Services{PDF: new(mocks.MockPDFService)}, Capabilities{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/pdf/scan/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestMyPDFs(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		app, _ := newTestApp(t, Services{PDF: new(mocks.MockPDFService)}, Capabilities{})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/pdf/my-pdfs", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("lists owned documents without text", func(t *testing.T) {
		owner := int64(7)
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("ListForOwner", mock.Anything, owner).
			Return([]model.DocumentInfo{
				{ID: 1, Filename: "a.pdf", OwnerID: &owner},
				{ID: 2, Filename: "b.pdf", OwnerID: &owner},
			}, nil)

		app, tokens := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})
		token, err := tokens.Issue(owner, "alice")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/pdf/my-pdfs", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		pdfs := decodeBody(t, resp)["pdfs"].([]any)
		require.Len(t, pdfs, 2)
		first := pdfs[0].(map[string]any)
		assert.Equal(t, "a.pdf", first["filename"])
		assert.NotContains(t, first, "text")
	})
}

func TestDeletePDF(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		app, _ := newTestApp(t, Services{PDF: new(mocks.MockPDFService)}, Capabilities{})

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/pdf/1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("owner delete succeeds", func(t *testing.T) {
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("Delete", mock.Anything, int64(3), int64(7)).Return(nil)

		app, tokens := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})
		token, err := tokens.Issue(7, "alice")
		require.NoError(t, err)

		req := httptest.NewRequest("DELETE", "/api/pdf/3", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "PDF deleted successfully", decodeBody(t, resp)["message"])
	})

	t.Run("foreign document returns 404", func(t *testing.T) {
		pdfSvc := new(mocks.MockPDFService)
		pdfSvc.On("Delete", mock.Anything, int64(3), int64(8)).Return(service.ErrNotFound)

		app, tokens := newTestApp(t, Services{PDF: pdfSvc}, Capabilities{})
		token, err := tokens.Issue(8, "mallory")
		require.NoError(t, err)

		req := httptest.NewRequest("DELETE", "/api/pdf/3", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "PDF not found or access denied", decodeBody(t, resp)["message"])
	})
}
