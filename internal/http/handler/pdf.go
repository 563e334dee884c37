package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pdfscan/internal/http/middleware"
	"pdfscan/internal/service"
)

// UploadPDF handles POST /api/pdf/upload. The route runs behind OptionalAuth,
// so anonymous uploads are accepted and authenticated ones get an owner.
func UploadPDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("pdf")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "No PDF file uploaded")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "No PDF file uploaded")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Error processing PDF file")
		}

		var ownerID *int64
		if id, ok := middleware.AuthedUserID(c); ok {
			ownerID = &id
		}

		info, err := svc.Upload(c.UserContext(), data, fh.Filename, fh.Header.Get(fiber.HeaderContentType), fh.Size, ownerID)
		switch {
		case errors.Is(err, service.ErrNoFile):
			return writeError(c, fiber.StatusBadRequest, "No PDF file uploaded")
		case errors.Is(err, service.ErrNotPDF):
			return writeError(c, fiber.StatusBadRequest, "Only PDF files are allowed")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Error processing PDF file")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "PDF uploaded and scanned successfully",
			"pdf":     info,
		})
	}
}

// ScanPDF handles GET /api/pdf/scan/:pdfId and returns the full record,
// extracted text included.
func ScanPDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("pdfId"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "PDF not found")
		}

		doc, err := svc.Scan(c.UserContext(), id)
		switch {
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "PDF not found")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Error retrieving PDF")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"pdf":     doc,
		})
	}
}

// MyPDFs handles GET /api/pdf/my-pdfs. Runs behind the auth gate.
func MyPDFs(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.AuthedUserID(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "Access token required")
		}

		infos, err := svc.ListForOwner(c.UserContext(), userID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Error retrieving PDFs")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"pdfs":    infos,
		})
	}
}

// DeletePDF handles DELETE /api/pdf/:pdfId. Runs behind the auth gate; only
// the owner may delete, and a foreign id is indistinguishable from a missing one.
func DeletePDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.AuthedUserID(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "Access token required")
		}

		id, err := strconv.ParseInt(c.Params("pdfId"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "PDF not found or access denied")
		}

		err = svc.Delete(c.UserContext(), id, userID)
		switch {
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "PDF not found or access denied")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Error deleting PDF")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "PDF deleted successfully",
		})
	}
}
