package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resume-builder/internal/export"
	"resume-builder/internal/form"
	"resume-builder/internal/preview"
)

// dataURL encodes an uploaded file the way a browser FileReader would.
func dataURL(data []byte) string {
	return "data:" + mimetype.Detect(data).String() + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// UploadPhoto reads the multipart "photo" file into an embeddable data URL.
func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return h.fail(c, fmt.Errorf("%w: missing photo file", errInvalidPayload))
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return h.fail(c, err)
	}
	ctrl.SetPhoto(dataURL(data))
	return c.JSON(ctrl.Snapshot())
}

func (h *Handler) ClearPhoto(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		ctrl.SetPhoto("")
		return nil
	})
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	t, err := preview.ParseTemplate(c.Query("template"))
	if err != nil {
		return h.fail(c, err)
	}
	doc, err := ctrl.Preview(t)
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(doc.HTML)
}

// Export answers with the PDF as an attachment. Rasterization failures are
// reported as 502 and change nothing in the session.
func (h *Handler) Export(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	t, err := preview.ParseTemplate(c.Query("template"))
	if err != nil {
		return h.fail(c, err)
	}

	art, err := ctrl.Export(c.UserContext(), t)
	switch {
	case err == nil:
	case errors.Is(err, export.ErrExportInProgress):
		return h.fail(c, err)
	default:
		h.log.Warn("export failed", zap.String("session", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	c.Attachment(art.FileName)
	c.Type("pdf")
	return c.Send(art.PDF)
}
