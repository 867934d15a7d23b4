package handlers

import (
	"food-order-api/domain"
	"food-order-api/internal/api/presenters"
	"food-order-api/pkg/upload"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		Upload(c *fiber.Ctx) error
		ServeUpload(c *fiber.Ctx) error
	}

	uploadHandler struct {
		uploadService upload.UploadService
	}
)

func NewUploadHandler(uploadService upload.UploadService) UploadHandler {
	return &uploadHandler{uploadService: uploadService}
}

func (h *uploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrNoFile)
	}

	// The Host header as sent; c.Hostname would honour X-Forwarded-Host from any client.
	host := string(c.Request().Host())
	res, err := h.uploadService.Upload(c.Context(), file, requestScheme(c), host)
	if err != nil {
		return errorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *uploadHandler) ServeUpload(c *fiber.Ctx) error {
	filename := c.Params("filename")

	rc, err := h.uploadService.Open(c.Context(), filename)
	if err != nil {
		return errorResponse(c, err)
	}

	if ext := filepath.Ext(filename); ext != "" {
		c.Type(ext)
	}
	return c.SendStream(rc)
}

// requestScheme prefers the protocol a reverse proxy reports in
// X-Forwarded-Proto over the scheme the request arrived with.
func requestScheme(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedProto); forwarded != "" {
		if scheme := strings.TrimSpace(strings.Split(forwarded, ",")[0]); scheme != "" {
			return scheme
		}
	}
	return c.Protocol()
}
