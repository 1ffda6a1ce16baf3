package http

import (
	"errors"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
)

// UploadsHandler sirve las fotos del driver de almacenamiento activo bajo /uploads.
type UploadsHandler struct {
	photos ports.PhotoStorage
}

// NewUploadsHandler construye el handler.
func NewUploadsHandler(photos ports.PhotoStorage) *UploadsHandler {
	return &UploadsHandler{photos: photos}
}

// Serve godoc
// @Summary Descargar foto
// @Tags Uploads
// @Produce image/jpeg,image/png
// @Param key path string true "Clave del archivo"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /uploads/{key} [get]
func (h *UploadsHandler) Serve(c *fiber.Ctx) error {
	key := strings.TrimPrefix(path.Clean("/"+c.Params("*")), "/")
	if key == "" || key == "." {
		return fiber.ErrNotFound
	}
	rc, contentType, err := h.photos.Open(c.UserContext(), key)
	if errors.Is(err, ports.ErrObjectNotFound) {
		return fail(c, fiber.StatusNotFound, "FILE_NOT_FOUND", "Archivo no encontrado", nil)
	}
	if err != nil {
		return err
	}
	c.Set("Cross-Origin-Resource-Policy", "cross-origin")
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	return c.SendStream(rc)
}
