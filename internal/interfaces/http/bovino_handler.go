package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ganadoboy/ganadoboy-api/internal/application/bovino"
	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
)

// BovinoHandler rutas /api/bovinos del propietario autenticado.
type BovinoHandler struct {
	uc       *bovino.BovinoUseCase
	validate *Validator
	limits   UploadLimits
}

// NewBovinoHandler construye el handler.
func NewBovinoHandler(uc *bovino.BovinoUseCase, v *Validator, limits UploadLimits) *BovinoHandler {
	return &BovinoHandler{uc: uc, validate: v, limits: limits}
}

// paramID lee un id positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fieldError(name, "debe ser un entero positivo")
	}
	return id, nil
}

// List godoc
// @Summary Listar mis bovinos
// @Tags Bovinos
// @Security Bearer
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.BovinoListResponse}
// @Router /api/bovinos [get]
func (h *BovinoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}

// Get godoc
// @Summary Obtener bovino
// @Tags Bovinos
// @Security Bearer
// @Produce json
// @Param id path int true "ID del bovino"
// @Success 200 {object} dto.SuccessResponse{data=dto.BovinoEnvelope}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bovinos/{id} [get]
func (h *BovinoHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	b, err := h.uc.Get(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, dto.BovinoEnvelope{Bovino: *b}, "")
}

// Create godoc
// @Summary Registrar bovino
// @Tags Bovinos
// @Security Bearer
// @Accept json
// @Produce json
// @Param body body dto.CreateBovinoRequest true "Datos del bovino"
// @Success 201 {object} dto.SuccessResponse{data=dto.BovinoEnvelope}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/bovinos [post]
func (h *BovinoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBovinoRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	b, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, dto.BovinoEnvelope{ID: b.ID, Bovino: *b}, "Bovino registrado exitosamente")
}

// Update godoc
// @Summary Actualizar bovino (parcial)
// @Tags Bovinos
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path int true "ID del bovino"
// @Param body body dto.UpdateBovinoRequest true "Campos a modificar"
// @Success 200 {object} dto.SuccessResponse{data=dto.BovinoEnvelope}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bovinos/{id} [put]
func (h *BovinoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateBovinoRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	b, err := h.uc.Update(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, dto.BovinoEnvelope{Bovino: *b}, "Bovino actualizado exitosamente")
}

// Delete godoc
// @Summary Eliminar bovino
// @Description Baja lógica; falla si tiene publicaciones activas.
// @Tags Bovinos
// @Security Bearer
// @Produce json
// @Param id path int true "ID del bovino"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bovinos/{id} [delete]
func (h *BovinoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id, GetUserID(c)); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, nil, "Bovino eliminado exitosamente")
}

// AddPhotos godoc
// @Summary Subir fotos
// @Tags Bovinos
// @Security Bearer
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID del bovino"
// @Param fotos formData file true "Imágenes jpg/jpeg/png"
// @Success 200 {object} dto.SuccessResponse{data=dto.FotosResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/bovinos/{id}/fotos [post]
func (h *BovinoHandler) AddPhotos(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	files, closeAll, err := h.limits.openUploads(c, "fotos", h.limits.MaxFiles)
	defer closeAll()
	if err != nil {
		return err
	}
	out, err := h.uc.AddPhotos(c.UserContext(), id, GetUserID(c), files)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, out.Message)
}

// SetPrincipalPhoto godoc
// @Summary Subir foto principal
// @Tags Bovinos
// @Security Bearer
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID del bovino"
// @Param foto formData file true "Imagen jpg/jpeg/png"
// @Success 200 {object} dto.SuccessResponse{data=dto.FotoPrincipalResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/bovinos/{id}/foto [post]
func (h *BovinoHandler) SetPrincipalPhoto(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	files, closeAll, err := h.limits.openUploads(c, "foto", 1)
	defer closeAll()
	if err != nil {
		return err
	}
	out, err := h.uc.SetPrincipalPhoto(c.UserContext(), id, GetUserID(c), files[0])
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, out.Message)
}

// ListPhotos godoc
// @Summary Listar fotos
// @Tags Bovinos
// @Security Bearer
// @Produce json
// @Param id path int true "ID del bovino"
// @Success 200 {object} dto.SuccessResponse{data=dto.FotosResponse}
// @Router /api/bovinos/{id}/fotos [get]
func (h *BovinoHandler) ListPhotos(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ListPhotos(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}

// AddSanitaryRecord godoc
// @Summary Agregar registro sanitario
// @Tags Bovinos
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path int true "ID del bovino"
// @Param body body dto.CreateRegistroSanitarioRequest true "Registro"
// @Success 201 {object} dto.SuccessResponse{data=dto.RegistroEnvelope}
// @Router /api/bovinos/{id}/sanitario [post]
func (h *BovinoHandler) AddSanitaryRecord(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.CreateRegistroSanitarioRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	r, err := h.uc.AddSanitaryRecord(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, dto.RegistroEnvelope{Registro: r}, "Registro sanitario agregado")
}

// GetSanitaryHistory godoc
// @Summary Historial sanitario
// @Tags Bovinos
// @Security Bearer
// @Produce json
// @Param id path int true "ID del bovino"
// @Success 200 {object} dto.SuccessResponse{data=dto.HistorialSanitarioResponse}
// @Router /api/bovinos/{id}/sanitario [get]
func (h *BovinoHandler) GetSanitaryHistory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetSanitaryHistory(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}

// AddReproductiveRecord godoc
// @Summary Agregar evento reproductivo
// @Tags Bovinos
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path int true "ID del bovino"
// @Param body body dto.CreateRegistroReproductivoRequest true "Evento"
// @Success 201 {object} dto.SuccessResponse{data=dto.RegistroEnvelope}
// @Router /api/bovinos/{id}/reproductivo [post]
func (h *BovinoHandler) AddReproductiveRecord(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.CreateRegistroReproductivoRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	r, err := h.uc.AddReproductiveRecord(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, dto.RegistroEnvelope{Registro: r}, "Registro reproductivo agregado")
}

// GetReproductiveHistory godoc
// @Summary Historial reproductivo
// @Tags Bovinos
// @Security Bearer
// @Produce json
// @Param id path int true "ID del bovino"
// @Success 200 {object} dto.SuccessResponse{data=dto.HistorialReproductivoResponse}
// @Router /api/bovinos/{id}/reproductivo [get]
func (h *BovinoHandler) GetReproductiveHistory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetReproductiveHistory(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}

// Ficha godoc
// @Summary Ficha técnica en PDF
// @Tags Bovinos
// @Security Bearer
// @Produce application/pdf
// @Param id path int true "ID del bovino"
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bovinos/{id}/ficha [get]
func (h *BovinoHandler) Ficha(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	pdf, filename, err := h.uc.Ficha(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
