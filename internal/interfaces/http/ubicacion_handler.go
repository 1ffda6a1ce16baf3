package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganadoboy/ganadoboy-api/internal/application/ubicacion"
)

// UbicacionHandler catálogo público de departamentos y municipios.
type UbicacionHandler struct {
	uc *ubicacion.UbicacionUseCase
}

// NewUbicacionHandler construye el handler.
func NewUbicacionHandler(uc *ubicacion.UbicacionUseCase) *UbicacionHandler {
	return &UbicacionHandler{uc: uc}
}

// Departamentos godoc
// @Summary Listar departamentos
// @Tags Ubicaciones
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.DepartamentoResponse}
// @Router /api/ubicaciones/departamentos [get]
func (h *UbicacionHandler) Departamentos(c *fiber.Ctx) error {
	out, err := h.uc.ListDepartamentos(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}

// Municipios godoc
// @Summary Municipios de un departamento
// @Tags Ubicaciones
// @Produce json
// @Param codigo path string true "Código DANE del departamento"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.MunicipioResponse}
// @Router /api/ubicaciones/departamentos/{codigo}/municipios [get]
func (h *UbicacionHandler) Municipios(c *fiber.Ctx) error {
	out, err := h.uc.ListMunicipios(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}
