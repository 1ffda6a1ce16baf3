package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
	"github.com/ganadoboy/ganadoboy-api/internal/application/marketplace"
)

// MarketplaceHandler búsqueda pública y gestión de publicaciones del vendedor.
type MarketplaceHandler struct {
	uc       *marketplace.MarketplaceUseCase
	validate *Validator
}

// NewMarketplaceHandler construye el handler.
func NewMarketplaceHandler(uc *marketplace.MarketplaceUseCase, v *Validator) *MarketplaceHandler {
	return &MarketplaceHandler{uc: uc, validate: v}
}

// Search godoc
// @Summary Buscar publicaciones activas
// @Tags Marketplace
// @Produce json
// @Param raza query string false "Raza exacta"
// @Param sexo query string false "M o F"
// @Param edadMin query int false "Edad mínima"
// @Param edadMax query int false "Edad máxima"
// @Param pesoMin query number false "Peso mínimo (kg)"
// @Param pesoMax query number false "Peso máximo (kg)"
// @Param precioMin query number false "Precio mínimo"
// @Param precioMax query number false "Precio máximo"
// @Param municipio query string false "Municipio"
// @Param departamento query string false "Departamento"
// @Param vacunasAlDia query bool false "Solo vacunas al día"
// @Param busqueda query string false "Texto libre"
// @Param ordenarPor query string false "precio | fecha_creacion | relevancia"
// @Param direccion query string false "asc | desc"
// @Param pagina query int false "Página (desde 1)"
// @Param porPagina query int false "Tamaño de página"
// @Success 200 {object} dto.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/marketplace [get]
func (h *MarketplaceHandler) Search(c *fiber.Ctx) error {
	in, err := parseSearch(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Search(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}

// GetOne godoc
// @Summary Detalle de publicación
// @Tags Marketplace
// @Produce json
// @Param id path int true "ID de la publicación"
// @Success 200 {object} dto.SuccessResponse{data=dto.PublicacionResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/marketplace/{id} [get]
func (h *MarketplaceHandler) GetOne(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetOne(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}

// Create godoc
// @Summary Publicar bovino
// @Tags Marketplace
// @Security Bearer
// @Accept json
// @Produce json
// @Param body body dto.CreatePublicacionRequest true "Publicación"
// @Success 201 {object} dto.SuccessResponse{data=dto.PublicacionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/marketplace [post]
func (h *MarketplaceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePublicacionRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, out, "Publicación creada exitosamente")
}

// Update godoc
// @Summary Actualizar publicación (parcial)
// @Tags Marketplace
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path int true "ID de la publicación"
// @Param body body dto.UpdatePublicacionRequest true "Campos a modificar"
// @Success 200 {object} dto.SuccessResponse{data=dto.PublicacionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/marketplace/{id} [put]
func (h *MarketplaceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdatePublicacionRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "Publicación actualizada exitosamente")
}

// Toggle godoc
// @Summary Activar o desactivar publicación
// @Tags Marketplace
// @Security Bearer
// @Produce json
// @Param id path int true "ID de la publicación"
// @Success 200 {object} dto.SuccessResponse{data=dto.PublicacionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/marketplace/{id}/toggle [patch]
func (h *MarketplaceHandler) Toggle(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Toggle(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return err
	}
	msg := "Publicación desactivada"
	if out.Activo {
		msg = "Publicación activada"
	}
	return ok(c, fiber.StatusOK, out, msg)
}

// Delete godoc
// @Summary Eliminar publicación
// @Tags Marketplace
// @Security Bearer
// @Produce json
// @Param id path int true "ID de la publicación"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/marketplace/{id} [delete]
func (h *MarketplaceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id, GetUserID(c)); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, nil, "Publicación eliminada exitosamente")
}

// MyListings godoc
// @Summary Mis publicaciones
// @Tags Marketplace
// @Security Bearer
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.PublicacionResponse}
// @Router /api/marketplace/mis-publicaciones [get]
func (h *MarketplaceHandler) MyListings(c *fiber.Ctx) error {
	out, err := h.uc.MyListings(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "")
}

func parseSearch(c *fiber.Ctx) (dto.SearchRequest, error) {
	q := query{c: c, errs: &ValidationError{}}
	in := dto.SearchRequest{
		Raza:         q.str("raza"),
		Sexo:         q.str("sexo"),
		EdadMin:      q.integer("edadMin"),
		EdadMax:      q.integer("edadMax"),
		PesoMin:      q.number("pesoMin"),
		PesoMax:      q.number("pesoMax"),
		PrecioMin:    q.number("precioMin"),
		PrecioMax:    q.number("precioMax"),
		Municipio:    q.str("municipio"),
		Departamento: q.str("departamento"),
		VacunasAlDia: q.flag("vacunasAlDia"),
		Busqueda:     q.str("busqueda"),
		OrdenarPor:   c.Query("ordenarPor"),
		Direccion:    c.Query("direccion"),
	}
	if p := q.integer("pagina"); p != nil {
		in.Pagina = *p
	}
	if p := q.integer("porPagina"); p != nil {
		in.PorPagina = *p
	}
	if len(q.errs.Details) > 0 {
		return in, q.errs
	}
	return in, nil
}

// query lee parámetros opcionales y acumula los que no se pueden interpretar.
type query struct {
	c    *fiber.Ctx
	errs *ValidationError
}

func (q query) raw(key string) (string, bool) {
	v := strings.TrimSpace(q.c.Query(key))
	return v, v != ""
}

func (q query) fail(key, msg string) {
	q.errs.Details = append(q.errs.Details, dto.FieldError{Campo: key, Mensaje: msg})
}

func (q query) str(key string) *string {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	return &v
}

func (q query) integer(key string) *int {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(key, "debe ser un número entero")
		return nil
	}
	return &n
}

func (q query) number(key string) *decimal.Decimal {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		q.fail(key, "debe ser un número")
		return nil
	}
	return &d
}

func (q query) flag(key string) bool {
	v, ok := q.raw(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.fail(key, "debe ser true o false")
		return false
	}
	return b
}
