package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganadoboy/ganadoboy-api/internal/application/auth"
	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
)

// AuthHandler maneja registro, login y rotación de tokens.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	validate *Validator
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, v *Validator) *AuthHandler {
	return &AuthHandler{uc: uc, validate: v}
}

// Register godoc
// @Summary Registrar usuario
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Datos del usuario"
// @Success 201 {object} dto.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, out, "Usuario registrado exitosamente")
}

// Login godoc
// @Summary Iniciar sesión
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.SuccessResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "Login exitoso")
}

// Refresh godoc
// @Summary Rotar tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.SuccessResponse{data=dto.TokenPairResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := h.validate.bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Refresh(c.UserContext(), in.RefreshToken)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, out, "Token renovado")
}

// Logout godoc
// @Summary Cerrar sesión
// @Tags Auth
// @Security Bearer
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetUserID(c)); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, nil, "Sesión cerrada")
}

// Me godoc
// @Summary Usuario autenticado
// @Tags Auth
// @Security Bearer
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=dto.MeResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, dto.MeResponse{User: *u}, "")
}
