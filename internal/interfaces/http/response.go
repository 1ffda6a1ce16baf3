package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/pkg/logger"
)

const (
	msgOK             = "Operación exitosa"
	msgRouteNotFound  = "Ruta no encontrada"
	msgInternal       = "Error interno del servidor"
	msgValidation     = "Validation Error"
	msgBodyTooLarge   = "El archivo excede el tamaño permitido"
	codeValidation    = "VALIDATION"
	codeInternal      = "INTERNAL"
	codeRouteNotFound = "ROUTE_NOT_FOUND"
)

var errInvalidBody = &domain.Error{Kind: domain.KindValidation, Code: "INVALID_BODY", Message: "Cuerpo de la petición inválido"}

// ok responde {success: true, data, message}.
func ok(c *fiber.Ctx, status int, data any, message string) error {
	if message == "" {
		message = msgOK
	}
	return c.Status(status).JSON(dto.SuccessResponse{Success: true, Data: data, Message: message})
}

func fail(c *fiber.Ctx, status int, code, message string, details []dto.FieldError) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Error: message, Code: code, Details: details})
}

// StatusFor traduce el tipo de error de dominio a status HTTP.
func StatusFor(k domain.Kind) int {
	switch k {
	case domain.KindValidation, domain.KindConflict:
		return fiber.StatusBadRequest
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler único punto donde los errores se convierten en respuesta HTTP.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return fail(c, fiber.StatusBadRequest, codeValidation, msgValidation, ve.Details)
		}
		var de *domain.Error
		if errors.As(err, &de) {
			status := StatusFor(de.Kind)
			if status == fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("error de dominio sin clasificar")
				return fail(c, status, codeInternal, msgInternal, nil)
			}
			return fail(c, status, de.Code, de.Message, nil)
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return fail(c, fe.Code, codeRouteNotFound, msgRouteNotFound, nil)
			case fiber.StatusRequestEntityTooLarge:
				return fail(c, fe.Code, "BODY_TOO_LARGE", msgBodyTooLarge, nil)
			}
			if fe.Code < fiber.StatusInternalServerError {
				return fail(c, fe.Code, "HTTP_ERROR", fe.Message, nil)
			}
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return fail(c, fiber.StatusInternalServerError, codeInternal, msgInternal, nil)
	}
}
