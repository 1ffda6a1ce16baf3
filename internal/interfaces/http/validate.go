package http

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
)

// ValidationError errores por campo de un cuerpo o query inválido.
type ValidationError struct {
	Details []dto.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Campo+": "+d.Mensaje)
	}
	return "validación: " + strings.Join(parts, "; ")
}

func fieldError(campo, mensaje string) *ValidationError {
	return &ValidationError{Details: []dto.FieldError{{Campo: campo, Mensaje: mensaje}}}
}

// Validator envuelve validator/v10 con las reglas propias y nombres de campo JSON.
type Validator struct {
	v *validator.Validate
}

// NewValidator registra las reglas "password" y "notblank" y el soporte de decimal.Decimal en gt/gte/required.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			n, _ := d.Float64()
			return n
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var upper, digit bool
		for _, r := range fl.Field().String() {
			upper = upper || unicode.IsUpper(r)
			digit = digit || unicode.IsDigit(r)
		}
		return upper && digit
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Struct valida s y devuelve *ValidationError con los mensajes por campo.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Details: make([]dto.FieldError, 0, len(errs))}
	for _, fe := range errs {
		out.Details = append(out.Details, dto.FieldError{Campo: fe.Field(), Mensaje: message(fe)})
	}
	return out
}

// bind parsea el cuerpo JSON en dst y lo valida.
func (v *Validator) bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return errInvalidBody
	}
	return v.Struct(dst)
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		if isString {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		return "debe ser mayor o igual a " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
		}
		return "debe ser menor o igual a " + fe.Param()
	case "len":
		return fmt.Sprintf("debe tener %s dígitos", fe.Param())
	case "numeric":
		return "debe contener solo números"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "debe ser mayor a " + fe.Param()
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "datetime":
		return "debe tener formato AAAA-MM-DD"
	case "notblank":
		return "no puede estar vacío"
	case "password":
		return "debe contener al menos una mayúscula y un número"
	default:
		return "valor inválido"
	}
}
