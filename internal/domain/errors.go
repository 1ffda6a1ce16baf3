package domain

import "errors"

// Kind clasifica los errores de dominio para que la capa HTTP elija el status sin mirar el mensaje.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error error de dominio con tipo y mensaje visible para el usuario.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput       = newError(KindValidation, "INVALID_INPUT", "entrada inválida")
	ErrEmailAlreadyExists = newError(KindConflict, "EMAIL_EXISTS", "El email ya está registrado")
	ErrInvalidCredentials = newError(KindUnauthorized, "INVALID_CREDENTIALS", "Credenciales inválidas")
	ErrAccountInactive    = newError(KindUnauthorized, "ACCOUNT_INACTIVE", "Usuario inactivo. Contacta al administrador")
	ErrInvalidToken       = newError(KindUnauthorized, "INVALID_TOKEN", "Refresh token inválido o expirado")
	ErrTokenExpired       = newError(KindUnauthorized, "TOKEN_EXPIRED", "Token expirado")
	ErrMissingToken       = newError(KindUnauthorized, "MISSING_TOKEN", "Token no proporcionado")
	ErrInvalidAccess      = newError(KindUnauthorized, "INVALID_ACCESS_TOKEN", "Token inválido")
	ErrUserNotFound       = newError(KindNotFound, "USER_NOT_FOUND", "Usuario no encontrado")

	ErrBovinoNotFound    = newError(KindNotFound, "BOVINO_NOT_FOUND", "Bovino no encontrado o no tienes permiso")
	ErrNoFieldsToUpdate  = newError(KindValidation, "NO_FIELDS", "No hay datos para actualizar")
	ErrHasActiveListings = newError(KindConflict, "HAS_ACTIVE_LISTINGS", "No se puede eliminar el bovino porque tiene publicaciones activas")
	ErrTipoSanitario     = newError(KindValidation, "INVALID_TIPO_REGISTRO", "tipo_registro debe ser vacuna, desparasitacion, diagnostico o tratamiento")
	ErrTipoEvento        = newError(KindValidation, "INVALID_TIPO_EVENTO", "tipo_evento debe ser parto, servicio o inseminacion")
	ErrFechaInvalida     = newError(KindValidation, "INVALID_FECHA", "La fecha debe tener formato AAAA-MM-DD")
	ErrSinFotos          = newError(KindValidation, "NO_FILES", "No se recibieron archivos")

	ErrBovinoNotOwned      = newError(KindNotFound, "BOVINO_NOT_OWNED", "El bovino no existe o no te pertenece")
	ErrAlreadyListed       = newError(KindConflict, "ALREADY_LISTED", "Este bovino ya tiene una publicación activa")
	ErrPublicacionNotFound = newError(KindNotFound, "PUBLICACION_NOT_FOUND", "Publicación no encontrada o no tienes permiso")
)

// KindOf devuelve el tipo del primer *Error en la cadena; KindInternal si no hay ninguno.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
