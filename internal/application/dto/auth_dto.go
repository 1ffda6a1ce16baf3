package dto

import "time"

// RegisterRequest entrada para registro de ganaderos.
type RegisterRequest struct {
	Nombre       string  `json:"nombre" validate:"required,notblank,min=2,max=100"`
	Apellidos    string  `json:"apellidos" validate:"required,notblank,min=2,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=8,password"`
	Telefono     *string `json:"telefono" validate:"omitempty,numeric,len=10"`
	Municipio    string  `json:"municipio" validate:"required,notblank,min=2,max=100"`
	Departamento string  `json:"departamento" validate:"omitempty,max=100"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest entrada para renovar el par de tokens.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserResponse salida de un usuario (sin password ni refresh token).
type UserResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellidos     string    `json:"apellidos"`
	Email         string    `json:"email"`
	Telefono      *string   `json:"telefono"`
	Municipio     string    `json:"municipio"`
	Departamento  string    `json:"departamento"`
	FotoPerfil    *string   `json:"foto_perfil"`
	Activo        bool      `json:"activo"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// AuthResponse salida de register y login.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// TokenPairResponse salida de refresh.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MeResponse salida de GET /api/auth/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}
