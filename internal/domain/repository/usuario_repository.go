package repository

import (
	"context"

	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para User (DIP).
// Los métodos Find* retornan (nil, nil) si no existe.
type UsuarioRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// UpdateRefreshToken guarda el único refresh token vigente; nil lo invalida.
	UpdateRefreshToken(ctx context.Context, userID int64, token *string) error
	// MatchRefreshToken true si token es el refresh token almacenado del usuario.
	MatchRefreshToken(ctx context.Context, userID int64, token string) (bool, error)
}
