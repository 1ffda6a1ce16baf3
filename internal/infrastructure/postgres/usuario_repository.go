package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, nombre, apellidos, email, password_hash, telefono, municipio, departamento, foto_perfil, activo, fecha_registro`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario y completa ID y FechaRegistro.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuarios (nombre, apellidos, email, password_hash, telefono, municipio, departamento, foto_perfil, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, fecha_registro`
	err := conn(ctx, r.q).QueryRow(ctx, query,
		u.Nombre, u.Apellidos, u.Email, u.PasswordHash, u.Telefono, u.Municipio, u.Departamento, u.FotoPerfil, u.Activo,
	).Scan(&u.ID, &u.FechaRegistro)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID.
func (r *UsuarioRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE id = $1`, id)
}

// FindByEmail obtiene un usuario por email.
func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := conn(ctx, r.q).QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Nombre, &u.Apellidos, &u.Email, &u.PasswordHash, &u.Telefono,
		&u.Municipio, &u.Departamento, &u.FotoPerfil, &u.Activo, &u.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// EmailExists true si ya hay un usuario con ese email.
func (r *UsuarioRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := conn(ctx, r.q).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return exists, nil
}

// UpdateRefreshToken reemplaza el refresh token almacenado; nil lo borra.
func (r *UsuarioRepo) UpdateRefreshToken(ctx context.Context, userID int64, token *string) error {
	_, err := conn(ctx, r.q).Exec(ctx, `UPDATE usuarios SET refresh_token = $2 WHERE id = $1`, userID, token)
	if err != nil {
		return fmt.Errorf("update refresh token: %w", err)
	}
	return nil
}

// MatchRefreshToken compara el token presentado con el almacenado.
func (r *UsuarioRepo) MatchRefreshToken(ctx context.Context, userID int64, token string) (bool, error) {
	var match bool
	err := conn(ctx, r.q).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE id = $1 AND refresh_token = $2)`, userID, token,
	).Scan(&match)
	if err != nil {
		return false, fmt.Errorf("match refresh token: %w", err)
	}
	return match, nil
}
