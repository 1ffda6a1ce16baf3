package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/entity"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
	"github.com/ganadoboy/ganadoboy-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// AuthUseCase casos de uso de autenticación: registro, login, refresh y logout.
// Cada usuario tiene un único refresh token vigente; emitir uno nuevo invalida el anterior.
type AuthUseCase struct {
	users  repository.UsuarioRepository
	tokens *jwt.Issuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UsuarioRepository, tokens *jwt.Issuer) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Register crea el usuario con la contraseña hasheada y emite el primer par de tokens.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(in.Email)
	exists, err := uc.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	departamento := strings.TrimSpace(in.Departamento)
	if departamento == "" {
		departamento = entity.DepartamentoDefault
	}
	user := &entity.User{
		Nombre:       strings.TrimSpace(in.Nombre),
		Apellidos:    strings.TrimSpace(in.Apellidos),
		Email:        email,
		PasswordHash: string(hash),
		Telefono:     in.Telefono,
		Municipio:    strings.TrimSpace(in.Municipio),
		Departamento: departamento,
		Activo:       true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issueSession(ctx, user)
}

// Login verifica email y contraseña antes de mirar si la cuenta está activa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Activo {
		return nil, domain.ErrAccountInactive
	}
	return uc.issueSession(ctx, user)
}

// Refresh rota el par de tokens si el refresh presentado es el almacenado para el usuario.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	payload, err := uc.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	ok, err := uc.users.MatchRefreshToken(ctx, payload.UserID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.users.FindByID(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Activo {
		return nil, domain.ErrInvalidToken
	}
	access, refresh, err := uc.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout borra el refresh token almacenado. Es idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, userID int64) error {
	return uc.users.UpdateRefreshToken(ctx, userID, nil)
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := ToUserResponse(user)
	return &out, nil
}

// Authenticate valida un access token y devuelve su payload; lo usa el middleware HTTP.
func (uc *AuthUseCase) Authenticate(accessToken string) (jwt.Payload, error) {
	p, err := uc.tokens.VerifyAccess(accessToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return jwt.Payload{}, domain.ErrTokenExpired
		}
		return jwt.Payload{}, domain.ErrInvalidAccess
	}
	return p, nil
}

func (uc *AuthUseCase) issueSession(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	access, refresh, err := uc.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:         ToUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// issuePair firma access + refresh y persiste el refresh como único vigente.
func (uc *AuthUseCase) issuePair(ctx context.Context, user *entity.User) (string, string, error) {
	p := jwt.Payload{UserID: user.ID, Email: user.Email, Nombre: user.Nombre}
	access, err := uc.tokens.IssueAccess(p)
	if err != nil {
		return "", "", err
	}
	refresh, err := uc.tokens.IssueRefresh(p)
	if err != nil {
		return "", "", err
	}
	if err := uc.users.UpdateRefreshToken(ctx, user.ID, &refresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToUserResponse mapea la entidad a su salida pública.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Apellidos:     u.Apellidos,
		Email:         u.Email,
		Telefono:      u.Telefono,
		Municipio:     u.Municipio,
		Departamento:  u.Departamento,
		FotoPerfil:    u.FotoPerfil,
		Activo:        u.Activo,
		FechaRegistro: u.FechaRegistro,
	}
}
