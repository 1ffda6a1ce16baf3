package auth

import (
	"context"
	"testing"
	"time"

	"github.com/ganadoboy/ganadoboy-api/internal/application/dto"
	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/memory"
	"github.com/ganadoboy/ganadoboy-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) (*AuthUseCase, *memory.Store, *jwt.Issuer) {
	t.Helper()
	issuer, err := jwt.NewIssuer(jwt.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "ganadoboy-test",
	})
	require.NoError(t, err)
	store := memory.NewStore()
	return NewAuthUseCase(store.Usuarios(), issuer), store, issuer
}

func registro(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Nombre:    "Ana",
		Apellidos: "Rojas",
		Email:     email,
		Password:  "Ganado2024",
		Municipio: "Paipa",
	}
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	out, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)
	assert.Equal(t, "Boyacá", out.User.Departamento)
	assert.True(t, out.User.Activo)

	_, err = uc.Register(ctx, registro("ANA@finca.co "))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestRegister_AccessTokenDecodificaPayload(t *testing.T) {
	uc, _, issuer := newUseCase(t)
	ctx := context.Background()

	reg, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)

	p, err := issuer.VerifyAccess(reg.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, p.UserID)
	assert.Equal(t, "ana@finca.co", p.Email)
	assert.Equal(t, "Ana", p.Nombre)

	login, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@finca.co", Password: "Ganado2024"})
	require.NoError(t, err)
	p2, err := issuer.VerifyAccess(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, p, p2)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()
	_, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@finca.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@finca.co", Password: "Ganado2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, store, _ := newUseCase(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)
	store.SetActivo(reg.User.ID, false)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@finca.co", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "sin la contraseña correcta no se revela el estado")

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@finca.co", Password: "Ganado2024"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestRefresh_RotaYRechazaElAnterior(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)

	pair, err := uc.Refresh(ctx, reg.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, pair.RefreshToken)

	_, err = uc.Refresh(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = uc.Refresh(ctx, pair.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_TrasLogout(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, reg.User.ID))
	require.NoError(t, uc.Logout(ctx, reg.User.ID))

	_, err = uc.Refresh(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRefresh_TokenDeAccesoNoSirve(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)

	_, err = uc.Refresh(ctx, reg.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRefresh_UsuarioInactivo(t *testing.T) {
	uc, store, _ := newUseCase(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)
	store.SetActivo(reg.User.ID, false)

	_, err = uc.Refresh(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestMeYAuthenticate(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()
	reg, err := uc.Register(ctx, registro("ana@finca.co"))
	require.NoError(t, err)

	p, err := uc.Authenticate(reg.AccessToken)
	require.NoError(t, err)
	me, err := uc.Me(ctx, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, "ana@finca.co", me.Email)

	_, err = uc.Authenticate("no-es-un-token")
	assert.ErrorIs(t, err, domain.ErrInvalidAccess)

	_, err = uc.Me(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
