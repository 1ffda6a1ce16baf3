package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	i, err := NewIssuer(Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "ganadoboy",
	})
	require.NoError(t, err)
	return i
}

func TestIssuer_RoundTrip(t *testing.T) {
	i := newTestIssuer(t)
	p := Payload{UserID: 42, Email: "ana@finca.co", Nombre: "Ana"}

	access, err := i.IssueAccess(p)
	require.NoError(t, err)
	got, err := i.VerifyAccess(access)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	refresh, err := i.IssueRefresh(p)
	require.NoError(t, err)
	got, err = i.VerifyRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestIssuer_SecretosNoIntercambiables(t *testing.T) {
	i := newTestIssuer(t)
	p := Payload{UserID: 1, Email: "a@b.co", Nombre: "A"}

	access, err := i.IssueAccess(p)
	require.NoError(t, err)
	_, err = i.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrInvalid)

	refresh, err := i.IssueRefresh(p)
	require.NoError(t, err)
	_, err = i.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestIssuer_Expirado(t *testing.T) {
	i := newTestIssuer(t)
	i.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := i.IssueAccess(Payload{UserID: 1})
	require.NoError(t, err)

	i.now = time.Now
	_, err = i.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrExpired)
	assert.Nil(t, i.SafeVerifyAccess(token))
}

func TestIssuer_Invalido(t *testing.T) {
	i := newTestIssuer(t)
	for _, token := range []string{"", "abc.def.ghi", "no-es-un-jwt"} {
		_, err := i.VerifyAccess(token)
		assert.ErrorIs(t, err, ErrInvalid, token)
		assert.Nil(t, i.SafeVerifyRefresh(token))
	}
}

func TestIssuer_TokensUnicos(t *testing.T) {
	i := newTestIssuer(t)
	p := Payload{UserID: 7, Email: "x@y.co", Nombre: "X"}

	a, err := i.IssueRefresh(p)
	require.NoError(t, err)
	b, err := i.IssueRefresh(p)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.NotNil(t, i.SafeVerifyRefresh(b))
}

func TestNewIssuer_SinSecreto(t *testing.T) {
	_, err := NewIssuer(Config{AccessSecret: "a"})
	assert.Error(t, err)
}
