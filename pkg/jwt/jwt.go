package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Fallos tipados de verificación.
var (
	ErrExpired = errors.New("jwt: token expirado")
	ErrInvalid = errors.New("jwt: token inválido")
)

// Payload datos del usuario que viajan en ambos tokens.
type Payload struct {
	UserID int64
	Email  string
	Nombre string
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

// Config secretos y duraciones. Access y refresh deben usar secretos distintos.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// Issuer emite y verifica los tokens de acceso y de refresco.
type Issuer struct {
	cfg Config
	now func() time.Time
}

// NewIssuer valida la configuración y crea el emisor.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &Issuer{cfg: cfg, now: time.Now}, nil
}

// IssueAccess genera el token de acceso (corta duración).
func (i *Issuer) IssueAccess(p Payload) (string, error) {
	return i.sign(p, i.cfg.AccessSecret, i.cfg.AccessTTL)
}

// IssueRefresh genera el token de refresco (larga duración).
func (i *Issuer) IssueRefresh(p Payload) (string, error) {
	return i.sign(p, i.cfg.RefreshSecret, i.cfg.RefreshTTL)
}

// VerifyAccess valida firma y expiración; retorna ErrExpired o ErrInvalid.
func (i *Issuer) VerifyAccess(token string) (Payload, error) {
	return i.verify(token, i.cfg.AccessSecret)
}

// VerifyRefresh valida firma y expiración; retorna ErrExpired o ErrInvalid.
func (i *Issuer) VerifyRefresh(token string) (Payload, error) {
	return i.verify(token, i.cfg.RefreshSecret)
}

// SafeVerifyAccess retorna nil si el token no es válido.
func (i *Issuer) SafeVerifyAccess(token string) *Payload {
	p, err := i.VerifyAccess(token)
	if err != nil {
		return nil
	}
	return &p
}

// SafeVerifyRefresh retorna nil si el token no es válido.
func (i *Issuer) SafeVerifyRefresh(token string) *Payload {
	p, err := i.VerifyRefresh(token)
	if err != nil {
		return nil
	}
	return &p
}

func (i *Issuer) sign(p Payload, secret string, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.cfg.Issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: p.UserID,
		Email:  p.Email,
		Nombre: p.Nombre,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (i *Issuer) verify(tokenString, secret string) (Payload, error) {
	if tokenString == "" {
		return Payload{}, ErrInvalid
	}
	opts := []jwt.ParserOption{jwt.WithTimeFunc(i.now)}
	if i.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.cfg.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpired
		}
		return Payload{}, ErrInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return Payload{}, ErrInvalid
	}
	return Payload{UserID: claims.UserID, Email: claims.Email, Nombre: claims.Nombre}, nil
}
