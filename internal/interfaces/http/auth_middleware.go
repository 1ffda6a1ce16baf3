package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ganadoboy/ganadoboy-api/internal/domain"
	"github.com/ganadoboy/ganadoboy-api/pkg/jwt"
)

// LocalPrincipal clave en c.Locals del usuario autenticado.
const LocalPrincipal = "principal"

// Principal usuario autenticado de la petición; los handlers lo pasan explícito a los casos de uso.
type Principal struct {
	UserID int64
	Email  string
	Nombre string
}

// TokenAuthenticator valida un access token y devuelve su payload.
type TokenAuthenticator interface {
	Authenticate(accessToken string) (jwt.Payload, error)
}

// AuthMiddleware valida el Bearer Token y deja el Principal en c.Locals.
func AuthMiddleware(auth TokenAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domain.ErrMissingToken
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.ErrInvalidAccess
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return domain.ErrMissingToken
		}
		p, err := auth.Authenticate(tokenString)
		if err != nil {
			return err
		}
		c.Locals(LocalPrincipal, Principal{UserID: p.UserID, Email: p.Email, Nombre: p.Nombre})
		return c.Next()
	}
}

// GetPrincipal devuelve el usuario autenticado (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(Principal)
	return p, ok
}

// GetUserID devuelve el id del usuario autenticado o 0.
func GetUserID(c *fiber.Ctx) int64 {
	p, _ := GetPrincipal(c)
	return p.UserID
}
