package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/ganadoboy/ganadoboy-api/internal/application/auth"
	"github.com/ganadoboy/ganadoboy-api/internal/application/bovino"
	"github.com/ganadoboy/ganadoboy-api/internal/application/marketplace"
	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
	"github.com/ganadoboy/ganadoboy-api/internal/application/ubicacion"
	"github.com/ganadoboy/ganadoboy-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	BovinoUC       *bovino.BovinoUseCase
	MarketplaceUC  *marketplace.MarketplaceUseCase
	UbicacionUC    *ubicacion.UbicacionUseCase
	Photos         ports.PhotoStorage
	Limits         UploadLimits
	AllowedOrigins string
	ServiceName    string
	Log            *logger.Logger
}

// NewApp crea la app Fiber con el ErrorHandler común y un BodyLimit que admite
// el lote máximo de fotos.
func NewApp(log *logger.Logger, limits UploadLimits) *fiber.App {
	bodyLimit := int(limits.MaxFileBytes)*limits.MaxFiles + 1024*1024
	if bodyLimit < fiber.DefaultBodyLimit {
		bodyLimit = fiber.DefaultBodyLimit
	}
	return fiber.New(fiber.Config{
		AppName:      "GanadoBoy API",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: ErrorHandler(log),
	})
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	origins := strings.TrimSpace(deps.AllowedOrigins)
	if origins == "" {
		origins = "*"
	}

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log))
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
	}))
	app.Use(compress.New())

	service := deps.ServiceName
	if service == "" {
		service = "ganadoboy-api"
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return ok(c, fiber.StatusOK, fiber.Map{"status": "ok", "service": service}, "API funcionando")
	})

	if deps.Photos != nil {
		app.Get("/uploads/*", NewUploadsHandler(deps.Photos).Serve)
	}

	validate := NewValidator()
	requireAuth := AuthMiddleware(deps.AuthUC)
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, validate)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Bovinos (protegido)
	bovinoHandler := NewBovinoHandler(deps.BovinoUC, validate, deps.Limits)
	bovinos := api.Group("/bovinos", requireAuth)
	bovinos.Get("/", bovinoHandler.List)
	bovinos.Post("/", bovinoHandler.Create)
	bovinos.Get("/:id", bovinoHandler.Get)
	bovinos.Put("/:id", bovinoHandler.Update)
	bovinos.Delete("/:id", bovinoHandler.Delete)
	bovinos.Get("/:id/fotos", bovinoHandler.ListPhotos)
	bovinos.Post("/:id/fotos", bovinoHandler.AddPhotos)
	bovinos.Post("/:id/foto", bovinoHandler.SetPrincipalPhoto)
	bovinos.Get("/:id/sanitario", bovinoHandler.GetSanitaryHistory)
	bovinos.Post("/:id/sanitario", bovinoHandler.AddSanitaryRecord)
	bovinos.Get("/:id/reproductivo", bovinoHandler.GetReproductiveHistory)
	bovinos.Post("/:id/reproductivo", bovinoHandler.AddReproductiveRecord)
	bovinos.Get("/:id/ficha", bovinoHandler.Ficha)

	// Marketplace: búsqueda y detalle públicos, el resto protegido.
	// mis-publicaciones va antes de /:id.
	mkHandler := NewMarketplaceHandler(deps.MarketplaceUC, validate)
	mk := api.Group("/marketplace")
	mk.Get("/", mkHandler.Search)
	mk.Get("/mis-publicaciones", requireAuth, mkHandler.MyListings)
	mk.Get("/:id", mkHandler.GetOne)
	mk.Post("/", requireAuth, mkHandler.Create)
	mk.Put("/:id", requireAuth, mkHandler.Update)
	mk.Patch("/:id/toggle", requireAuth, mkHandler.Toggle)
	mk.Delete("/:id", requireAuth, mkHandler.Delete)

	// Ubicaciones (público)
	if deps.UbicacionUC != nil {
		ubHandler := NewUbicacionHandler(deps.UbicacionUC)
		ub := api.Group("/ubicaciones")
		ub.Get("/departamentos", ubHandler.Departamentos)
		ub.Get("/departamentos/:codigo/municipios", ubHandler.Municipios)
	}
}
