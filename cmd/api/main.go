package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/ganadoboy/ganadoboy-api/internal/application/auth"
	"github.com/ganadoboy/ganadoboy-api/internal/application/bovino"
	"github.com/ganadoboy/ganadoboy-api/internal/application/marketplace"
	"github.com/ganadoboy/ganadoboy-api/internal/application/ports"
	"github.com/ganadoboy/ganadoboy-api/internal/application/ubicacion"
	"github.com/ganadoboy/ganadoboy-api/internal/domain/repository"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/events"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/memory"
	infrapdf "github.com/ganadoboy/ganadoboy-api/internal/infrastructure/pdf"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/postgres"
	"github.com/ganadoboy/ganadoboy-api/internal/infrastructure/storage"
	httpRouter "github.com/ganadoboy/ganadoboy-api/internal/interfaces/http"
	"github.com/ganadoboy/ganadoboy-api/pkg/config"
	"github.com/ganadoboy/ganadoboy-api/pkg/jwt"
	"github.com/ganadoboy/ganadoboy-api/pkg/logger"

	_ "github.com/ganadoboy/ganadoboy-api/docs"
)

// repos puertos de persistencia del driver elegido.
type repos struct {
	usuarios      repository.UsuarioRepository
	bovinos       repository.BovinoRepository
	publicaciones repository.PublicacionRepository
	ubicaciones   repository.UbicacionRepository
	tx            repository.TxRunner
	close         func()
}

// @title GanadoBoy API
// @version 1.0
// @description Marketplace y registro de ganado bovino.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Str("uploads", cfg.Upload.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	r := openRepos(ctx, cfg, log)
	defer r.close()

	photos := openStorage(ctx, cfg, log)

	var publisher ports.EventPublisher = events.NewNoop(log.Named("events").Zerolog())
	if cfg.Events.RabbitMQURL != "" {
		rmq, err := events.NewRabbitMQ(cfg.Events, log.Named("events").Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		publisher = rmq
	}
	defer publisher.Close()

	issuer, err := jwt.NewIssuer(jwt.Config{
		AccessSecret:  cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.Expiration,
		RefreshTTL:    cfg.JWT.RefreshExpiration,
		Issuer:        cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	authUC := auth.NewAuthUseCase(r.usuarios, issuer)
	bovinoUC := bovino.NewBovinoUseCase(bovino.Deps{
		Bovinos:       r.bovinos,
		Publicaciones: r.publicaciones,
		Usuarios:      r.usuarios,
		Tx:            r.tx,
		Photos:        photos,
		Ficha:         infrapdf.NewFichaGenerator(),
		NewKey:        storage.NewKey,
		Log:           log,
	})
	marketplaceUC := marketplace.NewMarketplaceUseCase(r.publicaciones, r.bovinos, r.tx, publisher, log)
	ubicacionUC := ubicacion.NewUbicacionUseCase(r.ubicaciones)

	limits := httpRouter.UploadLimits{MaxFiles: cfg.Upload.MaxFiles, MaxFileBytes: cfg.Upload.MaxFileBytes()}
	app := httpRouter.NewApp(log, limits)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "GanadoBoy API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		BovinoUC:       bovinoUC,
		MarketplaceUC:  marketplaceUC,
		UbicacionUC:    ubicacionUC,
		Photos:         photos,
		Limits:         limits,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		ServiceName:    cfg.App.Name,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openRepos(ctx context.Context, cfg *config.Config, log *logger.Logger) repos {
	if cfg.DB.Driver == config.DBDriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return repos{
			usuarios:      store.Usuarios(),
			bovinos:       store.Bovinos(),
			publicaciones: store.Publicaciones(),
			ubicaciones:   store.Ubicaciones(),
			tx:            store.TxRunner(),
			close:         func() {},
		}
	}

	if cfg.DB.AutoMigrate {
		migrateUp(cfg, log)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	txRunner := postgres.NewTxRunner(pool)
	return repos{
		usuarios:      postgres.NewUsuarioRepository(pool),
		bovinos:       postgres.NewBovinoRepository(pool, txRunner),
		publicaciones: postgres.NewPublicacionRepository(pool),
		ubicaciones:   postgres.NewUbicacionRepository(pool),
		tx:            txRunner,
		close:         pool.Close,
	}
}

func migrateUp(cfg *config.Config, log *logger.Logger) {
	dbURL, err := postgres.MigrateURL(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("URL de migraciones")
	}
	m, err := postgres.NewMigrator(dbURL)
	if err != nil {
		log.Fatal().Err(err).Msg("migrador")
	}
	defer m.Close()
	changed, err := m.Up()
	if err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	v, _, _ := m.Version()
	log.Info().Bool("changed", changed).Uint("version", v).Msg("migraciones aplicadas")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) ports.PhotoStorage {
	if cfg.Upload.Driver == config.UploadDriverS3 {
		s3, err := storage.NewS3(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento S3")
		}
		return s3
	}
	local, err := storage.NewLocal(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}
	return local
}
