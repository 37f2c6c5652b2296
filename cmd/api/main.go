package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/neryad/piki-backend/docs"
	"github.com/neryad/piki-backend/internal/application/auth"
	"github.com/neryad/piki-backend/internal/application/usecase"
	infracloudinary "github.com/neryad/piki-backend/internal/infrastructure/cloudinary"
	"github.com/neryad/piki-backend/internal/infrastructure/migrations"
	infrapdf "github.com/neryad/piki-backend/internal/infrastructure/pdf"
	"github.com/neryad/piki-backend/internal/infrastructure/postgres"
	httpRouter "github.com/neryad/piki-backend/internal/interfaces/http"
	"github.com/neryad/piki-backend/pkg/config"
	"github.com/neryad/piki-backend/pkg/jwt"
	"github.com/neryad/piki-backend/pkg/logger"
)

// @title                       piki-backend API
// @version                     1.0
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración incompleta")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// precios y costos viajan como números JSON, no como strings
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := migrate(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	codec, err := jwt.NewCodec(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL())
	if err != nil {
		log.Fatal().Err(err).Msg("configurar JWT")
	}
	storage, err := infracloudinary.New(cfg.Cloudinary)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar Cloudinary")
	}

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	productMaterialRepo := postgres.NewProductMaterialRepository(pool)
	sliderRepo := postgres.NewSliderRepository(pool)

	// PDF: ficha de costos por producto
	bomGenerator := infrapdf.NewMarotoBOMGenerator(cfg.App.Name)

	metrics := httpRouter.NewMetrics("piki")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // imágenes de productos
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(
		recover.New(),
		httpRouter.RequestID(),
		httpRouter.RequestLogging(log),
		metrics.Middleware(),
		httpRouter.SecurityHeaders(),
		httpRouter.CORS(cfg.HTTP.AllowedOrigins),
	)

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "piki-backend API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            auth.NewAuthUseCase(userRepo, codec),
		UserUC:            usecase.NewUserUseCase(userRepo),
		RoleUC:            usecase.NewRoleUseCase(roleRepo),
		SupplierUC:        usecase.NewSupplierUseCase(supplierRepo),
		MaterialUC:        usecase.NewMaterialUseCase(materialRepo),
		ProductUC:         usecase.NewProductUseCase(productRepo, productMaterialRepo, storage, bomGenerator),
		ProductMaterialUC: usecase.NewProductMaterialUseCase(productMaterialRepo),
		SliderUC:          usecase.NewSliderUseCase(sliderRepo, storage),
		Codec:             codec,
		LoginLimiter:      httpRouter.NewLoginLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst),
		Metrics:           metrics,
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

func migrate(ctx context.Context, databaseURL string) error {
	r, err := migrations.Open(databaseURL)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Up(ctx)
}
