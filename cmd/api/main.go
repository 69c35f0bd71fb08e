package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "cardvault/internal/common/api"
	"cardvault/internal/config"
	"cardvault/internal/database"
	"cardvault/internal/features/auth"
	"cardvault/internal/features/card"
	"cardvault/internal/features/collection"
	"cardvault/internal/features/excelimport"
	"cardvault/internal/features/image"
	"cardvault/internal/features/imagesearch"
	"cardvault/internal/features/reference"
	"cardvault/internal/features/system"
	"cardvault/internal/features/user"
	"cardvault/internal/logger"
	"cardvault/internal/middleware"
	"cardvault/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             20 * 1024 * 1024, // room for image data-URLs and workbooks
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute tags the constructor so Fx adds it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the "routes" group and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d route groups\n", len(routes))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer starts Fiber in a goroutine and shuts it down when the app
// exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// ConfigureAuth hands the JWT secret to the token helpers before any request
// is served.
func ConfigureAuth(cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)
}

// InitializeIndexes creates the unique vocabulary indexes in the background.
func InitializeIndexes(lc fx.Lifecycle, refRepo reference.ReferenceRepository, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := refRepo.EnsureIndexes(ctx); err != nil {
					logger.Error("failed to ensure reference indexes", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			user.NewUserRepository,
			collection.NewCollectionRepository,
			card.NewCardRepository,
			reference.NewReferenceRepository,

			auth.NewAuthService,
			collection.NewCollectionService,
			card.NewCardService,

			// Interface adapters to satisfy Fx
			func(r reference.ReferenceRepository) card.VocabularyReader { return r },
			reference.NewReferenceService,
			excelimport.NewImportService,
			imagesearch.NewImageSearchService,
			image.NewMinioStorage,
			image.NewImageService,
			system.NewLogPruner,

			auth.NewAuthController,
			collection.NewCollectionController,
			card.NewCardController,
			reference.NewReferenceController,
			excelimport.NewImportController,
			imagesearch.NewImageSearchController,
			image.NewImageController,

			AsRoute(auth.NewAuthApi),
			AsRoute(collection.NewCollectionApi),
			AsRoute(card.NewCardApi),
			AsRoute(reference.NewReferenceApi),
			AsRoute(excelimport.NewImportApi),
			AsRoute(imagesearch.NewImageSearchApi),
			AsRoute(image.NewImageApi),
			AsRoute(system.NewSystemApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			ConfigureAuth,
			RegisterAllRoutesWithAnnotation,
			StartServer,
			InitializeIndexes,
			system.NewRetentionService,
		),
	)

	app.Run()
}
