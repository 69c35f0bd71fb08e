package collection

import (
	"cardvault/internal/common/api"
	"cardvault/internal/config"
	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CollectionApi struct {
	CollectionController *CollectionController
	Config               *config.Config
}

func NewCollectionApi(collectionController *CollectionController, cfg *config.Config) api.Route {
	return &CollectionApi{
		CollectionController: collectionController,
		Config:               cfg,
	}
}

func (api *CollectionApi) Setup(app *fiber.App) {
	group := app.Group("/api/collections", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.CollectionController.Create)
	group.Get("/", api.CollectionController.List)
	group.Get("/:id", api.CollectionController.Get)
	group.Put("/:id", api.CollectionController.Update)
	group.Delete("/:id", api.CollectionController.Delete)
}
