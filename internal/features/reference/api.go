package reference

import (
	"cardvault/internal/common/api"
	"cardvault/internal/config"
	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReferenceApi struct {
	ReferenceController *ReferenceController
	Config              *config.Config
}

func NewReferenceApi(referenceController *ReferenceController, cfg *config.Config) api.Route {
	return &ReferenceApi{
		ReferenceController: referenceController,
		Config:              cfg,
	}
}

func (api *ReferenceApi) Setup(app *fiber.App) {
	group := app.Group("/api/reference", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/:type", api.ReferenceController.List)

	// Vocabulary curation is admin-only
	admin := group.Group("", middleware.AdminMiddleware())
	admin.Post("/:type", api.ReferenceController.Create)
	admin.Put("/:type/:id", api.ReferenceController.Update)
	admin.Delete("/:type/:id", api.ReferenceController.Delete)
}
