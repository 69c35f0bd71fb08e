package imagesearch

import (
	"cardvault/internal/common/api"
	"cardvault/internal/config"
	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ImageSearchApi struct {
	ImageSearchController *ImageSearchController
	Config                *config.Config
}

func NewImageSearchApi(imageSearchController *ImageSearchController, cfg *config.Config) api.Route {
	return &ImageSearchApi{
		ImageSearchController: imageSearchController,
		Config:                cfg,
	}
}

func (api *ImageSearchApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(api.Config.SkipAuth)

	app.Post("/api/images/search", auth, api.ImageSearchController.Search)
}
