package image

import (
	"cardvault/internal/common/api"
	"cardvault/internal/config"
	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ImageApi struct {
	ImageController *ImageController
	Config          *config.Config
}

func NewImageApi(imageController *ImageController, cfg *config.Config) api.Route {
	return &ImageApi{
		ImageController: imageController,
		Config:          cfg,
	}
}

func (api *ImageApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(api.Config.SkipAuth)

	app.Post("/api/images/upload", auth, api.ImageController.Upload)
}
