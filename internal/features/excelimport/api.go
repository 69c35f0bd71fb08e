package excelimport

import (
	"cardvault/internal/common/api"
	"cardvault/internal/config"
	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ImportApi struct {
	ImportController *ImportController
	Config           *config.Config
}

func NewImportApi(importController *ImportController, cfg *config.Config) api.Route {
	return &ImportApi{
		ImportController: importController,
		Config:           cfg,
	}
}

func (api *ImportApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(api.Config.SkipAuth)

	group := app.Group("/api/import", auth)
	group.Get("/template", api.ImportController.Template)
	group.Post("/parse", api.ImportController.Parse)
	group.Post("/validate", api.ImportController.Validate)
	group.Post("/execute", api.ImportController.Execute)
}
