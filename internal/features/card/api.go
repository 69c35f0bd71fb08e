package card

import (
	"cardvault/internal/common/api"
	"cardvault/internal/config"
	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CardApi struct {
	CardController *CardController
	Config         *config.Config
}

func NewCardApi(cardController *CardController, cfg *config.Config) api.Route {
	return &CardApi{
		CardController: cardController,
		Config:         cfg,
	}
}

func (api *CardApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(api.Config.SkipAuth)

	group := app.Group("/api/cards", auth)
	group.Post("/", api.CardController.Create)
	group.Get("/players", api.CardController.DistinctPlayers)
	group.Get("/seasons", api.CardController.DistinctSeasons)
	group.Get("/brands", api.CardController.DistinctBrands)
	group.Get("/series", api.CardController.DistinctSeries)
	group.Get("/:id", api.CardController.Get)
	group.Put("/:id", api.CardController.Update)
	group.Delete("/:id", api.CardController.Delete)

	app.Get("/api/collections/:id/cards", auth, api.CardController.ListByCollection)
}
