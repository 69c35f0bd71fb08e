package system

import (
	"cardvault/internal/common/api"
	"cardvault/internal/database"

	"github.com/gofiber/fiber/v2"
)

type SystemApi struct {
	DB *database.MongodbDB
}

func NewSystemApi(mongodb *database.MongodbDB) api.Route {
	return &SystemApi{DB: mongodb}
}

func (api *SystemApi) Setup(app *fiber.App) {
	app.Get("/health", api.Health)
}

// Health godoc
// @Summary Liveness and database connectivity check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (api *SystemApi) Health(c *fiber.Ctx) error {
	if err := api.DB.DB.Client().Ping(c.UserContext(), nil); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
