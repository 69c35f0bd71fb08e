package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature's Api type so main can collect them
// into one fx group and register them in a single pass.
type Route interface {
	Setup(app *fiber.App)
}
