package imagesearch

import (
	"github.com/gofiber/fiber/v2"
)

type ImageSearchController struct {
	ImageSearchService ImageSearchService
}

func NewImageSearchController(imageSearchService ImageSearchService) *ImageSearchController {
	return &ImageSearchController{ImageSearchService: imageSearchService}
}

// Search godoc
// @Summary Search marketplace listings for card images
// @Tags images
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Card attributes"
// @Success 200 {object} SearchResult
// @Router /api/images/search [post]
func (ctrl *ImageSearchController) Search(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := ctrl.ImageSearchService.Search(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}
