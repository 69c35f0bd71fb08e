package image

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ImageController struct {
	ImageService ImageService
}

func NewImageController(imageService ImageService) *ImageController {
	return &ImageController{ImageService: imageService}
}

type UploadRequest struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

// Upload godoc
// @Summary Upload a card image
// @Tags images
// @Accept json
// @Produce json
// @Param request body UploadRequest true "Base64 data-URL image"
// @Success 201 {object} map[string]string
// @Router /api/images/upload [post]
func (ctrl *ImageController) Upload(c *fiber.Ctx) error {
	var req UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image is required"})
	}

	url, err := ctrl.ImageService.Upload(c.UserContext(), req.Image)
	if err != nil {
		if errors.Is(err, ErrInvalidImage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
