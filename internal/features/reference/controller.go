package reference

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ReferenceController struct {
	ReferenceService ReferenceService
}

func NewReferenceController(referenceService ReferenceService) *ReferenceController {
	return &ReferenceController{ReferenceService: referenceService}
}

type entryRequest struct {
	Name string `json:"name"`
}

// List godoc
// @Summary List a reference vocabulary
// @Tags reference
// @Produce json
// @Param type path string true "Vocabulary type"
// @Success 200 {array} Entry
// @Router /api/reference/{type} [get]
func (ctrl *ReferenceController) List(c *fiber.Ctx) error {
	t, err := ParseType(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := ctrl.ReferenceService.ListEntries(c.UserContext(), t)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}

// Create godoc
// @Summary Add a vocabulary entry (admin)
// @Tags reference
// @Accept json
// @Produce json
// @Param type path string true "Vocabulary type"
// @Success 201 {object} Entry
// @Router /api/reference/{type} [post]
func (ctrl *ReferenceController) Create(c *fiber.Ctx) error {
	t, err := ParseType(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, err := ctrl.ReferenceService.CreateEntry(c.UserContext(), t, req.Name)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Update godoc
// @Summary Rename a vocabulary entry (admin)
// @Tags reference
// @Accept json
// @Produce json
// @Param type path string true "Vocabulary type"
// @Param id path string true "Entry ID"
// @Success 200 {object} Entry
// @Router /api/reference/{type}/{id} [put]
func (ctrl *ReferenceController) Update(c *fiber.Ctx) error {
	t, err := ParseType(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, err := ctrl.ReferenceService.UpdateEntry(c.UserContext(), t, c.Params("id"), req.Name)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(entry)
}

// Delete godoc
// @Summary Delete a vocabulary entry (admin)
// @Tags reference
// @Param type path string true "Vocabulary type"
// @Param id path string true "Entry ID"
// @Success 204 {object} nil
// @Router /api/reference/{type}/{id} [delete]
func (ctrl *ReferenceController) Delete(c *fiber.Ctx) error {
	t, err := ParseType(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctrl.ReferenceService.DeleteEntry(c.UserContext(), t, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
