package collection

import (
	"errors"

	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CollectionController struct {
	CollectionService CollectionService
}

func NewCollectionController(collectionService CollectionService) *CollectionController {
	return &CollectionController{CollectionService: collectionService}
}

func callerID(c *fiber.Ctx) (primitive.ObjectID, error) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return primitive.NilObjectID, errors.New("unauthorized")
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}

type upsertRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
}

// Create godoc
// @Summary Create a collection
// @Tags collections
// @Accept json
// @Produce json
// @Success 201 {object} Collection
// @Router /api/collections [post]
func (ctrl *CollectionController) Create(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req upsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	col := Collection{}
	if req.Name != nil {
		col.Name = *req.Name
	}
	if req.Description != nil {
		col.Description = *req.Description
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		oid, err := primitive.ObjectIDFromHex(*req.CategoryID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
		}
		col.CategoryID = &oid
	}

	if err := ctrl.CollectionService.CreateCollection(c.UserContext(), userID, &col); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(col)
}

// List godoc
// @Summary List the caller's collections
// @Tags collections
// @Produce json
// @Success 200 {array} Collection
// @Router /api/collections [get]
func (ctrl *CollectionController) List(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	cols, err := ctrl.CollectionService.ListCollections(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(cols)
}

// Get godoc
// @Summary Get one of the caller's collections
// @Tags collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} Collection
// @Router /api/collections/{id} [get]
func (ctrl *CollectionController) Get(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	col, err := ctrl.CollectionService.GetOwnedCollection(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(col)
}

// Update godoc
// @Summary Update a collection
// @Tags collections
// @Accept json
// @Param id path string true "Collection ID"
// @Success 200 {object} map[string]bool
// @Router /api/collections/{id} [put]
func (ctrl *CollectionController) Update(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req upsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var categoryID *primitive.ObjectID
	if req.CategoryID != nil && *req.CategoryID != "" {
		oid, err := primitive.ObjectIDFromHex(*req.CategoryID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
		}
		categoryID = &oid
	}

	if err := ctrl.CollectionService.UpdateCollection(c.UserContext(), userID, c.Params("id"), req.Name, req.Description, categoryID); err != nil {
		if errors.Is(err, ErrNotOwner) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}

// Delete godoc
// @Summary Delete a collection
// @Tags collections
// @Param id path string true "Collection ID"
// @Success 204 {object} nil
// @Router /api/collections/{id} [delete]
func (ctrl *CollectionController) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := ctrl.CollectionService.DeleteCollection(c.UserContext(), userID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
