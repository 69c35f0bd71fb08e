package excelimport

import (
	"encoding/json"
	"errors"
	"io"

	"cardvault/internal/features/collection"
	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportController struct {
	ImportService ImportService
}

func NewImportController(importService ImportService) *ImportController {
	return &ImportController{ImportService: importService}
}

func callerID(c *fiber.Ctx) (primitive.ObjectID, error) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return primitive.NilObjectID, errors.New("unauthorized")
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}

// fileBytes reads the uploaded spreadsheet out of the "file" multipart part.
func fileBytes(c *fiber.Ctx) ([]byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, errors.New("file is required")
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// parseMappings decodes the "mappings" form value, a JSON array of column
// mappings the client confirmed after the parse step.
func parseMappings(c *fiber.Ctx) ([]ColumnMapping, error) {
	raw := c.FormValue("mappings")
	if raw == "" {
		return nil, errors.New("mappings is required")
	}
	var mappings []ColumnMapping
	if err := json.Unmarshal([]byte(raw), &mappings); err != nil {
		return nil, errors.New("mappings must be a JSON array of column mappings")
	}
	return mappings, nil
}

// Template godoc
// @Summary Download the card import template
// @Tags import
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/import/template [get]
func (ctrl *ImportController) Template(c *fiber.Ctx) error {
	data, err := ctrl.ImportService.Template()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate template"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+TemplateFilename+`"`)
	return c.Send(data)
}

// Parse godoc
// @Summary Parse an uploaded spreadsheet and propose column mappings
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} ParseResult
// @Router /api/import/parse [post]
func (ctrl *ImportController) Parse(c *fiber.Ctx) error {
	data, err := fileBytes(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := ctrl.ImportService.Parse(data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// Validate godoc
// @Summary Validate a spreadsheet against the confirmed mappings
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Param mappings formData string true "JSON array of column mappings"
// @Success 200 {object} ValidationResult
// @Router /api/import/validate [post]
func (ctrl *ImportController) Validate(c *fiber.Ctx) error {
	data, err := fileBytes(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	mappings, err := parseMappings(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := ctrl.ImportService.Validate(c.UserContext(), data, mappings)
	if err != nil {
		if errors.Is(err, ErrEmptyWorkbook) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

// Execute godoc
// @Summary Import the spreadsheet's cards into a collection
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Param mappings formData string true "JSON array of column mappings"
// @Param collectionId formData string true "Target collection"
// @Success 200 {object} map[string]int
// @Router /api/import/execute [post]
func (ctrl *ImportController) Execute(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	collectionID := c.FormValue("collectionId")
	if collectionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "collectionId is required"})
	}

	data, err := fileBytes(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	mappings, err := parseMappings(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	count, err := ctrl.ImportService.Import(c.UserContext(), userID, collectionID, data, mappings)
	if err != nil {
		if errors.Is(err, collection.ErrNotOwner) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"importedCount": count})
}
