package card

import (
	"errors"

	"cardvault/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CardController struct {
	CardService CardService
}

func NewCardController(cardService CardService) *CardController {
	return &CardController{CardService: cardService}
}

func callerID(c *fiber.Ctx) (primitive.ObjectID, error) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return primitive.NilObjectID, errors.New("unauthorized")
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}

// CardRequest carries card attributes over the wire; reference ids are hex
// strings so the client can pass dropdown selections straight through.
type CardRequest struct {
	CollectionID     string  `json:"collection_id"`
	PlayerName       string  `json:"player_name"`
	TeamID           *string `json:"team_id"`
	BrandID          *string `json:"brand_id"`
	SeriesID         *string `json:"series_id"`
	InsertID         *string `json:"insert_id"`
	ParallelID       *string `json:"parallel_id"`
	Memorabilia      string  `json:"memorabilia"`
	Season           string  `json:"season"`
	CardNumber       string  `json:"card_number"`
	Autograph        bool    `json:"autograph"`
	AutographTypeID  *string `json:"autograph_type_id"`
	Numbered         bool    `json:"numbered"`
	NumberedCurrent  *int    `json:"numbered_current"`
	NumberedOf       *int    `json:"numbered_of"`
	Graded           bool    `json:"graded"`
	GradingCompanyID *string `json:"grading_company_id"`
	GradingScore     string  `json:"grading_score"`
	FrontImageURL    string  `json:"front_image_url"`
	BackImageURL     string  `json:"back_image_url"`
	Notes            string  `json:"notes"`
}

func refID(s *string) (*primitive.ObjectID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(*s)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

func (req *CardRequest) toCard() (*Card, error) {
	collectionID, err := primitive.ObjectIDFromHex(req.CollectionID)
	if err != nil {
		return nil, errors.New("invalid collection id")
	}

	c := &Card{
		CollectionID:    collectionID,
		PlayerName:      req.PlayerName,
		Memorabilia:     req.Memorabilia,
		Season:          req.Season,
		CardNumber:      req.CardNumber,
		Autograph:       req.Autograph,
		Numbered:        req.Numbered,
		NumberedCurrent: req.NumberedCurrent,
		NumberedOf:      req.NumberedOf,
		Graded:          req.Graded,
		GradingScore:    req.GradingScore,
		FrontImageURL:   req.FrontImageURL,
		BackImageURL:    req.BackImageURL,
		Notes:           req.Notes,
	}

	refs := []struct {
		src *string
		dst **primitive.ObjectID
	}{
		{req.TeamID, &c.TeamID},
		{req.BrandID, &c.BrandID},
		{req.SeriesID, &c.SeriesID},
		{req.InsertID, &c.InsertID},
		{req.ParallelID, &c.ParallelID},
		{req.AutographTypeID, &c.AutographTypeID},
		{req.GradingCompanyID, &c.GradingCompanyID},
	}
	for _, r := range refs {
		oid, err := refID(r.src)
		if err != nil {
			return nil, errors.New("invalid reference id")
		}
		*r.dst = oid
	}

	return c, nil
}

// Create godoc
// @Summary Add a card to a collection
// @Tags cards
// @Accept json
// @Produce json
// @Param card body CardRequest true "Card"
// @Success 201 {object} Card
// @Router /api/cards [post]
func (ctrl *CardController) Create(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	crd, err := req.toCard()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctrl.CardService.CreateCard(c.UserContext(), userID, crd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(crd)
}

// Get godoc
// @Summary Get a card
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} Card
// @Router /api/cards/{id} [get]
func (ctrl *CardController) Get(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	crd, err := ctrl.CardService.GetCard(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(crd)
}

// ListByCollection godoc
// @Summary List cards in a collection
// @Tags cards
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {array} Card
// @Router /api/collections/{id}/cards [get]
func (ctrl *CardController) ListByCollection(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	cards, err := ctrl.CardService.ListByCollection(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(cards)
}

// Update godoc
// @Summary Update a card
// @Tags cards
// @Accept json
// @Param id path string true "Card ID"
// @Success 200 {object} map[string]bool
// @Router /api/cards/{id} [put]
func (ctrl *CardController) Update(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	update := bson.M{}
	if req.PlayerName != "" {
		update["player_name"] = req.PlayerName
	}
	if req.Season != "" {
		update["season"] = req.Season
	}
	if req.CardNumber != "" {
		update["card_number"] = req.CardNumber
	}
	update["memorabilia"] = req.Memorabilia
	update["autograph"] = req.Autograph
	update["numbered"] = req.Numbered
	update["numbered_current"] = req.NumberedCurrent
	update["numbered_of"] = req.NumberedOf
	update["graded"] = req.Graded
	update["grading_score"] = req.GradingScore
	update["front_image_url"] = req.FrontImageURL
	update["back_image_url"] = req.BackImageURL
	update["notes"] = req.Notes

	refs := map[string]*string{
		"team_id":            req.TeamID,
		"brand_id":           req.BrandID,
		"series_id":          req.SeriesID,
		"insert_id":          req.InsertID,
		"parallel_id":        req.ParallelID,
		"autograph_type_id":  req.AutographTypeID,
		"grading_company_id": req.GradingCompanyID,
	}
	for field, src := range refs {
		if src == nil {
			continue
		}
		oid, err := refID(src)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid reference id"})
		}
		update[field] = oid
	}

	if err := ctrl.CardService.UpdateCard(c.UserContext(), userID, c.Params("id"), update); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete godoc
// @Summary Delete a card
// @Tags cards
// @Param id path string true "Card ID"
// @Success 204 {object} nil
// @Router /api/cards/{id} [delete]
func (ctrl *CardController) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := ctrl.CardService.DeleteCard(c.UserContext(), userID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DistinctPlayers godoc
// @Summary Distinct player names across the caller's collections
// @Tags cards
// @Produce json
// @Success 200 {array} string
// @Router /api/cards/players [get]
func (ctrl *CardController) DistinctPlayers(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	players, err := ctrl.CardService.DistinctPlayers(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(players)
}

// DistinctBrands godoc
// @Summary Distinct brand names across the caller's collections
// @Tags cards
// @Produce json
// @Success 200 {array} string
// @Router /api/cards/brands [get]
func (ctrl *CardController) DistinctBrands(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	brands, err := ctrl.CardService.DistinctBrands(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(brands)
}

// DistinctSeries godoc
// @Summary Distinct series names across the caller's collections
// @Tags cards
// @Produce json
// @Success 200 {array} string
// @Router /api/cards/series [get]
func (ctrl *CardController) DistinctSeries(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	series, err := ctrl.CardService.DistinctSeries(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(series)
}

// DistinctSeasons godoc
// @Summary Distinct seasons across the caller's collections
// @Tags cards
// @Produce json
// @Success 200 {array} string
// @Router /api/cards/seasons [get]
func (ctrl *CardController) DistinctSeasons(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	seasons, err := ctrl.CardService.DistinctSeasons(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(seasons)
}
