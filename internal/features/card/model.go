package card

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card is the single canonical card shape. Reference attributes are foreign
// keys into the admin-curated vocabularies; a nil pointer is a null FK.
type Card struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	CollectionID primitive.ObjectID  `json:"collection_id" bson:"collection_id"`
	PlayerName   string              `json:"player_name" bson:"player_name"`
	TeamID       *primitive.ObjectID `json:"team_id,omitempty" bson:"team_id,omitempty"`
	BrandID      *primitive.ObjectID `json:"brand_id,omitempty" bson:"brand_id,omitempty"`
	SeriesID     *primitive.ObjectID `json:"series_id,omitempty" bson:"series_id,omitempty"`
	InsertID     *primitive.ObjectID `json:"insert_id,omitempty" bson:"insert_id,omitempty"`
	ParallelID   *primitive.ObjectID `json:"parallel_id,omitempty" bson:"parallel_id,omitempty"`
	Memorabilia  string              `json:"memorabilia,omitempty" bson:"memorabilia,omitempty"`
	Season       string              `json:"season" bson:"season"`
	CardNumber   string              `json:"card_number" bson:"card_number"`

	Autograph       bool                `json:"autograph" bson:"autograph"`
	AutographTypeID *primitive.ObjectID `json:"autograph_type_id,omitempty" bson:"autograph_type_id,omitempty"`

	Numbered        bool `json:"numbered" bson:"numbered"`
	NumberedCurrent *int `json:"numbered_current,omitempty" bson:"numbered_current,omitempty"`
	NumberedOf      *int `json:"numbered_of,omitempty" bson:"numbered_of,omitempty"`

	Graded           bool                `json:"graded" bson:"graded"`
	GradingCompanyID *primitive.ObjectID `json:"grading_company_id,omitempty" bson:"grading_company_id,omitempty"`
	GradingScore     string              `json:"grading_score,omitempty" bson:"grading_score,omitempty"`

	FrontImageURL string `json:"front_image_url,omitempty" bson:"front_image_url,omitempty"`
	BackImageURL  string `json:"back_image_url,omitempty" bson:"back_image_url,omitempty"`

	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
