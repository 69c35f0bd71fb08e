package reference

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type identifies one admin-curated vocabulary. Cards reference entries by
// id; spreadsheets express them by free-text name.
type Type string

const (
	TypeBrand          Type = "brands"
	TypeSeries         Type = "series"
	TypeInsert         Type = "inserts"
	TypeParallel       Type = "parallels"
	TypeTeam           Type = "teams"
	TypeAutographType  Type = "autograph-types"
	TypeCategory       Type = "categories"
	TypeGradingCompany Type = "grading-companies"
)

// AllTypes lists every vocabulary, in the order the admin UI shows them.
var AllTypes = []Type{
	TypeBrand,
	TypeSeries,
	TypeInsert,
	TypeParallel,
	TypeTeam,
	TypeAutographType,
	TypeCategory,
	TypeGradingCompany,
}

// collectionNames maps a vocabulary type to its mongo collection.
var collectionNames = map[Type]string{
	TypeBrand:          "brands",
	TypeSeries:         "series",
	TypeInsert:         "inserts",
	TypeParallel:       "parallels",
	TypeTeam:           "teams",
	TypeAutographType:  "autograph_types",
	TypeCategory:       "categories",
	TypeGradingCompany: "grading_companies",
}

// ParseType validates a URL path segment against the known vocabularies.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := collectionNames[t]; !ok {
		return "", fmt.Errorf("unknown reference type: %s", s)
	}
	return t, nil
}

type Entry struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
	// NameLower backs the case-insensitive uniqueness check and lookups.
	NameLower string    `json:"-" bson:"name_lower"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
