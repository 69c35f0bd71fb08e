package imagesearch

import (
	"strconv"
	"strings"
)

// SearchRequest carries the card attributes the query is built from. All
// fields are optional; the builder skips empties.
type SearchRequest struct {
	PlayerName string `json:"playerName"`
	Season     string `json:"season"`
	Brand      string `json:"brand"`
	Series     string `json:"series"`
	Insert     string `json:"insert"`
	Parallel   string `json:"parallel"`
	CardNumber string `json:"cardNumber"`
	Numbered   bool   `json:"numbered"`
	NumberedOf *int   `json:"numberedOf"`
	Autograph  bool   `json:"autograph"`
}

// BuildQuery assembles the full marketplace query. "Base" parallels are the
// default finish and only dilute results, so they are skipped.
func BuildQuery(req SearchRequest) string {
	parts := make([]string, 0, 9)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(req.Season)
	add(req.Brand)
	add(req.Series)
	add(req.PlayerName)
	add(req.Insert)
	if !strings.EqualFold(strings.TrimSpace(req.Parallel), "Base") {
		add(req.Parallel)
	}
	if n := strings.TrimSpace(req.CardNumber); n != "" {
		parts = append(parts, "#"+n)
	}
	if req.Numbered && req.NumberedOf != nil {
		parts = append(parts, "/"+strconv.Itoa(*req.NumberedOf))
	}
	if req.Autograph {
		parts = append(parts, "Auto")
	}

	return strings.Join(parts, " ")
}

// BuildSimplifiedQuery drops the narrowing attributes for the retry stage,
// keeping only the identifiers that rarely hurt recall.
func BuildSimplifiedQuery(req SearchRequest) string {
	parts := make([]string, 0, 5)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(req.Season)
	add(req.Brand)
	add(req.Series)
	add(req.PlayerName)
	if n := strings.TrimSpace(req.CardNumber); n != "" {
		parts = append(parts, "#"+n)
	}

	return strings.Join(parts, " ")
}
