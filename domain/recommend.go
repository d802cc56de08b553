package domain

import (
	"context"

	"github.com/fionaabad/AniMatch/recommender"
)

const (
	// MinProfileRating and MaxProfileRating bound a profile score.
	MinProfileRating = 1
	MaxProfileRating = 10
)

// RatingProfile maps profile keys to scores in [1,10]. A key is either a
// decimal anime id or a free-text name; one profile lives for one request.
type RatingProfile map[string]float64

// Recommendation is one ranked output entry. Name is empty when the catalog
// has no entry for the id.
type Recommendation struct {
	AnimeID int     `json:"anime_id"`
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
}

// Resolution is the outcome of resolving one free-text query. Exactly one of
// AnimeID (with Name) or Candidates is populated.
type Resolution struct {
	AnimeID    int                     `json:"anime_id,omitempty"`
	Name       string                  `json:"name,omitempty"`
	Candidates []recommender.Candidate `json:"candidates,omitempty"`
}

// RecommendUsecase is the online query surface over the current model.
type RecommendUsecase interface {
	Recommend(ctx context.Context, profile RatingProfile, topN int) ([]Recommendation, error)
	ItemExists(ctx context.Context, animeID int) (bool, error)
	ResolveName(ctx context.Context, query string) (Resolution, error)
}
