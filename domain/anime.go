package domain

import (
	"context"

	"github.com/fionaabad/AniMatch/recommender"
)

// RatingSourceRepository reads the raw rating and catalog dumps the model is
// trained from. The source is external and read-only.
type RatingSourceRepository interface {
	LoadRatings(ctx context.Context) ([]recommender.Rating, error)
	LoadItems(ctx context.Context) ([]recommender.Item, error)
}
