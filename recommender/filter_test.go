package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterDropsSentinelRatings(t *testing.T) {
	ratings := []Rating{
		{UserID: 1, AnimeID: 10, Score: 7},
		{UserID: 1, AnimeID: 11, Score: SentinelUnrated},
		{UserID: 2, AnimeID: 10, Score: -1},
	}
	out, report := Filter(ratings, FilterOptions{MinRatingsItem: 1, MinRatingsUser: 1, PowerUserQuantile: 0.99})

	require.Len(t, out, 1)
	for _, r := range out {
		assert.NotEqual(t, SentinelUnrated, r.Score)
	}
	assert.Equal(t, 3, report.RowsIn)
	assert.Equal(t, 1, report.RowsAfterClean)
}

func TestFilterKeepsFirstDuplicate(t *testing.T) {
	ratings := []Rating{
		{UserID: 1, AnimeID: 10, Score: 3},
		{UserID: 1, AnimeID: 10, Score: 9},
	}
	out, _ := Filter(ratings, FilterOptions{MinRatingsItem: 1, MinRatingsUser: 1, PowerUserQuantile: 0.99})

	require.Len(t, out, 1)
	assert.Equal(t, 3.0, out[0].Score)
}

func TestFilterItemAndUserThresholds(t *testing.T) {
	// Anime 20 has a single rater and gets dropped; user 3 only rated
	// anime 20, so it falls below the activity threshold afterwards.
	ratings := []Rating{
		{UserID: 1, AnimeID: 10, Score: 5},
		{UserID: 1, AnimeID: 30, Score: 5},
		{UserID: 2, AnimeID: 10, Score: 6},
		{UserID: 2, AnimeID: 30, Score: 8},
		{UserID: 3, AnimeID: 20, Score: 7},
	}
	out, report := Filter(ratings, FilterOptions{MinRatingsItem: 2, MinRatingsUser: 2, PowerUserQuantile: 0.99})

	require.Equal(t, 4, len(out))
	assert.Equal(t, 3, report.ItemsIn)
	assert.Equal(t, 2, report.ItemsKept)
	assert.Equal(t, 2, report.UsersKept)

	perItem := map[int]int{}
	perUser := map[int]int{}
	for _, r := range out {
		perItem[r.AnimeID]++
		perUser[r.UserID]++
	}
	for _, n := range perItem {
		assert.GreaterOrEqual(t, n, 2)
	}
	for _, n := range perUser {
		assert.GreaterOrEqual(t, n, 2)
	}
}

func TestFilterPowerUserCap(t *testing.T) {
	// 100 regular users with one rating each and one power user with 60.
	// The 99th percentile of the count distribution falls well below 60,
	// so the power user is dropped.
	var ratings []Rating
	for u := 1; u <= 100; u++ {
		ratings = append(ratings, Rating{UserID: u, AnimeID: u % 5, Score: 6})
	}
	for i := 0; i < 60; i++ {
		ratings = append(ratings, Rating{UserID: 999, AnimeID: i, Score: 8})
	}
	out, report := Filter(ratings, FilterOptions{MinRatingsItem: 1, MinRatingsUser: 1, PowerUserQuantile: 0.99})

	require.NotEmpty(t, out)
	assert.Less(t, report.PowerUserCap, 60)
	for _, r := range out {
		assert.NotEqual(t, 999, r.UserID)
	}
	assert.Equal(t, 100, report.UsersKept)
}

func TestFilterEmptyInput(t *testing.T) {
	out, report := Filter(nil, DefaultFilterOptions())
	assert.Empty(t, out)
	assert.Equal(t, 0, report.RowsIn)
	assert.Equal(t, 0, report.RowsOut)
}
