package recommender

import (
	"math"

	"github.com/montanaflynn/stats"
)

// FilterOptions are the cleaning thresholds applied before the pivot.
type FilterOptions struct {
	MinRatingsItem    int     // keep animes with at least this many ratings
	MinRatingsUser    int     // keep users with at least this many ratings
	PowerUserQuantile float64 // per-user count cap, as a quantile of the post-user-filter counts
}

// DefaultFilterOptions mirrors the thresholds the model was tuned with.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		MinRatingsItem:    100,
		MinRatingsUser:    5,
		PowerUserQuantile: 0.99,
	}
}

// FilterReport carries the per-stage row/item counts for diagnostics.
type FilterReport struct {
	RowsIn           int
	RowsAfterClean   int // sentinel rows dropped, duplicates collapsed
	ItemsIn          int
	ItemsKept        int
	RowsAfterItems   int
	UsersAfterItems  int
	UsersKept        int
	PowerUserCap     int
	RowsOut          int
}

// Filter cleans and downsamples the raw rating dump. Stages run in a fixed
// order: drop sentinel scores, collapse duplicate (user, anime) pairs keeping
// the first occurrence, drop unpopular animes, drop inactive users, then cap
// power users at the 99th percentile of the remaining per-user counts. The
// percentile is recomputed on the population that survives the activity
// threshold, not on the original dump.
func Filter(ratings []Rating, opts FilterOptions) ([]Rating, FilterReport) {
	report := FilterReport{RowsIn: len(ratings)}

	cleaned := make([]Rating, 0, len(ratings))
	seen := make(map[uint64]struct{}, len(ratings))
	itemsIn := make(map[int]struct{})
	for _, r := range ratings {
		itemsIn[r.AnimeID] = struct{}{}
		if r.Score == SentinelUnrated {
			continue
		}
		k := pairKey(r.UserID, r.AnimeID)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		cleaned = append(cleaned, r)
	}
	report.RowsAfterClean = len(cleaned)
	report.ItemsIn = len(itemsIn)

	perItem := make(map[int]int)
	for _, r := range cleaned {
		perItem[r.AnimeID]++
	}
	afterItems := cleaned[:0]
	keptItems := make(map[int]struct{})
	for _, r := range cleaned {
		if perItem[r.AnimeID] >= opts.MinRatingsItem {
			afterItems = append(afterItems, r)
			keptItems[r.AnimeID] = struct{}{}
		}
	}
	report.ItemsKept = len(keptItems)
	report.RowsAfterItems = len(afterItems)

	perUser := make(map[int]int)
	for _, r := range afterItems {
		perUser[r.UserID]++
	}
	report.UsersAfterItems = len(perUser)
	afterUsers := make([]Rating, 0, len(afterItems))
	for _, r := range afterItems {
		if perUser[r.UserID] >= opts.MinRatingsUser {
			afterUsers = append(afterUsers, r)
		}
	}

	// Recount on the surviving population before computing the cap.
	perUser = make(map[int]int)
	for _, r := range afterUsers {
		perUser[r.UserID]++
	}
	maxPerUser := powerUserCap(perUser, opts.PowerUserQuantile)
	report.PowerUserCap = maxPerUser

	out := make([]Rating, 0, len(afterUsers))
	keptUsers := make(map[int]struct{})
	for _, r := range afterUsers {
		n := perUser[r.UserID]
		if n >= opts.MinRatingsUser && n <= maxPerUser {
			out = append(out, r)
			keptUsers[r.UserID] = struct{}{}
		}
	}
	report.UsersKept = len(keptUsers)
	report.RowsOut = len(out)
	return out, report
}

// powerUserCap returns the truncated quantile of the per-user counts, or an
// effectively unbounded cap when no users remain.
func powerUserCap(perUser map[int]int, quantile float64) int {
	if len(perUser) == 0 {
		return math.MaxInt32
	}
	counts := make([]float64, 0, len(perUser))
	for _, n := range perUser {
		counts = append(counts, float64(n))
	}
	p, err := stats.Percentile(counts, quantile*100)
	if err != nil {
		return math.MaxInt32
	}
	return int(p)
}
