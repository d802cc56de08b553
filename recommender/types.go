package recommender

// Rating is one row of the raw rating dump. Score == SentinelUnrated means the
// user watched the anime but left no score; such rows never reach the math.
type Rating struct {
	UserID  int
	AnimeID int
	Score   float64
}

// Item is one row of the anime catalog. Name may be empty.
type Item struct {
	AnimeID int
	Name    string
}

// SentinelUnrated marks watched-but-not-rated rows in the rating dump.
const SentinelUnrated = -1.0

// pairKey packs a (user, anime) pair into a single map key.
func pairKey(userID, animeID int) uint64 {
	return (uint64(uint32(userID)) << 32) | uint64(uint32(animeID))
}

// itemPairKey packs an unordered anime pair; the smaller id always goes high.
func itemPairKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}
	return (uint64(uint32(a)) << 32) | uint64(uint32(b))
}

func splitItemPairKey(k uint64) (int, int) {
	return int(int32(k >> 32)), int(int32(k & 0xffffffff))
}
