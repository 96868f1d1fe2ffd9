package fallback

import (
	"sort"

	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/pool"
	"anime-reel-be/pkg/recsys/scorer"
)

// Rank serves reels when no taste signal is available: filter the pool,
// order by static popularity rank ascending, and take the top of the
// list. Titles without a rank sort last. Each result carries the title's
// mean score, or 0 when none is recorded.
func Rank(store *featurestore.Store, opts pool.Options, limit int) []scorer.Scored {
	ids := pool.Filter(store, opts)

	sort.SliceStable(ids, func(a, b int) bool {
		return rankOf(store, ids[a]) < rankOf(store, ids[b])
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	out := make([]scorer.Scored, len(ids))
	for i, id := range ids {
		meta, _ := store.Meta(id)
		score := 0.0
		if meta.MeanScore != nil {
			score = *meta.MeanScore
		}
		out[i] = scorer.Scored{AnimeId: id, Score: score}
	}
	return out
}

func rankOf(store *featurestore.Store, animeId int) int {
	meta, _ := store.Meta(animeId)
	if meta.OverallRank == nil {
		return int(^uint(0) >> 1)
	}
	return *meta.OverallRank
}
