package pool

import (
	"anime-reel-be/pkg/recsys/featurestore"
)

// Options narrows the candidate pool before scoring.
type Options struct {
	// AllowExplicit keeps titles carrying an adult-only genre.
	AllowExplicit bool
	// Genres, when non-empty, requires every listed genre on a candidate.
	Genres []string
	// Exclude removes ids the user has already interacted with.
	Exclude map[int]struct{}
}

// Filter returns candidate ids in store row order. A candidate must have a
// promo link, must pass the explicit-content gate, must carry every
// requested genre, and must not be excluded.
func Filter(store *featurestore.Store, opts Options) []int {
	var ids []int
	for row := 0; row < store.Len(); row++ {
		meta := store.MetaByRow(row)
		if !meta.HasPromoLink() {
			continue
		}
		if !opts.AllowExplicit && meta.IsExplicit() {
			continue
		}
		if len(opts.Genres) > 0 && !hasAllGenres(meta.Genres, opts.Genres) {
			continue
		}
		if _, excluded := opts.Exclude[meta.AnimeId]; excluded {
			continue
		}
		ids = append(ids, meta.AnimeId)
	}
	return ids
}

func hasAllGenres(have []string, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, g := range have {
		set[g] = struct{}{}
	}
	for _, g := range want {
		if _, ok := set[g]; !ok {
			return false
		}
	}
	return true
}
