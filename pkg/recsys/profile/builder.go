package profile

import (
	"sort"

	"anime-reel-be/internal/constant"
	"anime-reel-be/pkg/recsys/featurestore"
)

// Profile is a user's taste summary derived from their liked history:
// the weighted mean feature vector, the dominant genres, and the share
// of liked titles per studio.
type Profile struct {
	Vector      []float64
	TopGenres   []string
	StudioPrefs map[string]float64
	LikedCount  int
}

// Build computes a taste profile from a liked-id history. The history may
// repeat ids; repetition is weight, so a title liked three times pulls the
// mean three times as hard. Ids unknown to the store are skipped. Returns
// nil when nothing in the history resolves.
func Build(store *featurestore.Store, likedIds []int) *Profile {
	weights := make(map[int]int)
	var order []int
	for _, id := range likedIds {
		if _, ok := store.Vector(id); !ok {
			continue
		}
		if _, seen := weights[id]; !seen {
			order = append(order, id)
		}
		weights[id]++
	}
	if len(order) == 0 {
		return nil
	}

	total := 0
	for _, id := range order {
		total += weights[id]
	}

	mean := make([]float64, store.Dim())
	genreCounts := make(map[string]int)
	var genreOrder []string
	studioCounts := make(map[string]int)

	for _, id := range order {
		w := weights[id]
		vec, _ := store.Vector(id)
		for i, v := range vec {
			mean[i] += float64(w) * float64(v)
		}

		meta, _ := store.Meta(id)
		for _, g := range meta.Genres {
			if _, seen := genreCounts[g]; !seen {
				genreOrder = append(genreOrder, g)
			}
			genreCounts[g] += w
		}
		if meta.Studio != nil && *meta.Studio != "" {
			studioCounts[*meta.Studio] += w
		}
	}
	for i := range mean {
		mean[i] /= float64(total)
	}

	// Sort genres by weighted count descending; ties keep first-encounter
	// order from the liked history.
	rank := make(map[string]int, len(genreOrder))
	for i, g := range genreOrder {
		rank[g] = i
	}
	sort.SliceStable(genreOrder, func(a, b int) bool {
		ga, gb := genreOrder[a], genreOrder[b]
		if genreCounts[ga] != genreCounts[gb] {
			return genreCounts[ga] > genreCounts[gb]
		}
		return rank[ga] < rank[gb]
	})
	top := genreOrder
	if len(top) > constant.TopGenreSlots {
		top = top[:constant.TopGenreSlots]
	}

	prefs := make(map[string]float64, len(studioCounts))
	for studio, count := range studioCounts {
		prefs[studio] = float64(count) / float64(total)
	}

	return &Profile{
		Vector:      mean,
		TopGenres:   top,
		StudioPrefs: prefs,
		LikedCount:  total,
	}
}
