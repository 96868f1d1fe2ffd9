package booster

import (
	"math"
	"sort"

	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/scorer"
)

// MeanVector averages the feature vectors of the given liked ids, with
// repetition acting as weight. Returns nil when no id resolves.
func MeanVector(store *featurestore.Store, likedIds []int) []float64 {
	mean := make([]float64, store.Dim())
	count := 0
	for _, id := range likedIds {
		vec, ok := store.Vector(id)
		if !ok {
			continue
		}
		for i, v := range vec {
			mean[i] += float64(v)
		}
		count++
	}
	if count == 0 {
		return nil
	}
	for i := range mean {
		mean[i] /= float64(count)
	}
	return mean
}

// Apply adds a similarity boost to each recommendation: the cosine
// similarity between the session taste vector and the candidate vector,
// scaled by factor. Candidates without a stored vector are dropped. The
// result is re-sorted descending by boosted score.
func Apply(store *featurestore.Store, tasteVector []float64, recs []scorer.Scored, factor float64) []scorer.Scored {
	if len(tasteVector) == 0 {
		return recs
	}
	boosted := make([]scorer.Scored, 0, len(recs))
	for _, rec := range recs {
		vec, ok := store.Vector(rec.AnimeId)
		if !ok {
			continue
		}
		sim := CosineSimilarity(tasteVector, vec)
		boosted = append(boosted, scorer.Scored{
			AnimeId: rec.AnimeId,
			Score:   rec.Score + sim*factor,
		})
	}
	sort.SliceStable(boosted, func(a, b int) bool {
		return boosted[a].Score > boosted[b].Score
	})
	return boosted
}

// CosineSimilarity returns the cosine of the angle between the two
// vectors, or 0 when either has zero magnitude.
func CosineSimilarity(a []float64, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		bv := float64(b[i])
		dot += a[i] * bv
		normA += a[i] * a[i]
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
