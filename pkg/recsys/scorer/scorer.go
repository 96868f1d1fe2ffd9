package scorer

import (
	"fmt"
	"sort"

	"anime-reel-be/internal/constant"
	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/mlmodel"
	"anime-reel-be/pkg/recsys/profile"
)

// Scored is one candidate with its predicted engagement score.
type Scored struct {
	AnimeId int
	Score   float64
}

// Scorer ranks candidates with the trained regression model.
type Scorer struct {
	store *featurestore.Store
	model mlmodel.Regressor
}

func New(store *featurestore.Store, model mlmodel.Regressor) *Scorer {
	return &Scorer{store: store, model: model}
}

// Score predicts a score per candidate and returns the top results in
// descending order. Candidates whose id is unknown to the store are
// skipped. The sort is stable, so equal scores keep candidate order.
func (s *Scorer) Score(candidateIds []int, prof *profile.Profile, limit int) ([]Scored, error) {
	kept := make([]int, 0, len(candidateIds))
	rows := make([][]float64, 0, len(candidateIds))
	for _, id := range candidateIds {
		combined, ok := s.combine(id, prof)
		if !ok {
			continue
		}
		kept = append(kept, id)
		rows = append(rows, combined)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if s.model == nil {
		return nil, fmt.Errorf("ranking model is not loaded")
	}

	scores, err := s.model.Predict(rows)
	if err != nil {
		return nil, fmt.Errorf("predict scores: %w", err)
	}

	scored := make([]Scored, len(kept))
	for i, id := range kept {
		scored[i] = Scored{AnimeId: id, Score: scores[i]}
	}
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// combine builds the model input for one candidate: the profile vector,
// the candidate vector, the share of top profile genres the candidate
// matches, and the studio preference weight.
func (s *Scorer) combine(animeId int, prof *profile.Profile) ([]float64, bool) {
	vec, ok := s.store.Vector(animeId)
	if !ok {
		return nil, false
	}
	meta, _ := s.store.Meta(animeId)

	combined := make([]float64, 0, len(prof.Vector)+len(vec)+2)
	combined = append(combined, prof.Vector...)
	for _, v := range vec {
		combined = append(combined, float64(v))
	}

	matches := 0
	candidateGenres := make(map[string]struct{}, len(meta.Genres))
	for _, g := range meta.Genres {
		candidateGenres[g] = struct{}{}
	}
	for _, g := range prof.TopGenres {
		if _, ok := candidateGenres[g]; ok {
			matches++
		}
	}
	combined = append(combined, float64(matches)/float64(constant.TopGenreSlots))

	studioPref := 0.0
	if meta.Studio != nil {
		studioPref = prof.StudioPrefs[*meta.Studio]
	}
	combined = append(combined, studioPref)

	return combined, true
}
