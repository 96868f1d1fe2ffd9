package service

import (
	"context"
	"sort"

	"anime-reel-be/internal/dto"
	"anime-reel-be/pkg/recsys/booster"
	"anime-reel-be/pkg/recsys/featurestore"
)

type ISuggestionService interface {
	Suggest(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestResponse, error)
}

// suggestionService powers the onboarding picker: given a few stated
// favorites it returns the nearest titles by cosine similarity, so the
// user can confirm more likes before the first reel.
type suggestionService struct {
	store *featurestore.Store
	limit int
}

func NewSuggestionService(store *featurestore.Store, limit int) ISuggestionService {
	return &suggestionService{
		store: store,
		limit: limit,
	}
}

func (s *suggestionService) Suggest(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestResponse, error) {
	likedIds := s.store.ResolveTitles(req.LikedAnimes)
	mean := booster.MeanVector(s.store, likedIds)
	if mean == nil {
		return &dto.SuggestResponse{Suggestions: []string{}}, nil
	}

	liked := make(map[int]struct{}, len(likedIds))
	for _, id := range likedIds {
		liked[id] = struct{}{}
	}
	// Stated titles are excluded verbatim too, so a title that resolves to
	// a different id (or not at all) still never comes back as a suggestion.
	likedTitles := make(map[string]struct{}, len(req.LikedAnimes))
	for _, title := range req.LikedAnimes {
		likedTitles[title] = struct{}{}
	}

	type candidate struct {
		row int
		sim float64
	}
	candidates := make([]candidate, 0, s.store.Len())
	for row := 0; row < s.store.Len(); row++ {
		meta := s.store.MetaByRow(row)
		if _, ok := liked[meta.AnimeId]; ok {
			continue
		}
		if _, ok := likedTitles[meta.DisplayTitle()]; ok {
			continue
		}
		sim := booster.CosineSimilarity(mean, s.store.VectorByRow(row))
		candidates = append(candidates, candidate{row: row, sim: sim})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].sim > candidates[b].sim
	})
	if len(candidates) > s.limit {
		candidates = candidates[:s.limit]
	}

	suggestions := make([]string, len(candidates))
	for i, c := range candidates {
		suggestions[i] = s.store.MetaByRow(c.row).DisplayTitle()
	}
	return &dto.SuggestResponse{Suggestions: suggestions}, nil
}
