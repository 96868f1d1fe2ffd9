package service

import (
	"context"
	"testing"

	"anime-reel-be/internal/dto"
	"anime-reel-be/internal/entity"
	"anime-reel-be/pkg/recsys/featurestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestFixture(t *testing.T) ISuggestionService {
	t.Helper()
	store, err := featurestore.New([]featurestore.Item{
		{Anime: entity.Anime{AnimeId: 1, Title: "Alpha"}, Vector: []float32{1, 0}},
		{Anime: entity.Anime{AnimeId: 2, Title: "Beta"}, Vector: []float32{0.9, 0.1}},
		{Anime: entity.Anime{AnimeId: 3, Title: "Gamma"}, Vector: []float32{0.8, 0.2}},
		{Anime: entity.Anime{AnimeId: 4, Title: "Delta"}, Vector: []float32{0, 1}},
		{Anime: entity.Anime{AnimeId: 5, Title: "Epsilon"}, Vector: []float32{0.7, 0.3}},
	})
	require.NoError(t, err)
	return NewSuggestionService(store, 3)
}

func TestSuggestReturnsNearestTitlesExcludingLiked(t *testing.T) {
	svc := newSuggestFixture(t)

	res, err := svc.Suggest(context.Background(), &dto.SuggestRequest{
		LikedAnimes: []string{"Alpha"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Beta", "Gamma", "Epsilon"}, res.Suggestions)
	assert.NotContains(t, res.Suggestions, "Alpha")
}

func TestSuggestNeverEchoesStatedTitleBack(t *testing.T) {
	// "Mirror" resolves to the english-titled entry, but another entry
	// displays the same title; neither may come back as a suggestion.
	store, err := featurestore.New([]featurestore.Item{
		{Anime: entity.Anime{AnimeId: 1, Title: "Mirror"}, Vector: []float32{1, 0}},
		{Anime: entity.Anime{AnimeId: 2, Title: "Kagami", TitleEnglish: testPtr("Mirror")}, Vector: []float32{0.95, 0.05}},
		{Anime: entity.Anime{AnimeId: 3, Title: "Other"}, Vector: []float32{0.9, 0.1}},
		{Anime: entity.Anime{AnimeId: 4, Title: "Far"}, Vector: []float32{0, 1}},
	})
	require.NoError(t, err)
	svc := NewSuggestionService(store, 3)

	res, err := svc.Suggest(context.Background(), &dto.SuggestRequest{
		LikedAnimes: []string{"Mirror"},
	})
	require.NoError(t, err)

	assert.NotContains(t, res.Suggestions, "Mirror")
	assert.Equal(t, []string{"Other", "Far"}, res.Suggestions)
}

func TestSuggestUnknownTitlesYieldEmpty(t *testing.T) {
	svc := newSuggestFixture(t)

	res, err := svc.Suggest(context.Background(), &dto.SuggestRequest{
		LikedAnimes: []string{"Nope"},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Suggestions)

	res, err = svc.Suggest(context.Background(), &dto.SuggestRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Suggestions)
}
