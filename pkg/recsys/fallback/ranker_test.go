package fallback

import (
	"testing"

	"anime-reel-be/internal/entity"
	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/pool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func newTestStore(t *testing.T) *featurestore.Store {
	t.Helper()
	link := strPtr("https://youtu.be/abcdefghijk")
	store, err := featurestore.New([]featurestore.Item{
		{Anime: entity.Anime{AnimeId: 1, Title: "A", PromoLink: link, OverallRank: intPtr(30), MeanScore: floatPtr(7.1)}, Vector: []float32{1}},
		{Anime: entity.Anime{AnimeId: 2, Title: "B", PromoLink: link, OverallRank: intPtr(5), MeanScore: floatPtr(8.8)}, Vector: []float32{2}},
		{Anime: entity.Anime{AnimeId: 3, Title: "C", PromoLink: link, OverallRank: intPtr(12)}, Vector: []float32{3}},
		{Anime: entity.Anime{AnimeId: 4, Title: "D", PromoLink: link}, Vector: []float32{4}},
		{Anime: entity.Anime{AnimeId: 5, Title: "E", PromoLink: link, OverallRank: intPtr(2), Genres: []string{"Hentai"}}, Vector: []float32{5}},
	})
	require.NoError(t, err)
	return store
}

func TestRankOrdersByPopularityAscending(t *testing.T) {
	store := newTestStore(t)

	ranked := Rank(store, pool.Options{}, 15)
	require.Len(t, ranked, 4)
	assert.Equal(t, 2, ranked[0].AnimeId)
	assert.Equal(t, 3, ranked[1].AnimeId)
	assert.Equal(t, 1, ranked[2].AnimeId)
	// Missing rank sorts last.
	assert.Equal(t, 4, ranked[3].AnimeId)
}

func TestRankScoresAreMeanScoreOrZero(t *testing.T) {
	store := newTestStore(t)

	ranked := Rank(store, pool.Options{}, 15)
	assert.InDelta(t, 8.8, ranked[0].Score, 1e-9)
	assert.Zero(t, ranked[1].Score)
}

func TestRankAppliesPoolFilter(t *testing.T) {
	store := newTestStore(t)

	// The explicit title leads on rank but stays filtered until opted in.
	ranked := Rank(store, pool.Options{AllowExplicit: true}, 15)
	assert.Equal(t, 5, ranked[0].AnimeId)

	ranked = Rank(store, pool.Options{Exclude: map[int]struct{}{2: {}}}, 15)
	assert.Equal(t, 3, ranked[0].AnimeId)
}

func TestRankHonorsLimit(t *testing.T) {
	store := newTestStore(t)

	ranked := Rank(store, pool.Options{}, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].AnimeId)
	assert.Equal(t, 3, ranked[1].AnimeId)
}
