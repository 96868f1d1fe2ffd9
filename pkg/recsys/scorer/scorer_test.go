package scorer

import (
	"testing"

	"anime-reel-be/internal/entity"
	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// stubRegressor scores each row by its first item-vector component, so
// tests can steer the ranking through the fixture vectors.
type stubRegressor struct {
	dim  int
	rows [][]float64
}

func (s *stubRegressor) Predict(features [][]float64) ([]float64, error) {
	s.rows = features
	out := make([]float64, len(features))
	for i, row := range features {
		out[i] = row[s.dim]
	}
	return out, nil
}

func (s *stubRegressor) NumFeatures() int { return 0 }

func newTestStore(t *testing.T) *featurestore.Store {
	t.Helper()
	store, err := featurestore.New([]featurestore.Item{
		{
			Anime:  entity.Anime{AnimeId: 1, Title: "A", Genres: []string{"Action", "Drama"}, Studio: strPtr("Bones")},
			Vector: []float32{0.2, 0},
		},
		{
			Anime:  entity.Anime{AnimeId: 2, Title: "B", Genres: []string{"Romance"}, Studio: strPtr("Madhouse")},
			Vector: []float32{0.9, 0},
		},
		{
			Anime:  entity.Anime{AnimeId: 3, Title: "C", Genres: []string{"Action"}},
			Vector: []float32{0.5, 0},
		},
	})
	require.NoError(t, err)
	return store
}

func testProfile() *profile.Profile {
	return &profile.Profile{
		Vector:      []float64{1, 1},
		TopGenres:   []string{"Action", "Drama"},
		StudioPrefs: map[string]float64{"Bones": 0.5},
		LikedCount:  2,
	}
}

func TestScoreSortsDescendingAndTruncates(t *testing.T) {
	store := newTestStore(t)
	model := &stubRegressor{dim: 2}
	s := New(store, model)

	scored, err := s.Score([]int{1, 2, 3}, testProfile(), 2)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, 2, scored[0].AnimeId)
	assert.Equal(t, 3, scored[1].AnimeId)
	assert.Greater(t, scored[0].Score, scored[1].Score)
}

func TestScoreSkipsUnknownCandidates(t *testing.T) {
	store := newTestStore(t)
	s := New(store, &stubRegressor{dim: 2})

	scored, err := s.Score([]int{999, 1}, testProfile(), 0)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Equal(t, 1, scored[0].AnimeId)
}

func TestScoreEmptyCandidatesReturnsEmpty(t *testing.T) {
	store := newTestStore(t)
	s := New(store, &stubRegressor{dim: 2})

	scored, err := s.Score(nil, testProfile(), 0)
	require.NoError(t, err)
	assert.Empty(t, scored)
}

func TestCombinedVectorLayout(t *testing.T) {
	store := newTestStore(t)
	model := &stubRegressor{dim: 2}
	s := New(store, model)

	_, err := s.Score([]int{1}, testProfile(), 0)
	require.NoError(t, err)
	require.Len(t, model.rows, 1)

	row := model.rows[0]
	// profile(2) + item(2) + genre_match + studio_pref
	require.Len(t, row, 6)
	assert.Equal(t, []float64{1, 1}, row[:2])
	assert.InDelta(t, 0.2, row[2], 1e-6)

	// Both top genres match out of the 5 fixed slots.
	assert.InDelta(t, 2.0/5.0, row[4], 1e-9)
	assert.InDelta(t, 0.5, row[5], 1e-9)
}

func TestGenreMatchAndStudioDefaultToZero(t *testing.T) {
	store := newTestStore(t)
	model := &stubRegressor{dim: 2}
	s := New(store, model)

	prof := testProfile()
	prof.TopGenres = nil
	_, err := s.Score([]int{3}, prof, 0)
	require.NoError(t, err)

	row := model.rows[0]
	assert.Zero(t, row[4])
	// Id 3 has no studio at all.
	assert.Zero(t, row[5])
}
