package featurestore

import (
	"fmt"

	"anime-reel-be/internal/entity"
)

// Item pairs a title's metadata with its offline-computed feature vector.
type Item struct {
	Anime  entity.Anime
	Vector []float32
}

// Store is the read-only, in-memory feature matrix plus metadata and title
// indexes. Loaded once at process start and never mutated, so it is safe
// for unbounded concurrent readers.
type Store struct {
	dim      int
	metas    []entity.Anime
	vectors  [][]float32
	idToRow  map[int]int
	titleIds map[string]int
	genres   []string
}

// New builds a store from loaded items. All vectors must share one
// dimension. English titles take precedence in the title index, matching
// how the client displays and submits titles.
func New(items []Item) (*Store, error) {
	s := &Store{
		idToRow:  make(map[int]int, len(items)),
		titleIds: make(map[string]int, len(items)),
	}

	seenGenres := make(map[string]struct{})
	for _, item := range items {
		if s.dim == 0 {
			s.dim = len(item.Vector)
		}
		if len(item.Vector) != s.dim {
			return nil, fmt.Errorf("feature vector for anime %d has dimension %d, want %d",
				item.Anime.AnimeId, len(item.Vector), s.dim)
		}

		row := len(s.metas)
		s.metas = append(s.metas, item.Anime)
		s.vectors = append(s.vectors, item.Vector)
		s.idToRow[item.Anime.AnimeId] = row

		for _, g := range item.Anime.Genres {
			if _, ok := seenGenres[g]; !ok {
				seenGenres[g] = struct{}{}
				s.genres = append(s.genres, g)
			}
		}
	}

	// Original titles first so that english titles win on collision.
	for row := range s.metas {
		m := &s.metas[row]
		if m.Title != "" {
			s.titleIds[m.Title] = m.AnimeId
		}
	}
	for row := range s.metas {
		m := &s.metas[row]
		if m.TitleEnglish != nil && *m.TitleEnglish != "" {
			s.titleIds[*m.TitleEnglish] = m.AnimeId
		}
	}

	return s, nil
}

// Dim is the feature vector width shared by every item.
func (s *Store) Dim() int {
	return s.dim
}

func (s *Store) Len() int {
	return len(s.metas)
}

// Vector returns the feature vector for an item, or false for ids absent
// from the store. Lookup misses are never errors.
func (s *Store) Vector(animeId int) ([]float32, bool) {
	row, ok := s.idToRow[animeId]
	if !ok {
		return nil, false
	}
	return s.vectors[row], true
}

func (s *Store) VectorByRow(row int) []float32 {
	return s.vectors[row]
}

// Meta returns item metadata, or false when the id is unknown.
func (s *Store) Meta(animeId int) (*entity.Anime, bool) {
	row, ok := s.idToRow[animeId]
	if !ok {
		return nil, false
	}
	return &s.metas[row], true
}

func (s *Store) MetaByRow(row int) *entity.Anime {
	return &s.metas[row]
}

// AllIds returns every item id in row order.
func (s *Store) AllIds() []int {
	ids := make([]int, len(s.metas))
	for i := range s.metas {
		ids[i] = s.metas[i].AnimeId
	}
	return ids
}

// TitleToId resolves an exact display title to its id.
func (s *Store) TitleToId(title string) (int, bool) {
	id, ok := s.titleIds[title]
	return id, ok
}

// ResolveTitles maps client-stated titles to ids, silently dropping titles
// the store does not know. An empty result is a defined outcome, not an
// error; callers fall back to the popularity ranker.
func (s *Store) ResolveTitles(titles []string) []int {
	ids := make([]int, 0, len(titles))
	for _, t := range titles {
		if id, ok := s.titleIds[t]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Genres returns the distinct genre names across the store, in first-seen
// order.
func (s *Store) Genres() []string {
	return s.genres
}
