package service

import (
	"context"
	"strings"

	"anime-reel-be/internal/constant"
	"anime-reel-be/internal/repository/specification"
	"anime-reel-be/internal/repository/unitofwork"
	"anime-reel-be/pkg/recsys/featurestore"
)

const (
	// minSearchQueryLen keeps one-keystroke autocomplete queries from
	// hitting the database.
	minSearchQueryLen = 2
	// searchFetchLimit rows are fetched, then deduped by display title and
	// capped to searchResultLimit.
	searchFetchLimit  = 10
	searchResultLimit = 5
)

type ICatalogService interface {
	SearchAnime(ctx context.Context, query string) ([]string, error)
	SearchGenres(ctx context.Context, query string) ([]string, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	store      *featurestore.Store
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, store *featurestore.Store) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		store:      store,
	}
}

// SearchAnime runs a case-insensitive substring search over both title
// columns and returns deduped display titles, english preferred.
func (s *catalogService) SearchAnime(ctx context.Context, query string) ([]string, error) {
	if len(query) < minSearchQueryLen {
		return []string{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	animes, err := uow.AnimeRepository().FindAll(ctx,
		specification.TitleLike{Pattern: "%" + query + "%"},
		specification.OrderBy{Field: "title"},
		specification.Pagination{Limit: searchFetchLimit},
	)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(animes))
	titles := []string{}
	for _, anime := range animes {
		title := anime.DisplayTitle()
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
		if len(titles) >= searchResultLimit {
			break
		}
	}
	return titles, nil
}

// SearchGenres filters the store's distinct genre list. Explicit genres
// never surface in the picker, and an empty query returns nothing.
func (s *catalogService) SearchGenres(ctx context.Context, query string) ([]string, error) {
	needle := strings.ToLower(query)
	genres := []string{}
	if needle == "" {
		return genres, nil
	}
	for _, genre := range s.store.Genres() {
		if _, explicit := constant.ExplicitGenres[genre]; explicit {
			continue
		}
		if !strings.Contains(strings.ToLower(genre), needle) {
			continue
		}
		genres = append(genres, genre)
		if len(genres) >= searchResultLimit {
			break
		}
	}
	return genres, nil
}
