package service

import (
	"context"
	"testing"

	"anime-reel-be/internal/config"
	"anime-reel-be/internal/dto"
	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/repository/contract"
	"anime-reel-be/internal/repository/memory"
	"anime-reel-be/internal/repository/specification"
	"anime-reel-be/internal/repository/unitofwork"
	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/scorer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the persistence layer.

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextId int
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.nextId++
	user.UserId = f.nextId
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) DeleteById(ctx context.Context, userId int) error {
	for name, u := range f.users {
		if u.UserId == userId {
			delete(f.users, name)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[int]*entity.TasteProfile
}

func (f *fakeProfileRepo) FindByUserId(ctx context.Context, userId int) (*entity.TasteProfile, error) {
	return f.profiles[userId], nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *entity.TasteProfile) error {
	f.profiles[profile.UserId] = profile
	return nil
}

func (f *fakeProfileRepo) DeleteByUserId(ctx context.Context, userId int) error {
	delete(f.profiles, userId)
	return nil
}

type fakeAnimeRepo struct{}

func (f *fakeAnimeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Anime, error) {
	return nil, nil
}

func (f *fakeAnimeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Anime, error) {
	return nil, nil
}

func (f *fakeAnimeRepo) FindFamilyIds(ctx context.Context, animeId int) ([]int, error) {
	return []int{animeId}, nil
}

type fakeReviewRepo struct{}

func (f *fakeReviewRepo) FindByAnimeIds(ctx context.Context, animeIds []int) ([]*entity.Review, error) {
	return nil, nil
}

type fakeUow struct {
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	animes   contract.AnimeRepository
}

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) UserRepository() contract.UserRepository {
	return f.users
}

func (f *fakeUow) TasteProfileRepository() contract.TasteProfileRepository {
	return f.profiles
}

func (f *fakeUow) AnimeRepository() contract.AnimeRepository {
	if f.animes != nil {
		return f.animes
	}
	return &fakeAnimeRepo{}
}

func (f *fakeUow) ReviewRepository() contract.ReviewRepository {
	return &fakeReviewRepo{}
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type noopPublisher struct {
	published int
}

func (p *noopPublisher) Publish(ctx context.Context, payload []byte) error {
	p.published++
	return nil
}

// meanRegressor scores each row by the mean of the item-vector block, so
// rankings follow the fixture vectors deterministically.
type meanRegressor struct {
	dim int
}

func (m *meanRegressor) Predict(features [][]float64) ([]float64, error) {
	out := make([]float64, len(features))
	for i, row := range features {
		sum := 0.0
		for _, v := range row[m.dim : 2*m.dim] {
			sum += v
		}
		out[i] = sum / float64(m.dim)
	}
	return out, nil
}

func (m *meanRegressor) NumFeatures() int { return 0 }

func testPtr[T any](v T) *T { return &v }

func newReelFixture(t *testing.T) (*featurestore.Store, *fakeUowFactory, IReelService, *noopPublisher) {
	t.Helper()
	link := testPtr("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	store, err := featurestore.New([]featurestore.Item{
		{Anime: entity.Anime{AnimeId: 10, Title: "Alpha", PromoLink: link, Genres: []string{"Action"}, OverallRank: testPtr(1), MeanScore: testPtr(8.0)}, Vector: []float32{1, 0}},
		{Anime: entity.Anime{AnimeId: 20, Title: "Beta", PromoLink: link, Genres: []string{"Drama"}, OverallRank: testPtr(2), MeanScore: testPtr(7.5)}, Vector: []float32{0, 1}},
		{Anime: entity.Anime{AnimeId: 30, Title: "Gamma", PromoLink: link, Genres: []string{"Action"}, OverallRank: testPtr(3)}, Vector: []float32{0.9, 0.1}},
		{Anime: entity.Anime{AnimeId: 40, Title: "Delta", PromoLink: link, Genres: []string{"Drama"}, OverallRank: testPtr(4)}, Vector: []float32{0.1, 0.9}},
		{Anime: entity.Anime{AnimeId: 50, Title: "Epsilon", PromoLink: link, Genres: []string{"Ecchi"}, OverallRank: testPtr(5)}, Vector: []float32{0.5, 0.5}},
	})
	require.NoError(t, err)

	factory := &fakeUowFactory{uow: &fakeUow{
		users:    &fakeUserRepo{users: map[string]*entity.User{}},
		profiles: &fakeProfileRepo{profiles: map[int]*entity.TasteProfile{}},
	}}
	publisher := &noopPublisher{}

	svc := NewReelService(
		factory,
		store,
		scorer.New(store, &meanRegressor{dim: 2}),
		memory.NewProfileCache(),
		publisher,
		nil, // no redis in tests; comment cache degrades to direct reads
		config.RecsysConfig{ReelLimit: 15, FallbackLimit: 15, SessionBoost: 5.0},
	)
	return store, factory, svc, publisher
}

func TestGenerateReelColdStartFallsBack(t *testing.T) {
	_, _, svc, _ := newReelFixture(t)

	res, err := svc.GenerateReel(context.Background(), &dto.GenerateReelRequest{
		Username: testPtr("newcomer"),
	})
	require.NoError(t, err)

	assert.Equal(t, dto.RecommendationTypeFallbackColdStart, res.RecommendationType)
	assert.LessOrEqual(t, len(res.Recommendations), 15)
	for _, item := range res.Recommendations {
		assert.NotContains(t, item.Genres, "Ecchi")
	}
	// Fallback output follows static popularity rank, and both score
	// fields carry the catalog rating there.
	require.NotEmpty(t, res.Recommendations)
	first := res.Recommendations[0]
	assert.Equal(t, 10, first.Id)
	require.NotNil(t, first.Score)
	assert.Equal(t, 8.0, *first.Score)
	assert.Equal(t, 8.0, first.InitialScore)
}

func TestGenerateReelExcludesSeenAndProfileIds(t *testing.T) {
	_, factory, svc, _ := newReelFixture(t)
	factory.uow.profiles.profiles[1] = &entity.TasteProfile{
		UserId:   1,
		LikedIds: []int{10, 20},
	}

	res, err := svc.GenerateReel(context.Background(), &dto.GenerateReelRequest{
		UserId:       testPtr(1),
		SeenAnimeIds: []int{30},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.RecommendationTypePersonalized, res.RecommendationType)
	require.NotEmpty(t, res.Recommendations)
	for _, item := range res.Recommendations {
		assert.NotContains(t, []int{10, 20, 30}, item.Id)
	}
}

func TestGenerateReelNewSessionPersistsStatedLikes(t *testing.T) {
	_, factory, svc, publisher := newReelFixture(t)

	res, err := svc.GenerateReel(context.Background(), &dto.GenerateReelRequest{
		Username:   testPtr("newcomer"),
		LikedAnime: []string{"Alpha", "Unknown Title"},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.RecommendationTypePersonalized, res.RecommendationType)

	stored := factory.uow.profiles.profiles[res.UserId]
	require.NotNil(t, stored)
	assert.Equal(t, []int{10}, stored.LikedIds)
	assert.Equal(t, 1, publisher.published)

	// The liked title itself never comes back in the reel.
	for _, item := range res.Recommendations {
		assert.NotEqual(t, 10, item.Id)
	}
}

func TestGenerateReelRequiresUserIdOrUsername(t *testing.T) {
	_, _, svc, _ := newReelFixture(t)

	_, err := svc.GenerateReel(context.Background(), &dto.GenerateReelRequest{})
	require.Error(t, err)
}

func TestGenerateReelGenreFilterNoMatchFallsBack(t *testing.T) {
	_, factory, svc, _ := newReelFixture(t)
	factory.uow.profiles.profiles[1] = &entity.TasteProfile{
		UserId:   1,
		LikedIds: []int{10},
	}

	res, err := svc.GenerateReel(context.Background(), &dto.GenerateReelRequest{
		UserId: testPtr(1),
		Genres: []string{"Horror"},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.RecommendationTypeFallbackNoMatch, res.RecommendationType)
	assert.Empty(t, res.Recommendations)
}

func TestRescoreReturnsScorePerRequestedId(t *testing.T) {
	_, factory, svc, _ := newReelFixture(t)
	factory.uow.profiles.profiles[1] = &entity.TasteProfile{
		UserId:   1,
		LikedIds: []int{10},
	}

	res, err := svc.Rescore(context.Background(), &dto.RescoreRequest{
		UserId:   1,
		AnimeIds: []int{20, 30},
	})
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Contains(t, res, 20)
	assert.Contains(t, res, 30)
}

func TestRescoreWithoutProfileReturnsNoScores(t *testing.T) {
	_, _, svc, _ := newReelFixture(t)

	res, err := svc.Rescore(context.Background(), &dto.RescoreRequest{
		UserId:   99,
		AnimeIds: []int{20},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Empty(t, res)
}

func TestReelItemScoreFieldsComeFromDistinctSources(t *testing.T) {
	_, factory, svc, _ := newReelFixture(t)
	factory.uow.profiles.profiles[1] = &entity.TasteProfile{
		UserId:   1,
		LikedIds: []int{10},
	}

	res, err := svc.GenerateReel(context.Background(), &dto.GenerateReelRequest{
		UserId: testPtr(1),
	})
	require.NoError(t, err)
	require.Equal(t, dto.RecommendationTypePersonalized, res.RecommendationType)

	byId := make(map[int]dto.RecommendationItem, len(res.Recommendations))
	for _, item := range res.Recommendations {
		byId[item.Id] = item
	}

	// Score is the static catalog rating; InitialScore is the model's.
	beta, ok := byId[20]
	require.True(t, ok)
	require.NotNil(t, beta.Score)
	assert.Equal(t, 7.5, *beta.Score)
	assert.Equal(t, 0.5, beta.InitialScore)

	// A title without a catalog rating keeps a null score but still
	// carries the model score it was ranked by.
	gamma, ok := byId[30]
	require.True(t, ok)
	assert.Nil(t, gamma.Score)
	assert.Greater(t, gamma.InitialScore, 0.0)
}

func TestGenerateReelStatedLikesDoNotMutateExistingProfile(t *testing.T) {
	_, factory, svc, publisher := newReelFixture(t)
	factory.uow.users.users["returning"] = &entity.User{UserId: 7, Username: "returning"}
	factory.uow.profiles.profiles[7] = &entity.TasteProfile{
		UserId:   7,
		LikedIds: []int{20},
	}

	res, err := svc.GenerateReel(context.Background(), &dto.GenerateReelRequest{
		Username:   testPtr("returning"),
		LikedAnime: []string{"Alpha"},
	})
	require.NoError(t, err)
	require.Equal(t, dto.RecommendationTypePersonalized, res.RecommendationType)

	assert.Equal(t, []int{20}, factory.uow.profiles.profiles[7].LikedIds)
	assert.Equal(t, 0, publisher.published)
}
