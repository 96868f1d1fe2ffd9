package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"anime-reel-be/internal/config"
	"anime-reel-be/internal/dto"
	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/repository/memory"
	"anime-reel-be/internal/repository/unitofwork"
	"anime-reel-be/pkg/recsys/booster"
	"anime-reel-be/pkg/recsys/fallback"
	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/pool"
	"anime-reel-be/pkg/recsys/profile"
	"anime-reel-be/pkg/recsys/scorer"
	"anime-reel-be/pkg/recsys/trailer"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type IReelService interface {
	GenerateReel(ctx context.Context, req *dto.GenerateReelRequest) (*dto.GenerateReelResponse, error)
	Rescore(ctx context.Context, req *dto.RescoreRequest) (map[int]float64, error)
}

type reelService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            *featurestore.Store
	scorer           *scorer.Scorer
	profileCache     *memory.ProfileCache
	publisherService IPublisherService
	redisClient      *redis.Client
	cfg              config.RecsysConfig
}

func NewReelService(
	uowFactory unitofwork.RepositoryFactory,
	store *featurestore.Store,
	modelScorer *scorer.Scorer,
	profileCache *memory.ProfileCache,
	publisherService IPublisherService,
	redisClient *redis.Client,
	cfg config.RecsysConfig,
) IReelService {
	return &reelService{
		uowFactory:       uowFactory,
		store:            store,
		scorer:           modelScorer,
		profileCache:     profileCache,
		publisherService: publisherService,
		redisClient:      redisClient,
		cfg:              cfg,
	}
}

// GenerateReel runs the full recommendation pipeline: resolve the user,
// seed a first-time profile from the stated likes, filter the candidate
// pool, score with the learned model, boost first-session results, and
// enrich the winners with metadata and review comments. When no taste
// signal survives resolution the popularity fallback serves instead.
func (s *reelService) GenerateReel(ctx context.Context, req *dto.GenerateReelRequest) (*dto.GenerateReelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	userId, tasteProfile, err := s.resolveUser(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	sessionLikedIds := s.store.ResolveTitles(req.LikedAnime)

	// Stated likes seed the persisted profile only when the user has no
	// stored one yet. An existing profile is owned by the feedback flow; a
	// reel request never mutates it, even when the client resends likes.
	if tasteProfile == nil {
		tasteProfile = entity.NewTasteProfile(userId)
		if len(sessionLikedIds) > 0 {
			tasteProfile.LikedIds = append(tasteProfile.LikedIds, sessionLikedIds...)
			if err := uow.TasteProfileRepository().Upsert(ctx, tasteProfile); err != nil {
				return nil, err
			}
			s.publishProfileUpdated(ctx, userId)
		}
	}

	opts := pool.Options{
		AllowExplicit: req.AllowExplicit,
		Genres:        req.Genres,
		Exclude:       tasteProfile.ExclusionSet(req.SeenAnimeIds),
	}

	if len(tasteProfile.LikedIds) == 0 {
		return s.serveFallback(ctx, uow, userId, opts, dto.RecommendationTypeFallbackColdStart)
	}

	prof := s.buildProfile(userId, tasteProfile, req.IsNewUserSession())
	if prof == nil {
		// Liked history exists but nothing resolved against the store.
		return s.serveFallback(ctx, uow, userId, opts, dto.RecommendationTypeFallbackColdStart)
	}

	candidates := pool.Filter(s.store, opts)
	scored, err := s.scorer.Score(candidates, prof, s.cfg.ReelLimit)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return s.serveFallback(ctx, uow, userId, opts, dto.RecommendationTypeFallbackNoMatch)
	}

	// First-session boost uses the mean of this request's stated likes,
	// never the stored profile.
	if req.IsNewUserSession() {
		if sessionMean := booster.MeanVector(s.store, sessionLikedIds); sessionMean != nil {
			scored = booster.Apply(s.store, sessionMean, scored, s.cfg.SessionBoost)
		}
	}

	items, err := s.buildItems(ctx, uow, scored)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateReelResponse{
		UserId:             userId,
		Recommendations:    items,
		RecommendationType: dto.RecommendationTypePersonalized,
	}, nil
}

// Rescore recomputes model scores for an explicit id list against the
// user's current profile, with no pool filtering. The client uses it to
// refresh a reel already on screen after feedback, so the response is the
// bare id to score map it patches in.
func (s *reelService) Rescore(ctx context.Context, req *dto.RescoreRequest) (map[int]float64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tasteProfile, err := uow.TasteProfileRepository().FindByUserId(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	// No usable profile means no scores, not an error; the client keeps
	// the reel it already has.
	if tasteProfile == nil || len(tasteProfile.LikedIds) == 0 {
		return map[int]float64{}, nil
	}

	prof := s.buildProfile(req.UserId, tasteProfile, false)
	if prof == nil {
		return map[int]float64{}, nil
	}

	scored, err := s.scorer.Score(req.AnimeIds, prof, 0)
	if err != nil {
		return nil, err
	}

	scores := make(map[int]float64, len(scored))
	for _, sc := range scored {
		scores[sc.AnimeId] = sc.Score
	}
	return scores, nil
}

// resolveUser maps the request onto a user row and their stored profile.
// A username registers the user on first sight; an id is taken as-is. The
// returned profile is nil when no row exists for the user.
func (s *reelService) resolveUser(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.GenerateReelRequest) (int, *entity.TasteProfile, error) {
	var userId int
	switch {
	case req.UserId != nil:
		userId = *req.UserId
	case req.Username != nil:
		user, err := uow.UserRepository().FindByUsername(ctx, *req.Username)
		if err != nil {
			return 0, nil, err
		}
		if user == nil {
			user = &entity.User{Username: *req.Username, CreatedAt: time.Now()}
			if err := uow.UserRepository().Create(ctx, user); err != nil {
				return 0, nil, err
			}
		}
		userId = user.UserId
	default:
		return 0, nil, fiber.NewError(fiber.StatusBadRequest, "Either user_id or username is required")
	}

	tasteProfile, err := uow.TasteProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return 0, nil, err
	}
	return userId, tasteProfile, nil
}

// buildProfile returns the aggregated taste profile, from cache when the
// request carries no new signal.
func (s *reelService) buildProfile(userId int, tasteProfile *entity.TasteProfile, fresh bool) *profile.Profile {
	if !fresh {
		if cached, ok := s.profileCache.Get(userId); ok {
			return cached
		}
	}
	prof := profile.Build(s.store, tasteProfile.LikedIds)
	if prof != nil {
		s.profileCache.Save(userId, prof)
	}
	return prof
}

func (s *reelService) serveFallback(ctx context.Context, uow unitofwork.UnitOfWork, userId int, opts pool.Options, recommendationType string) (*dto.GenerateReelResponse, error) {
	ranked := fallback.Rank(s.store, opts, s.cfg.FallbackLimit)
	items, err := s.buildItems(ctx, uow, ranked)
	if err != nil {
		return nil, err
	}
	return &dto.GenerateReelResponse{
		UserId:             userId,
		Recommendations:    items,
		RecommendationType: recommendationType,
	}, nil
}

func (s *reelService) publishProfileUpdated(ctx context.Context, userId int) {
	msgJson, err := json.Marshal(dto.ProfileUpdatedMessage{UserId: userId})
	if err != nil {
		log.Printf("[ERROR] Failed to marshal profile update for user %d: %v", userId, err)
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		log.Printf("[WARN] Failed to publish profile update for user %d: %v", userId, err)
	}
}

// buildItems turns ranked scores into client-facing reel entries with
// metadata, trailer ids and up to two review comments per title.
func (s *reelService) buildItems(ctx context.Context, uow unitofwork.UnitOfWork, ranked []scorer.Scored) ([]dto.RecommendationItem, error) {
	ids := make([]int, len(ranked))
	for i := range ranked {
		ids[i] = ranked[i].AnimeId
	}
	commentsById, err := s.getComments(ctx, uow, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RecommendationItem, 0, len(ranked))
	for _, sc := range ranked {
		meta, ok := s.store.Meta(sc.AnimeId)
		if !ok {
			continue
		}

		item := dto.RecommendationItem{
			Id:               meta.AnimeId,
			Title:            meta.DisplayTitle(),
			TrailerId:        trailer.ExtractId(meta.PromoLink),
			Score:            meta.MeanScore,
			Rank:             meta.OverallRank,
			Genres:           strings.Join(meta.Genres, ", "),
			Comments:         commentsById[sc.AnimeId],
			InitialScore:     sc.Score,
			PositiveKeywords: meta.PositiveKeywords,
			NegativeKeywords: meta.NegativeKeywords,
			Synopsis:         meta.Synopsis,
		}
		if item.Comments == nil {
			item.Comments = []dto.Comment{}
		}
		items = append(items, item)
	}
	return items, nil
}

// getComments returns up to two review comments per anime, cached per id
// in Redis. A missing or failing Redis client degrades to direct reads.
func (s *reelService) getComments(ctx context.Context, uow unitofwork.UnitOfWork, animeIds []int) (map[int][]dto.Comment, error) {
	result := make(map[int][]dto.Comment, len(animeIds))

	missing := make([]int, 0, len(animeIds))
	if s.redisClient != nil {
		for _, id := range animeIds {
			raw, err := s.redisClient.Get(ctx, reviewCacheKey(id)).Result()
			if err != nil {
				missing = append(missing, id)
				continue
			}
			var comments []dto.Comment
			if err := json.Unmarshal([]byte(raw), &comments); err != nil {
				missing = append(missing, id)
				continue
			}
			result[id] = comments
		}
	} else {
		missing = animeIds
	}
	if len(missing) == 0 {
		return result, nil
	}

	reviews, err := uow.ReviewRepository().FindByAnimeIds(ctx, missing)
	if err != nil {
		return nil, err
	}
	fetched := make(map[int][]dto.Comment, len(missing))
	for _, id := range missing {
		fetched[id] = []dto.Comment{}
	}
	for _, review := range reviews {
		comments := fetched[review.AnimeId]
		if len(comments) >= 2 {
			continue
		}
		sentiment := "negative"
		if review.SentimentPolarity > 0.1 {
			sentiment = "positive"
		}
		fetched[review.AnimeId] = append(comments, dto.Comment{
			User: review.Username,
			Text: review.ReviewText,
			Type: sentiment,
		})
	}

	for id, comments := range fetched {
		result[id] = comments
		if s.redisClient == nil {
			continue
		}
		raw, err := json.Marshal(comments)
		if err != nil {
			continue
		}
		ttl := time.Duration(s.cfg.ReviewCacheTTL) * time.Second
		if err := s.redisClient.Set(ctx, reviewCacheKey(id), raw, ttl).Err(); err != nil {
			log.Printf("[WARN] Failed to cache reviews for anime %d: %v", id, err)
		}
	}
	return result, nil
}

func reviewCacheKey(animeId int) string {
	return fmt.Sprintf("reviews:%d", animeId)
}
