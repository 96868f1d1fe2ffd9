package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"anime-reel-be/internal/constant"
	"anime-reel-be/internal/dto"
	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/repository/unitofwork"
	"anime-reel-be/pkg/events"
	pktNats "anime-reel-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackService interface {
	Apply(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IFeedbackService {
	return &feedbackService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// Apply folds one interaction into the user's taste profile. The whole
// related-title family of the anime is purged from every list first, then
// the reason decides where the anime lands. The updated profile is
// persisted in one upsert and the profile cache is re-warmed through the
// message bus.
func (s *feedbackService) Apply(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if !constant.IsValidFeedbackReason(req.Reason) {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Unknown feedback reason: %s", req.Reason))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	familyIds, err := uow.AnimeRepository().FindFamilyIds(ctx, req.AnimeId)
	if err != nil {
		return nil, err
	}

	profile, err := uow.TasteProfileRepository().FindByUserId(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = entity.NewTasteProfile(req.UserId)
	}

	applyFeedback(profile, req.Reason, familyIds)

	if err := uow.TasteProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}

	msgPayload := dto.ProfileUpdatedMessage{UserId: req.UserId}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	// Analytics event is auxiliary; a publish failure never fails the request.
	if s.eventPublisher != nil {
		evt := events.NewFeedbackReceived(req.UserId, req.AnimeId, req.Reason, familyIds)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish FEEDBACK_RECEIVED event: %v", err)
		}
	}

	return &dto.FeedbackResponse{
		Profile:     profile,
		AffectedIds: familyIds,
	}, nil
}

// applyFeedback is the profile state machine. The family is purged from
// all three lists before the reason is applied, so repeated feedback on a
// franchise converges instead of accumulating.
func applyFeedback(profile *entity.TasteProfile, reason string, familyIds []int) {
	family := make(map[int]struct{}, len(familyIds))
	for _, id := range familyIds {
		family[id] = struct{}{}
	}

	profile.LikedIds = purge(profile.LikedIds, family)
	profile.DislikedIds = purge(profile.DislikedIds, family)
	profile.ScrolledPastIds = purge(profile.ScrolledPastIds, family)

	switch reason {
	case constant.ReasonLikeButton, constant.ReasonSaveToWatchlist, constant.ReasonWatchedTenSeconds:
		profile.LikedIds = append(profile.LikedIds, familyIds...)
	case constant.ReasonSuperLikeButton:
		for i := 0; i < constant.SuperLikeWeight; i++ {
			profile.LikedIds = append(profile.LikedIds, familyIds...)
		}
	case constant.ReasonNotInterestedButton:
		profile.DislikedIds = append(profile.DislikedIds, familyIds...)
	case constant.ReasonScrolledPast:
		// Only count a scroll-past while the franchise carries no explicit
		// signal. The purge above just cleared the family, so this checks
		// the surviving lists.
		if !intersects(profile.LikedIds, family) && !intersects(profile.DislikedIds, family) {
			profile.ScrolledPastIds = append(profile.ScrolledPastIds, familyIds...)
		}
	}
}

func purge(ids []int, family map[int]struct{}) []int {
	out := ids[:0]
	for _, id := range ids {
		if _, ok := family[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

func intersects(ids []int, family map[int]struct{}) bool {
	for _, id := range ids {
		if _, ok := family[id]; ok {
			return true
		}
	}
	return false
}
