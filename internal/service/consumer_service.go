package service

import (
	"context"
	"encoding/json"
	"log"

	"anime-reel-be/internal/dto"
	"anime-reel-be/internal/repository/memory"
	"anime-reel-be/internal/repository/unitofwork"
	"anime-reel-be/pkg/recsys/featurestore"
	"anime-reel-be/pkg/recsys/profile"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService re-warms the in-memory taste profile cache whenever a
// feedback write commits, so the next reel request for that user scores
// against a fresh profile without touching the aggregation path.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	store        *featurestore.Store
	profileCache *memory.ProfileCache
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	store *featurestore.Store,
	profileCache *memory.ProfileCache,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		store:        store,
		profileCache: profileCache,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProfileUpdatedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Rebuilding cached profile for UserId: %d", payload.UserId)

	// Drop the stale entry first; even if the rebuild fails the cache
	// never serves the old profile.
	cs.profileCache.Delete(payload.UserId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	tasteProfile, err := uow.TasteProfileRepository().FindByUserId(ctx, payload.UserId)
	if err != nil {
		log.Printf("[ERROR] Failed to get profile for user %d: %v", payload.UserId, err)
		msg.Nack()
		return
	}
	if tasteProfile == nil {
		log.Printf("[INFO] User %d has no profile, cache stays cold", payload.UserId)
		msg.Ack()
		return
	}

	if prof := profile.Build(cs.store, tasteProfile.LikedIds); prof != nil {
		cs.profileCache.Save(payload.UserId, prof)
		log.Printf("[SUCCESS] Cached profile for UserId: %d (%d likes)", payload.UserId, prof.LikedCount)
	}

	msg.Ack()
}
