package service

import (
	"context"
	"fmt"

	"anime-reel-be/internal/repository/memory"
	"anime-reel-be/internal/repository/unitofwork"
	"anime-reel-be/pkg/events"
	pktNats "anime-reel-be/pkg/nats"
)

type IUserService interface {
	Delete(ctx context.Context, userId int) error
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	profileCache   *memory.ProfileCache
	eventPublisher *pktNats.Publisher
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	profileCache *memory.ProfileCache,
	eventPublisher *pktNats.Publisher,
) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		profileCache:   profileCache,
		eventPublisher: eventPublisher,
	}
}

// Delete removes the user row and their taste profile in one transaction
// and drops the cached profile. Deleting an unknown user is a no-op.
func (s *userService) Delete(ctx context.Context, userId int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TasteProfileRepository().DeleteByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().DeleteById(ctx, userId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.profileCache.Delete(userId)

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewUserDeleted(userId)); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_DELETED event: %v\n", err)
		}
	}
	return nil
}
