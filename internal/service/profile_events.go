package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Henlorata/FrakHub-sub001/internal/events"
)

// CacheInvalidator drops cached caller data for a member.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

// ProfileEventService reacts to committed profile changes.
type ProfileEventService struct {
	dispatcher events.Dispatcher
	cache      CacheInvalidator
	logger     *zap.Logger
}

// NewProfileEventService creates the service.
func NewProfileEventService(dispatcher events.Dispatcher, cache CacheInvalidator, logger *zap.Logger) *ProfileEventService {
	return &ProfileEventService{
		dispatcher: dispatcher,
		cache:      cache,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (p *ProfileEventService) RegisterHandlers() {
	if p.dispatcher == nil {
		return
	}
	p.dispatcher.Subscribe(events.EventProfileMutated, p.handleProfileMutated)
	p.dispatcher.Subscribe(events.EventUserDeleted, p.handleUserDeleted)
	p.dispatcher.Subscribe(events.EventPasswordReset, p.handlePasswordReset)
}

func (p *ProfileEventService) handleProfileMutated(ctx context.Context, event events.Event) error {
	p.logger.Info("ProfileMutated",
		zap.String("event_id", event.ID),
		zap.String("target_id", event.TargetID),
		zap.String("actor_id", event.Actor.UserID),
		zap.Any("payload", event.Payload))
	return p.invalidate(ctx, event.TargetID)
}

func (p *ProfileEventService) handleUserDeleted(ctx context.Context, event events.Event) error {
	p.logger.Info("UserDeleted",
		zap.String("event_id", event.ID),
		zap.String("target_id", event.TargetID),
		zap.String("actor_id", event.Actor.UserID),
		zap.Any("payload", event.Payload))
	return p.invalidate(ctx, event.TargetID)
}

func (p *ProfileEventService) handlePasswordReset(_ context.Context, event events.Event) error {
	p.logger.Info("PasswordReset",
		zap.String("event_id", event.ID),
		zap.String("target_id", event.TargetID),
		zap.String("actor_id", event.Actor.UserID))
	return nil
}

func (p *ProfileEventService) invalidate(ctx context.Context, userID string) error {
	if p.cache == nil {
		return nil
	}
	if err := p.cache.Invalidate(ctx, userID); err != nil {
		p.logger.Warn("caller cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
