package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Henlorata/FrakHub-sub001/internal/assets"
	"github.com/Henlorata/FrakHub-sub001/internal/auth"
	"github.com/Henlorata/FrakHub-sub001/internal/config"
	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	"github.com/Henlorata/FrakHub-sub001/internal/events"
	"github.com/Henlorata/FrakHub-sub001/internal/repository"
	apperrors "github.com/Henlorata/FrakHub-sub001/pkg/util/errorutil"
)

// AdminService handles account-level operations on other members.
type AdminService struct {
	profiles      repository.ProfileRepository
	notifications repository.NotificationRepository
	credentials   repository.CredentialRepository
	assets        assets.Host
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	bcryptCost    int
	minPassword   int
}

const (
	defaultNotificationPage = 50
	maxNotificationPage     = 200
)

// AdminDependencies encapsulates collaborators for the admin service.
type AdminDependencies struct {
	Store      *repository.Store
	Assets     assets.Host
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// DeleteResult reports the outcome of a member deletion.
type DeleteResult struct {
	AvatarPublicID string
	AvatarRemoved  bool
}

// NewAdminService builds the service.
func NewAdminService(cfg config.AuthConfig, deps AdminDependencies) *AdminService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	minPassword := cfg.MinPasswordLength
	if minPassword <= 0 {
		minPassword = 6
	}
	return &AdminService{
		profiles:      deps.Store.Profiles,
		notifications: deps.Store.Notifications,
		credentials:   deps.Store.Credentials,
		assets:        deps.Assets,
		dispatcher:    deps.Dispatcher,
		logger:        logger,
		bcryptCost:    cfg.BcryptCost,
		minPassword:   minPassword,
	}
}

// ListNotifications returns the newest notifications addressed to targetID.
// limit falls back to a default page and is capped.
func (s *AdminService) ListNotifications(ctx context.Context, targetID string, limit int) ([]domain.Notification, error) {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return nil, apperrors.NewValidationError("targetId required", nil)
	}
	switch {
	case limit <= 0:
		limit = defaultNotificationPage
	case limit > maxNotificationPage:
		limit = maxNotificationPage
	}

	if _, err := s.profiles.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", map[string]any{"target_id": targetID})
		}
		return nil, apperrors.NewStorageError("load profile", err)
	}

	notifications, err := s.notifications.ListByUser(ctx, targetID, limit)
	if err != nil {
		return nil, apperrors.NewStorageError("list notifications", err)
	}
	return notifications, nil
}

// ChangePassword sets a new password for targetID.
func (s *AdminService) ChangePassword(ctx context.Context, actorID, targetID, newPassword string) error {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return apperrors.NewValidationError("targetId required", nil)
	}
	if len(newPassword) < s.minPassword {
		return apperrors.NewValidationError("password too short", map[string]any{"min_length": s.minPassword})
	}

	if _, err := s.profiles.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("profile", map[string]any{"target_id": targetID})
		}
		return apperrors.NewStorageError("load profile", err)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.credentials.SetPasswordHash(ctx, targetID, hash); err != nil {
		return apperrors.NewStorageError("store password", err)
	}

	s.logger.Info("password changed by admin", zap.String("actor_id", actorID), zap.String("target_id", targetID))
	s.publish(ctx, events.Event{
		Type:     events.EventPasswordReset,
		TargetID: targetID,
		Actor:    events.Actor{UserID: actorID},
	})
	return nil
}

// DeleteUser removes the target's profile and then its avatar image. A failed
// avatar removal is logged; the deletion still succeeds.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, targetID string) (*DeleteResult, error) {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return nil, apperrors.NewValidationError("targetId required", nil)
	}
	if targetID == actorID {
		return nil, apperrors.NewValidationError("cannot delete your own account", nil)
	}

	profile, err := s.profiles.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", map[string]any{"target_id": targetID})
		}
		return nil, apperrors.NewStorageError("load profile", err)
	}

	if err := s.profiles.Delete(ctx, targetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", map[string]any{"target_id": targetID})
		}
		return nil, apperrors.NewStorageError("delete profile", err)
	}

	result := &DeleteResult{}
	if profile.AvatarURL != nil && s.assets != nil {
		if publicID, ok := assets.ResolvePublicID(*profile.AvatarURL); ok {
			result.AvatarPublicID = publicID
			if err := s.assets.Destroy(ctx, publicID); err != nil {
				s.logger.Warn("avatar cleanup failed", zap.String("target_id", targetID), zap.String("public_id", publicID), zap.Error(err))
			} else {
				result.AvatarRemoved = true
			}
		}
	}

	s.logger.Info("user deleted", zap.String("actor_id", actorID), zap.String("target_id", targetID))
	s.publish(ctx, events.Event{
		Type:     events.EventUserDeleted,
		TargetID: targetID,
		Actor:    events.Actor{UserID: actorID},
		Payload: events.UserDeletedPayload{
			AvatarPublicID: result.AvatarPublicID,
			AvatarRemoved:  result.AvatarRemoved,
		},
	})
	return result, nil
}

func (s *AdminService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
