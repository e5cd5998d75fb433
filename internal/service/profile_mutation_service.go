package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	"github.com/Henlorata/FrakHub-sub001/internal/events"
	"github.com/Henlorata/FrakHub-sub001/internal/observability"
	"github.com/Henlorata/FrakHub-sub001/internal/repository"
	apperrors "github.com/Henlorata/FrakHub-sub001/pkg/util/errorutil"
)

// Notification copy for profile transitions.
const (
	approvalTitle   = "Account approved"
	approvalMessage = "Your account has been approved. Welcome to FrakHub!"
	transferTitle   = "Division transfer"
	rankTitle       = "Rank changed"
)

// ProfileMutationService applies sparse profile updates and derives the
// notifications their transitions call for.
//
// Concurrent mutations of the same profile are not coordinated: the record
// store applies them last-write-wins.
type ProfileMutationService struct {
	profiles      repository.ProfileRepository
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	metrics       *observability.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

// MutationDependencies bundles collaborators for the mutation service.
// Store must be the privileged handle.
type MutationDependencies struct {
	Store      *repository.Store
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	Clock      func() time.Time
}

// MutationPlan is the staged outcome of comparing changes to a pre-image.
type MutationPlan struct {
	Update        domain.ProfileUpdate
	Notifications []domain.Notification
}

// MutationResult reports what a committed mutation did.
type MutationResult struct {
	ChangedColumns      []string
	Notifications       []domain.Notification
	NotificationsStored bool
}

// NewProfileMutationService constructs the service.
func NewProfileMutationService(deps MutationDependencies) *ProfileMutationService {
	clock := deps.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileMutationService{
		profiles:      deps.Store.Profiles,
		notifications: deps.Store.Notifications,
		dispatcher:    deps.Dispatcher,
		metrics:       deps.Metrics,
		logger:        logger,
		now:           clock,
	}
}

// PlanProfileMutation stages writes for every present field and notifications
// for the transitions among them. It performs no I/O.
func PlanProfileMutation(pre *domain.Profile, changes domain.ProfileChanges, now time.Time) MutationPlan {
	var plan MutationPlan
	stage := func(title, message string, kind domain.NotificationType) {
		plan.Notifications = append(plan.Notifications, domain.Notification{
			UserID:  pre.ID,
			Title:   title,
			Message: message,
			Type:    kind,
		})
	}

	if changes.SystemRole.Present {
		next := changes.SystemRole.Value
		plan.Update.Set(domain.ColumnSystemRole, next)
		if pre.SystemRole == domain.SystemRolePending && next == domain.SystemRoleUser {
			stage(approvalTitle, approvalMessage, domain.NotificationTypeSuccess)
		}
	}

	if changes.Division.Present {
		next := blankToNil(changes.Division.Value)
		plan.Update.Set(domain.ColumnDivision, next)
		if !sameOptionalString(pre.Division, next) {
			stage(transferTitle, transferMessage(next), domain.NotificationTypeInfo)
		}
	}

	if changes.FactionRank.Present {
		next := changes.FactionRank.Value
		plan.Update.Set(domain.ColumnFactionRank, next)
		if next != pre.FactionRank {
			plan.Update.Set(domain.ColumnLastPromotionDate, now)
			stage(rankTitle, fmt.Sprintf("Your rank has been changed to: %s.", next), domain.NotificationTypeInfo)
		}
	}

	if changes.DivisionRank.Present {
		plan.Update.Set(domain.ColumnDivisionRank, blankToNil(changes.DivisionRank.Value))
	}
	if changes.Qualifications.Present {
		plan.Update.Set(domain.ColumnQualifications, changes.Qualifications.Value)
	}
	if changes.IsBureauManager.Present {
		plan.Update.Set(domain.ColumnIsBureauManager, changes.IsBureauManager.Value)
	}
	if changes.IsBureauCommander.Present {
		plan.Update.Set(domain.ColumnIsBureauCommander, changes.IsBureauCommander.Value)
	}
	if changes.CommandedDivisions.Present {
		plan.Update.Set(domain.ColumnCommandedDivisions, changes.CommandedDivisions.Value)
	}

	return plan
}

// UpdateRole applies changes to the profile identified by targetID.
// The profile update is the primary effect; a failed notification insert is
// logged and does not fail the call.
func (s *ProfileMutationService) UpdateRole(ctx context.Context, actorID, targetID string, changes domain.ProfileChanges) (*MutationResult, error) {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return nil, apperrors.NewValidationError("targetId required", nil)
	}
	if changes.SystemRole.Present && !changes.SystemRole.Value.Valid() {
		return nil, apperrors.NewValidationError("unknown system_role", map[string]any{"system_role": changes.SystemRole.Value})
	}

	pre, err := s.profiles.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", map[string]any{"target_id": targetID})
		}
		return nil, apperrors.NewStorageError("load profile", err)
	}

	plan := PlanProfileMutation(pre, changes, s.now())
	result := &MutationResult{
		ChangedColumns: plan.Update.Columns(),
		Notifications:  plan.Notifications,
	}
	if plan.Update.IsEmpty() {
		s.metrics.RecordMutation("noop")
		return result, nil
	}

	if err := s.profiles.UpdateFields(ctx, targetID, plan.Update); err != nil {
		s.metrics.RecordMutation("update_failed")
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", map[string]any{"target_id": targetID})
		}
		return nil, apperrors.NewStorageError("update profile", err)
	}
	s.metrics.RecordMutation("committed")

	if len(plan.Notifications) > 0 {
		if err := s.notifications.CreateBatch(ctx, plan.Notifications); err != nil {
			s.metrics.RecordMutation("notifications_failed")
			s.logger.Warn("profile updated but notifications were not stored",
				zap.String("target_id", targetID),
				zap.Int("notifications", len(plan.Notifications)),
				zap.Error(err))
		} else {
			result.NotificationsStored = true
		}
	}

	s.logger.Info("profile mutated",
		zap.String("actor_id", actorID),
		zap.String("target_id", targetID),
		zap.Strings("columns", result.ChangedColumns),
		zap.Int("notifications", len(result.Notifications)))

	s.publish(ctx, actorID, targetID, result)
	return result, nil
}

func (s *ProfileMutationService) publish(ctx context.Context, actorID, targetID string, result *MutationResult) {
	if s.dispatcher == nil {
		return
	}
	titles := make([]string, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		titles = append(titles, n.Title)
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		Type:     events.EventProfileMutated,
		TargetID: targetID,
		Actor:    events.Actor{UserID: actorID},
		Payload: events.ProfileMutatedPayload{
			Columns:             result.ChangedColumns,
			NotificationTitles:  titles,
			NotificationsStored: result.NotificationsStored,
		},
	})
	if err != nil {
		s.logger.Warn("profile event handlers failed", zap.String("target_id", targetID), zap.Error(err))
	}
}

func transferMessage(division *string) string {
	if division == nil {
		return "You are no longer assigned to a division."
	}
	return fmt.Sprintf("You have been transferred to the %s division.", *division)
}

// blankToNil treats an empty or whitespace-only value as cleared.
func blankToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

func sameOptionalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
