package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Henlorata/FrakHub-sub001/internal/auth"
	"github.com/Henlorata/FrakHub-sub001/internal/config"
	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	"github.com/Henlorata/FrakHub-sub001/internal/repository/memrepo"
	apperrors "github.com/Henlorata/FrakHub-sub001/pkg/util/errorutil"
)

func newAdminService(db *memrepo.DB, host *fakeHost, logger *zap.Logger) *AdminService {
	return NewAdminService(config.AuthConfig{BcryptCost: 4, MinPasswordLength: 6}, AdminDependencies{
		Store:  db.Store(),
		Assets: host,
		Logger: logger,
	})
}

func TestChangePassword(t *testing.T) {
	db := memrepo.New()
	db.PutProfile(domain.Profile{ID: "u1"})
	svc := newAdminService(db, &fakeHost{}, zap.NewNop())

	if err := svc.ChangePassword(context.Background(), "exec", "u1", "s3cret!"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	hash, ok := db.PasswordHash("u1")
	if !ok {
		t.Fatalf("expected stored hash")
	}
	if err := auth.ComparePassword(hash, "s3cret!"); err != nil {
		t.Fatalf("stored hash does not match: %v", err)
	}
}

func TestChangePasswordValidation(t *testing.T) {
	db := memrepo.New()
	db.PutProfile(domain.Profile{ID: "u1"})
	svc := newAdminService(db, &fakeHost{}, zap.NewNop())

	cases := []struct {
		name     string
		target   string
		password string
		code     string
	}{
		{"missing target", "", "longenough", apperrors.CodeInvalidArgument},
		{"short password", "u1", "abc", apperrors.CodeInvalidArgument},
		{"unknown target", "ghost", "longenough", apperrors.CodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ChangePassword(context.Background(), "exec", tc.target, tc.password)
			if !apperrors.IsCode(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestDeleteUserRemovesProfileAndAvatar(t *testing.T) {
	db := memrepo.New()
	avatar := "https://res.cloudinary.com/demo/image/upload/v1712/frakhub/avatars/u1.jpg"
	db.PutProfile(domain.Profile{ID: "u1", AvatarURL: &avatar})
	host := &fakeHost{}
	svc := newAdminService(db, host, zap.NewNop())

	result, err := svc.DeleteUser(context.Background(), "admin", "u1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := db.Profile("u1"); ok {
		t.Fatalf("profile should be gone")
	}
	if !result.AvatarRemoved || result.AvatarPublicID != "frakhub/avatars/u1" {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(host.destroyed) != 1 || host.destroyed[0] != "frakhub/avatars/u1" {
		t.Fatalf("unexpected destroyed assets %v", host.destroyed)
	}
}

func TestDeleteUserAvatarFailureIsNonFatal(t *testing.T) {
	db := memrepo.New()
	avatar := "https://res.cloudinary.com/demo/image/upload/v1712/frakhub/avatars/u1.jpg"
	db.PutProfile(domain.Profile{ID: "u1", AvatarURL: &avatar})
	core, logs := observer.New(zapcore.WarnLevel)
	svc := newAdminService(db, &fakeHost{destroyErr: errors.New("rate limited")}, zap.New(core))

	result, err := svc.DeleteUser(context.Background(), "admin", "u1")
	if err != nil {
		t.Fatalf("avatar failure must not fail deletion: %v", err)
	}
	if result.AvatarRemoved {
		t.Fatalf("avatar should be reported as not removed")
	}
	if logs.FilterMessage("avatar cleanup failed").Len() != 1 {
		t.Fatalf("expected avatar cleanup warning")
	}
}

func TestDeleteUserRejections(t *testing.T) {
	db := memrepo.New()
	db.PutProfile(domain.Profile{ID: "admin"})
	svc := newAdminService(db, &fakeHost{}, zap.NewNop())

	if _, err := svc.DeleteUser(context.Background(), "admin", "admin"); !apperrors.IsCode(err, apperrors.CodeInvalidArgument) {
		t.Fatalf("self deletion should be rejected, got %v", err)
	}
	if _, err := svc.DeleteUser(context.Background(), "admin", ""); !apperrors.IsCode(err, apperrors.CodeInvalidArgument) {
		t.Fatalf("missing target should be rejected, got %v", err)
	}
	if _, err := svc.DeleteUser(context.Background(), "admin", "ghost"); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("unknown target should be not found, got %v", err)
	}
	if _, ok := db.Profile("admin"); !ok {
		t.Fatalf("caller profile must survive")
	}
}

func TestListNotifications(t *testing.T) {
	db := memrepo.New()
	db.PutProfile(domain.Profile{ID: "u1"})
	store := db.Store()
	batch := make([]domain.Notification, 0, 3)
	for _, title := range []string{"one", "two", "three"} {
		batch = append(batch, domain.Notification{UserID: "u1", Title: title, Type: domain.NotificationTypeInfo})
	}
	if err := store.Notifications.CreateBatch(context.Background(), batch); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := newAdminService(db, &fakeHost{}, zap.NewNop())

	all, err := svc.ListNotifications(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(all))
	}

	page, err := svc.ListNotifications(context.Background(), "u1", 2)
	if err != nil || len(page) != 2 {
		t.Fatalf("expected a page of 2, got %d (%v)", len(page), err)
	}

	if _, err := svc.ListNotifications(context.Background(), " ", 10); !apperrors.IsCode(err, apperrors.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := svc.ListNotifications(context.Background(), "ghost", 10); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
