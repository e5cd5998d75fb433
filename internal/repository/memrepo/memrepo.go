// Package memrepo provides in-memory repositories for tests and for running
// the service without a database.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	"github.com/Henlorata/FrakHub-sub001/internal/repository"
)

// DB holds every table behind one lock.
type DB struct {
	mu            sync.RWMutex
	profiles      map[string]domain.Profile
	notifications []domain.Notification
	credentials   map[string]string

	// failure injection
	UpdateErr       error
	NotificationErr error
	GetErr          error
	DeleteErr       error

	updateCalls       int
	notificationCalls int
}

// New returns an empty database.
func New() *DB {
	return &DB{
		profiles:    make(map[string]domain.Profile),
		credentials: make(map[string]string),
	}
}

// Store exposes the database through the repository interfaces.
func (db *DB) Store() *repository.Store {
	return &repository.Store{
		Profiles:      &profileRepo{db: db},
		Notifications: &notificationRepo{db: db},
		Credentials:   &credentialRepo{db: db},
	}
}

// PutProfile seeds or replaces a profile.
func (db *DB) PutProfile(p domain.Profile) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	db.profiles[p.ID] = cloneProfile(p)
}

// Profile returns a copy of the stored profile.
func (db *DB) Profile(id string) (domain.Profile, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	p, ok := db.profiles[id]
	return cloneProfile(p), ok
}

// Notifications returns every notification addressed to userID.
func (db *DB) Notifications(userID string) []domain.Notification {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var out []domain.Notification
	for _, n := range db.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// PasswordHash returns the stored hash for userID.
func (db *DB) PasswordHash(userID string) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	h, ok := db.credentials[userID]
	return h, ok
}

// UpdateCalls counts UpdateFields invocations that reached the store.
func (db *DB) UpdateCalls() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.updateCalls
}

// NotificationCalls counts CreateBatch invocations that reached the store.
func (db *DB) NotificationCalls() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.notificationCalls
}

type profileRepo struct{ db *DB }

func (r *profileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.GetErr != nil {
		return nil, r.db.GetErr
	}
	p, ok := r.db.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := cloneProfile(p)
	return &out, nil
}

func (r *profileRepo) UpdateFields(_ context.Context, id string, update domain.ProfileUpdate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.updateCalls++
	if r.db.UpdateErr != nil {
		return r.db.UpdateErr
	}
	p, ok := r.db.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	update.Apply(&p)
	p.UpdatedAt = time.Now().UTC()
	r.db.profiles[id] = cloneProfile(p)
	return nil
}

func (r *profileRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.DeleteErr != nil {
		return r.db.DeleteErr
	}
	if _, ok := r.db.profiles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.db.profiles, id)
	delete(r.db.credentials, id)
	kept := r.db.notifications[:0]
	for _, n := range r.db.notifications {
		if n.UserID != id {
			kept = append(kept, n)
		}
	}
	r.db.notifications = kept
	return nil
}

type notificationRepo struct{ db *DB }

func (r *notificationRepo) CreateBatch(_ context.Context, notifications []domain.Notification) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.notificationCalls++
	if r.db.NotificationErr != nil {
		return r.db.NotificationErr
	}
	now := time.Now().UTC()
	for i := range notifications {
		notifications[i].ID = uuid.NewString()
		notifications[i].CreatedAt = now
	}
	r.db.notifications = append(r.db.notifications, notifications...)
	return nil
}

func (r *notificationRepo) ListByUser(_ context.Context, userID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	out := r.db.Notifications(userID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type credentialRepo struct{ db *DB }

func (r *credentialRepo) SetPasswordHash(_ context.Context, userID, hash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.credentials[userID] = hash
	return nil
}

func cloneProfile(p domain.Profile) domain.Profile {
	p.Qualifications = cloneStrings(p.Qualifications)
	p.CommandedDivisions = cloneStrings(p.CommandedDivisions)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
