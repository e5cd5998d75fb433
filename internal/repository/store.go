package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Store bundles the repositories reachable through one database handle. The
// privileged store bypasses row-level policies and is only handed to admin
// services; request authentication reads through a user-scoped handle.
type Store struct {
	Profiles      ProfileRepository
	Notifications NotificationRepository
	Credentials   CredentialRepository
}

// NewPostgresStore wires Postgres-backed repositories onto pool.
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Profiles:      NewProfileRepository(pool),
		Notifications: NewNotificationRepository(pool),
		Credentials:   NewCredentialRepository(pool),
	}
}
