package domain

import "time"

// Identity is the verified subject behind a bearer token.
type Identity struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}
