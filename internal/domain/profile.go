package domain

import "time"

// SystemRole is the application-level role of a member account.
type SystemRole string

const (
	SystemRolePending    SystemRole = "pending"
	SystemRoleUser       SystemRole = "user"
	SystemRoleSupervisor SystemRole = "supervisor"
	SystemRoleAdmin      SystemRole = "admin"
)

// Profile is the persisted record describing a member's role, rank, division
// and qualifications.
type Profile struct {
	ID                 string
	FullName           string
	SystemRole         SystemRole
	FactionRank        string
	Division           *string
	DivisionRank       *string
	Qualifications     []string
	IsBureauManager    bool
	IsBureauCommander  bool
	CommandedDivisions []string
	LastPromotionDate  *time.Time
	AvatarURL          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Valid reports whether r is one of the known roles.
func (r SystemRole) Valid() bool {
	switch r {
	case SystemRolePending, SystemRoleUser, SystemRoleSupervisor, SystemRoleAdmin:
		return true
	}
	return false
}
