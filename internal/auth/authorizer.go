package auth

import (
	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	apperrors "github.com/Henlorata/FrakHub-sub001/pkg/util/errorutil"
)

// Capability names an administrative action.
type Capability string

const (
	CapabilityUpdateRole     Capability = "profiles:update-role"
	CapabilityChangePassword Capability = "users:change-password"
	CapabilityDeleteUser     Capability = "users:delete"
	CapabilityManageAssets   Capability = "assets:manage"
)

// Predicate decides whether a caller profile may exercise a capability.
type Predicate func(caller *domain.Profile) bool

// Authorizer evaluates capabilities against a fixed predicate table.
type Authorizer struct {
	rules map[Capability]Predicate
}

// NewAuthorizer builds an authorizer from explicit rules. Capabilities
// without a rule are always denied.
func NewAuthorizer(rules map[Capability]Predicate) *Authorizer {
	copied := make(map[Capability]Predicate, len(rules))
	for k, v := range rules {
		copied[k] = v
	}
	return &Authorizer{rules: copied}
}

// DefaultRules reproduces the per-operation policy of the back office.
// Role updates and asset management only require authentication, unlike the
// stricter password and deletion checks.
func DefaultRules(executiveRanks []string) map[Capability]Predicate {
	return map[Capability]Predicate{
		CapabilityUpdateRole:     AllowAuthenticated(),
		CapabilityChangePassword: FactionRankIn(executiveRanks...),
		CapabilityDeleteUser:     SystemRoleIn(domain.SystemRoleAdmin, domain.SystemRoleSupervisor),
		CapabilityManageAssets:   AllowAuthenticated(),
	}
}

// Authorize returns nil when principal may exercise capability.
func (a *Authorizer) Authorize(principal *Principal, capability Capability) error {
	if principal == nil || principal.Profile == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	rule, ok := a.rules[capability]
	if !ok || !rule(principal.Profile) {
		return apperrors.NewForbidden("insufficient privileges for " + string(capability))
	}
	return nil
}

// AllowAuthenticated allows every caller with a profile, pending or not.
func AllowAuthenticated() Predicate {
	return func(*domain.Profile) bool {
		return true
	}
}

// SystemRoleIn allows callers holding one of roles.
func SystemRoleIn(roles ...domain.SystemRole) Predicate {
	allowed := make(map[domain.SystemRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(caller *domain.Profile) bool {
		_, ok := allowed[caller.SystemRole]
		return ok
	}
}

// FactionRankIn allows callers holding one of ranks.
func FactionRankIn(ranks ...string) Predicate {
	allowed := make(map[string]struct{}, len(ranks))
	for _, rank := range ranks {
		allowed[rank] = struct{}{}
	}
	return func(caller *domain.Profile) bool {
		_, ok := allowed[caller.FactionRank]
		return ok
	}
}
