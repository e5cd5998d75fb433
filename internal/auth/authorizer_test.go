package auth

import (
	"testing"

	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	apperrors "github.com/Henlorata/FrakHub-sub001/pkg/util/errorutil"
)

func principalWith(role domain.SystemRole, rank string) *Principal {
	return &Principal{
		Identity: domain.Identity{Subject: "caller"},
		Profile:  &domain.Profile{ID: "caller", SystemRole: role, FactionRank: rank},
	}
}

func TestDefaultRules(t *testing.T) {
	authorizer := NewAuthorizer(DefaultRules([]string{"Commander", "Captain I"}))

	cases := []struct {
		name       string
		principal  *Principal
		capability Capability
		wantCode   string
	}{
		{"member updates roles", principalWith(domain.SystemRoleUser, "Officer"), CapabilityUpdateRole, ""},
		{"pending caller updates roles", principalWith(domain.SystemRolePending, "Officer"), CapabilityUpdateRole, ""},
		{"pending caller manages assets", principalWith(domain.SystemRolePending, "Cadet"), CapabilityManageAssets, ""},
		{"pending caller cannot delete", principalWith(domain.SystemRolePending, "Commander"), CapabilityDeleteUser, apperrors.CodeForbidden},
		{"executive changes password", principalWith(domain.SystemRoleUser, "Captain I"), CapabilityChangePassword, ""},
		{"admin without rank cannot change password", principalWith(domain.SystemRoleAdmin, "Officer"), CapabilityChangePassword, apperrors.CodeForbidden},
		{"supervisor deletes", principalWith(domain.SystemRoleSupervisor, "Officer"), CapabilityDeleteUser, ""},
		{"admin deletes", principalWith(domain.SystemRoleAdmin, "Officer"), CapabilityDeleteUser, ""},
		{"commander without role cannot delete", principalWith(domain.SystemRoleUser, "Commander"), CapabilityDeleteUser, apperrors.CodeForbidden},
		{"member manages assets", principalWith(domain.SystemRoleUser, "Cadet"), CapabilityManageAssets, ""},
		{"unknown capability denied", principalWith(domain.SystemRoleAdmin, "Commander"), Capability("x:y"), apperrors.CodeForbidden},
		{"missing principal", nil, CapabilityUpdateRole, apperrors.CodeUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := authorizer.Authorize(tc.principal, tc.capability)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("expected allowed, got %v", err)
				}
				return
			}
			if !apperrors.IsCode(err, tc.wantCode) {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestNewAuthorizerCopiesRules(t *testing.T) {
	rules := map[Capability]Predicate{CapabilityUpdateRole: AllowAuthenticated()}
	authorizer := NewAuthorizer(rules)
	delete(rules, CapabilityUpdateRole)

	if err := authorizer.Authorize(principalWith(domain.SystemRoleUser, ""), CapabilityUpdateRole); err != nil {
		t.Fatalf("authorizer should keep its own copy of rules: %v", err)
	}
}
