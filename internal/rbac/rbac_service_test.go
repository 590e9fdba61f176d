package rbac_test

import (
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/rbac"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) rbac.Service {
	e, err := infra.NewEnforcer(infra.DefaultGrants)
	require.NoError(t, err)
	return rbac.NewService(e, zap.NewNop())
}

func TestService_Enforce(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name     string
		role     domain.Role
		resource string
		action   string
		want     bool
	}{
		{"user writes products", domain.RoleUser, domain.ResourceProduct, domain.ActionWrite, true},
		{"user cannot list users", domain.RoleUser, domain.ResourceUser, domain.ActionRead, false},
		{"admin lists users", domain.RoleAdmin, domain.ResourceUser, domain.ActionRead, true},
		{"admin inherits product write", domain.RoleAdmin, domain.ResourceProduct, domain.ActionWrite, true},
		{"admin cannot write categories", domain.RoleAdmin, domain.ResourceCategory, domain.ActionWrite, false},
		{"superadmin writes categories", domain.RoleSuperAdmin, domain.ResourceCategory, domain.ActionWrite, true},
		{"superadmin inherits user read", domain.RoleSuperAdmin, domain.ResourceUser, domain.ActionRead, true},
		{"unknown role denied", domain.Role(9), domain.ResourceProduct, domain.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestService_Permissions(t *testing.T) {
	svc := newService(t)

	userPerms, err := svc.Permissions(domain.RoleUser)
	require.NoError(t, err)
	assert.Contains(t, userPerms, "product:write")
	assert.NotContains(t, userPerms, "user:read")

	superPerms, err := svc.Permissions(domain.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Contains(t, superPerms, "category:write")
	assert.Contains(t, superPerms, "user:read")
	assert.Contains(t, superPerms, "product:read")
}
