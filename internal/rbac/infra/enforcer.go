package infra

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// ModelText grants permissions to roles, and roles inherit from the role
// below them.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Grant is one permission held by a role.
type Grant struct {
	Role     domain.Role
	Resource string
	Action   string
}

// DefaultGrants lists each permission at the lowest role that holds it.
var DefaultGrants = []Grant{
	{domain.RoleUser, domain.ResourceProduct, domain.ActionRead},
	{domain.RoleUser, domain.ResourceProduct, domain.ActionWrite},
	{domain.RoleUser, domain.ResourceTransaction, domain.ActionRead},
	{domain.RoleUser, domain.ResourceTransaction, domain.ActionWrite},
	{domain.RoleUser, domain.ResourceCompany, domain.ActionRead},
	{domain.RoleUser, domain.ResourceCompany, domain.ActionWrite},
	{domain.RoleUser, domain.ResourceCategory, domain.ActionRead},
	{domain.RoleAdmin, domain.ResourceUser, domain.ActionRead},
	{domain.RoleSuperAdmin, domain.ResourceCategory, domain.ActionWrite},
}

// NewEnforcer builds an in-memory enforcer. The role hierarchy follows
// domain.Roles precedence: each role inherits the one after it.
func NewEnforcer(grants []Grant) (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(ModelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}

	roles := domain.Roles()
	for i := 0; i+1 < len(roles); i++ {
		if _, err := e.AddGroupingPolicy(roles[i].String(), roles[i+1].String()); err != nil {
			return nil, err
		}
	}

	for _, g := range grants {
		if _, err := e.AddPolicy(g.Role.String(), g.Resource, g.Action); err != nil {
			return nil, err
		}
	}

	return e, nil
}
