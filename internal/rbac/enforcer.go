package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
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

// NewEnforcer builds the in-memory enforcer with the static role policy.
// ADMIN covers the review surfaces; SUPER_ADMIN inherits ADMIN and additionally
// manages admin accounts.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleAdmin, "record", "read"},
		{RoleAdmin, "record", "transition"},
		{RoleAdmin, "audit", "read"},
		{RoleAdmin, "export", "read"},
		{RoleSuperAdmin, "admin", "manage"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	if _, err := e.AddGroupingPolicy(RoleSuperAdmin, RoleAdmin); err != nil {
		return nil, err
	}

	return e, nil
}
