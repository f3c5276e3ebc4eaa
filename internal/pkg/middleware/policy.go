package middleware

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleCustomer = "customer"
	RoleEditor   = "editor"
	RoleAdmin    = "admin"

	ActRead   = "read"
	ActWrite  = "write"
	ActManage = "manage"
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
m = g(r.sub, p.sub) && r.obj == p.obj && (r.act == p.act || p.act == "*")
`

// editors manage catalogue and CMS; admins inherit that and own the rest
var policies = [][]string{
	{RoleEditor, "tours", "*"},
	{RoleEditor, "services", "*"},
	{RoleEditor, "content", "*"},
	{RoleEditor, "uploads", ActWrite},
	{RoleEditor, "stats", ActRead},
	{RoleAdmin, "bookings", "*"},
	{RoleAdmin, "reviews", "*"},
	{RoleAdmin, "users", "*"},
	{RoleAdmin, "monitoring", ActManage},
}

var groupings = [][]string{
	{RoleAdmin, RoleEditor},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}
	return e, nil
}
