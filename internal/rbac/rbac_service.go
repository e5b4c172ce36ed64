package rbac

import (
	"go-ems/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

const modelText = `
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

// Role inheritance chain: Admin > HR > Manager > Employee. A policy granted
// to a role is available to every role above it in the chain.
var groupings = [][]string{
	{domain.RoleAdmin, domain.RoleHR},
	{domain.RoleHR, domain.RoleManager},
	{domain.RoleManager, domain.RoleEmployee},
}

// Static permission matrix. Roles are fixed at signup, so policies live in
// code rather than a policy store.
var policies = [][]string{
	// Every authenticated role.
	{domain.RoleEmployee, "employee", "read"},
	{domain.RoleEmployee, "employee", "update"},
	{domain.RoleEmployee, "attendance", "read_self"},
	{domain.RoleEmployee, "attendance", "mark"},
	{domain.RoleEmployee, "leave", "create"},
	{domain.RoleEmployee, "leave", "read_self"},
	{domain.RoleEmployee, "meeting", "read_self"},
	{domain.RoleEmployee, "salary", "read_employee"},
	{domain.RoleEmployee, "payroll", "read_employee"},
	{domain.RoleEmployee, "payroll", "trend"},
	{domain.RoleEmployee, "reports", "read_self"},

	// Manager and above.
	{domain.RoleManager, "employee", "create"},
	{domain.RoleManager, "employee", "delete"},
	{domain.RoleManager, "attendance", "read_all"},
	{domain.RoleManager, "leave", "read_all"},
	{domain.RoleManager, "leave", "review"},
	{domain.RoleManager, "meeting", "manage"},
	{domain.RoleManager, "salary", "read_all"},
	{domain.RoleManager, "payroll", "read_all"},
	{domain.RoleManager, "payroll", "summary"},

	// HR and above.
	{domain.RoleHR, "salary", "write"},
	{domain.RoleHR, "payroll", "generate"},
	{domain.RoleHR, "payroll", "update_status"},

	// Admin only.
	{domain.RoleAdmin, "reports", "read"},
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, g := range groupings {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}
	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
