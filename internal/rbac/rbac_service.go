package rbac

import (
	"github.com/TrueLearn-Academy/Emp-agent/internal/domain"

	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if req.Role == "" {
		return false, nil
	}
	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
