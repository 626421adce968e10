package user

import "errors"

var (
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidManagerDomain = errors.New("invalid manager domain")
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTeamLead   Role = "team_lead"
	RoleEmployee   Role = "employee"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleTeamLead, RoleEmployee:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// ManagerDomain scopes a manager to exactly one floor-plan type.
type ManagerDomain string

const (
	DomainDeskConference ManagerDomain = "desk_conference"
	DomainCafeteria      ManagerDomain = "cafeteria"
	DomainParking        ManagerDomain = "parking"
)

func (d ManagerDomain) String() string {
	return string(d)
}

func (d ManagerDomain) IsValid() bool {
	switch d {
	case DomainDeskConference, DomainCafeteria, DomainParking:
		return true
	default:
		return false
	}
}

func NewManagerDomain(s string) (ManagerDomain, error) {
	domain := ManagerDomain(s)
	if !domain.IsValid() {
		return "", ErrInvalidManagerDomain
	}
	return domain, nil
}
