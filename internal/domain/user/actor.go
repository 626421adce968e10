package user

import (
	"officegrid/internal/domain/floorplan"

	"github.com/google/uuid"
)

// Actor is the authenticated principal supplied by the auth layer's tokens.
// ManagerDomain is set only for the manager role.
type Actor struct {
	ID            uuid.UUID
	Role          Role
	ManagerDomain *ManagerDomain
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleSuperAdmin || a.Role == RoleAdmin
}

// planManagerDomains is the fixed 1:1 mapping between floor-plan types and
// the manager domain allowed to mutate them. Adding a fourth domain means
// adding one row here, not touching call sites.
var planManagerDomains = map[floorplan.PlanType]ManagerDomain{
	floorplan.PlanTypeDeskArea:  DomainDeskConference,
	floorplan.PlanTypeCafeteria: DomainCafeteria,
	floorplan.PlanTypeParking:   DomainParking,
}

// CanManagePlanType decides layout mutation rights: super admins and admins
// always, a manager only within their own domain, everyone else never.
// A manager of another domain still uses that domain's booking services as
// an ordinary employee; this gate is consulted only for mutations.
func CanManagePlanType(actor Actor, planType floorplan.PlanType) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.Role != RoleManager || actor.ManagerDomain == nil {
		return false
	}
	required, ok := planManagerDomains[planType]
	if !ok {
		return false
	}
	return *actor.ManagerDomain == required
}

// CanManageParking gates parking allocation management (visitor assignment
// and visitor exits).
func CanManageParking(actor Actor) bool {
	return CanManagePlanType(actor, floorplan.PlanTypeParking)
}
