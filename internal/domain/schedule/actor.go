package schedule

import "github.com/BruksfildServices01/barber-agenda/internal/httperr"

// Actor identifies who created or is removing a schedule entry.
type Actor string

const (
	ActorTenant       Actor = "TENANT"
	ActorProfessional Actor = "PROFESSIONAL"
)

func (a Actor) Valid() bool {
	return a == ActorTenant || a == ActorProfessional
}

// Requester is the authenticated caller of a removal.
// ProfessionalID is only meaningful for ActorProfessional.
type Requester struct {
	Role           Actor
	TenantID       uint
	ProfessionalID uint
}

// AuthorizeRemoval checks that requester may remove an entry owned by
// the professional (of tenant ownerTenantID) and created by createdBy.
// The tenant may remove any entry of its professionals; a professional
// only entries it created itself.
func AuthorizeRemoval(requester Requester, professionalID, ownerTenantID uint, createdBy Actor) error {
	switch requester.Role {
	case ActorTenant:
		if ownerTenantID != requester.TenantID {
			return httperr.ErrAuthorization("forbidden", "entry belongs to another barbershop")
		}
		return nil
	case ActorProfessional:
		if professionalID != requester.ProfessionalID {
			return httperr.ErrAuthorization("forbidden", "entry belongs to another professional")
		}
		if createdBy != ActorProfessional {
			return httperr.ErrAuthorization("not_creator", "professional can only remove entries it created")
		}
		return nil
	default:
		return httperr.ErrAuthorization("invalid_role", "unknown requester role")
	}
}
