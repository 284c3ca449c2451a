package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
)

func tenantID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextBarbershopID)
}

func requester(c *gin.Context) schedule.Requester {
	return schedule.Requester{
		Role:           schedule.Actor(c.GetString(middleware.ContextUserRole)),
		TenantID:       tenantID(c),
		ProfessionalID: c.GetUint(middleware.ContextProfessionalID),
	}
}

// professionalFor resolves whose agenda a request targets. Professionals
// always act on their own agenda; tenants must name one.
func professionalFor(c *gin.Context, requested uint) (uint, error) {
	r := requester(c)
	if r.Role == schedule.ActorProfessional {
		if requested != 0 && requested != r.ProfessionalID {
			return 0, httperr.ErrAuthorization("forbidden", "professionals manage only their own agenda")
		}
		return r.ProfessionalID, nil
	}
	if requested == 0 {
		return 0, httperr.ErrValidation("missing_professional_id", "professional_id is required")
	}
	return requested, nil
}

func uintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, httperr.ErrValidation("invalid_"+name, name+" must be a positive integer")
	}
	return uint(v), nil
}

func uintQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, httperr.ErrValidation("invalid_"+name, name+" must be a positive integer")
	}
	return uint(v), nil
}

func invalidRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", err.Error())
}
