package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

type availabilityComputer interface {
	Execute(ctx context.Context, in domain.AvailabilityInput) ([]domain.TimeSlot, error)
}

type barbershopFinder interface {
	GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error)
}

type AvailabilityHandler struct {
	compute availabilityComputer
	shops   barbershopFinder
	clock   timezone.Clock
}

func NewAvailabilityHandler(
	compute availabilityComputer,
	shops barbershopFinder,
	clock timezone.Clock,
) *AvailabilityHandler {
	return &AvailabilityHandler{compute: compute, shops: shops, clock: clock}
}

// GET /api/availability?service_id=&date=
func (h *AvailabilityHandler) ForTenant(c *gin.Context) {
	h.respond(c, tenantID(c))
}

// GET /api/public/:slug/availability?service_id=&date=
func (h *AvailabilityHandler) ForPublic(c *gin.Context) {
	shop, err := h.shops.GetBarbershopBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Respond(c, err, "availability_failed")
		return
	}
	h.respond(c, shop.ID)
}

func (h *AvailabilityHandler) respond(c *gin.Context, barbershopID uint) {
	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "invalid_service_id", "service_id is required")
		return
	}

	date, err := timezone.ParseDate(c.Query("date"), h.clock.Location())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.compute.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: barbershopID,
		ServiceID:    uint(serviceID),
		Date:         date,
	})
	if err != nil {
		httperr.Respond(c, err, "availability_failed")
		return
	}

	httpresp.List(c, slots)
}
