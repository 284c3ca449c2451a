package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	ucSchedule "github.com/BruksfildServices01/barber-agenda/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	setHours        *ucSchedule.SetWorkingHours
	deactivateHours *ucSchedule.DeactivateWorkingHours
	listHours       *ucSchedule.ListWorkingHours

	createException *ucSchedule.CreateException
	removeException *ucSchedule.RemoveException

	createBlock  *ucSchedule.CreateBlock
	fullDayBlock *ucSchedule.CreateFullDayBlock
	batchBlocks  *ucSchedule.CreateBlocksBatch
	removeBlock  *ucSchedule.RemoveBlock
	listBlocks   *ucSchedule.ListBlocks
}

type ScheduleUseCases struct {
	SetHours        *ucSchedule.SetWorkingHours
	DeactivateHours *ucSchedule.DeactivateWorkingHours
	ListHours       *ucSchedule.ListWorkingHours
	CreateException *ucSchedule.CreateException
	RemoveException *ucSchedule.RemoveException
	CreateBlock     *ucSchedule.CreateBlock
	FullDayBlock    *ucSchedule.CreateFullDayBlock
	BatchBlocks     *ucSchedule.CreateBlocksBatch
	RemoveBlock     *ucSchedule.RemoveBlock
	ListBlocks      *ucSchedule.ListBlocks
}

func NewScheduleHandler(uc ScheduleUseCases) *ScheduleHandler {
	return &ScheduleHandler{
		setHours:        uc.SetHours,
		deactivateHours: uc.DeactivateHours,
		listHours:       uc.ListHours,
		createException: uc.CreateException,
		removeException: uc.RemoveException,
		createBlock:     uc.CreateBlock,
		fullDayBlock:    uc.FullDayBlock,
		batchBlocks:     uc.BatchBlocks,
		removeBlock:     uc.RemoveBlock,
		listBlocks:      uc.ListBlocks,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"required,min=1,max=7"`
	Active     bool   `json:"active"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	ProfessionalID uint               `json:"professional_id"`
	Days           []WorkingDayConfig `json:"days" binding:"required,min=1,dive"`
}

type CreateExceptionRequest struct {
	ProfessionalID uint   `json:"professional_id"`
	Date           string `json:"date" binding:"required"`
	Kind           string `json:"kind" binding:"required"`
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	Reason         string `json:"reason"`
}

type CreateBlockRequest struct {
	ProfessionalID uint   `json:"professional_id"`
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	Reason         string `json:"reason"`
}

type FullDayBlockRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Reason         string `json:"reason"`
}

type BatchBlockItem struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

type BatchBlocksRequest struct {
	ProfessionalID uint             `json:"professional_id"`
	Blocks         []BatchBlockItem `json:"blocks" binding:"required,min=1,dive"`
}

// ======================================================
// WORKING HOURS
// ======================================================

// GET /api/me/working-hours?professional_id=
func (h *ScheduleHandler) GetWorkingHours(c *gin.Context) {
	requested, err := uintQuery(c, "professional_id")
	if err != nil {
		httperr.Respond(c, err, "working_hours_failed")
		return
	}
	professionalID, err := professionalFor(c, requested)
	if err != nil {
		httperr.Respond(c, err, "working_hours_failed")
		return
	}

	hours, err := h.listHours.Execute(c.Request.Context(), tenantID(c), professionalID)
	if err != nil {
		httperr.Respond(c, err, "working_hours_failed")
		return
	}

	httpresp.List(c, hours)
}

// PUT /api/me/working-hours
// Inactive days are deactivated, active days replaced.
func (h *ScheduleHandler) UpdateWorkingHours(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	professionalID, err := professionalFor(c, req.ProfessionalID)
	if err != nil {
		httperr.Respond(c, err, "working_hours_failed")
		return
	}

	ctx := c.Request.Context()
	for _, d := range req.Days {
		if !d.Active {
			err := h.deactivateHours.Execute(ctx, tenantID(c), professionalID, d.Weekday)
			if err != nil && !httperr.IsBusiness(err, "working_hours_not_found") {
				httperr.Respond(c, err, "working_hours_failed")
				return
			}
			continue
		}

		if _, err := h.setHours.Execute(ctx, ucSchedule.WorkingHoursInput{
			TenantID:       tenantID(c),
			ProfessionalID: professionalID,
			Weekday:        d.Weekday,
			OpenTime:       d.OpenTime,
			CloseTime:      d.CloseTime,
			LunchStart:     d.LunchStart,
			LunchEnd:       d.LunchEnd,
		}); err != nil {
			httperr.Respond(c, err, "working_hours_failed")
			return
		}
	}

	hours, err := h.listHours.Execute(ctx, tenantID(c), professionalID)
	if err != nil {
		httperr.Respond(c, err, "working_hours_failed")
		return
	}
	httpresp.List(c, hours)
}

// DELETE /api/me/working-hours/:weekday?professional_id=
func (h *ScheduleHandler) DeactivateWorkingHours(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		httperr.BadRequest(c, "invalid_weekday", "weekday must be 1 (Monday) to 7 (Sunday)")
		return
	}
	requested, err := uintQuery(c, "professional_id")
	if err != nil {
		httperr.Respond(c, err, "working_hours_failed")
		return
	}
	professionalID, err := professionalFor(c, requested)
	if err != nil {
		httperr.Respond(c, err, "working_hours_failed")
		return
	}

	if err := h.deactivateHours.Execute(c.Request.Context(), tenantID(c), professionalID, weekday); err != nil {
		httperr.Respond(c, err, "working_hours_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// EXCEPTIONS
// ======================================================

// POST /api/me/exceptions
func (h *ScheduleHandler) CreateException(c *gin.Context) {
	var req CreateExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	professionalID, err := professionalFor(c, req.ProfessionalID)
	if err != nil {
		httperr.Respond(c, err, "exception_failed")
		return
	}

	exc, err := h.createException.Execute(c.Request.Context(), ucSchedule.CreateExceptionInput{
		TenantID:       tenantID(c),
		ProfessionalID: professionalID,
		Date:           req.Date,
		Kind:           req.Kind,
		OpenTime:       req.OpenTime,
		CloseTime:      req.CloseTime,
		Reason:         req.Reason,
		CreatedBy:      requester(c).Role,
	})
	if err != nil {
		httperr.Respond(c, err, "exception_failed")
		return
	}

	httpresp.Created(c, exc)
}

// DELETE /api/me/exceptions/:id
func (h *ScheduleHandler) RemoveException(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		httperr.Respond(c, err, "exception_failed")
		return
	}

	if err := h.removeException.Execute(c.Request.Context(), id, requester(c)); err != nil {
		httperr.Respond(c, err, "exception_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// BLOCKS
// ======================================================

// GET /api/me/blocks?professional_id=&date=
func (h *ScheduleHandler) ListBlocks(c *gin.Context) {
	requested, err := uintQuery(c, "professional_id")
	if err != nil {
		httperr.Respond(c, err, "blocks_failed")
		return
	}
	professionalID, err := professionalFor(c, requested)
	if err != nil {
		httperr.Respond(c, err, "blocks_failed")
		return
	}

	blocks, err := h.listBlocks.Execute(c.Request.Context(), tenantID(c), professionalID, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err, "blocks_failed")
		return
	}
	httpresp.List(c, blocks)
}

// POST /api/me/blocks
func (h *ScheduleHandler) CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	professionalID, err := professionalFor(c, req.ProfessionalID)
	if err != nil {
		httperr.Respond(c, err, "block_failed")
		return
	}

	b, err := h.createBlock.Execute(c.Request.Context(), ucSchedule.CreateBlockInput{
		TenantID:       tenantID(c),
		ProfessionalID: professionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Reason:         req.Reason,
		CreatedBy:      requester(c).Role,
	})
	if err != nil {
		httperr.Respond(c, err, "block_failed")
		return
	}

	httpresp.Created(c, b)
}

// POST /api/me/blocks/full-day (tenant only)
func (h *ScheduleHandler) CreateFullDayBlock(c *gin.Context) {
	if requester(c).Role != schedule.ActorTenant {
		httperr.Forbidden(c, "forbidden", "only the barbershop can block a full day")
		return
	}

	var req FullDayBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	b, err := h.fullDayBlock.Execute(c.Request.Context(), ucSchedule.CreateFullDayBlockInput{
		TenantID:       tenantID(c),
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Reason:         req.Reason,
	})
	if err != nil {
		httperr.Respond(c, err, "block_failed")
		return
	}

	httpresp.Created(c, b)
}

// POST /api/me/blocks/batch
func (h *ScheduleHandler) CreateBlocksBatch(c *gin.Context) {
	var req BatchBlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	professionalID, err := professionalFor(c, req.ProfessionalID)
	if err != nil {
		httperr.Respond(c, err, "block_failed")
		return
	}

	items := make([]ucSchedule.BlockItem, 0, len(req.Blocks))
	for _, b := range req.Blocks {
		items = append(items, ucSchedule.BlockItem{
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Reason:    b.Reason,
		})
	}

	blocks, err := h.batchBlocks.Execute(c.Request.Context(), ucSchedule.CreateBlocksBatchInput{
		TenantID:       tenantID(c),
		ProfessionalID: professionalID,
		CreatedBy:      requester(c).Role,
		Items:          items,
	})
	if err != nil {
		httperr.Respond(c, err, "block_failed")
		return
	}

	httpresp.CreatedList(c, blocks)
}

// DELETE /api/me/blocks/:id
func (h *ScheduleHandler) RemoveBlock(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		httperr.Respond(c, err, "block_failed")
		return
	}

	if err := h.removeBlock.Execute(c.Request.Context(), id, requester(c)); err != nil {
		httperr.Respond(c, err, "block_failed")
		return
	}
	c.Status(http.StatusNoContent)
}
