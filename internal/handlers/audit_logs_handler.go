package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
	clock  timezone.Clock
}

func NewAuditLogsHandler(logger *audit.Logger, clock timezone.Clock) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger, clock: clock}
}

// GET /api/me/audit-logs?action=&entity=&from=&to=&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Filtros de data (dias inteiros, inclusive)
	// --------------------------------------------------
	loc := h.clock.Location()
	if from, err := timezone.ParseDate(c.Query("from"), loc); err == nil {
		f.From = from
	}
	if to, err := timezone.ParseDate(c.Query("to"), loc); err == nil {
		f.To = to.AddDate(0, 0, 1)
	}

	logs, total, err := h.logger.Query(tenantID(c), f)
	if err != nil {
		httperr.Respond(c, err, "audit_list_failed")
		return
	}

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	c.JSON(200, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
