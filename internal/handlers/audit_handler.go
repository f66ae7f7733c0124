package handlers

import (
	"net/http"
	"strconv"

	"github.com/K227-arch/home-solutions/internal/services"
	"github.com/gin-gonic/gin"
)

// AuditHandler handles audit log HTTP requests
type AuditHandler struct {
	auditService services.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService services.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// ListLogs handles GET /admin/audit-logs
func (h *AuditHandler) ListLogs(c *gin.Context) {
	action := c.Query("action")
	if action == "all" {
		action = ""
	}
	query := c.Query("q")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	entries, err := h.auditService.List(c.Request.Context(), action, query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
