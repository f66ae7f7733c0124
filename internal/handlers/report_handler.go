package handlers

import (
	"net/http"

	"github.com/K227-arch/home-solutions/internal/services"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles financial report HTTP requests
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetReport handles GET /admin/reports
func (h *ReportHandler) GetReport(c *gin.Context) {
	report := h.reportService.FinancialReport(c.Request.Context())
	c.JSON(http.StatusOK, report)
}

// ExportReport handles GET /admin/reports/export
func (h *ReportHandler) ExportReport(c *gin.Context) {
	report := h.reportService.FinancialReport(c.Request.Context())

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="financial_report.csv"`)
	if err := h.reportService.WriteCSV(c.Writer, report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		return
	}
	c.Status(http.StatusOK)
}

// GetDashboard handles GET /admin/dashboard
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	stats := h.reportService.DashboardStats(c.Request.Context())
	c.JSON(http.StatusOK, stats)
}
