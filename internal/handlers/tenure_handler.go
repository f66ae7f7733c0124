package handlers

import (
	"net/http"

	"github.com/K227-arch/home-solutions/internal/services"
	"github.com/gin-gonic/gin"
)

// TenureHandler handles tenure payout HTTP requests
type TenureHandler struct {
	tenureService services.TenureService
}

// NewTenureHandler creates a new TenureHandler
func NewTenureHandler(tenureService services.TenureService) *TenureHandler {
	return &TenureHandler{
		tenureService: tenureService,
	}
}

// GetEligibleMembers handles GET /admin/tenure-payout/eligible
func (h *TenureHandler) GetEligibleMembers(c *gin.Context) {
	eligible := h.tenureService.EligibleMembers(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"total":    len(eligible),
		"eligible": eligible,
	})
}

// CalculateWinners handles POST /admin/tenure-payout/calculate
func (h *TenureHandler) CalculateWinners(c *gin.Context) {
	draw := h.tenureService.CalculateWinners(c.Request.Context(), currentUserID(c))
	c.JSON(http.StatusOK, draw)
}

// ConfirmPayouts handles POST /admin/tenure-payout/confirm
func (h *TenureHandler) ConfirmPayouts(c *gin.Context) {
	result, err := h.tenureService.ConfirmPayouts(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payouts."})
		return
	}
	if result.Processed == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No winners to process.", "processed": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payouts processed successfully.", "processed": result.Processed})
}
