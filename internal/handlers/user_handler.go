package handlers

import (
	"net/http"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler handles the admin user-management HTTP requests
type UserHandler struct {
	memberService services.MemberService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(memberService services.MemberService) *UserHandler {
	return &UserHandler{
		memberService: memberService,
	}
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	accounts, err := h.memberService.ListAccounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// UpdateRole handles PUT /admin/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	performedBy, _ := primitive.ObjectIDFromHex(currentUserID(c))
	if err := h.memberService.UpdateRole(c.Request.Context(), id, req.Role, performedBy); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

// DeleteUser handles DELETE /admin/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	performedBy, _ := primitive.ObjectIDFromHex(currentUserID(c))
	if err := h.memberService.DeleteAccount(c.Request.Context(), id, performedBy); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
