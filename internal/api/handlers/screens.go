package handlers

import (
	"net/http"

	"support-portal-backend/internal/auth"
	"support-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScreensHandler serves the per-tenant screen registry
type ScreensHandler struct {
	screensService service.ScreensServiceInterface
}

// NewScreensHandler creates a new screens handler
func NewScreensHandler(screensService service.ScreensServiceInterface) *ScreensHandler {
	return &ScreensHandler{
		screensService: screensService,
	}
}

// GetScreens handles GET /api/me/screens
// @Summary List the caller's screens
// @Description Return the UI screens configured for the caller's tenant; empty when none are registered
// @Tags screens
// @Produce json
// @Success 200 {object} map[string]interface{} "Screens and tenant id"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /api/me/screens [get]
func (h *ScreensHandler) GetScreens(c *gin.Context) {
	customerID, ok := auth.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	screens := h.screensService.GetForCustomer(customerID)
	c.JSON(http.StatusOK, gin.H{"screens": screens, "customerId": customerID})
}
