package handlers

import (
	"net/http"

	"support-portal-backend/internal/auth"
	apperrors "support-portal-backend/internal/errors"
	"support-portal-backend/internal/logger"
	"support-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles HTTP requests for ticket operations
type TicketHandler struct {
	ticketService service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// CreateTicket handles POST /api/tickets
// @Summary Create a ticket
// @Description Create a ticket in the caller's tenant and trigger the external workflow engine
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body service.CreateTicketRequest true "Ticket data"
// @Success 201 {object} map[string]interface{} "Created ticket"
// @Failure 400 {object} map[string]interface{} "Title and description are required"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	customerID, ok := auth.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), customerID, userID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.New().WithField("customer_id", customerID).Errorf("ticket creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

// ListTickets handles GET /api/tickets
// @Summary List the caller's tickets
// @Description List all tickets in the caller's tenant, newest first
// @Tags tickets
// @Produce json
// @Success 200 {object} service.TicketListResponse "Tickets scoped to the caller tenant"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /api/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	customerID, ok := auth.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.ticketService.List(customerID)
	if err != nil {
		logger.New().WithField("customer_id", customerID).Errorf("ticket listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAdminTickets handles GET /api/admin/tickets
// @Summary List tenant tickets with creator details
// @Description Admin view of all tickets in the caller's tenant. Still scoped to the caller's tenant.
// @Tags tickets
// @Produce json
// @Success 200 {object} service.TicketListResponse "Tickets scoped to the caller tenant"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Security BearerAuth
// @Router /api/admin/tickets [get]
func (h *TicketHandler) ListAdminTickets(c *gin.Context) {
	customerID, ok := auth.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.ticketService.ListWithCreators(customerID)
	if err != nil {
		logger.New().WithField("customer_id", customerID).Errorf("admin ticket listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
