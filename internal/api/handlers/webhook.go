package handlers

import (
	"net/http"

	apperrors "support-portal-backend/internal/errors"
	"support-portal-backend/internal/logger"
	"support-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles the workflow engine's completion callback
type WebhookHandler struct {
	webhookService service.WebhookServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookService service.WebhookServiceInterface) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// TicketDone handles POST /webhook/ticket-done
// @Summary Workflow completion callback
// @Description Called by the external workflow engine when a ticket has been processed. Authenticated by shared secret only.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body service.WebhookRequest true "Callback data"
// @Success 200 {object} map[string]interface{} "Updated ticket"
// @Failure 400 {object} map[string]interface{} "Missing or invalid ticketId"
// @Failure 403 {object} map[string]interface{} "Invalid shared secret"
// @Failure 404 {object} map[string]interface{} "Unknown ticket"
// @Router /webhook/ticket-done [post]
func (h *WebhookHandler) TicketDone(c *gin.Context) {
	var req service.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ticket, err := h.webhookService.CompleteTicket(&req)
	if err != nil {
		switch {
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid shared secret"})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		default:
			logger.New().WithField("ticket_id", req.TicketID).Errorf("webhook processing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket updated successfully", "ticket": ticket})
}
