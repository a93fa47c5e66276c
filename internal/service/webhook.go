package service

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"support-portal-backend/internal/config"
	"support-portal-backend/internal/database/models"
	apperrors "support-portal-backend/internal/errors"
	"support-portal-backend/internal/logger"
	"support-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookService re-associates an asynchronous engine result with the correct
// tenant-scoped ticket. The shared secret is the only authentication on this
// path; the caller holds no tenant token, so the tenant id is derived from
// the stored ticket itself.
type WebhookService struct {
	cfg          *config.Config
	ticketRepo   repository.TicketRepositoryInterface
	workflowRepo repository.WorkflowRepositoryInterface
}

// Ensure WebhookService implements WebhookServiceInterface
var _ WebhookServiceInterface = (*WebhookService)(nil)

// WebhookRequest represents the engine's callback body
type WebhookRequest struct {
	TicketID   string `json:"ticketId"`
	WorkflowID string `json:"workflowId,omitempty"`
	Secret     string `json:"secret"`
	Status     string `json:"status,omitempty"`
}

// webhookResult is stored as the workflow record's result payload
type webhookResult struct {
	TicketStatus models.TicketStatus `json:"ticketStatus"`
	CompletedAt  time.Time           `json:"completedAt"`
}

// NewWebhookService creates a new webhook service
func NewWebhookService(cfg *config.Config, ticketRepo repository.TicketRepositoryInterface, workflowRepo repository.WorkflowRepositoryInterface) *WebhookService {
	return &WebhookService{
		cfg:          cfg,
		ticketRepo:   ticketRepo,
		workflowRepo: workflowRepo,
	}
}

// CompleteTicket verifies the shared secret, resolves the ticket without a
// tenant filter, then uses the ticket's own tenant id to scope the status
// updates. Replaying a callback with the same terminal status is a no-op
// success.
func (s *WebhookService) CompleteTicket(req *WebhookRequest) (*TicketResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.cfg.SharedSecret)) != 1 {
		return nil, apperrors.ErrInvalidSharedSecret
	}

	if req.TicketID == "" {
		return nil, apperrors.NewValidationError("ticketId", "is required")
	}
	ticketID, err := uuid.Parse(req.TicketID)
	if err != nil {
		return nil, apperrors.NewValidationError("ticketId", "must be a valid UUID")
	}

	status := models.TicketStatusDone
	if req.Status != "" {
		status = models.TicketStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be Pending or Done")
		}
	}

	ticket, err := s.ticketRepo.GetByID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to look up ticket: %w", err)
	}

	updated, err := s.ticketRepo.UpdateStatusScoped(ticket.ID, ticket.CustomerID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}

	result, err := json.Marshal(webhookResult{TicketStatus: status, CompletedAt: time.Now()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result payload: %w", err)
	}
	if _, err := s.workflowRepo.CompleteByTicketID(ticket.ID, ticket.CustomerID, models.WorkflowStatusCompleted, result); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Ticket without a paired workflow record; the ticket update
			// stands on its own.
			logger.New().WithField("ticket_id", ticket.ID).Warn("no workflow record for completed ticket")
		} else {
			return nil, fmt.Errorf("failed to update workflow record: %w", err)
		}
	}

	resp := toTicketResponse(updated)
	return &resp, nil
}
