package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"support-portal-backend/internal/database/models"
	apperrors "support-portal-backend/internal/errors"
	"support-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TicketService provides ticket-related business logic. Every operation is
// scoped by the tenant id resolved by the auth middleware; the service never
// accepts a tenant id originating from client input.
type TicketService struct {
	ticketRepo repository.TicketRepositoryInterface
	notifier   WorkflowNotifierInterface
	validator  *validator.Validate
}

// Ensure TicketService implements TicketServiceInterface
var _ TicketServiceInterface = (*TicketService)(nil)

// CreateTicketRequest represents the ticket creation request body
type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required" validate:"required,min=1,max=200"`
	Description string `json:"description" binding:"required" validate:"required,min=1"`
}

// TicketResponse represents a single ticket in API responses
type TicketResponse struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Status         models.TicketStatus `json:"status"`
	CustomerID     string              `json:"customerId"`
	CreatedByEmail string              `json:"createdByEmail,omitempty"`
	CreatedByRole  models.UserRole     `json:"createdByRole,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// TicketListResponse represents a list of tickets scoped to one tenant
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

// NewTicketService creates a new TicketService
func NewTicketService(ticketRepo repository.TicketRepositoryInterface, notifier WorkflowNotifierInterface, validator *validator.Validate) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		validator:  validator,
	}
}

// Create validates the request, commits the ticket and its paired workflow
// record atomically, then notifies the external engine. The notification is
// best-effort: its outcome is recorded on the workflow record and never
// propagated to the caller.
func (s *TicketService) Create(ctx context.Context, customerID string, creatorID uuid.UUID, req *CreateTicketRequest) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "title and description are required")
	}

	triggerData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trigger data: %w", err)
	}

	ticket := &models.Ticket{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TicketStatusPending,
		CustomerID:  customerID,
		CreatedByID: creatorID,
	}
	workflow := &models.Workflow{
		Status:      models.WorkflowStatusTriggered,
		TriggerData: triggerData,
	}

	if err := s.ticketRepo.CreateWithWorkflow(ticket, workflow); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.notifier.Notify(ctx, ticket, workflow)

	resp := toTicketResponse(ticket)
	return &resp, nil
}

// List retrieves the caller tenant's tickets, newest first
func (s *TicketService) List(customerID string) (*TicketListResponse, error) {
	tickets, err := s.ticketRepo.GetByTenant(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return toTicketListResponse(tickets), nil
}

// ListWithCreators retrieves the caller tenant's tickets with creating user
// details, newest first. Backs the admin listing.
func (s *TicketService) ListWithCreators(customerID string) (*TicketListResponse, error) {
	tickets, err := s.ticketRepo.GetByTenantWithCreator(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return toTicketListResponse(tickets), nil
}

func toTicketResponse(ticket *models.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		CustomerID:  ticket.CustomerID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
	if ticket.CreatedBy != nil {
		resp.CreatedByEmail = ticket.CreatedBy.Email
		resp.CreatedByRole = ticket.CreatedBy.Role
	}
	return resp
}

func toTicketListResponse(tickets []models.Ticket) *TicketListResponse {
	responses := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		responses[i] = toTicketResponse(&t)
	}
	return &TicketListResponse{Tickets: responses}
}
