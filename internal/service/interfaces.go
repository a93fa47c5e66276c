package service

import (
	"context"

	"support-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TicketServiceInterface defines the interface for ticket business logic
type TicketServiceInterface interface {
	Create(ctx context.Context, customerID string, creatorID uuid.UUID, req *CreateTicketRequest) (*TicketResponse, error)
	List(customerID string) (*TicketListResponse, error)
	ListWithCreators(customerID string) (*TicketListResponse, error)
}

// WebhookServiceInterface defines the interface for workflow callback handling
type WebhookServiceInterface interface {
	CompleteTicket(req *WebhookRequest) (*TicketResponse, error)
}

// ScreensServiceInterface defines the interface for tenant screen lookup
type ScreensServiceInterface interface {
	GetForCustomer(customerID string) []Screen
}

// WorkflowNotifierInterface defines the interface for the outbound workflow
// engine notification
type WorkflowNotifierInterface interface {
	Notify(ctx context.Context, ticket *models.Ticket, workflow *models.Workflow)
}
