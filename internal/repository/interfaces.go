package repository

import (
	"encoding/json"
	"time"

	"support-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// TicketRepositoryInterface defines the interface for ticket repository
// operations. Scoped methods take the tenant id resolved by the auth
// middleware; the tenant equality filter is part of the lookup predicate
// itself, so a foreign ticket id behaves exactly like a nonexistent one.
type TicketRepositoryInterface interface {
	CreateWithWorkflow(ticket *models.Ticket, workflow *models.Workflow) error
	GetByTenant(customerID string) ([]models.Ticket, error)
	GetByTenantWithCreator(customerID string) ([]models.Ticket, error)
	GetByIDScoped(id uuid.UUID, customerID string) (*models.Ticket, error)
	UpdateStatusScoped(id uuid.UUID, customerID string, status models.TicketStatus) (*models.Ticket, error)
	// GetByID resolves a ticket without a tenant filter. Reserved for the
	// webhook callback path, whose caller holds no tenant binding.
	GetByID(id uuid.UUID) (*models.Ticket, error)
}

// WorkflowRepositoryInterface defines the interface for workflow repository operations
type WorkflowRepositoryInterface interface {
	Create(workflow *models.Workflow) error
	GetByIDScoped(id uuid.UUID, customerID string) (*models.Workflow, error)
	GetByTicketID(ticketID uuid.UUID, customerID string) (*models.Workflow, error)
	UpdateStatus(id uuid.UUID, customerID string, status models.WorkflowStatus, executionID string) (*models.Workflow, error)
	CompleteByTicketID(ticketID uuid.UUID, customerID string, status models.WorkflowStatus, result json.RawMessage) (*models.Workflow, error)
	ListStale(olderThan time.Time) ([]models.Workflow, error)
}
