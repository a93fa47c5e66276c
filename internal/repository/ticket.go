package repository

import (
	"support-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketRepository handles database operations for tickets
type TicketRepository struct {
	db *gorm.DB
}

// Ensure TicketRepository implements TicketRepositoryInterface
var _ TicketRepositoryInterface = (*TicketRepository)(nil)

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CreateWithWorkflow creates a ticket and its paired workflow record in a
// single transaction. The workflow inherits the ticket id after insert so
// the pair is committed durably before any outbound notification runs.
func (r *TicketRepository) CreateWithWorkflow(ticket *models.Ticket, workflow *models.Workflow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ticket).Error; err != nil {
			return err
		}
		workflow.TicketID = ticket.ID
		workflow.CustomerID = ticket.CustomerID
		return tx.Create(workflow).Error
	})
}

// GetByTenant retrieves all tickets for a tenant, newest first. Returns an
// empty slice when the tenant has no tickets.
func (r *TicketRepository) GetByTenant(customerID string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetByTenantWithCreator retrieves all tickets for a tenant with the creating
// user preloaded, newest first
func (r *TicketRepository) GetByTenantWithCreator(customerID string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Preload("CreatedBy").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetByIDScoped retrieves a ticket by id within a tenant. The tenant filter
// is part of the predicate, not a post-check.
func (r *TicketRepository) GetByIDScoped(id uuid.UUID, customerID string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.First(&ticket, "id = ? AND customer_id = ?", id, customerID).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// UpdateStatusScoped updates a ticket's status within a tenant and returns
// the updated row. Returns gorm.ErrRecordNotFound when no row matches the
// id+tenant predicate.
func (r *TicketRepository) UpdateStatusScoped(id uuid.UUID, customerID string, status models.TicketStatus) (*models.Ticket, error) {
	res := r.db.Model(&models.Ticket{}).
		Where("id = ? AND customer_id = ?", id, customerID).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByIDScoped(id, customerID)
}

// GetByID retrieves a ticket by id without a tenant filter. Only the webhook
// callback path uses this; the resolved ticket's own CustomerID then scopes
// every subsequent update.
func (r *TicketRepository) GetByID(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
