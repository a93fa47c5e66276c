package repository

import (
	"encoding/json"
	"time"

	"support-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowRepository handles database operations for workflow records
type WorkflowRepository struct {
	db *gorm.DB
}

// Ensure WorkflowRepository implements WorkflowRepositoryInterface
var _ WorkflowRepositoryInterface = (*WorkflowRepository)(nil)

// NewWorkflowRepository creates a new workflow repository
func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

// Create creates a new workflow record
func (r *WorkflowRepository) Create(workflow *models.Workflow) error {
	return r.db.Create(workflow).Error
}

// GetByIDScoped retrieves a workflow record by id within a tenant
func (r *WorkflowRepository) GetByIDScoped(id uuid.UUID, customerID string) (*models.Workflow, error) {
	var workflow models.Workflow
	err := r.db.First(&workflow, "id = ? AND customer_id = ?", id, customerID).Error
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

// GetByTicketID retrieves the workflow record paired with a ticket within a tenant
func (r *WorkflowRepository) GetByTicketID(ticketID uuid.UUID, customerID string) (*models.Workflow, error) {
	var workflow models.Workflow
	err := r.db.First(&workflow, "ticket_id = ? AND customer_id = ?", ticketID, customerID).Error
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

// UpdateStatus updates a workflow record's status and optional external
// execution id within a tenant
func (r *WorkflowRepository) UpdateStatus(id uuid.UUID, customerID string, status models.WorkflowStatus, executionID string) (*models.Workflow, error) {
	updates := map[string]interface{}{"status": status}
	if executionID != "" {
		updates["external_execution_id"] = executionID
	}
	res := r.db.Model(&models.Workflow{}).
		Where("id = ? AND customer_id = ?", id, customerID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByIDScoped(id, customerID)
}

// CompleteByTicketID updates the workflow record paired with a ticket. The
// result payload is last-write-wins, so replayed callbacks converge on the
// same terminal state.
func (r *WorkflowRepository) CompleteByTicketID(ticketID uuid.UUID, customerID string, status models.WorkflowStatus, result json.RawMessage) (*models.Workflow, error) {
	updates := map[string]interface{}{"status": status}
	if result != nil {
		updates["result_data"] = result
	}
	res := r.db.Model(&models.Workflow{}).
		Where("ticket_id = ? AND customer_id = ?", ticketID, customerID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByTicketID(ticketID, customerID)
}

// ListStale lists workflow records still in triggered state older than the
// given time, across tenants. Input for a reconciliation sweep.
func (r *WorkflowRepository) ListStale(olderThan time.Time) ([]models.Workflow, error) {
	var workflows []models.Workflow
	err := r.db.Where("status = ? AND created_at < ?", models.WorkflowStatusTriggered, olderThan).
		Order("created_at ASC").
		Find(&workflows).Error
	if err != nil {
		return nil, err
	}
	return workflows, nil
}
