package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// WorkflowStatus represents the lifecycle state of an external workflow run
type WorkflowStatus string

const (
	WorkflowStatusTriggered  WorkflowStatus = "triggered"
	WorkflowStatusProcessing WorkflowStatus = "processing"
	WorkflowStatusCompleted  WorkflowStatus = "completed"
	WorkflowStatusFailed     WorkflowStatus = "failed"
)

// IsValid checks if the WorkflowStatus is valid
func (s WorkflowStatus) IsValid() bool {
	switch s {
	case WorkflowStatusTriggered, WorkflowStatusProcessing, WorkflowStatusCompleted, WorkflowStatusFailed:
		return true
	}
	return false
}

// Workflow tracks the external engine run paired with a ticket. CustomerID
// always equals the parent ticket's CustomerID; it is the join key that lets
// the callback handler re-scope a tenant-agnostic execution back into tenant
// space.
type Workflow struct {
	BaseModel
	TicketID            uuid.UUID       `json:"ticket_id" gorm:"type:uuid;not null;index:idx_workflows_customer_ticket"`
	CustomerID          string          `json:"customer_id" gorm:"not null;size:40;index:idx_workflows_customer_ticket" validate:"required,max=40"`
	Status              WorkflowStatus  `json:"status" gorm:"type:varchar(20);not null;default:'triggered'"`
	ExternalExecutionID string          `json:"external_execution_id,omitempty" gorm:"size:100"`
	TriggerData         json.RawMessage `json:"trigger_data,omitempty" gorm:"type:jsonb"`
	ResultData          json.RawMessage `json:"result_data,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Workflow
func (Workflow) TableName() string {
	return "workflows"
}
