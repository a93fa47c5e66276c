package models

import "github.com/google/uuid"

// TicketStatus represents the processing state of a support ticket
type TicketStatus string

const (
	TicketStatusPending TicketStatus = "Pending"
	TicketStatusDone    TicketStatus = "Done"
)

// IsValid checks if the TicketStatus is valid
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusPending, TicketStatusDone:
		return true
	}
	return false
}

// Ticket represents a support ticket. CustomerID is set from the creating
// identity's tenant binding at creation time and is never updated afterwards.
type Ticket struct {
	BaseModel
	Title       string       `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string       `json:"description" gorm:"not null" validate:"required,min=1"`
	Status      TicketStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`
	CustomerID  string       `json:"customer_id" gorm:"not null;size:40;index:idx_tickets_customer_id" validate:"required,max=40"`
	CreatedByID uuid.UUID    `json:"created_by_id" gorm:"type:uuid;not null;index"`
	CreatedBy   *User        `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
