package testutils

import (
	"time"

	"support-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        "user-" + id.String()[:8] + "@test.com",
		PasswordHash: string(hash),
		CustomerID:   "logisticsco",
		Role:         models.UserRoleUser,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithCustomer sets the tenant id for the user
func (f *UserFactory) WithCustomer(customerID string) *models.User {
	user := f.Create()
	user.CustomerID = customerID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// Admin creates an admin user for the given tenant
func (f *UserFactory) Admin(customerID string) *models.User {
	user := f.Create()
	user.CustomerID = customerID
	user.Role = models.UserRoleAdmin
	return user
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates a test Ticket with default values. CreatedByID must point at
// a persisted user before inserting.
func (f *TicketFactory) Create() *models.Ticket {
	return &models.Ticket{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Ticket",
		Description: "A test ticket for testing purposes",
		Status:      models.TicketStatusPending,
		CustomerID:  "logisticsco",
		CreatedByID: uuid.New(),
	}
}

// WithCustomer sets the tenant id for the ticket
func (f *TicketFactory) WithCustomer(customerID string) *models.Ticket {
	ticket := f.Create()
	ticket.CustomerID = customerID
	return ticket
}

// WithCreator sets the creating user for the ticket
func (f *TicketFactory) WithCreator(user *models.User) *models.Ticket {
	ticket := f.Create()
	ticket.CustomerID = user.CustomerID
	ticket.CreatedByID = user.ID
	return ticket
}

// WithStatus sets a custom status for the ticket
func (f *TicketFactory) WithStatus(status models.TicketStatus) *models.Ticket {
	ticket := f.Create()
	ticket.Status = status
	return ticket
}

// WorkflowFactory provides methods to create test Workflow data
type WorkflowFactory struct{}

// NewWorkflowFactory creates a new WorkflowFactory
func NewWorkflowFactory() *WorkflowFactory {
	return &WorkflowFactory{}
}

// Create creates a test Workflow with default values
func (f *WorkflowFactory) Create() *models.Workflow {
	return &models.Workflow{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TicketID:   uuid.New(),
		CustomerID: "logisticsco",
		Status:     models.WorkflowStatusTriggered,
	}
}

// ForTicket binds the workflow to a persisted ticket
func (f *WorkflowFactory) ForTicket(ticket *models.Ticket) *models.Workflow {
	workflow := f.Create()
	workflow.TicketID = ticket.ID
	workflow.CustomerID = ticket.CustomerID
	return workflow
}

// WithStatus sets a custom status for the workflow
func (f *WorkflowFactory) WithStatus(status models.WorkflowStatus) *models.Workflow {
	workflow := f.Create()
	workflow.Status = status
	return workflow
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Ticket   *TicketFactory
	Workflow *WorkflowFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Ticket:   NewTicketFactory(),
		Workflow: NewWorkflowFactory(),
	}
}
