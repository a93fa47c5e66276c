package service_test

import (
	"testing"

	"support-portal-backend/internal/config"
	"support-portal-backend/internal/database/models"
	apperrors "support-portal-backend/internal/errors"
	"support-portal-backend/internal/mocks"
	"support-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WebhookServiceTestSuite tests the workflow completion callback handling
type WebhookServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ticketRepo   *mocks.MockTicketRepositoryInterface
	workflowRepo *mocks.MockWorkflowRepositoryInterface
	service      *service.WebhookService
}

// SetupTest sets up the test suite
func (suite *WebhookServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ticketRepo = mocks.NewMockTicketRepositoryInterface(suite.ctrl)
	suite.workflowRepo = mocks.NewMockWorkflowRepositoryInterface(suite.ctrl)
	cfg := &config.Config{SharedSecret: "hook-secret"}
	suite.service = service.NewWebhookService(cfg, suite.ticketRepo, suite.workflowRepo)
}

// TearDownTest cleans up after each test
func (suite *WebhookServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WebhookServiceTestSuite) storedTicket(customerID string) *models.Ticket {
	return &models.Ticket{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Title:      "Broken scanner",
		Status:     models.TicketStatusPending,
		CustomerID: customerID,
	}
}

// TestCompleteTicket tests the happy path: secret verified, ticket resolved
// without tenant filter, updates scoped by the stored tenant id
func (suite *WebhookServiceTestSuite) TestCompleteTicket() {
	ticket := suite.storedTicket("retailgmbh")
	done := *ticket
	done.Status = models.TicketStatusDone

	suite.ticketRepo.EXPECT().GetByID(ticket.ID).Return(ticket, nil)
	suite.ticketRepo.EXPECT().
		UpdateStatusScoped(ticket.ID, "retailgmbh", models.TicketStatusDone).
		Return(&done, nil)
	suite.workflowRepo.EXPECT().
		CompleteByTicketID(ticket.ID, "retailgmbh", models.WorkflowStatusCompleted, gomock.Any()).
		Return(&models.Workflow{}, nil)

	resp, err := suite.service.CompleteTicket(&service.WebhookRequest{
		TicketID: ticket.ID.String(),
		Secret:   "hook-secret",
	})

	suite.NoError(err)
	suite.Equal(models.TicketStatusDone, resp.Status)
	suite.Equal("retailgmbh", resp.CustomerID)
}

// TestCompleteTicketWrongSecret tests that a bad secret is rejected before
// any storage access
func (suite *WebhookServiceTestSuite) TestCompleteTicketWrongSecret() {
	_, err := suite.service.CompleteTicket(&service.WebhookRequest{
		TicketID: uuid.New().String(),
		Secret:   "wrong",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidSharedSecret)
	suite.True(apperrors.IsAuthorization(err))
}

// TestCompleteTicketMissingID tests the missing ticketId validation
func (suite *WebhookServiceTestSuite) TestCompleteTicketMissingID() {
	_, err := suite.service.CompleteTicket(&service.WebhookRequest{Secret: "hook-secret"})
	suite.True(apperrors.IsValidation(err))
}

// TestCompleteTicketMalformedID tests the UUID validation
func (suite *WebhookServiceTestSuite) TestCompleteTicketMalformedID() {
	_, err := suite.service.CompleteTicket(&service.WebhookRequest{
		TicketID: "not-a-uuid",
		Secret:   "hook-secret",
	})
	suite.True(apperrors.IsValidation(err))
}

// TestCompleteTicketInvalidStatus tests rejection of an unknown status value
func (suite *WebhookServiceTestSuite) TestCompleteTicketInvalidStatus() {
	_, err := suite.service.CompleteTicket(&service.WebhookRequest{
		TicketID: uuid.New().String(),
		Secret:   "hook-secret",
		Status:   "Exploded",
	})
	suite.True(apperrors.IsValidation(err))
}

// TestCompleteTicketUnknownTicket tests the not-found path
func (suite *WebhookServiceTestSuite) TestCompleteTicketUnknownTicket() {
	id := uuid.New()
	suite.ticketRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.CompleteTicket(&service.WebhookRequest{
		TicketID: id.String(),
		Secret:   "hook-secret",
	})

	suite.True(apperrors.IsNotFound(err))
}

// TestCompleteTicketWithoutWorkflowRecord tests that a missing workflow
// record does not fail the ticket update
func (suite *WebhookServiceTestSuite) TestCompleteTicketWithoutWorkflowRecord() {
	ticket := suite.storedTicket("logisticsco")
	done := *ticket
	done.Status = models.TicketStatusDone

	suite.ticketRepo.EXPECT().GetByID(ticket.ID).Return(ticket, nil)
	suite.ticketRepo.EXPECT().
		UpdateStatusScoped(ticket.ID, "logisticsco", models.TicketStatusDone).
		Return(&done, nil)
	suite.workflowRepo.EXPECT().
		CompleteByTicketID(ticket.ID, "logisticsco", models.WorkflowStatusCompleted, gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.CompleteTicket(&service.WebhookRequest{
		TicketID: ticket.ID.String(),
		Secret:   "hook-secret",
	})

	suite.NoError(err)
	suite.Equal(models.TicketStatusDone, resp.Status)
}

// TestCompleteTicketExplicitPending tests that an explicit valid status is applied
func (suite *WebhookServiceTestSuite) TestCompleteTicketExplicitPending() {
	ticket := suite.storedTicket("logisticsco")

	suite.ticketRepo.EXPECT().GetByID(ticket.ID).Return(ticket, nil)
	suite.ticketRepo.EXPECT().
		UpdateStatusScoped(ticket.ID, "logisticsco", models.TicketStatusPending).
		Return(ticket, nil)
	suite.workflowRepo.EXPECT().
		CompleteByTicketID(ticket.ID, "logisticsco", models.WorkflowStatusCompleted, gomock.Any()).
		Return(&models.Workflow{}, nil)

	resp, err := suite.service.CompleteTicket(&service.WebhookRequest{
		TicketID: ticket.ID.String(),
		Secret:   "hook-secret",
		Status:   "Pending",
	})

	suite.NoError(err)
	suite.Equal(models.TicketStatusPending, resp.Status)
}

// TestWebhookServiceTestSuite runs the test suite
func TestWebhookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookServiceTestSuite))
}
