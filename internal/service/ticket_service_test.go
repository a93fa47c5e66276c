package service_test

import (
	"context"
	"testing"

	"support-portal-backend/internal/database/models"
	apperrors "support-portal-backend/internal/errors"
	"support-portal-backend/internal/mocks"
	"support-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TicketServiceTestSuite tests the ticket business logic with mocked storage
type TicketServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ticketRepo *mocks.MockTicketRepositoryInterface
	notifier   *mocks.MockWorkflowNotifierInterface
	service    *service.TicketService
}

// SetupTest sets up the test suite
func (suite *TicketServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ticketRepo = mocks.NewMockTicketRepositoryInterface(suite.ctrl)
	suite.notifier = mocks.NewMockWorkflowNotifierInterface(suite.ctrl)
	suite.service = service.NewTicketService(suite.ticketRepo, suite.notifier, validator.New())
}

// TearDownTest cleans up after each test
func (suite *TicketServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests that creation persists the pair and then notifies
func (suite *TicketServiceTestSuite) TestCreate() {
	creatorID := uuid.New()

	suite.ticketRepo.EXPECT().
		CreateWithWorkflow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ticket *models.Ticket, workflow *models.Workflow) error {
			suite.Equal("VPN down", ticket.Title)
			suite.Equal("logisticsco", ticket.CustomerID)
			suite.Equal(creatorID, ticket.CreatedByID)
			suite.Equal(models.TicketStatusPending, ticket.Status)
			suite.Equal(models.WorkflowStatusTriggered, workflow.Status)
			suite.NotEmpty(workflow.TriggerData)
			ticket.ID = uuid.New()
			return nil
		})
	suite.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())

	resp, err := suite.service.Create(context.Background(), "logisticsco", creatorID, &service.CreateTicketRequest{
		Title:       "VPN down",
		Description: "Cannot reach the office VPN since this morning",
	})

	suite.NoError(err)
	suite.Equal("VPN down", resp.Title)
	suite.Equal("logisticsco", resp.CustomerID)
	suite.Equal(models.TicketStatusPending, resp.Status)
}

// TestCreateMissingFields tests that an empty title is rejected before storage
func (suite *TicketServiceTestSuite) TestCreateMissingFields() {
	_, err := suite.service.Create(context.Background(), "logisticsco", uuid.New(), &service.CreateTicketRequest{
		Title:       "",
		Description: "no title",
	})

	suite.True(apperrors.IsValidation(err))
}

// TestCreateTitleTooLong tests the title length bound
func (suite *TicketServiceTestSuite) TestCreateTitleTooLong() {
	title := make([]byte, 201)
	for i := range title {
		title[i] = 'x'
	}

	_, err := suite.service.Create(context.Background(), "logisticsco", uuid.New(), &service.CreateTicketRequest{
		Title:       string(title),
		Description: "desc",
	})

	suite.True(apperrors.IsValidation(err))
}

// TestList tests the tenant listing conversion
func (suite *TicketServiceTestSuite) TestList() {
	suite.ticketRepo.EXPECT().GetByTenant("logisticsco").Return([]models.Ticket{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "A", CustomerID: "logisticsco"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "B", CustomerID: "logisticsco"},
	}, nil)

	resp, err := suite.service.List("logisticsco")

	suite.NoError(err)
	suite.Len(resp.Tickets, 2)
	suite.Equal("A", resp.Tickets[0].Title)
}

// TestListEmpty tests that an empty tenant yields an empty, non-nil list
func (suite *TicketServiceTestSuite) TestListEmpty() {
	suite.ticketRepo.EXPECT().GetByTenant("ghost").Return([]models.Ticket{}, nil)

	resp, err := suite.service.List("ghost")

	suite.NoError(err)
	suite.NotNil(resp.Tickets)
	suite.Empty(resp.Tickets)
}

// TestListWithCreators tests that creator details are surfaced
func (suite *TicketServiceTestSuite) TestListWithCreators() {
	creator := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "reporter@logisticsco.com",
		Role:      models.UserRoleUser,
	}
	suite.ticketRepo.EXPECT().GetByTenantWithCreator("logisticsco").Return([]models.Ticket{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "A", CustomerID: "logisticsco", CreatedBy: creator},
	}, nil)

	resp, err := suite.service.ListWithCreators("logisticsco")

	suite.NoError(err)
	suite.Require().Len(resp.Tickets, 1)
	suite.Equal("reporter@logisticsco.com", resp.Tickets[0].CreatedByEmail)
	suite.Equal(models.UserRoleUser, resp.Tickets[0].CreatedByRole)
}

// TestTicketServiceTestSuite runs the test suite
func TestTicketServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TicketServiceTestSuite))
}
