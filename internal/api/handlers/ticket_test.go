package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"support-portal-backend/internal/api/handlers"
	"support-portal-backend/internal/database/models"
	apperrors "support-portal-backend/internal/errors"
	"support-portal-backend/internal/mocks"
	"support-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TicketHandlerTestSuite defines the test suite for TicketHandler
type TicketHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTicketServiceInterface
	handler     *handlers.TicketHandler
	router      *gin.Engine
	userID      uuid.UUID
	customerID  string
}

// SetupTest sets up the test suite
func (suite *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTicketServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTicketHandler(suite.mockService)
	suite.userID = uuid.New()
	suite.customerID = "logisticsco"

	// Stand-in for the auth middleware: inject the resolved identity triple
	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Set("customer_id", suite.customerID)
		c.Set("role", models.UserRoleUser)
	})
	suite.router.POST("/api/tickets", suite.handler.CreateTicket)
	suite.router.GET("/api/tickets", suite.handler.ListTickets)
	suite.router.GET("/api/admin/tickets", suite.handler.ListAdminTickets)
}

// TearDownTest cleans up after each test
func (suite *TicketHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TicketHandlerTestSuite) makeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestCreateTicket tests a successful ticket creation
func (suite *TicketHandlerTestSuite) TestCreateTicket() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), "logisticsco", suite.userID, gomock.Any()).
		Return(&service.TicketResponse{
			ID:         uuid.New(),
			Title:      "VPN down",
			Status:     models.TicketStatusPending,
			CustomerID: "logisticsco",
		}, nil)

	recorder := suite.makeRequest(http.MethodPost, "/api/tickets", service.CreateTicketRequest{
		Title:       "VPN down",
		Description: "Cannot connect",
	})

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.Contains(recorder.Body.String(), "VPN down")
}

// TestCreateTicketMissingFields tests the binding failure response
func (suite *TicketHandlerTestSuite) TestCreateTicketMissingFields() {
	recorder := suite.makeRequest(http.MethodPost, "/api/tickets", map[string]string{"title": "only title"})

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "Title and description are required")
}

// TestCreateTicketValidationError tests the service-level validation mapping
func (suite *TicketHandlerTestSuite) TestCreateTicketValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), "logisticsco", suite.userID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("", "title and description are required"))

	recorder := suite.makeRequest(http.MethodPost, "/api/tickets", service.CreateTicketRequest{
		Title:       " ",
		Description: "x",
	})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestCreateTicketServiceError tests the opaque 500 mapping
func (suite *TicketHandlerTestSuite) TestCreateTicketServiceError() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), "logisticsco", suite.userID, gomock.Any()).
		Return(nil, errors.New("db down"))

	recorder := suite.makeRequest(http.MethodPost, "/api/tickets", service.CreateTicketRequest{
		Title:       "VPN down",
		Description: "Cannot connect",
	})

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.NotContains(recorder.Body.String(), "db down")
}

// TestListTickets tests that listing is driven by the context tenant id
func (suite *TicketHandlerTestSuite) TestListTickets() {
	suite.mockService.EXPECT().List("logisticsco").Return(&service.TicketListResponse{
		Tickets: []service.TicketResponse{
			{ID: uuid.New(), Title: "A", CustomerID: "logisticsco"},
		},
	}, nil)

	recorder := suite.makeRequest(http.MethodGet, "/api/tickets", nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var resp service.TicketListResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.Len(resp.Tickets, 1)
}

// TestListTicketsUsesCallerTenant tests that switching the caller's tenant
// switches the listing, with no tenant input in the request itself
func (suite *TicketHandlerTestSuite) TestListTicketsUsesCallerTenant() {
	suite.customerID = "retailgmbh"
	suite.mockService.EXPECT().List("retailgmbh").Return(&service.TicketListResponse{
		Tickets: []service.TicketResponse{},
	}, nil)

	recorder := suite.makeRequest(http.MethodGet, "/api/tickets", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestListAdminTickets tests the admin listing with creator details
func (suite *TicketHandlerTestSuite) TestListAdminTickets() {
	suite.mockService.EXPECT().ListWithCreators("logisticsco").Return(&service.TicketListResponse{
		Tickets: []service.TicketResponse{
			{ID: uuid.New(), Title: "A", CustomerID: "logisticsco", CreatedByEmail: "reporter@logisticsco.com"},
		},
	}, nil)

	recorder := suite.makeRequest(http.MethodGet, "/api/admin/tickets", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "reporter@logisticsco.com")
}

// TestListTicketsServiceError tests the listing 500 mapping
func (suite *TicketHandlerTestSuite) TestListTicketsServiceError() {
	suite.mockService.EXPECT().List("logisticsco").Return(nil, errors.New("db down"))

	recorder := suite.makeRequest(http.MethodGet, "/api/tickets", nil)

	suite.Equal(http.StatusInternalServerError, recorder.Code)
}

// TestTicketHandlerTestSuite runs the test suite
func TestTicketHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}
