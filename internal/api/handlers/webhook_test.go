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

// WebhookHandlerTestSuite defines the test suite for WebhookHandler
type WebhookHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockWebhookServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockWebhookServiceInterface(suite.ctrl)
	handler := handlers.NewWebhookHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/webhook/ticket-done", handler.TicketDone)
}

// TearDownTest cleans up after each test
func (suite *WebhookHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WebhookHandlerTestSuite) post(body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/ticket-done", &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestTicketDone tests a successful callback
func (suite *WebhookHandlerTestSuite) TestTicketDone() {
	ticketID := uuid.New()
	suite.mockService.EXPECT().
		CompleteTicket(gomock.Any()).
		DoAndReturn(func(req *service.WebhookRequest) (*service.TicketResponse, error) {
			suite.Equal(ticketID.String(), req.TicketID)
			return &service.TicketResponse{ID: ticketID, Status: models.TicketStatusDone}, nil
		})

	recorder := suite.post(service.WebhookRequest{
		TicketID: ticketID.String(),
		Secret:   "hook-secret",
	})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Ticket updated successfully")
}

// TestTicketDoneWrongSecret tests the 403 mapping
func (suite *WebhookHandlerTestSuite) TestTicketDoneWrongSecret() {
	suite.mockService.EXPECT().
		CompleteTicket(gomock.Any()).
		Return(nil, apperrors.ErrInvalidSharedSecret)

	recorder := suite.post(service.WebhookRequest{TicketID: uuid.New().String(), Secret: "bad"})

	suite.Equal(http.StatusForbidden, recorder.Code)
	suite.Contains(recorder.Body.String(), "Invalid shared secret")
}

// TestTicketDoneValidationError tests the 400 mapping
func (suite *WebhookHandlerTestSuite) TestTicketDoneValidationError() {
	suite.mockService.EXPECT().
		CompleteTicket(gomock.Any()).
		Return(nil, apperrors.NewValidationError("ticketId", "must be a valid UUID"))

	recorder := suite.post(service.WebhookRequest{TicketID: "nope", Secret: "hook-secret"})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestTicketDoneUnknownTicket tests the 404 mapping
func (suite *WebhookHandlerTestSuite) TestTicketDoneUnknownTicket() {
	suite.mockService.EXPECT().
		CompleteTicket(gomock.Any()).
		Return(nil, apperrors.ErrTicketNotFound)

	recorder := suite.post(service.WebhookRequest{TicketID: uuid.New().String(), Secret: "hook-secret"})

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.Contains(recorder.Body.String(), "Ticket not found")
}

// TestTicketDoneInternalError tests the opaque 500 mapping
func (suite *WebhookHandlerTestSuite) TestTicketDoneInternalError() {
	suite.mockService.EXPECT().
		CompleteTicket(gomock.Any()).
		Return(nil, errors.New("db down"))

	recorder := suite.post(service.WebhookRequest{TicketID: uuid.New().String(), Secret: "hook-secret"})

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.NotContains(recorder.Body.String(), "db down")
}

// TestWebhookHandlerTestSuite runs the test suite
func TestWebhookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}
