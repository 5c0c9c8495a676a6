package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"apollo-survey-backend/internal/api/handlers"
	"apollo-survey-backend/internal/database/models"
	apperrors "apollo-survey-backend/internal/errors"
	"apollo-survey-backend/internal/mocks"
	"apollo-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TopicHandlerTestSuite defines the test suite for TopicHandler
type TopicHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTopicServiceInterface
	handler     *handlers.TopicHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *TopicHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTopicServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTopicHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/topics", suite.handler.ListTopics)
	suite.router.GET("/topics/:id", suite.handler.GetTopic)
	suite.router.POST("/topics", suite.handler.CreateTopic)
	suite.router.PUT("/topics/:id", suite.handler.UpdateTopic)
	suite.router.DELETE("/topics/:id", suite.handler.DeleteTopic)
}

// TearDownTest cleans up after each test
func (suite *TopicHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TopicHandlerTestSuite) TestGetTopicNotFound() {
	suite.mockService.EXPECT().FindByID(uint(99)).Return(nil, apperrors.ErrTopicNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/topics/99", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TopicHandlerTestSuite) TestCreateTopic() {
	created := &models.Topic{ID: 2, Title: "Weekly retrospective", OwnerID: 1, Frequency: models.TopicFrequencyFriday}
	suite.mockService.EXPECT().Save(gomock.Any()).DoAndReturn(func(req *service.SaveTopicRequest) (*models.Topic, error) {
		suite.Zero(req.ID)
		suite.Equal(models.TopicFrequencyFriday, req.Frequency)
		return created, nil
	})

	payload := `{"title":"Weekly retrospective","owner_id":1,"frequency":"FRIDAY","member_ids":[4]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/topics", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *TopicHandlerTestSuite) TestCreateTopicInvalidFrequency() {
	suite.mockService.EXPECT().Save(gomock.Any()).Return(nil, errors.New("invalid topic frequency: FORTNIGHTLY"))

	payload := `{"title":"Weekly retrospective","owner_id":1,"frequency":"FORTNIGHTLY"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/topics", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TopicHandlerTestSuite) TestCreateTopicUnknownOwner() {
	suite.mockService.EXPECT().Save(gomock.Any()).Return(nil, apperrors.ErrUserNotFound)

	payload := `{"title":"Weekly retrospective","owner_id":77,"frequency":"FRIDAY"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/topics", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

// TestUpdateTopicUsesPathID tests that the path ID wins over any ID in the body
func (suite *TopicHandlerTestSuite) TestUpdateTopicUsesPathID() {
	updated := &models.Topic{ID: 2, Title: "Renamed"}
	suite.mockService.EXPECT().Save(gomock.Any()).DoAndReturn(func(req *service.SaveTopicRequest) (*models.Topic, error) {
		suite.Equal(uint(2), req.ID)
		return updated, nil
	})

	payload := `{"id":42,"title":"Renamed","owner_id":1,"frequency":"FRIDAY"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/topics/2", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TopicHandlerTestSuite) TestDeleteTopic() {
	suite.mockService.EXPECT().Delete(uint(2)).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/topics/2", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TopicHandlerTestSuite) TestDeleteTopicNotFound() {
	suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrTopicNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/topics/99", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

// TestTopicHandlerTestSuite runs the test suite
func TestTopicHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TopicHandlerTestSuite))
}
