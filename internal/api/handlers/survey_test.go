package handlers_test

import (
	"bytes"
	"encoding/json"
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

// SurveyHandlerTestSuite defines the test suite for SurveyHandler
type SurveyHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockService      *mocks.MockSurveyServiceInterface
	mockTopicService *mocks.MockTopicServiceInterface
	handler          *handlers.SurveyHandler
	router           *gin.Engine
}

// SetupTest sets up the test suite
func (suite *SurveyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSurveyServiceInterface(suite.ctrl)
	suite.mockTopicService = mocks.NewMockTopicServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSurveyHandler(suite.mockService, suite.mockTopicService)

	suite.router = gin.New()
	suite.router.GET("/surveys", suite.handler.ListSurveys)
	suite.router.GET("/surveys/:id", suite.handler.GetSurvey)
	suite.router.POST("/surveys", suite.handler.CreateSurvey)
	suite.router.DELETE("/surveys/:id", suite.handler.DeleteSurvey)
	suite.router.POST("/topics/:id/surveys", suite.handler.CreateSurveyRequest)
}

// TearDownTest cleans up after each test
func (suite *SurveyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SurveyHandlerTestSuite) TestGetSurvey() {
	survey := &models.Survey{ID: 6}
	suite.mockService.EXPECT().FindByID(uint(6)).Return(survey, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/surveys/6", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *SurveyHandlerTestSuite) TestGetSurveyNotFound() {
	suite.mockService.EXPECT().FindByID(uint(99)).Return(nil, apperrors.ErrSurveyNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/surveys/99", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

// TestCreateSurveyRequest tests the full request flow: topic lookup, then one
// atomic save of the survey with all submitted questions
func (suite *SurveyHandlerTestSuite) TestCreateSurveyRequest() {
	topic := &models.Topic{ID: 2, Title: "Weekly retrospective"}
	topicID := uint(2)
	created := &models.Survey{ID: 7, TopicID: &topicID, Questions: []models.Question{
		{ID: 1, Body: "How was your week?", Type: models.QuestionTypeText, SurveyID: 7},
		{ID: 2, Body: "Team morale?", Type: models.QuestionTypeScale, SurveyID: 7},
	}}

	suite.mockTopicService.EXPECT().FindByID(uint(2)).Return(topic, nil)
	suite.mockService.EXPECT().SaveRequest(gomock.Any(), topic).DoAndReturn(
		func(questions []service.QuestionSubmission, t *models.Topic) (*models.Survey, error) {
			suite.Len(questions, 2)
			return created, nil
		})

	payload := `[{"body":"How was your week?","type":"TEXT"},{"body":"Team morale?","type":"SCALE"}]`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/topics/2/surveys", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var got models.Survey
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Questions, 2)
}

func (suite *SurveyHandlerTestSuite) TestCreateSurveyRequestMissingTopic() {
	suite.mockTopicService.EXPECT().FindByID(uint(99)).Return(nil, apperrors.ErrTopicNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/topics/99/surveys", bytes.NewBufferString(`[]`))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SurveyHandlerTestSuite) TestCreateSurveyRequestInvalidQuestion() {
	topic := &models.Topic{ID: 2}
	suite.mockTopicService.EXPECT().FindByID(uint(2)).Return(topic, nil)
	suite.mockService.EXPECT().SaveRequest(gomock.Any(), topic).Return(nil, errors.New("invalid question type: ESSAY"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/topics/2/surveys", bytes.NewBufferString(`[{"body":"x","type":"ESSAY"}]`))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SurveyHandlerTestSuite) TestDeleteSurvey() {
	suite.mockService.EXPECT().Delete(uint(6)).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/surveys/6", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *SurveyHandlerTestSuite) TestDeleteSurveyNotFound() {
	suite.mockService.EXPECT().Delete(uint(99)).Return(apperrors.ErrSurveyNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/surveys/99", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

// TestSurveyHandlerTestSuite runs the test suite
func TestSurveyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SurveyHandlerTestSuite))
}
