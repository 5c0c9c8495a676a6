package service_test

import (
	"testing"

	"apollo-survey-backend/internal/database/models"
	apperrors "apollo-survey-backend/internal/errors"
	"apollo-survey-backend/internal/mocks"
	"apollo-survey-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SurveyServiceTestSuite defines the test suite for SurveyService
type SurveyServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockSurveyRepo *mocks.MockSurveyRepositoryInterface
	mockTopicRepo  *mocks.MockTopicRepositoryInterface
	surveyService  *service.SurveyService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *SurveyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSurveyRepo = mocks.NewMockSurveyRepositoryInterface(suite.ctrl)
	suite.mockTopicRepo = mocks.NewMockTopicRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.surveyService = service.NewSurveyService(
		suite.mockSurveyRepo,
		suite.mockTopicRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *SurveyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSaveRequestAttachesAllQuestions tests that every submitted question
// comes back attached to the fresh survey
func (suite *SurveyServiceTestSuite) TestSaveRequestAttachesAllQuestions() {
	topic := &models.Topic{ID: 2, Title: "Retro"}
	questions := []service.QuestionSubmission{
		{Body: "How was your week?", Leader: false, Type: models.QuestionTypeText},
		{Body: "Team morale?", Leader: true, Type: models.QuestionTypeScale},
	}

	suite.mockTopicRepo.EXPECT().GetByID(uint(2)).Return(topic, nil).Times(1)
	suite.mockSurveyRepo.EXPECT().
		CreateWithQuestions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(survey *models.Survey, attached []models.Question) error {
			assert.Len(suite.T(), attached, 2)
			assert.Equal(suite.T(), "How was your week?", attached[0].Body)
			assert.True(suite.T(), attached[1].Leader)
			survey.ID = 6
			survey.Questions = attached
			return nil
		}).
		Times(1)

	survey, err := suite.surveyService.SaveRequest(questions, topic)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), survey)
	assert.Equal(suite.T(), uint(2), *survey.TopicID)
	assert.Len(suite.T(), survey.Questions, 2)
}

// TestSaveRequestNilTopic tests that a survey request needs an existing topic
func (suite *SurveyServiceTestSuite) TestSaveRequestNilTopic() {
	survey, err := suite.surveyService.SaveRequest(nil, nil)

	assert.Nil(suite.T(), survey)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTopicNotFound)
}

// TestSaveRequestMissingTopic tests a survey request against a topic the
// store no longer has
func (suite *SurveyServiceTestSuite) TestSaveRequestMissingTopic() {
	topic := &models.Topic{ID: 99}
	suite.mockTopicRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound).Times(1)

	survey, err := suite.surveyService.SaveRequest(nil, topic)

	assert.Nil(suite.T(), survey)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTopicNotFound)
}

// TestSaveRequestInvalidQuestion tests that one bad question aborts the whole
// request before anything is written
func (suite *SurveyServiceTestSuite) TestSaveRequestInvalidQuestion() {
	topic := &models.Topic{ID: 2}
	questions := []service.QuestionSubmission{
		{Body: "How was your week?", Type: models.QuestionTypeText},
		{Body: "Bad one", Type: models.QuestionType("ESSAY")},
	}

	suite.mockTopicRepo.EXPECT().GetByID(uint(2)).Return(topic, nil).Times(1)

	survey, err := suite.surveyService.SaveRequest(questions, topic)

	assert.Nil(suite.T(), survey)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "invalid question type")
}

// TestSaveVerifiesTopicReference tests that Save refuses a dangling topic reference
func (suite *SurveyServiceTestSuite) TestSaveVerifiesTopicReference() {
	topicID := uint(99)
	suite.mockTopicRepo.EXPECT().GetByID(topicID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	survey, err := suite.surveyService.Save(&models.Survey{TopicID: &topicID})

	assert.Nil(suite.T(), survey)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTopicNotFound)
}

// TestSaveCreatesWhenNew tests insert-or-replace on the insert side
func (suite *SurveyServiceTestSuite) TestSaveCreatesWhenNew() {
	suite.mockSurveyRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(survey *models.Survey) error {
			survey.ID = 6
			return nil
		}).
		Times(1)

	survey, err := suite.surveyService.Save(&models.Survey{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(6), survey.ID)
}

// TestRemoveQuestionDetaches tests that the question leaves the survey's
// child collection and the rest stays
func (suite *SurveyServiceTestSuite) TestRemoveQuestionDetaches() {
	survey := &models.Survey{
		ID: 6,
		Questions: []models.Question{
			{ID: 1, Body: "First", SurveyID: 6},
			{ID: 2, Body: "Second", SurveyID: 6},
		},
	}

	err := suite.surveyService.RemoveQuestion(survey, 1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), survey.Questions, 1)
	assert.Equal(suite.T(), uint(2), survey.Questions[0].ID)
}

// TestRemoveQuestionAbsent tests detaching a question the survey never had
func (suite *SurveyServiceTestSuite) TestRemoveQuestionAbsent() {
	survey := &models.Survey{ID: 6, Questions: []models.Question{{ID: 2, SurveyID: 6}}}

	err := suite.surveyService.RemoveQuestion(survey, 42)

	assert.ErrorIs(suite.T(), err, apperrors.ErrQuestionNotFound)
	assert.Len(suite.T(), survey.Questions, 1)
}

// TestRemoveQuestionNilSurvey tests detaching from no survey at all
func (suite *SurveyServiceTestSuite) TestRemoveQuestionNilSurvey() {
	err := suite.surveyService.RemoveQuestion(nil, 1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSurveyNotFound)
}

// TestDeleteCascades tests that deleting a survey takes its contexts and
// questions with it in one unit
func (suite *SurveyServiceTestSuite) TestDeleteCascades() {
	suite.mockSurveyRepo.EXPECT().GetByID(uint(6)).Return(&models.Survey{ID: 6}, nil).Times(1)
	suite.mockSurveyRepo.EXPECT().DeleteCascade(uint(6)).Return(nil).Times(1)

	err := suite.surveyService.Delete(6)

	assert.NoError(suite.T(), err)
}

// TestDeleteNotFound tests deleting a missing survey
func (suite *SurveyServiceTestSuite) TestDeleteNotFound() {
	suite.mockSurveyRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.surveyService.Delete(99)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSurveyNotFound)
}

// TestSurveyServiceTestSuite runs the test suite
func TestSurveyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SurveyServiceTestSuite))
}
