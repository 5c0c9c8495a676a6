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

// TopicServiceTestSuite defines the test suite for TopicService
type TopicServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTopicRepo     *mocks.MockTopicRepositoryInterface
	mockTopicUserRepo *mocks.MockTopicUserRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockSurveyRepo    *mocks.MockSurveyRepositoryInterface
	topicService      *service.TopicService
	validator         *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TopicServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTopicRepo = mocks.NewMockTopicRepositoryInterface(suite.ctrl)
	suite.mockTopicUserRepo = mocks.NewMockTopicUserRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockSurveyRepo = mocks.NewMockSurveyRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.topicService = service.NewTopicService(
		suite.mockTopicRepo,
		suite.mockTopicUserRepo,
		suite.mockUserRepo,
		suite.mockSurveyRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *TopicServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSaveNewTopicBootstrapsSurvey tests that a topic submitted without a
// survey gets a fresh one persisted and wired in
func (suite *TopicServiceTestSuite) TestSaveNewTopicBootstrapsSurvey() {
	req := &service.SaveTopicRequest{
		Title:     "Standup",
		OwnerID:   1,
		Frequency: models.TopicFrequencyDaily,
	}

	suite.mockUserRepo.EXPECT().GetByID(uint(1)).Return(&models.User{ID: 1}, nil).Times(1)
	suite.mockTopicRepo.EXPECT().
		CreateWithSurvey(gomock.Any()).
		DoAndReturn(func(topic *models.Topic) error {
			assert.Zero(suite.T(), topic.SurveyID)
			assert.Equal(suite.T(), []models.TopicUser{{UserID: 1}}, topic.Users)
			topic.SurveyID = 9
			topic.ID = 3
			return nil
		}).
		Times(1)
	suite.mockTopicRepo.EXPECT().
		GetByID(uint(3)).
		Return(&models.Topic{ID: 3, Title: "Standup", OwnerID: 1, SurveyID: 9}, nil).
		Times(1)

	topic, err := suite.topicService.Save(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), topic)
	assert.Equal(suite.T(), uint(9), topic.SurveyID)
}

// TestSaveOwnerAlwaysMember tests that the owner joins the membership set
// even when the submission omits them
func (suite *TopicServiceTestSuite) TestSaveOwnerAlwaysMember() {
	surveyID := uint(9)
	req := &service.SaveTopicRequest{
		Title:     "Retro",
		OwnerID:   1,
		SurveyID:  &surveyID,
		Frequency: models.TopicFrequencyWeekly,
		MemberIDs: []uint{2, 3},
	}

	suite.mockUserRepo.EXPECT().GetByID(uint(1)).Return(&models.User{ID: 1}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(uint(2)).Return(&models.User{ID: 2}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(uint(3)).Return(&models.User{ID: 3}, nil).Times(1)
	suite.mockSurveyRepo.EXPECT().GetByID(surveyID).Return(&models.Survey{ID: surveyID}, nil).Times(1)

	suite.mockTopicRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(topic *models.Topic) error {
			assert.Equal(suite.T(), []models.TopicUser{
				{UserID: 2},
				{UserID: 3},
				{UserID: 1},
			}, topic.Users)
			topic.ID = 4
			return nil
		}).
		Times(1)
	suite.mockTopicRepo.EXPECT().GetByID(uint(4)).Return(&models.Topic{ID: 4}, nil).Times(1)

	_, err := suite.topicService.Save(req)

	assert.NoError(suite.T(), err)
}

// TestSaveReconcilesMembers tests that an overwrite inserts exactly the new
// memberships and removes exactly the unsubmitted ones
func (suite *TopicServiceTestSuite) TestSaveReconcilesMembers() {
	surveyID := uint(9)
	existing := &models.Topic{
		ID:        4,
		Title:     "Retro",
		OwnerID:   1,
		SurveyID:  9,
		Frequency: models.TopicFrequencyWeekly,
		Users: []models.TopicUser{
			{TopicID: 4, UserID: 1},
			{TopicID: 4, UserID: 2},
		},
	}
	req := &service.SaveTopicRequest{
		ID:        4,
		Title:     "Retro",
		OwnerID:   1,
		SurveyID:  &surveyID,
		Frequency: models.TopicFrequencyWeekly,
		MemberIDs: []uint{1, 3},
	}

	suite.mockUserRepo.EXPECT().GetByID(uint(1)).Return(&models.User{ID: 1}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(uint(3)).Return(&models.User{ID: 3}, nil).Times(1)
	suite.mockSurveyRepo.EXPECT().GetByID(surveyID).Return(&models.Survey{ID: surveyID}, nil).Times(1)
	suite.mockTopicRepo.EXPECT().GetByID(uint(4)).Return(existing, nil).Times(2)

	suite.mockTopicRepo.EXPECT().
		UpdateWithMembers(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(topic *models.Topic, insert, remove []models.TopicUser) error {
			assert.Equal(suite.T(), []models.TopicUser{{TopicID: 4, UserID: 3}}, insert)
			assert.Equal(suite.T(), []models.TopicUser{{TopicID: 4, UserID: 2}}, remove)
			return nil
		}).
		Times(1)

	_, err := suite.topicService.Save(req)

	assert.NoError(suite.T(), err)
}

// TestSaveInvalidFrequency tests that an unknown frequency is rejected
func (suite *TopicServiceTestSuite) TestSaveInvalidFrequency() {
	req := &service.SaveTopicRequest{
		Title:     "Standup",
		OwnerID:   1,
		Frequency: models.TopicFrequency("FORTNIGHTLY"),
	}

	topic, err := suite.topicService.Save(req)

	assert.Nil(suite.T(), topic)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "invalid topic frequency")
}

// TestSaveUnknownOwner tests that a missing owner is rejected
func (suite *TopicServiceTestSuite) TestSaveUnknownOwner() {
	req := &service.SaveTopicRequest{
		Title:     "Standup",
		OwnerID:   42,
		Frequency: models.TopicFrequencyDaily,
	}

	suite.mockUserRepo.EXPECT().GetByID(uint(42)).Return(nil, gorm.ErrRecordNotFound).Times(1)

	topic, err := suite.topicService.Save(req)

	assert.Nil(suite.T(), topic)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestSaveUnknownMemberWritesNothing tests that a save rejected on member
// verification persists nothing: no bootstrap survey, no topic. The strict
// mocks fail the test on any unexpected repository write.
func (suite *TopicServiceTestSuite) TestSaveUnknownMemberWritesNothing() {
	req := &service.SaveTopicRequest{
		Title:     "Standup",
		OwnerID:   1,
		Frequency: models.TopicFrequencyDaily,
		MemberIDs: []uint{5},
	}

	suite.mockUserRepo.EXPECT().GetByID(uint(1)).Return(&models.User{ID: 1}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(uint(5)).Return(nil, gorm.ErrRecordNotFound).Times(1)

	topic, err := suite.topicService.Save(req)

	assert.Nil(suite.T(), topic)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestSaveUnknownSurvey tests that a submitted survey reference must exist
func (suite *TopicServiceTestSuite) TestSaveUnknownSurvey() {
	surveyID := uint(77)
	req := &service.SaveTopicRequest{
		Title:     "Standup",
		OwnerID:   1,
		SurveyID:  &surveyID,
		Frequency: models.TopicFrequencyDaily,
	}

	suite.mockUserRepo.EXPECT().GetByID(uint(1)).Return(&models.User{ID: 1}, nil).Times(1)
	suite.mockSurveyRepo.EXPECT().GetByID(surveyID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	topic, err := suite.topicService.Save(req)

	assert.Nil(suite.T(), topic)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSurveyNotFound)
}

// TestSaveOverwriteOmittedSurveyRequestsBootstrap tests that a full overwrite
// without a survey reference hands a zero SurveyID to the repository, which
// bootstraps the replacement survey inside the update transaction
func (suite *TopicServiceTestSuite) TestSaveOverwriteOmittedSurveyRequestsBootstrap() {
	existing := &models.Topic{
		ID:        4,
		Title:     "Retro",
		OwnerID:   1,
		SurveyID:  9,
		Frequency: models.TopicFrequencyWeekly,
		Users:     []models.TopicUser{{TopicID: 4, UserID: 1}},
	}
	req := &service.SaveTopicRequest{
		ID:        4,
		Title:     "Retro",
		OwnerID:   1,
		Frequency: models.TopicFrequencyWeekly,
	}

	suite.mockUserRepo.EXPECT().GetByID(uint(1)).Return(&models.User{ID: 1}, nil).Times(1)
	suite.mockTopicRepo.EXPECT().GetByID(uint(4)).Return(existing, nil).Times(2)
	suite.mockTopicRepo.EXPECT().
		UpdateWithMembers(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(topic *models.Topic, insert, remove []models.TopicUser) error {
			assert.Zero(suite.T(), topic.SurveyID)
			topic.SurveyID = 12
			return nil
		}).
		Times(1)

	_, err := suite.topicService.Save(req)

	assert.NoError(suite.T(), err)
}

// TestDeleteSparesSurvey tests that deleting a topic removes memberships but
// never touches the referenced survey
func (suite *TopicServiceTestSuite) TestDeleteSparesSurvey() {
	suite.mockTopicRepo.EXPECT().
		GetByID(uint(4)).
		Return(&models.Topic{ID: 4, SurveyID: 9}, nil).
		Times(1)
	suite.mockTopicRepo.EXPECT().DeleteWithMembers(uint(4)).Return(nil).Times(1)

	err := suite.topicService.Delete(4)

	assert.NoError(suite.T(), err)
}

// TestDeleteNotFound tests deleting a missing topic
func (suite *TopicServiceTestSuite) TestDeleteNotFound() {
	suite.mockTopicRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.topicService.Delete(99)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTopicNotFound)
}

// TestTopicServiceTestSuite runs the test suite
func TestTopicServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TopicServiceTestSuite))
}
