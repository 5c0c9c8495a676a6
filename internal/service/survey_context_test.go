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

// SurveyContextServiceTestSuite defines the test suite for SurveyContextService
type SurveyContextServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockContextRepo *mocks.MockSurveyContextRepositoryInterface
	mockSurveyRepo  *mocks.MockSurveyRepositoryInterface
	contextService  *service.SurveyContextService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *SurveyContextServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContextRepo = mocks.NewMockSurveyContextRepositoryInterface(suite.ctrl)
	suite.mockSurveyRepo = mocks.NewMockSurveyRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.contextService = service.NewSurveyContextService(
		suite.mockContextRepo,
		suite.mockSurveyRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *SurveyContextServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSave tests persisting a context against an existing survey
func (suite *SurveyContextServiceTestSuite) TestSave() {
	req := &service.SaveContextRequest{Description: "Sprint retro", SurveyID: 6}

	suite.mockSurveyRepo.EXPECT().GetByID(uint(6)).Return(&models.Survey{ID: 6}, nil).Times(1)
	suite.mockContextRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(context *models.SurveyContext) error {
			assert.Equal(suite.T(), uint(6), context.SurveyID)
			context.ID = 2
			return nil
		}).
		Times(1)

	context, err := suite.contextService.Save(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(2), context.ID)
}

// TestSaveMissingSurvey tests that a context cannot dangle off a missing survey
func (suite *SurveyContextServiceTestSuite) TestSaveMissingSurvey() {
	req := &service.SaveContextRequest{Description: "Orphan", SurveyID: 99}

	suite.mockSurveyRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound).Times(1)

	context, err := suite.contextService.Save(req)

	assert.Nil(suite.T(), context)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSurveyNotFound)
}

// TestSaveValidationError tests that a blank description is rejected
func (suite *SurveyContextServiceTestSuite) TestSaveValidationError() {
	req := &service.SaveContextRequest{SurveyID: 6}

	context, err := suite.contextService.Save(req)

	assert.Nil(suite.T(), context)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestDelete tests removing a context
func (suite *SurveyContextServiceTestSuite) TestDelete() {
	suite.mockContextRepo.EXPECT().
		GetByID(uint(2)).
		Return(&models.SurveyContext{ID: 2, SurveyID: 6}, nil).
		Times(1)
	suite.mockContextRepo.EXPECT().Delete(uint(2)).Return(nil).Times(1)

	err := suite.contextService.Delete(2)

	assert.NoError(suite.T(), err)
}

// TestDeleteNotFound tests removing a missing context
func (suite *SurveyContextServiceTestSuite) TestDeleteNotFound() {
	suite.mockContextRepo.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.contextService.Delete(99)

	assert.ErrorIs(suite.T(), err, apperrors.ErrContextNotFound)
}

// TestSurveyContextServiceTestSuite runs the test suite
func TestSurveyContextServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SurveyContextServiceTestSuite))
}
