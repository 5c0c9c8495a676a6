package service

import (
	"apollo-survey-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	FindByID(id uint) (*models.User, error)
	FindByName(username string) (*models.User, error)
	FindByNameContaining(fragment string) ([]models.User, error)
	FindAll() ([]models.User, error)
	Save(req *SaveUserRequest) (*models.User, error)
	Update(req *SaveUserRequest, id uint, principal *models.User) (*models.User, error)
	AddUserRole(userID, roleID uint) error
	DeleteUserRole(userID, roleID uint) error
	Delete(id uint) error
}

// RoleServiceInterface defines the interface for role service
type RoleServiceInterface interface {
	FindByID(id uint) (*models.Role, error)
	FindByName(name string) (*models.Role, error)
	FindAll() ([]models.Role, error)
	Save(role *models.Role) (*models.Role, error)
}

// TopicServiceInterface defines the interface for topic service
type TopicServiceInterface interface {
	FindByID(id uint) (*models.Topic, error)
	FindAllTopics() ([]models.Topic, error)
	Save(req *SaveTopicRequest) (*models.Topic, error)
	Delete(id uint) error
}

// SurveyServiceInterface defines the interface for survey service
type SurveyServiceInterface interface {
	FindByID(id uint) (*models.Survey, error)
	FindAllSurveys() ([]models.Survey, error)
	Save(survey *models.Survey) (*models.Survey, error)
	SaveRequest(questions []QuestionSubmission, topic *models.Topic) (*models.Survey, error)
	RemoveQuestion(survey *models.Survey, questionID uint) error
	Delete(id uint) error
}

// SurveyContextServiceInterface defines the interface for survey context service
type SurveyContextServiceInterface interface {
	FindByID(id uint) (*models.SurveyContext, error)
	FindAll() ([]models.SurveyContext, error)
	Save(req *SaveContextRequest) (*models.SurveyContext, error)
	Delete(id uint) error
}

// QuestionServiceInterface defines the interface for question service
type QuestionServiceInterface interface {
	FindByID(id uint) (*models.Question, error)
	FindAllQuestions() ([]models.Question, error)
	FindAllBySurveyID(surveyID uint) ([]models.Question, error)
	Save(req *SaveQuestionRequest) (*models.Question, error)
	Delete(id uint) error
}
