package repository

import (
	"apollo-survey-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	SearchByUsername(fragment string) ([]models.User, error)
	GetAll() ([]models.User, error)
	UpdateWithRoles(user *models.User, insert []models.UserRole, remove []models.UserRole) error
	DeleteWithAssociations(id uint) error
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByID(id uint) (*models.Role, error)
	GetByName(name string) (*models.Role, error)
	GetAll() ([]models.Role, error)
}

// UserRoleRepositoryInterface defines the interface for user-role association operations
type UserRoleRepositoryInterface interface {
	Create(userRole *models.UserRole) error
	GetByUserID(userID uint) ([]models.UserRole, error)
	Exists(userID, roleID uint) (bool, error)
	Delete(userID, roleID uint) error
}

// TopicRepositoryInterface defines the interface for topic repository operations
type TopicRepositoryInterface interface {
	Create(topic *models.Topic) error
	CreateWithSurvey(topic *models.Topic) error
	GetByID(id uint) (*models.Topic, error)
	GetAll() ([]models.Topic, error)
	UpdateWithMembers(topic *models.Topic, insert []models.TopicUser, remove []models.TopicUser) error
	DeleteWithMembers(id uint) error
}

// TopicUserRepositoryInterface defines the interface for topic membership operations
type TopicUserRepositoryInterface interface {
	GetByTopicID(topicID uint) ([]models.TopicUser, error)
	GetByUserID(userID uint) ([]models.TopicUser, error)
	Exists(topicID, userID uint) (bool, error)
}

// SurveyRepositoryInterface defines the interface for survey repository operations
type SurveyRepositoryInterface interface {
	Create(survey *models.Survey) error
	GetByID(id uint) (*models.Survey, error)
	GetAll() ([]models.Survey, error)
	Update(survey *models.Survey) error
	CreateWithQuestions(survey *models.Survey, questions []models.Question) error
	DeleteCascade(id uint) error
}

// SurveyContextRepositoryInterface defines the interface for survey context operations
type SurveyContextRepositoryInterface interface {
	Create(context *models.SurveyContext) error
	GetByID(id uint) (*models.SurveyContext, error)
	GetAll() ([]models.SurveyContext, error)
	GetBySurveyID(surveyID uint) ([]models.SurveyContext, error)
	Delete(id uint) error
}

// QuestionRepositoryInterface defines the interface for question repository operations
type QuestionRepositoryInterface interface {
	Create(question *models.Question) error
	Update(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	GetAll() ([]models.Question, error)
	GetBySurveyID(surveyID uint) ([]models.Question, error)
	Delete(id uint) error
}
