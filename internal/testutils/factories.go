package testutils

import (
	"apollo-survey-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username
func (f *UserFactory) Create() *models.User {
	// Unique username fragment to dodge the unique index across tests
	fragment := uuid.New().String()[:8]
	return &models.User{
		Username:     "user-" + fragment,
		PrimaryEmail: fragment + "@test.com",
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.PrimaryEmail = username + "@test.com"
	return user
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role with a unique name
func (f *RoleFactory) Create() *models.Role {
	return &models.Role{
		Name: "role-" + uuid.New().String()[:8],
	}
}

// WithName sets a custom name for the role
func (f *RoleFactory) WithName(name string) *models.Role {
	role := f.Create()
	role.Name = name
	return role
}

// SurveyFactory provides methods to create test Survey data
type SurveyFactory struct{}

// NewSurveyFactory creates a new SurveyFactory
func NewSurveyFactory() *SurveyFactory {
	return &SurveyFactory{}
}

// Create creates a bootstrap survey not yet referenced by any topic
func (f *SurveyFactory) Create() *models.Survey {
	return &models.Survey{}
}

// WithTopic sets the owning topic for the survey
func (f *SurveyFactory) WithTopic(topicID uint) *models.Survey {
	survey := f.Create()
	survey.TopicID = &topicID
	return survey
}

// TopicFactory provides methods to create test Topic data
type TopicFactory struct{}

// NewTopicFactory creates a new TopicFactory
func NewTopicFactory() *TopicFactory {
	return &TopicFactory{}
}

// Create creates a test Topic. Owner and survey must be set by the caller
// before persisting; both columns are not null.
func (f *TopicFactory) Create() *models.Topic {
	return &models.Topic{
		Title:     "Topic " + uuid.New().String()[:8],
		Frequency: models.TopicFrequencyWeekly,
	}
}

// WithOwnerAndSurvey wires the required references
func (f *TopicFactory) WithOwnerAndSurvey(ownerID, surveyID uint) *models.Topic {
	topic := f.Create()
	topic.OwnerID = ownerID
	topic.SurveyID = surveyID
	return topic
}

// ContextFactory provides methods to create test SurveyContext data
type ContextFactory struct{}

// NewContextFactory creates a new ContextFactory
func NewContextFactory() *ContextFactory {
	return &ContextFactory{}
}

// WithSurvey creates a context attached to the survey
func (f *ContextFactory) WithSurvey(surveyID uint) *models.SurveyContext {
	return &models.SurveyContext{
		Description: "Context " + uuid.New().String()[:8],
		SurveyID:    surveyID,
	}
}

// QuestionFactory provides methods to create test Question data
type QuestionFactory struct{}

// NewQuestionFactory creates a new QuestionFactory
func NewQuestionFactory() *QuestionFactory {
	return &QuestionFactory{}
}

// WithSurvey creates a question attached to the survey
func (f *QuestionFactory) WithSurvey(surveyID uint) *models.Question {
	return &models.Question{
		Body:     "Question " + uuid.New().String()[:8],
		Type:     models.QuestionTypeText,
		SurveyID: surveyID,
	}
}

// Leader creates a leader-only question attached to the survey
func (f *QuestionFactory) Leader(surveyID uint) *models.Question {
	question := f.WithSurvey(surveyID)
	question.Leader = true
	question.Type = models.QuestionTypeScale
	return question
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Role     *RoleFactory
	Survey   *SurveyFactory
	Topic    *TopicFactory
	Context  *ContextFactory
	Question *QuestionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Role:     NewRoleFactory(),
		Survey:   NewSurveyFactory(),
		Topic:    NewTopicFactory(),
		Context:  NewContextFactory(),
		Question: NewQuestionFactory(),
	}
}
