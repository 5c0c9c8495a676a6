package service

import (
	"errors"
	"fmt"

	"apollo-survey-backend/internal/database/models"
	apperrors "apollo-survey-backend/internal/errors"
	"apollo-survey-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SurveyService handles business logic for surveys and their child collections
type SurveyService struct {
	surveyRepo repository.SurveyRepositoryInterface
	topicRepo  repository.TopicRepositoryInterface
	validator  *validator.Validate
}

// NewSurveyService creates a new survey service
func NewSurveyService(
	surveyRepo repository.SurveyRepositoryInterface,
	topicRepo repository.TopicRepositoryInterface,
	validator *validator.Validate,
) *SurveyService {
	return &SurveyService{
		surveyRepo: surveyRepo,
		topicRepo:  topicRepo,
		validator:  validator,
	}
}

// QuestionSubmission is one question in a survey request
type QuestionSubmission struct {
	Body   string              `json:"body" validate:"required,max=500"`
	Leader bool                `json:"leader"`
	Type   models.QuestionType `json:"type" validate:"required"`
}

// FindByID retrieves a survey by ID with contexts and questions
func (s *SurveyService) FindByID(id uint) (*models.Survey, error) {
	survey, err := s.surveyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	return survey, nil
}

// FindAllSurveys retrieves all surveys
func (s *SurveyService) FindAllSurveys() ([]models.Survey, error) {
	surveys, err := s.surveyRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get surveys: %w", err)
	}
	return surveys, nil
}

// Save persists a survey, insert-or-replace by ID. It touches no contexts or
// questions beyond what the submission embeds.
func (s *SurveyService) Save(survey *models.Survey) (*models.Survey, error) {
	if survey.TopicID != nil {
		if _, err := s.topicRepo.GetByID(*survey.TopicID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTopicNotFound
			}
			return nil, fmt.Errorf("failed to verify topic: %w", err)
		}
	}

	if survey.ID == 0 {
		if err := s.surveyRepo.Create(survey); err != nil {
			return nil, fmt.Errorf("failed to create survey: %w", err)
		}
		return survey, nil
	}

	if err := s.surveyRepo.Update(survey); err != nil {
		return nil, fmt.Errorf("failed to update survey: %w", err)
	}
	return survey, nil
}

// SaveRequest builds a fresh survey owned by the topic and attaches every
// submitted question in one unit. Either the survey comes back with all
// questions persisted or nothing is written.
func (s *SurveyService) SaveRequest(questions []QuestionSubmission, topic *models.Topic) (*models.Survey, error) {
	if topic == nil {
		return nil, apperrors.ErrTopicNotFound
	}
	if _, err := s.topicRepo.GetByID(topic.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to verify topic: %w", err)
	}

	attached := make([]models.Question, 0, len(questions))
	for i := range questions {
		if err := s.validator.Struct(&questions[i]); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
		if !questions[i].Type.IsValid() {
			return nil, fmt.Errorf("invalid question type %q", questions[i].Type)
		}
		attached = append(attached, models.Question{
			Body:   questions[i].Body,
			Leader: questions[i].Leader,
			Type:   questions[i].Type,
		})
	}

	survey := &models.Survey{TopicID: &topic.ID}
	if err := s.surveyRepo.CreateWithQuestions(survey, attached); err != nil {
		return nil, fmt.Errorf("failed to save survey request: %w", err)
	}
	return survey, nil
}

// RemoveQuestion detaches a question from the survey's child collection.
// Detaching must happen before the question row is deleted so the survey
// never reports a child the store is about to drop. The caller performs the
// physical delete afterwards.
func (s *SurveyService) RemoveQuestion(survey *models.Survey, questionID uint) error {
	if survey == nil {
		return apperrors.ErrSurveyNotFound
	}
	for i, question := range survey.Questions {
		if question.ID == questionID {
			survey.Questions = append(survey.Questions[:i], survey.Questions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrQuestionNotFound
}

// Delete removes a survey and cascade-deletes its contexts and questions in
// the same unit. Cascade was chosen over refusal so stale survey instances
// can be retired without a child-by-child teardown.
func (s *SurveyService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.surveyRepo.DeleteCascade(id); err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}
	return nil
}
