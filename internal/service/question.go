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

// QuestionService handles business logic for questions. Deletion goes
// through the survey service so a question is detached from its owning
// survey before the row disappears.
type QuestionService struct {
	questionRepo  repository.QuestionRepositoryInterface
	surveyService SurveyServiceInterface
	validator     *validator.Validate
}

// NewQuestionService creates a new question service
func NewQuestionService(
	questionRepo repository.QuestionRepositoryInterface,
	surveyService SurveyServiceInterface,
	validator *validator.Validate,
) *QuestionService {
	return &QuestionService{
		questionRepo:  questionRepo,
		surveyService: surveyService,
		validator:     validator,
	}
}

// SaveQuestionRequest represents a question submission. A non-zero ID is
// reused on the overwritten record.
type SaveQuestionRequest struct {
	ID       uint                `json:"id,omitempty"`
	Body     string              `json:"body" validate:"required,max=500"`
	Leader   bool                `json:"leader"`
	Type     models.QuestionType `json:"type" validate:"required"`
	SurveyID uint                `json:"survey_id" validate:"required"`
}

// FindByID retrieves a question by ID
func (s *QuestionService) FindByID(id uint) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

// FindAllQuestions retrieves all questions
func (s *QuestionService) FindAllQuestions() ([]models.Question, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return questions, nil
}

// FindAllBySurveyID retrieves all questions owned by a survey, unordered
func (s *QuestionService) FindAllBySurveyID(surveyID uint) ([]models.Question, error) {
	questions, err := s.questionRepo.GetBySurveyID(surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for survey: %w", err)
	}
	return questions, nil
}

// Save persists a question. The referenced survey must already exist:
// question persistence never creates a survey implicitly. A submitted ID is
// reused on the overwritten record; otherwise a fresh record is created.
func (s *QuestionService) Save(req *SaveQuestionRequest) (*models.Question, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("invalid question type %q", req.Type)
	}

	if _, err := s.surveyService.FindByID(req.SurveyID); err != nil {
		return nil, err
	}

	question := &models.Question{
		Body:     req.Body,
		Leader:   req.Leader,
		Type:     req.Type,
		SurveyID: req.SurveyID,
	}

	if req.ID != 0 {
		if _, err := s.FindByID(req.ID); err != nil {
			return nil, err
		}
		question.ID = req.ID
		if err := s.questionRepo.Update(question); err != nil {
			return nil, fmt.Errorf("failed to update question: %w", err)
		}
		return question, nil
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

// Delete looks the question up, detaches it from its owning survey through
// the survey service, then deletes the row. Detach-then-delete keeps the
// survey's child collection from ever reporting a dropped question.
func (s *QuestionService) Delete(id uint) error {
	question, err := s.FindByID(id)
	if err != nil {
		return err
	}

	survey, err := s.surveyService.FindByID(question.SurveyID)
	if err != nil {
		return err
	}
	if err := s.surveyService.RemoveQuestion(survey, id); err != nil {
		return err
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}
