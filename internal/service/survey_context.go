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

// SurveyContextService handles business logic for survey contexts
type SurveyContextService struct {
	contextRepo repository.SurveyContextRepositoryInterface
	surveyRepo  repository.SurveyRepositoryInterface
	validator   *validator.Validate
}

// NewSurveyContextService creates a new survey context service
func NewSurveyContextService(
	contextRepo repository.SurveyContextRepositoryInterface,
	surveyRepo repository.SurveyRepositoryInterface,
	validator *validator.Validate,
) *SurveyContextService {
	return &SurveyContextService{
		contextRepo: contextRepo,
		surveyRepo:  surveyRepo,
		validator:   validator,
	}
}

// SaveContextRequest represents a survey context submission
type SaveContextRequest struct {
	Description string `json:"description" validate:"required,max=200"`
	SurveyID    uint   `json:"survey_id" validate:"required"`
}

// FindByID retrieves a survey context by ID
func (s *SurveyContextService) FindByID(id uint) (*models.SurveyContext, error) {
	context, err := s.contextRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContextNotFound
		}
		return nil, fmt.Errorf("failed to get context: %w", err)
	}
	return context, nil
}

// FindAll retrieves all survey contexts
func (s *SurveyContextService) FindAll() ([]models.SurveyContext, error) {
	contexts, err := s.contextRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get contexts: %w", err)
	}
	return contexts, nil
}

// Save persists a new survey context. The owning survey must already exist.
func (s *SurveyContextService) Save(req *SaveContextRequest) (*models.SurveyContext, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.surveyRepo.GetByID(req.SurveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to verify survey: %w", err)
	}

	context := &models.SurveyContext{
		Description: req.Description,
		SurveyID:    req.SurveyID,
	}
	if err := s.contextRepo.Create(context); err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	return context, nil
}

// Delete removes a survey context
func (s *SurveyContextService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.contextRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}
	return nil
}
