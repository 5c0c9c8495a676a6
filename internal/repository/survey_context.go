package repository

import (
	"apollo-survey-backend/internal/database/models"

	"gorm.io/gorm"
)

// SurveyContextRepository handles database operations for survey contexts
type SurveyContextRepository struct {
	db *gorm.DB
}

// NewSurveyContextRepository creates a new survey context repository
func NewSurveyContextRepository(db *gorm.DB) *SurveyContextRepository {
	return &SurveyContextRepository{db: db}
}

// Create creates a new survey context
func (r *SurveyContextRepository) Create(context *models.SurveyContext) error {
	return r.db.Create(context).Error
}

// GetByID retrieves a survey context by ID
func (r *SurveyContextRepository) GetByID(id uint) (*models.SurveyContext, error) {
	var context models.SurveyContext
	err := r.db.First(&context, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &context, nil
}

// GetAll retrieves all survey contexts
func (r *SurveyContextRepository) GetAll() ([]models.SurveyContext, error) {
	var contexts []models.SurveyContext
	err := r.db.Find(&contexts).Error
	return contexts, err
}

// GetBySurveyID retrieves all contexts for a survey
func (r *SurveyContextRepository) GetBySurveyID(surveyID uint) ([]models.SurveyContext, error) {
	var contexts []models.SurveyContext
	err := r.db.Where("survey_id = ?", surveyID).Find(&contexts).Error
	return contexts, err
}

// Delete removes a survey context
func (r *SurveyContextRepository) Delete(id uint) error {
	return r.db.Delete(&models.SurveyContext{}, "id = ?", id).Error
}
