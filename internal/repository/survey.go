package repository

import (
	"apollo-survey-backend/internal/database/models"

	"gorm.io/gorm"
)

// SurveyRepository handles database operations for surveys
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// Create creates a new survey
func (r *SurveyRepository) Create(survey *models.Survey) error {
	return r.db.Create(survey).Error
}

// GetByID retrieves a survey by ID with its contexts and questions preloaded
func (r *SurveyRepository) GetByID(id uint) (*models.Survey, error) {
	var survey models.Survey
	err := r.db.Preload("Contexts").Preload("Questions").First(&survey, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// GetAll retrieves all surveys
func (r *SurveyRepository) GetAll() ([]models.Survey, error) {
	var surveys []models.Survey
	err := r.db.Preload("Contexts").Preload("Questions").Find(&surveys).Error
	return surveys, err
}

// Update overwrites a survey record
func (r *SurveyRepository) Update(survey *models.Survey) error {
	return r.db.Save(survey).Error
}

// CreateWithQuestions creates a survey and attaches all questions in one
// transaction. If any question fails to persist the whole request rolls
// back, so no partially-attached survey is ever reachable.
func (r *SurveyRepository) CreateWithQuestions(survey *models.Survey, questions []models.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(survey).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].SurveyID = survey.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		survey.Questions = questions
		return nil
	})
}

// DeleteCascade deletes the survey together with its contexts and questions
// in one transaction. Children go first to satisfy the foreign keys back
// into surveys.
func (r *SurveyRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&models.SurveyContext{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Survey{}, "id = ?", id).Error
	})
}
