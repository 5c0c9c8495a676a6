package repository

import (
	"apollo-survey-backend/internal/database/models"

	"gorm.io/gorm"
)

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create creates a new question
func (r *QuestionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

// Update overwrites a question record, reusing its ID
func (r *QuestionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetAll retrieves all questions
func (r *QuestionRepository) GetAll() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Find(&questions).Error
	return questions, err
}

// GetBySurveyID retrieves all questions owned by a survey
func (r *QuestionRepository) GetBySurveyID(surveyID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Where("survey_id = ?", surveyID).Find(&questions).Error
	return questions, err
}

// Delete removes a question
func (r *QuestionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Question{}, "id = ?", id).Error
}
