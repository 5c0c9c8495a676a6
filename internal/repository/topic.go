package repository

import (
	"apollo-survey-backend/internal/database/models"

	"gorm.io/gorm"
)

// TopicRepository handles database operations for topics
type TopicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// Create creates a new topic together with any embedded membership rows
func (r *TopicRepository) Create(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

// CreateWithSurvey creates a fresh bootstrap survey, the topic and its
// embedded membership rows in one transaction, then back-links the survey to
// its owning topic. A failure anywhere rolls the whole unit back, so no
// orphan survey is ever visible.
func (r *TopicRepository) CreateWithSurvey(topic *models.Topic) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		survey := models.Survey{}
		if err := tx.Create(&survey).Error; err != nil {
			return err
		}
		topic.SurveyID = survey.ID
		if err := tx.Create(topic).Error; err != nil {
			return err
		}
		return tx.Model(&survey).Update("topic_id", topic.ID).Error
	})
}

// GetByID retrieves a topic by ID with memberships preloaded
func (r *TopicRepository) GetByID(id uint) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.Preload("Users").First(&topic, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// GetAll retrieves all topics
func (r *TopicRepository) GetAll() ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.Preload("Users").Find(&topics).Error
	return topics, err
}

// UpdateWithMembers overwrites the topic record and reconciles its membership
// rows in one transaction. The caller supplies the insert/remove sets; rows in
// neither set are left untouched. A zero SurveyID asks for a fresh bootstrap
// survey, created and back-linked inside the same transaction.
func (r *TopicRepository) UpdateWithMembers(topic *models.Topic, insert []models.TopicUser, remove []models.TopicUser) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var bootstrap *models.Survey
		if topic.SurveyID == 0 {
			bootstrap = &models.Survey{}
			if err := tx.Create(bootstrap).Error; err != nil {
				return err
			}
			topic.SurveyID = bootstrap.ID
		}
		updates := map[string]interface{}{
			"title":     topic.Title,
			"owner_id":  topic.OwnerID,
			"survey_id": topic.SurveyID,
			"frequency": topic.Frequency,
		}
		if err := tx.Model(&models.Topic{}).Where("id = ?", topic.ID).Updates(updates).Error; err != nil {
			return err
		}
		if bootstrap != nil {
			if err := tx.Model(bootstrap).Update("topic_id", topic.ID).Error; err != nil {
				return err
			}
		}
		for _, tu := range remove {
			if err := tx.Where("topic_id = ? AND user_id = ?", tu.TopicID, tu.UserID).
				Delete(&models.TopicUser{}).Error; err != nil {
				return err
			}
		}
		for i := range insert {
			if err := tx.Create(&insert[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithMembers deletes the topic and its membership rows in one
// transaction. The referenced survey is left alone: the topic only points
// at it.
func (r *TopicRepository) DeleteWithMembers(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&models.TopicUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Topic{}, "id = ?", id).Error
	})
}
