package repository

import (
	"apollo-survey-backend/internal/database/models"

	"gorm.io/gorm"
)

// TopicUserRepository handles database operations for topic memberships
type TopicUserRepository struct {
	db *gorm.DB
}

// NewTopicUserRepository creates a new topic membership repository
func NewTopicUserRepository(db *gorm.DB) *TopicUserRepository {
	return &TopicUserRepository{db: db}
}

// GetByTopicID retrieves all memberships for a topic
func (r *TopicUserRepository) GetByTopicID(topicID uint) ([]models.TopicUser, error) {
	var topicUsers []models.TopicUser
	err := r.db.Where("topic_id = ?", topicID).Find(&topicUsers).Error
	return topicUsers, err
}

// GetByUserID retrieves all memberships for a user
func (r *TopicUserRepository) GetByUserID(userID uint) ([]models.TopicUser, error) {
	var topicUsers []models.TopicUser
	err := r.db.Where("user_id = ?", userID).Find(&topicUsers).Error
	return topicUsers, err
}

// Exists checks if a membership exists for the (topic, user) pair
func (r *TopicUserRepository) Exists(topicID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.TopicUser{}).Where("topic_id = ? AND user_id = ?", topicID, userID).Count(&count).Error
	return count > 0, err
}
