package repository

import (
	"apollo-survey-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRoleRepository handles database operations for user-role associations
type UserRoleRepository struct {
	db *gorm.DB
}

// NewUserRoleRepository creates a new user-role repository
func NewUserRoleRepository(db *gorm.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

// Create creates a new user-role association
func (r *UserRoleRepository) Create(userRole *models.UserRole) error {
	return r.db.Create(userRole).Error
}

// GetByUserID retrieves all role grants for a user
func (r *UserRoleRepository) GetByUserID(userID uint) ([]models.UserRole, error) {
	var userRoles []models.UserRole
	err := r.db.Preload("Role").Where("user_id = ?", userID).Find(&userRoles).Error
	return userRoles, err
}

// Exists checks if a user-role association exists
func (r *UserRoleRepository) Exists(userID, roleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserRole{}).Where("user_id = ? AND role_id = ?", userID, roleID).Count(&count).Error
	return count > 0, err
}

// Delete removes a user-role association
func (r *UserRoleRepository) Delete(userID, roleID uint) error {
	return r.db.Where("user_id = ? AND role_id = ?", userID, roleID).Delete(&models.UserRole{}).Error
}
