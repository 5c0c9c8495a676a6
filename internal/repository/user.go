package repository

import (
	"apollo-survey-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user together with any embedded role grants
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID with role grants preloaded
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").Preload("Roles.Role").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by exact username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").Preload("Roles.Role").First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchByUsername retrieves users whose username contains the fragment, case-insensitive
func (r *UserRepository) SearchByUsername(fragment string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("username ILIKE ?", "%"+fragment+"%").Find(&users).Error
	return users, err
}

// GetAll retrieves all users
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Roles").Find(&users).Error
	return users, err
}

// UpdateWithRoles overwrites the user record and reconciles its role grants
// in one transaction. The caller supplies the insert/remove sets; rows in
// neither set are left untouched.
func (r *UserRepository) UpdateWithRoles(user *models.User, insert []models.UserRole, remove []models.UserRole) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"username":      user.Username,
			"primary_email": user.PrimaryEmail,
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return err
		}
		for _, ur := range remove {
			if err := tx.Where("user_id = ? AND role_id = ?", ur.UserID, ur.RoleID).
				Delete(&models.UserRole{}).Error; err != nil {
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

// DeleteWithAssociations deletes the user and every user-role and topic
// membership row referencing it in one transaction
func (r *UserRepository) DeleteWithAssociations(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.TopicUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
