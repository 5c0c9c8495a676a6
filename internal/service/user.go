package service

import (
	"errors"
	"fmt"

	"apollo-survey-backend/internal/database/models"
	apperrors "apollo-survey-backend/internal/errors"
	"apollo-survey-backend/internal/logger"
	"apollo-survey-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AdminRoleName marks the role whose holders may update any user
const AdminRoleName = "admin"

// UserService handles business logic for users and their role grants
type UserService struct {
	userRepo     repository.UserRepositoryInterface
	roleRepo     repository.RoleRepositoryInterface
	userRoleRepo repository.UserRoleRepositoryInterface
	validator    *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	userRoleRepo repository.UserRoleRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		userRoleRepo: userRoleRepo,
		validator:    validator,
	}
}

// SaveUserRequest represents a full user submission, role set included.
// Save replaces the whole record: roles absent from RoleIDs are revoked.
type SaveUserRequest struct {
	ID           uint   `json:"id,omitempty"`
	Username     string `json:"username" validate:"required,max=100"`
	PrimaryEmail string `json:"primary_email" validate:"required,email,max=255"`
	RoleIDs      []uint `json:"role_ids"`
}

// FindByID retrieves a user by ID
func (s *UserService) FindByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// FindByName retrieves a user by exact username
func (s *UserService) FindByName(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// FindByNameContaining retrieves users whose username contains the fragment,
// case-insensitive, unordered
func (s *UserService) FindByNameContaining(fragment string) ([]models.User, error) {
	users, err := s.userRepo.SearchByUsername(fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// FindAll retrieves all users
func (s *UserService) FindAll() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// Save persists a user. A zero ID inserts a new record; otherwise the whole
// record is overwritten and the role set is reconciled against the
// submission: grants not submitted are revoked, submitted grants not yet
// present are inserted, the rest are left untouched.
func (s *UserService) Save(req *SaveUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Every submitted role must already exist
	for _, roleID := range req.RoleIDs {
		if _, err := s.roleRepo.GetByID(roleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRoleNotFound
			}
			return nil, fmt.Errorf("failed to verify role: %w", err)
		}
	}

	if req.ID == 0 {
		user := &models.User{
			Username:     req.Username,
			PrimaryEmail: req.PrimaryEmail,
			Roles:        grantsFor(0, req.RoleIDs),
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return s.FindByID(user.ID)
	}

	existing, err := s.FindByID(req.ID)
	if err != nil {
		return nil, err
	}

	// Set difference against the persisted grants: (new - old) to insert,
	// (old - new) to delete, the intersection stays as is.
	submitted := grantsFor(existing.ID, req.RoleIDs)
	insert := diffGrants(submitted, existing.Roles)
	remove := diffGrants(existing.Roles, submitted)

	existing.Username = req.Username
	existing.PrimaryEmail = req.PrimaryEmail
	if err := s.userRepo.UpdateWithRoles(existing, insert, remove); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.FindByID(existing.ID)
}

// Update is Save restricted to the subject user or an admin principal
func (s *UserService) Update(req *SaveUserRequest, id uint, principal *models.User) (*models.User, error) {
	if principal == nil || (principal.ID != id && !hasRole(principal, AdminRoleName)) {
		return nil, apperrors.ErrNotOwnerNorAdmin
	}
	req.ID = id
	return s.Save(req)
}

// AddUserRole grants a role to a user. Re-adding an existing pair is a
// no-op, not a duplicate.
func (s *UserService) AddUserRole(userID, roleID uint) error {
	if _, err := s.FindByID(userID); err != nil {
		return err
	}
	if _, err := s.roleRepo.GetByID(roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("failed to verify role: %w", err)
	}

	exists, err := s.userRoleRepo.Exists(userID, roleID)
	if err != nil {
		return fmt.Errorf("failed to check user-role association: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.userRoleRepo.Create(&models.UserRole{UserID: userID, RoleID: roleID}); err != nil {
		return fmt.Errorf("failed to create user-role association: %w", err)
	}
	return nil
}

// DeleteUserRole revokes a grant. The specific pair must exist; it is not
// enough for user and role to exist individually.
func (s *UserService) DeleteUserRole(userID, roleID uint) error {
	exists, err := s.userRoleRepo.Exists(userID, roleID)
	if err != nil {
		return fmt.Errorf("failed to check user-role association: %w", err)
	}
	if !exists {
		return apperrors.ErrUserRoleNotFound
	}

	if err := s.userRoleRepo.Delete(userID, roleID); err != nil {
		return fmt.Errorf("failed to delete user-role association: %w", err)
	}
	return nil
}

// Delete removes a user and cascades its role grants and topic memberships
func (s *UserService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.userRepo.DeleteWithAssociations(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	logger.New().WithField("user_id", id).Info("deleted user with role grants and topic memberships")
	return nil
}

// grantsFor builds the deduplicated grant set for a role-id submission
func grantsFor(userID uint, roleIDs []uint) []models.UserRole {
	grants := make([]models.UserRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		grant := models.UserRole{UserID: userID, RoleID: roleID}
		duplicate := false
		for _, existing := range grants {
			if existing.Equal(grant) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			grants = append(grants, grant)
		}
	}
	return grants
}

// diffGrants returns the grants in a that have no value-equal counterpart in b
func diffGrants(a, b []models.UserRole) []models.UserRole {
	var diff []models.UserRole
	for _, ga := range a {
		found := false
		for _, gb := range b {
			if ga.Equal(gb) {
				found = true
				break
			}
		}
		if !found {
			diff = append(diff, ga)
		}
	}
	return diff
}

// hasRole reports whether the user's preloaded grants include the named role
func hasRole(user *models.User, name string) bool {
	for _, grant := range user.Roles {
		if grant.Role.Name == name {
			return true
		}
	}
	return false
}
