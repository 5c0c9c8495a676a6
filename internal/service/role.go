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

// RoleService handles business logic for roles. Roles are reference data:
// once seeded they are only read.
type RoleService struct {
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo repository.RoleRepositoryInterface, validator *validator.Validate) *RoleService {
	return &RoleService{
		roleRepo:  roleRepo,
		validator: validator,
	}
}

// FindByID retrieves a role by ID
func (s *RoleService) FindByID(id uint) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

// FindByName retrieves a role by exact name
func (s *RoleService) FindByName(name string) (*models.Role, error) {
	role, err := s.roleRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

// FindAll retrieves all roles
func (s *RoleService) FindAll() ([]models.Role, error) {
	roles, err := s.roleRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	return roles, nil
}

// Save persists a new role. Duplicate names surface as the database's
// unique-constraint violation, untranslated.
func (s *RoleService) Save(role *models.Role) (*models.Role, error) {
	if err := s.validator.Struct(role); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return role, nil
}
