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

// TopicService handles business logic for topics and their memberships
type TopicService struct {
	topicRepo     repository.TopicRepositoryInterface
	topicUserRepo repository.TopicUserRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	surveyRepo    repository.SurveyRepositoryInterface
	validator     *validator.Validate
}

// NewTopicService creates a new topic service
func NewTopicService(
	topicRepo repository.TopicRepositoryInterface,
	topicUserRepo repository.TopicUserRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	surveyRepo repository.SurveyRepositoryInterface,
	validator *validator.Validate,
) *TopicService {
	return &TopicService{
		topicRepo:     topicRepo,
		topicUserRepo: topicUserRepo,
		userRepo:      userRepo,
		surveyRepo:    surveyRepo,
		validator:     validator,
	}
}

// SaveTopicRequest represents a full topic submission, membership included.
// A nil SurveyID asks for a fresh bootstrap survey to be created and wired in.
type SaveTopicRequest struct {
	ID        uint                  `json:"id,omitempty"`
	Title     string                `json:"title" validate:"required,max=100"`
	OwnerID   uint                  `json:"owner_id" validate:"required"`
	SurveyID  *uint                 `json:"survey_id,omitempty"`
	Frequency models.TopicFrequency `json:"frequency" validate:"required"`
	MemberIDs []uint                `json:"member_ids"`
}

// FindByID retrieves a topic by ID
func (s *TopicService) FindByID(id uint) (*models.Topic, error) {
	topic, err := s.topicRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return topic, nil
}

// FindAllTopics retrieves all topics
func (s *TopicService) FindAllTopics() ([]models.Topic, error) {
	topics, err := s.topicRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get topics: %w", err)
	}
	return topics, nil
}

// Save persists a topic. The owner and every member must exist; the
// referenced survey must exist, or a fresh bootstrap survey is created in the
// same transaction as the topic write and its generated ID wired in. On
// overwrite the membership set is reconciled against the submission the same
// way Save on users reconciles role grants. The owner is always a member,
// whether submitted or not.
func (s *TopicService) Save(req *SaveTopicRequest) (*models.Topic, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Frequency.IsValid() {
		return nil, fmt.Errorf("invalid topic frequency %q", req.Frequency)
	}

	if _, err := s.userRepo.GetByID(req.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify owner: %w", err)
	}

	memberIDs := withOwner(req.MemberIDs, req.OwnerID)
	for _, memberID := range memberIDs {
		if memberID == req.OwnerID {
			continue // already verified
		}
		if _, err := s.userRepo.GetByID(memberID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to verify member: %w", err)
		}
	}

	// A zero surveyID after this block means "bootstrap a fresh survey";
	// the repository creates it inside the same transaction as the topic
	// so a failed save never leaves an orphan survey behind.
	var surveyID uint
	if req.SurveyID != nil {
		if _, err := s.surveyRepo.GetByID(*req.SurveyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSurveyNotFound
			}
			return nil, fmt.Errorf("failed to verify survey: %w", err)
		}
		surveyID = *req.SurveyID
	}

	if req.ID == 0 {
		topic := &models.Topic{
			Title:     req.Title,
			OwnerID:   req.OwnerID,
			SurveyID:  surveyID,
			Frequency: req.Frequency,
			Users:     membershipsFor(0, memberIDs),
		}
		if surveyID == 0 {
			if err := s.topicRepo.CreateWithSurvey(topic); err != nil {
				return nil, fmt.Errorf("failed to create topic: %w", err)
			}
			logger.New().WithField("survey_id", topic.SurveyID).Info("created bootstrap survey for topic")
		} else {
			if err := s.topicRepo.Create(topic); err != nil {
				return nil, fmt.Errorf("failed to create topic: %w", err)
			}
		}
		return s.FindByID(topic.ID)
	}

	existing, err := s.FindByID(req.ID)
	if err != nil {
		return nil, err
	}

	// Set difference over (topic, user) value pairs, never surrogate keys
	submitted := membershipsFor(existing.ID, memberIDs)
	insert := diffMemberships(submitted, existing.Users)
	remove := diffMemberships(existing.Users, submitted)

	existing.Title = req.Title
	existing.OwnerID = req.OwnerID
	existing.SurveyID = surveyID
	existing.Frequency = req.Frequency
	if err := s.topicRepo.UpdateWithMembers(existing, insert, remove); err != nil {
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}
	return s.FindByID(existing.ID)
}

// Delete removes a topic and cascades its membership rows. The survey the
// topic references is left alone: surveys may be shared or reassigned.
func (s *TopicService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.topicRepo.DeleteWithMembers(id); err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	return nil
}

// withOwner returns the deduplicated member list with the owner guaranteed present
func withOwner(memberIDs []uint, ownerID uint) []uint {
	result := make([]uint, 0, len(memberIDs)+1)
	seen := make(map[uint]bool, len(memberIDs)+1)
	for _, id := range memberIDs {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	if !seen[ownerID] {
		result = append(result, ownerID)
	}
	return result
}

// membershipsFor builds the membership set for a member-id submission
func membershipsFor(topicID uint, memberIDs []uint) []models.TopicUser {
	memberships := make([]models.TopicUser, 0, len(memberIDs))
	for _, userID := range memberIDs {
		memberships = append(memberships, models.TopicUser{TopicID: topicID, UserID: userID})
	}
	return memberships
}

// diffMemberships returns the memberships in a with no value-equal counterpart in b
func diffMemberships(a, b []models.TopicUser) []models.TopicUser {
	var diff []models.TopicUser
	for _, ma := range a {
		found := false
		for _, mb := range b {
			if ma.Equal(mb) {
				found = true
				break
			}
		}
		if !found {
			diff = append(diff, ma)
		}
	}
	return diff
}
