package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"apollo-survey-backend/internal/config"
	"apollo-survey-backend/internal/database"
	"apollo-survey-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file schema
type RoleData struct {
	Name string `yaml:"name"`
}

type UserData struct {
	Username     string   `yaml:"username"`
	PrimaryEmail string   `yaml:"primary_email"`
	Roles        []string `yaml:"roles,omitempty"`
}

type QuestionData struct {
	Body   string `yaml:"body"`
	Leader bool   `yaml:"leader,omitempty"`
	Type   string `yaml:"type"`
}

type TopicData struct {
	Title     string         `yaml:"title"`
	Owner     string         `yaml:"owner"`
	Frequency string         `yaml:"frequency"`
	Members   []string       `yaml:"members,omitempty"`
	Questions []QuestionData `yaml:"questions,omitempty"`
}

type SurveyData struct {
	Topic     string         `yaml:"topic"`
	Contexts  []string       `yaml:"contexts,omitempty"`
	Questions []QuestionData `yaml:"questions,omitempty"`
}

type SeedFile struct {
	Roles   []RoleData   `yaml:"roles"`
	Users   []UserData   `yaml:"users"`
	Topics  []TopicData  `yaml:"topics"`
	Surveys []SurveyData `yaml:"surveys"`
}

func main() {
	log.Println("Loading initial data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadSeedFile(db, cfg.SeedFile); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	// Create roles first
	roleMap := make(map[string]*models.Role)
	roleCreated := 0
	for _, roleData := range seed.Roles {
		role, created, err := createRole(db, roleData)
		if err != nil {
			return fmt.Errorf("failed to create role %s: %w", roleData.Name, err)
		}
		roleMap[roleData.Name] = role
		if created {
			roleCreated++
		}
	}
	log.Printf("Roles: %d created, %d total", roleCreated, len(seed.Roles))

	// Create users with their role grants
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range seed.Users {
		user, created, err := createUser(db, userData, roleMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(seed.Users))

	// Create topics with their bootstrap surveys, memberships and questions
	topicMap := make(map[string]*models.Topic)
	freshTopics := make(map[string]bool)
	topicCreated := 0
	for _, topicData := range seed.Topics {
		topic, created, err := createTopic(db, topicData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create topic %s: %w", topicData.Title, err)
		}
		topicMap[topicData.Title] = topic
		if created {
			freshTopics[topicData.Title] = true
			topicCreated++
		}
	}
	log.Printf("Topics: %d created, %d total", topicCreated, len(seed.Topics))

	// Create additional surveys with contexts and questions. Extra surveys
	// have no natural key, so they are only loaded alongside a freshly
	// created topic to keep reruns idempotent.
	surveyCreated := 0
	for _, surveyData := range seed.Surveys {
		topic := topicMap[surveyData.Topic]
		if topic == nil {
			return fmt.Errorf("topic %s not found for seed survey", surveyData.Topic)
		}
		if !freshTopics[surveyData.Topic] {
			continue
		}
		if err := createSurvey(db, surveyData, topic); err != nil {
			return fmt.Errorf("failed to create survey for topic %s: %w", surveyData.Topic, err)
		}
		surveyCreated++
	}
	log.Printf("Surveys: %d created, %d total", surveyCreated, len(seed.Surveys))

	return nil
}

func createRole(db *gorm.DB, roleData RoleData) (*models.Role, bool, error) {
	var role models.Role
	if err := db.Where("name = ?", roleData.Name).First(&role).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role = models.Role{Name: roleData.Name}
			if err := db.Create(&role).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create role: %w", err)
			}
			return &role, true, nil
		}
		return nil, false, fmt.Errorf("failed to query role: %w", err)
	}

	return &role, false, nil
}

func createUser(db *gorm.DB, userData UserData, roleMap map[string]*models.Role) (*models.User, bool, error) {
	var user models.User
	err := db.Where("username = ?", userData.Username).First(&user).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	created := false
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Username:     userData.Username,
			PrimaryEmail: userData.PrimaryEmail,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		created = true
	}

	for _, roleName := range userData.Roles {
		role := roleMap[roleName]
		if role == nil {
			return nil, false, fmt.Errorf("role %s not found for user %s", roleName, userData.Username)
		}
		if err := grantRole(db, user.ID, role.ID); err != nil {
			return nil, false, err
		}
	}

	return &user, created, nil
}

func grantRole(db *gorm.DB, userID, roleID uint) error {
	var existing models.UserRole
	err := db.Where("user_id = ? AND role_id = ?", userID, roleID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to query role grant: %w", err)
	}

	grant := models.UserRole{UserID: userID, RoleID: roleID}
	if err := db.Create(&grant).Error; err != nil {
		return fmt.Errorf("failed to create role grant: %w", err)
	}
	return nil
}

func createTopic(db *gorm.DB, topicData TopicData, userMap map[string]*models.User) (*models.Topic, bool, error) {
	owner := userMap[topicData.Owner]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for topic %s", topicData.Owner, topicData.Title)
	}

	frequency := models.TopicFrequency(topicData.Frequency)
	if !frequency.IsValid() {
		return nil, false, fmt.Errorf("invalid frequency %s for topic %s", topicData.Frequency, topicData.Title)
	}

	var topic models.Topic
	err := db.Where("title = ? AND owner_id = ?", topicData.Title, owner.ID).First(&topic).Error
	if err == nil {
		return &topic, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query topic: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		survey := models.Survey{}
		if err := tx.Create(&survey).Error; err != nil {
			return fmt.Errorf("failed to create survey: %w", err)
		}

		topic = models.Topic{
			Title:     topicData.Title,
			OwnerID:   owner.ID,
			SurveyID:  survey.ID,
			Frequency: frequency,
		}
		if err := tx.Create(&topic).Error; err != nil {
			return fmt.Errorf("failed to create topic: %w", err)
		}

		if err := tx.Model(&survey).Update("topic_id", topic.ID).Error; err != nil {
			return fmt.Errorf("failed to link survey to topic: %w", err)
		}

		// Owner is always a member
		members := map[uint]bool{owner.ID: true}
		for _, memberName := range topicData.Members {
			member := userMap[memberName]
			if member == nil {
				return fmt.Errorf("member %s not found for topic %s", memberName, topicData.Title)
			}
			members[member.ID] = true
		}
		for userID := range members {
			membership := models.TopicUser{TopicID: topic.ID, UserID: userID}
			if err := tx.Create(&membership).Error; err != nil {
				return fmt.Errorf("failed to create membership: %w", err)
			}
		}

		for _, questionData := range topicData.Questions {
			questionType := models.QuestionType(questionData.Type)
			if !questionType.IsValid() {
				return fmt.Errorf("invalid question type %s for topic %s", questionData.Type, topicData.Title)
			}
			question := models.Question{
				Body:     questionData.Body,
				Leader:   questionData.Leader,
				Type:     questionType,
				SurveyID: survey.ID,
			}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("failed to create question: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &topic, true, nil
}

func createSurvey(db *gorm.DB, surveyData SurveyData, topic *models.Topic) error {
	return db.Transaction(func(tx *gorm.DB) error {
		survey := models.Survey{TopicID: &topic.ID}
		if err := tx.Create(&survey).Error; err != nil {
			return fmt.Errorf("failed to create survey: %w", err)
		}

		for _, description := range surveyData.Contexts {
			context := models.SurveyContext{
				Description: description,
				SurveyID:    survey.ID,
			}
			if err := tx.Create(&context).Error; err != nil {
				return fmt.Errorf("failed to create context: %w", err)
			}
		}

		for _, questionData := range surveyData.Questions {
			questionType := models.QuestionType(questionData.Type)
			if !questionType.IsValid() {
				return fmt.Errorf("invalid question type %s", questionData.Type)
			}
			question := models.Question{
				Body:     questionData.Body,
				Leader:   questionData.Leader,
				Type:     questionType,
				SurveyID: survey.ID,
			}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("failed to create question: %w", err)
			}
		}

		return nil
	})
}
