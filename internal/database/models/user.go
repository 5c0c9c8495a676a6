package models

// User represents a platform member who can own topics, join topics and hold roles
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Auditable
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	PrimaryEmail string `json:"primary_email" gorm:"not null;size:255" validate:"required,email,max=255"`

	// Relationships
	Roles  []UserRole  `json:"roles,omitempty" gorm:"foreignKey:UserID"`
	Topics []TopicUser `json:"topics,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
