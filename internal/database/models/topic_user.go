package models

// TopicUser represents one topic membership grant.
// Identity is the (topic, user) pair; duplicate detection compares the pair,
// never a surrogate key.
type TopicUser struct {
	TopicID uint `json:"topic_id" gorm:"primaryKey;autoIncrement:false"`
	UserID  uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	Auditable

	// Relationships
	Topic Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TopicUser
func (TopicUser) TableName() string {
	return "topic_users"
}

// Equal reports whether two memberships link the same topic and user
func (tu TopicUser) Equal(other TopicUser) bool {
	return tu.TopicID == other.TopicID && tu.UserID == other.UserID
}
