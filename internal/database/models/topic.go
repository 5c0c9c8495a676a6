package models

// Topic represents a recurring discussion topic with an owner, members and an active survey
type Topic struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Auditable
	Title     string         `json:"title" gorm:"not null;size:100" validate:"required,max=100"`
	OwnerID   uint           `json:"owner_id" gorm:"not null;index" validate:"required"`
	SurveyID  uint           `json:"survey_id" gorm:"not null;index"`
	Frequency TopicFrequency `json:"frequency" gorm:"type:varchar(20);not null" validate:"required"`

	// Relationships. Survey is referenced, never owned: the topic only
	// points at its current survey instance.
	Owner  User        `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Survey Survey      `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
	Users  []TopicUser `json:"users,omitempty" gorm:"foreignKey:TopicID"`
}

// TableName returns the table name for Topic
func (Topic) TableName() string {
	return "topics"
}
