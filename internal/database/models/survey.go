package models

// Survey represents one survey instance. TopicID is nullable because a
// bootstrap survey may exist before any topic references it.
type Survey struct {
	ID      uint  `json:"id" gorm:"primaryKey;autoIncrement"`
	Auditable
	TopicID *uint `json:"topic_id,omitempty" gorm:"index"`

	// Relationships. The survey owns its contexts and questions for
	// lifecycle purposes.
	Contexts  []SurveyContext `json:"contexts,omitempty" gorm:"foreignKey:SurveyID"`
	Questions []Question      `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
}

// TableName returns the table name for Survey
func (Survey) TableName() string {
	return "surveys"
}
