package models

// SurveyContext represents a named section of a survey
type SurveyContext struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Auditable
	Description string `json:"description" gorm:"not null;size:200" validate:"required,max=200"`
	SurveyID    uint   `json:"survey_id" gorm:"not null;index" validate:"required"`

	// Relationships
	Survey Survey `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
}

// TableName returns the table name for SurveyContext
func (SurveyContext) TableName() string {
	return "contexts"
}
