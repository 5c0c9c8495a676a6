package models

// Question represents one survey question. Leader marks questions shown only
// to the topic leader.
type Question struct {
	ID       uint         `json:"id" gorm:"primaryKey;autoIncrement"`
	Auditable
	Body     string       `json:"body" gorm:"not null;size:500" validate:"required,max=500"`
	Leader   bool         `json:"leader"`
	Type     QuestionType `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	SurveyID uint         `json:"survey_id" gorm:"not null;index" validate:"required"`

	// Relationships
	Survey Survey `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
}

// TableName returns the table name for Question
func (Question) TableName() string {
	return "questions"
}
