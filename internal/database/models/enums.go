package models

// TopicFrequency defines how often a topic's survey recurs
type TopicFrequency string

const (
	TopicFrequencyMonday    TopicFrequency = "MONDAY"
	TopicFrequencyTuesday   TopicFrequency = "TUESDAY"
	TopicFrequencyWednesday TopicFrequency = "WEDNESDAY"
	TopicFrequencyThursday  TopicFrequency = "THURSDAY"
	TopicFrequencyFriday    TopicFrequency = "FRIDAY"
	TopicFrequencySaturday  TopicFrequency = "SATURDAY"
	TopicFrequencySunday    TopicFrequency = "SUNDAY"
	TopicFrequencyDaily     TopicFrequency = "DAILY"
	TopicFrequencyWeekly    TopicFrequency = "WEEKLY"
	TopicFrequencyMonthly   TopicFrequency = "MONTHLY"
)

// QuestionType defines the response kind a question expects
type QuestionType string

const (
	QuestionTypeText   QuestionType = "TEXT"
	QuestionTypeBinary QuestionType = "BINARY"
	QuestionTypeScale  QuestionType = "SCALE"
)

// IsValid checks if the TopicFrequency is valid
func (f TopicFrequency) IsValid() bool {
	switch f {
	case TopicFrequencyMonday, TopicFrequencyTuesday, TopicFrequencyWednesday,
		TopicFrequencyThursday, TopicFrequencyFriday, TopicFrequencySaturday,
		TopicFrequencySunday, TopicFrequencyDaily, TopicFrequencyWeekly,
		TopicFrequencyMonthly:
		return true
	}
	return false
}

// IsValid checks if the QuestionType is valid
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeBinary, QuestionTypeScale:
		return true
	}
	return false
}
