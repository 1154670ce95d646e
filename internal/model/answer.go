package model

import (
	"time"

	"gorm.io/gorm"
)

// LearningResource is a study pointer returned by the answer evaluator.
type LearningResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Answer struct {
	ID          uint     `gorm:"primarykey" json:"id"`
	InterviewID uint     `json:"interview_id" gorm:"not null;index"`
	QuestionID  uint     `json:"question_id" gorm:"not null;uniqueIndex"` // one answer per question
	Question    Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`

	TranscribedText string `json:"transcribed_text" gorm:"type:text;not null"`
	AudioDuration   int    `json:"audio_duration"` // seconds

	// Component scores, each in [0,1], as produced by the evaluator.
	CorrectnessScore float64 `json:"correctness_score"`
	ClarityScore     float64 `json:"clarity_score"`
	DepthScore       float64 `json:"depth_score"`
	ConfidenceScore  float64 `json:"confidence_score"`

	Feedback          string             `json:"feedback" gorm:"type:text"`
	LearningResources []LearningResource `json:"learning_resources" gorm:"serializer:json"`

	CodeSubmission *string `json:"code_submission,omitempty" gorm:"type:text"`
	WhiteboardURL  *string `json:"whiteboard_url,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
