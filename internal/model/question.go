package model

import (
	"time"

	"gorm.io/gorm"
)

// Question types supported by the generator and the scoring pipeline.
const (
	QuestionTypeTechnical  = "technical"
	QuestionTypeBehavioral = "behavioral"
)

type Question struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	InterviewID uint   `json:"interview_id" gorm:"not null;index;uniqueIndex:idx_questions_interview_order"`
	Text        string `json:"text" gorm:"type:text;not null"`
	Type        string `json:"type" gorm:"not null"`
	Difficulty  int    `json:"difficulty" gorm:"not null"` // 1-5
	SkillTested string `json:"skill_tested"`

	// ReferenceAnswer is consumed by the answer evaluator only and is never
	// serialized to candidates.
	ReferenceAnswer string `json:"-" gorm:"type:text"`

	// OrderIndex is 1-based and unique within an interview. Questions are
	// generated up front and never reordered or deleted.
	OrderIndex int `json:"order" gorm:"column:order_index;not null;uniqueIndex:idx_questions_interview_order"`

	TimeLimit          *int `json:"time_limit,omitempty"` // seconds
	CodeRequired       bool `json:"code_required"`
	WhiteboardRequired bool `json:"whiteboard_required"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
