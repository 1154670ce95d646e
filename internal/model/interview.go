package model

import (
	"time"

	"gorm.io/gorm"
)

// Interview lifecycle statuses. Transitions between them are enforced by the
// service layer's transition matrix; no other value is ever persisted.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusPaused     = "paused"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// IsTerminalStatus reports whether no further mutation is accepted.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusAbandoned
}

type Interview struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `json:"user_id" gorm:"not null;index"`
	RoleID   string `json:"role_id" gorm:"not null"`
	Language string `json:"language" gorm:"not null;default:'en'"`
	Status   string `json:"status" gorm:"not null;index;default:'scheduled'"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// Aggregate scores are written exactly once, by the completion transition.
	OverallScore       *float64 `json:"overall_score,omitempty"`
	TechnicalScore     *float64 `json:"technical_score,omitempty"`
	CommunicationScore *float64 `json:"communication_score,omitempty"`

	VoiceMetrics  *VoiceMetrics  `json:"voice_metrics,omitempty" gorm:"serializer:json"`
	FacialMetrics *FacialMetrics `json:"facial_metrics,omitempty" gorm:"serializer:json"`

	FeedbackSummary  *string  `json:"feedback_summary,omitempty" gorm:"type:text"`
	ImprovementAreas []string `json:"improvement_areas" gorm:"serializer:json"`

	// Version guards against concurrent writers; every interview update is a
	// compare-and-swap on (id, version).
	Version uint `json:"-" gorm:"not null;default:0"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:InterviewID"`
	Answers   []Answer   `json:"answers,omitempty" gorm:"foreignKey:InterviewID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
