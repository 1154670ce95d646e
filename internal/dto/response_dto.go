package dto

import (
	"time"

	"github.com/lshigami/Mockingbird/internal/model"
)

// QuestionResponseDTO deliberately omits the reference answer; it is consumed
// by the evaluator only and never exposed to candidates.
type QuestionResponseDTO struct {
	ID                 uint   `json:"id"`
	InterviewID        uint   `json:"interview_id"`
	Text               string `json:"text"`
	Type               string `json:"type"`
	Difficulty         int    `json:"difficulty"`
	SkillTested        string `json:"skill_tested"`
	OrderIndex         int    `json:"order"`
	TimeLimit          *int   `json:"time_limit,omitempty"`
	CodeRequired       bool   `json:"code_required"`
	WhiteboardRequired bool   `json:"whiteboard_required"`
}

type AnswerResponseDTO struct {
	ID                uint                     `json:"id"`
	InterviewID       uint                     `json:"interview_id"`
	QuestionID        uint                     `json:"question_id"`
	TranscribedText   string                   `json:"transcribed_text"`
	AudioDuration     int                      `json:"audio_duration"`
	CorrectnessScore  float64                  `json:"correctness_score"`
	ClarityScore      float64                  `json:"clarity_score"`
	DepthScore        float64                  `json:"depth_score"`
	ConfidenceScore   float64                  `json:"confidence_score"`
	Feedback          string                   `json:"feedback"`
	LearningResources []model.LearningResource `json:"learning_resources"`
	CodeSubmission    *string                  `json:"code_submission,omitempty"`
	WhiteboardURL     *string                  `json:"whiteboard_url,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
}

type InterviewSummaryDTO struct {
	ID           uint       `json:"id"`
	UserID       uint       `json:"user_id"`
	RoleID       string     `json:"role_id"`
	Language     string     `json:"language"`
	Status       string     `json:"status"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	OverallScore *float64   `json:"overall_score,omitempty"`
}

type InterviewDetailDTO struct {
	ID                 uint                 `json:"id"`
	UserID             uint                 `json:"user_id"`
	RoleID             string               `json:"role_id"`
	Language           string               `json:"language"`
	Status             string               `json:"status"`
	StartTime          time.Time            `json:"start_time"`
	EndTime            *time.Time           `json:"end_time,omitempty"`
	OverallScore       *float64             `json:"overall_score,omitempty"`
	TechnicalScore     *float64             `json:"technical_score,omitempty"`
	CommunicationScore *float64             `json:"communication_score,omitempty"`
	VoiceMetrics       *model.VoiceMetrics  `json:"voice_metrics,omitempty"`
	FacialMetrics      *model.FacialMetrics `json:"facial_metrics,omitempty"`
	FeedbackSummary    *string              `json:"feedback_summary,omitempty"`
	ImprovementAreas   []string             `json:"improvement_areas"`
	Questions          []QuestionResponseDTO `json:"questions,omitempty"`
	Answers            []AnswerResponseDTO   `json:"answers,omitempty"`
	// NextQuestion is the first unanswered question in order, nil once all
	// questions are answered or the session is terminal.
	NextQuestion *QuestionResponseDTO `json:"next_question,omitempty"`
}

type MetricsResponseDTO struct {
	VoiceMetrics  *model.VoiceMetrics  `json:"voice_metrics,omitempty"`
	FacialMetrics *model.FacialMetrics `json:"facial_metrics,omitempty"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
