// Package ai defines the contracts of the external AI collaborators the
// interview engine depends on, plus their Gemini-backed implementations.
// The engine only decides how collaborator outputs are requested, validated,
// combined and persisted; the models themselves live behind these interfaces.
package ai

import (
	"context"

	"github.com/lshigami/Mockingbird/internal/model"
)

// RoleProfile is a snapshot of the target role supplied by the enclosing
// layer. The engine never reads the role catalog itself.
type RoleProfile struct {
	Name            string             `json:"name"`
	ExperienceLevel string             `json:"experience_level"`
	RequiredSkills  []string           `json:"required_skills"`
	QuestionCounts  map[string]int     `json:"question_counts,omitempty"`  // question type -> count
	DifficultyMix   map[string]float64 `json:"difficulty_mix,omitempty"`   // difficulty label -> share
}

// CandidateProfile is the candidate's parsed skill set, also supplied by the
// enclosing layer (resume ingestion is out of scope).
type CandidateProfile struct {
	Skills []string `json:"skills"`
}

// QuestionDraft is an unpersisted question produced by the generator. The
// orchestrator assigns identity and order when it persists the set.
type QuestionDraft struct {
	Text               string `json:"text"`
	Type               string `json:"type"`
	Difficulty         int    `json:"difficulty"`
	SkillTested        string `json:"skill_tested"`
	ReferenceAnswer    string `json:"reference_answer"`
	TimeLimit          *int   `json:"time_limit,omitempty"`
	CodeRequired       bool   `json:"code_required"`
	WhiteboardRequired bool   `json:"whiteboard_required"`
}

type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, role RoleProfile, candidate CandidateProfile, language string) ([]QuestionDraft, error)
}

// AnswerEvaluation carries the four component scores (each in [0,1]),
// feedback text and learning resources for one answer.
type AnswerEvaluation struct {
	Correctness float64                  `json:"correctness_score"`
	Clarity     float64                  `json:"clarity_score"`
	Depth       float64                  `json:"depth_score"`
	Confidence  float64                  `json:"confidence_score"`
	Feedback    string                   `json:"feedback"`
	Resources   []model.LearningResource `json:"resources"`
}

type AnswerEvaluator interface {
	EvaluateAnswer(ctx context.Context, questionText, referenceAnswer, candidateAnswer string, codeSubmission *string) (*AnswerEvaluation, error)
}

// MetricsAnalyzer derives per-modality metrics from raw biometric payloads.
type MetricsAnalyzer interface {
	AnalyzeVoice(ctx context.Context, audio []byte) (*model.VoiceMetrics, error)
	AnalyzeFacial(ctx context.Context, video []byte) (*model.FacialMetrics, error)
}

// SnapshotQA pairs a question with the candidate's scored answer.
type SnapshotQA struct {
	Question    string  `json:"question"`
	Answer      string  `json:"answer"`
	Correctness float64 `json:"correctness_score"`
}

// InterviewSnapshot is the read-only view handed to the feedback generator.
// Collaborators never see, let alone mutate, live session state.
type InterviewSnapshot struct {
	RoleID             string               `json:"role_id"`
	Language           string               `json:"language"`
	TechnicalScore     float64              `json:"technical_score"`
	CommunicationScore *float64             `json:"communication_score,omitempty"`
	OverallScore       float64              `json:"overall_score"`
	VoiceMetrics       *model.VoiceMetrics  `json:"voice_metrics,omitempty"`
	FacialMetrics      *model.FacialMetrics `json:"facial_metrics,omitempty"`
	QuestionAnswers    []SnapshotQA         `json:"question_answers"`
}

type FeedbackResult struct {
	Summary          string   `json:"summary"`
	ImprovementAreas []string `json:"improvement_areas"`
}

type FeedbackGenerator interface {
	GenerateFeedback(ctx context.Context, snapshot InterviewSnapshot) (*FeedbackResult, error)
}
