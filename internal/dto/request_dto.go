package dto

// RoleProfileDTO is the snapshot of the target role supplied by the enclosing
// layer at session creation; the engine does not own the role catalog.
type RoleProfileDTO struct {
	Name            string             `json:"name" binding:"required"`
	ExperienceLevel string             `json:"experience_level"`
	RequiredSkills  []string           `json:"required_skills"`
	QuestionCounts  map[string]int     `json:"question_counts,omitempty"`
	DifficultyMix   map[string]float64 `json:"difficulty_mix,omitempty"`
}

type InterviewCreateDTO struct {
	UserID          uint           `json:"user_id" binding:"required"` // identity comes from the enclosing auth layer
	RoleID          string         `json:"role_id" binding:"required"`
	Language        string         `json:"language"`
	Role            RoleProfileDTO `json:"role" binding:"required"`
	CandidateSkills []string       `json:"candidate_skills"`
}

type AnswerSubmitDTO struct {
	QuestionID      uint    `json:"question_id" binding:"required"`
	TranscribedText string  `json:"transcribed_text" binding:"required"`
	AudioDuration   int     `json:"audio_duration" binding:"min=0"`
	CodeSubmission  *string `json:"code_submission,omitempty"`
	WhiteboardURL   *string `json:"whiteboard_url,omitempty"`
}

// MetricsUpdateDTO carries raw biometric payloads (base64 in JSON). Either,
// both, or neither modality may be supplied.
type MetricsUpdateDTO struct {
	VoiceData  []byte `json:"voice_data,omitempty"`
	FacialData []byte `json:"facial_data,omitempty"`
}
