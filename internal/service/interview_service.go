package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Mockingbird/internal/ai"
	"github.com/lshigami/Mockingbird/internal/apperr"
	"github.com/lshigami/Mockingbird/internal/dto"
	"github.com/lshigami/Mockingbird/internal/model"
	"github.com/lshigami/Mockingbird/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InterviewService owns the session lifecycle: creation with the up-front
// question set, the guarded transitions, and the terminal aggregation +
// feedback step. It is the sole writer of interview state.
type InterviewService interface {
	CreateInterview(ctx context.Context, req dto.InterviewCreateDTO) (*dto.InterviewDetailDTO, error)
	GetInterview(id uint) (*dto.InterviewDetailDTO, error)
	ListInterviews(userID uint, status *string) ([]dto.InterviewSummaryDTO, error)
	PauseInterview(id uint) (*dto.InterviewDetailDTO, error)
	ResumeInterview(id uint) (*dto.InterviewDetailDTO, error)
	AbandonInterview(id uint) (*dto.InterviewDetailDTO, error)
	CompleteInterview(ctx context.Context, id uint) (*dto.InterviewDetailDTO, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	questionGen   ai.QuestionGenerator
	feedbackGen   ai.FeedbackGenerator
	aggregator    ScoreAggregatorService
	locks         *SessionLocks
	db            *gorm.DB
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	questionGen ai.QuestionGenerator,
	feedbackGen ai.FeedbackGenerator,
	aggregator ScoreAggregatorService,
	locks *SessionLocks,
	db *gorm.DB,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		questionGen:   questionGen,
		feedbackGen:   feedbackGen,
		aggregator:    aggregator,
		locks:         locks,
		db:            db,
	}
}

func (s *interviewService) CreateInterview(ctx context.Context, req dto.InterviewCreateDTO) (*dto.InterviewDetailDTO, error) {
	language := req.Language
	if language == "" {
		language = "en"
	}

	role := ai.RoleProfile{
		Name:            req.Role.Name,
		ExperienceLevel: req.Role.ExperienceLevel,
		RequiredSkills:  req.Role.RequiredSkills,
		QuestionCounts:  req.Role.QuestionCounts,
		DifficultyMix:   req.Role.DifficultyMix,
	}
	candidate := ai.CandidateProfile{Skills: req.CandidateSkills}

	// Nothing is persisted until the full question set exists; a generator
	// failure leaves no half-created session behind.
	drafts, err := s.questionGen.GenerateQuestions(ctx, role, candidate, language)
	if err != nil {
		log.Error().Err(err).Str("role", req.Role.Name).Msg("CreateInterview: question generation failed")
		return nil, apperr.ExternalService("question generator", err)
	}

	interview := &model.Interview{
		UserID:           req.UserID,
		RoleID:           req.RoleID,
		Language:         language,
		Status:           model.StatusScheduled,
		StartTime:        time.Now(),
		ImprovementAreas: []string{},
	}
	for i, draft := range drafts {
		var question model.Question
		if err := copier.Copy(&question, &draft); err != nil {
			log.Error().Err(err).Int("index", i).Msg("CreateInterview: failed to copy question draft")
			return nil, err
		}
		question.OrderIndex = i + 1
		interview.Questions = append(interview.Questions, question)
	}

	if err := s.interviewRepo.Create(nil, interview); err != nil {
		log.Error().Err(err).Msg("CreateInterview: failed to persist interview with question set")
		return nil, err
	}

	log.Info().Uint("interviewID", interview.ID).Int("questions", len(interview.Questions)).Msg("Interview created")
	return s.detail(interview.ID)
}

func (s *interviewService) GetInterview(id uint) (*dto.InterviewDetailDTO, error) {
	return s.detail(id)
}

func (s *interviewService) ListInterviews(userID uint, status *string) ([]dto.InterviewSummaryDTO, error) {
	if status != nil {
		switch *status {
		case model.StatusScheduled, model.StatusInProgress, model.StatusPaused, model.StatusCompleted, model.StatusAbandoned:
		default:
			return nil, apperr.Validation("invalid status filter %q", *status)
		}
	}

	interviews, err := s.interviewRepo.FindAllByUser(userID, status)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.InterviewSummaryDTO, 0, len(interviews))
	for i := range interviews {
		var summary dto.InterviewSummaryDTO
		if err := copier.Copy(&summary, &interviews[i]); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *interviewService) PauseInterview(id uint) (*dto.InterviewDetailDTO, error) {
	return s.applyTransition(id, EventPause)
}

func (s *interviewService) ResumeInterview(id uint) (*dto.InterviewDetailDTO, error) {
	return s.applyTransition(id, EventResume)
}

func (s *interviewService) AbandonInterview(id uint) (*dto.InterviewDetailDTO, error) {
	return s.applyTransition(id, EventAbandon)
}

// applyTransition performs a guarded pure state transition under the session
// lock. Abandon additionally stamps end_time; end_time is set if and only if
// the session reaches a terminal state.
func (s *interviewService) applyTransition(id uint, event string) (*dto.InterviewDetailDTO, error) {
	lock := s.locks.Get(id)
	lock.Lock()
	defer lock.Unlock()

	interview, err := s.interviewRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	next, err := Transition(interview.Status, event)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": next}
	if event == EventAbandon {
		updates["end_time"] = time.Now()
	}
	if err := s.interviewRepo.UpdateGuarded(nil, interview, updates); err != nil {
		return nil, err
	}

	log.Info().Uint("interviewID", id).Str("event", event).Str("status", next).Msg("Interview transition applied")
	return s.detail(id)
}

func (s *interviewService) CompleteInterview(ctx context.Context, id uint) (*dto.InterviewDetailDTO, error) {
	lock := s.locks.Get(id)

	lock.Lock()
	interview, err := s.interviewRepo.FindByIDWithDetails(id)
	if err != nil {
		lock.Unlock()
		return nil, err
	}
	if _, err := Transition(interview.Status, EventComplete); err != nil {
		lock.Unlock()
		return nil, err
	}
	if len(interview.Answers) == 0 {
		lock.Unlock()
		return nil, apperr.Validation("interview %d has no answers to score", id)
	}

	technical := s.aggregator.TechnicalScore(interview.Answers)
	communication := s.aggregator.CommunicationScore(interview.VoiceMetrics, interview.FacialMetrics)
	overall := s.aggregator.OverallScore(technical, communication)
	snapshot := buildSnapshot(interview, technical, communication, overall)
	lock.Unlock()

	// The feedback call can take a while; it must not hold the session lock.
	feedback, err := s.feedbackGen.GenerateFeedback(ctx, snapshot)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", id).Msg("CompleteInterview: feedback generation failed, transition not committed")
		return nil, apperr.ExternalService("feedback generator", err)
	}

	lock.Lock()
	defer lock.Unlock()

	// State may have moved while feedback was generated; re-validate before
	// committing. A session that turned terminal mid-call discards the late
	// result instead of being resurrected.
	interview, err = s.interviewRepo.FindByIDWithDetails(id)
	if err != nil {
		return nil, err
	}
	next, err := Transition(interview.Status, EventComplete)
	if err != nil {
		if model.IsTerminalStatus(interview.Status) {
			return nil, apperr.Conflict("interview %d reached status %q during completion", id, interview.Status)
		}
		return nil, err
	}
	if len(interview.Answers) == 0 {
		return nil, apperr.Validation("interview %d has no answers to score", id)
	}

	// Scores are recomputed from the freshest answer set; an answer that
	// landed during the feedback call still counts toward the totals.
	technical = s.aggregator.TechnicalScore(interview.Answers)
	communication = s.aggregator.CommunicationScore(interview.VoiceMetrics, interview.FacialMetrics)
	overall = s.aggregator.OverallScore(technical, communication)

	updates := map[string]interface{}{
		"status":            next,
		"end_time":          time.Now(),
		"technical_score":   technical,
		"overall_score":     overall,
		"feedback_summary":  feedback.Summary,
		"improvement_areas": feedback.ImprovementAreas,
	}
	if communication != nil {
		updates["communication_score"] = *communication
	}

	// Single guarded update: scores, feedback, end_time and the transition
	// commit together or not at all.
	if err := s.interviewRepo.UpdateGuarded(nil, interview, updates); err != nil {
		return nil, err
	}

	log.Info().Uint("interviewID", id).Float64("overall", overall).Msg("Interview completed")
	return s.detail(id)
}

func (s *interviewService) detail(id uint) (*dto.InterviewDetailDTO, error) {
	interview, err := s.interviewRepo.FindByIDWithDetails(id)
	if err != nil {
		return nil, err
	}
	return toInterviewDetailDTO(interview)
}
