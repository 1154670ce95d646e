package service

import (
	"context"

	"github.com/lshigami/Mockingbird/internal/ai"
	"github.com/lshigami/Mockingbird/internal/apperr"
	"github.com/lshigami/Mockingbird/internal/dto"
	"github.com/lshigami/Mockingbird/internal/model"
	"github.com/lshigami/Mockingbird/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService runs the per-answer pipeline and the passive metrics
// updates. Both follow the same shape: validate under the session lock,
// release it for the collaborator call, re-acquire and re-validate before
// the single atomic commit.
type SubmissionService interface {
	SubmitAnswer(ctx context.Context, interviewID uint, req dto.AnswerSubmitDTO) (*dto.AnswerResponseDTO, error)
	UpdateMetrics(ctx context.Context, interviewID uint, req dto.MetricsUpdateDTO) (*dto.MetricsResponseDTO, error)
}

type submissionService struct {
	interviewRepo repository.InterviewRepository
	questionRepo  repository.QuestionRepository
	answerRepo    repository.AnswerRepository
	evaluator     ai.AnswerEvaluator
	analyzer      ai.MetricsAnalyzer
	locks         *SessionLocks
	db            *gorm.DB
}

func NewSubmissionService(
	interviewRepo repository.InterviewRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	evaluator ai.AnswerEvaluator,
	analyzer ai.MetricsAnalyzer,
	locks *SessionLocks,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		answerRepo:    answerRepo,
		evaluator:     evaluator,
		analyzer:      analyzer,
		locks:         locks,
		db:            db,
	}
}

func (s *submissionService) SubmitAnswer(ctx context.Context, interviewID uint, req dto.AnswerSubmitDTO) (*dto.AnswerResponseDTO, error) {
	lock := s.locks.Get(interviewID)

	lock.Lock()
	interview, question, err := s.validateSubmission(interviewID, req.QuestionID)
	lock.Unlock()
	if err != nil {
		return nil, err
	}

	// The evaluator call is the slow part; it runs without the session lock.
	eval, err := s.evaluator.EvaluateAnswer(ctx, question.Text, question.ReferenceAnswer, req.TranscribedText, req.CodeSubmission)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Uint("questionID", question.ID).Msg("SubmitAnswer: evaluation failed")
		return nil, apperr.ExternalService("answer evaluator", err)
	}

	lock.Lock()
	defer lock.Unlock()

	// State may have changed while the evaluator ran; re-validate. A session
	// that turned terminal mid-call discards the late result.
	interview, err = s.interviewRepo.FindByID(interviewID)
	if err != nil {
		return nil, err
	}
	if model.IsTerminalStatus(interview.Status) {
		return nil, apperr.Conflict("interview %d reached status %q while the answer was being evaluated", interviewID, interview.Status)
	}
	answered, err := s.answerRepo.ExistsForQuestion(question.ID)
	if err != nil {
		return nil, err
	}
	if answered {
		return nil, apperr.Validation("question %d has already been answered", question.ID)
	}

	answer := &model.Answer{
		InterviewID:       interviewID,
		QuestionID:        question.ID,
		TranscribedText:   req.TranscribedText,
		AudioDuration:     req.AudioDuration,
		CorrectnessScore:  eval.Correctness,
		ClarityScore:      eval.Clarity,
		DepthScore:        eval.Depth,
		ConfidenceScore:   eval.Confidence,
		Feedback:          eval.Feedback,
		LearningResources: eval.Resources,
		CodeSubmission:    req.CodeSubmission,
		WhiteboardURL:     req.WhiteboardURL,
	}

	// Persisting the answer and the implicit scheduled -> in_progress
	// transition is the sole commit point of the pipeline.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.Create(tx, answer); err != nil {
			return err
		}
		if interview.Status == model.StatusScheduled {
			next, terr := Transition(interview.Status, EventStart)
			if terr != nil {
				return terr
			}
			return s.interviewRepo.UpdateGuarded(tx, interview, map[string]interface{}{"status": next})
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("SubmitAnswer: commit failed")
		return nil, err
	}

	log.Info().Uint("interviewID", interviewID).Uint("questionID", question.ID).Uint("answerID", answer.ID).Msg("Answer submitted")
	return toAnswerDTO(answer)
}

// validateSubmission checks the submission preconditions under the session lock:
// interview exists and is not terminal, the question belongs to it, and there
// is no prior answer.
func (s *submissionService) validateSubmission(interviewID, questionID uint) (*model.Interview, *model.Question, error) {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		return nil, nil, err
	}
	if model.IsTerminalStatus(interview.Status) {
		return nil, nil, apperr.InvalidTransition(interview.Status, "submit an answer to")
	}

	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, nil, err
	}
	if question.InterviewID != interviewID {
		return nil, nil, apperr.Validation("question %d does not belong to interview %d", questionID, interviewID)
	}

	answered, err := s.answerRepo.ExistsForQuestion(questionID)
	if err != nil {
		return nil, nil, err
	}
	if answered {
		return nil, nil, apperr.Validation("question %d has already been answered", questionID)
	}
	return interview, question, nil
}

func (s *submissionService) UpdateMetrics(ctx context.Context, interviewID uint, req dto.MetricsUpdateDTO) (*dto.MetricsResponseDTO, error) {
	lock := s.locks.Get(interviewID)

	lock.Lock()
	interview, err := s.interviewRepo.FindByID(interviewID)
	lock.Unlock()
	if err != nil {
		return nil, err
	}
	if model.IsTerminalStatus(interview.Status) {
		return nil, apperr.InvalidTransition(interview.Status, "update metrics for")
	}

	resp := &dto.MetricsResponseDTO{}
	if len(req.VoiceData) == 0 && len(req.FacialData) == 0 {
		return resp, nil
	}

	// Modalities are independent; analyze whichever payloads were supplied.
	if len(req.VoiceData) > 0 {
		vm, err := s.analyzer.AnalyzeVoice(ctx, req.VoiceData)
		if err != nil {
			log.Error().Err(err).Uint("interviewID", interviewID).Msg("UpdateMetrics: voice analysis failed")
			return nil, apperr.ExternalService("voice analyzer", err)
		}
		resp.VoiceMetrics = vm
	}
	if len(req.FacialData) > 0 {
		fm, err := s.analyzer.AnalyzeFacial(ctx, req.FacialData)
		if err != nil {
			log.Error().Err(err).Uint("interviewID", interviewID).Msg("UpdateMetrics: facial analysis failed")
			return nil, apperr.ExternalService("facial analyzer", err)
		}
		resp.FacialMetrics = fm
	}

	lock.Lock()
	defer lock.Unlock()

	interview, err = s.interviewRepo.FindByID(interviewID)
	if err != nil {
		return nil, err
	}
	if model.IsTerminalStatus(interview.Status) {
		return nil, apperr.Conflict("interview %d reached status %q while metrics were being analyzed", interviewID, interview.Status)
	}

	// Last write wins per modality; an update never implies a lifecycle
	// transition.
	updates := map[string]interface{}{}
	if resp.VoiceMetrics != nil {
		updates["voice_metrics"] = resp.VoiceMetrics
	}
	if resp.FacialMetrics != nil {
		updates["facial_metrics"] = resp.FacialMetrics
	}
	if err := s.interviewRepo.UpdateGuarded(nil, interview, updates); err != nil {
		return nil, err
	}

	log.Info().Uint("interviewID", interviewID).Bool("voice", resp.VoiceMetrics != nil).Bool("facial", resp.FacialMetrics != nil).Msg("Interview metrics updated")
	return resp, nil
}
