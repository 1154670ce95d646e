package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/Mockingbird/internal/ai"
	"github.com/lshigami/Mockingbird/internal/dto"
	"github.com/lshigami/Mockingbird/internal/model"
	"github.com/lshigami/Mockingbird/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Interview{}, &model.Question{}, &model.Answer{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

type fakeQuestionGenerator struct {
	drafts []ai.QuestionDraft
	err    error
}

func (f *fakeQuestionGenerator) GenerateQuestions(ctx context.Context, role ai.RoleProfile, candidate ai.CandidateProfile, language string) ([]ai.QuestionDraft, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.drafts, nil
}

type fakeAnswerEvaluator struct {
	eval   ai.AnswerEvaluation
	err    error
	onCall func() // runs while the session lock is released
}

func (f *fakeAnswerEvaluator) EvaluateAnswer(ctx context.Context, questionText, referenceAnswer, candidateAnswer string, codeSubmission *string) (*ai.AnswerEvaluation, error) {
	if f.onCall != nil {
		f.onCall()
	}
	if f.err != nil {
		return nil, f.err
	}
	eval := f.eval
	return &eval, nil
}

type fakeMetricsAnalyzer struct {
	voice     model.VoiceMetrics
	facial    model.FacialMetrics
	voiceErr  error
	facialErr error
	onCall    func()
}

func (f *fakeMetricsAnalyzer) AnalyzeVoice(ctx context.Context, audio []byte) (*model.VoiceMetrics, error) {
	if f.onCall != nil {
		f.onCall()
	}
	if f.voiceErr != nil {
		return nil, f.voiceErr
	}
	vm := f.voice
	return &vm, nil
}

func (f *fakeMetricsAnalyzer) AnalyzeFacial(ctx context.Context, video []byte) (*model.FacialMetrics, error) {
	if f.onCall != nil {
		f.onCall()
	}
	if f.facialErr != nil {
		return nil, f.facialErr
	}
	fm := f.facial
	return &fm, nil
}

type fakeFeedbackGenerator struct {
	result ai.FeedbackResult
	err    error
	onCall func()
}

func (f *fakeFeedbackGenerator) GenerateFeedback(ctx context.Context, snapshot ai.InterviewSnapshot) (*ai.FeedbackResult, error) {
	if f.onCall != nil {
		f.onCall()
	}
	if f.err != nil {
		return nil, f.err
	}
	result := f.result
	return &result, nil
}

type fixture struct {
	db          *gorm.DB
	questionGen *fakeQuestionGenerator
	evaluator   *fakeAnswerEvaluator
	analyzer    *fakeMetricsAnalyzer
	feedbackGen *fakeFeedbackGenerator
	interviews  InterviewService
	submissions SubmissionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	interviewRepo := repository.NewInterviewRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	locks := NewSessionLocks()

	f := &fixture{
		db: db,
		questionGen: &fakeQuestionGenerator{
			drafts: []ai.QuestionDraft{
				{Text: "Explain how a hash map handles collisions.", Type: model.QuestionTypeTechnical, Difficulty: 3, SkillTested: "data structures", ReferenceAnswer: "Chaining or open addressing."},
				{Text: "Tell me about a project you are proud of.", Type: model.QuestionTypeBehavioral, Difficulty: 2, SkillTested: "communication", ReferenceAnswer: "A structured story with impact."},
			},
		},
		evaluator: &fakeAnswerEvaluator{
			eval: ai.AnswerEvaluation{
				Correctness: 0.9,
				Clarity:     0.8,
				Depth:       0.6,
				Confidence:  0.7,
				Feedback:    "Solid answer, could cover open addressing in more depth.",
			},
		},
		analyzer: &fakeMetricsAnalyzer{
			voice:  model.VoiceMetrics{Confidence: 0.8, Clarity: 0.7, Fluency: 0.9, Pace: 0.6, HesitationCount: 2, FillerWordsCount: 5},
			facial: model.FacialMetrics{Engagement: 0.75, Confidence: 0.65, EyeContact: 0.8, Expressions: map[string]float64{"neutral": 0.7}},
		},
		feedbackGen: &fakeFeedbackGenerator{
			result: ai.FeedbackResult{
				Summary:          "You demonstrated strong fundamentals.",
				ImprovementAreas: []string{"system design depth", "answer structure"},
			},
		},
	}

	f.interviews = NewInterviewService(interviewRepo, f.questionGen, f.feedbackGen, NewScoreAggregatorService(), locks, db)
	f.submissions = NewSubmissionService(interviewRepo, questionRepo, answerRepo, f.evaluator, f.analyzer, locks, db)
	return f
}

func createRequest() dto.InterviewCreateDTO {
	return dto.InterviewCreateDTO{
		UserID:   42,
		RoleID:   "backend-engineer",
		Language: "en",
		Role: dto.RoleProfileDTO{
			Name:            "Backend Engineer",
			ExperienceLevel: "senior",
			RequiredSkills:  []string{"Go", "PostgreSQL"},
		},
		CandidateSkills: []string{"Go", "Redis"},
	}
}

func metricsRequest(voice, facial bool) dto.MetricsUpdateDTO {
	var req dto.MetricsUpdateDTO
	if voice {
		req.VoiceData = []byte("fake-wav-bytes")
	}
	if facial {
		req.FacialData = []byte("fake-webm-bytes")
	}
	return req
}

func (f *fixture) createInterview(t *testing.T) *dto.InterviewDetailDTO {
	t.Helper()

	detail, err := f.interviews.CreateInterview(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("CreateInterview failed: %v", err)
	}
	return detail
}

func (f *fixture) submitAnswer(t *testing.T, interviewID, questionID uint) *dto.AnswerResponseDTO {
	t.Helper()

	answer, err := f.submissions.SubmitAnswer(context.Background(), interviewID, dto.AnswerSubmitDTO{
		QuestionID:      questionID,
		TranscribedText: "Collisions are resolved with chaining.",
		AudioDuration:   45,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	return answer
}

func (f *fixture) reload(t *testing.T, id uint) *model.Interview {
	t.Helper()

	var interview model.Interview
	if err := f.db.First(&interview, id).Error; err != nil {
		t.Fatalf("failed to reload interview %d: %v", id, err)
	}
	return &interview
}
