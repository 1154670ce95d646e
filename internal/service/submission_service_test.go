package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Mockingbird/internal/apperr"
	"github.com/lshigami/Mockingbird/internal/dto"
	"github.com/lshigami/Mockingbird/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAnswerStartsScheduledInterview(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	answer := f.submitAnswer(t, created.ID, created.Questions[0].ID)

	assert.Equal(t, created.Questions[0].ID, answer.QuestionID)
	assert.InDelta(t, 0.9, answer.CorrectnessScore, 1e-9)
	assert.InDelta(t, 0.8, answer.ClarityScore, 1e-9)
	assert.InDelta(t, 0.6, answer.DepthScore, 1e-9)
	assert.InDelta(t, 0.7, answer.ConfidenceScore, 1e-9)
	assert.NotEmpty(t, answer.Feedback)

	assert.Equal(t, model.StatusInProgress, f.reload(t, created.ID).Status)
}

func TestSubmitAnswerKeepsInProgressStatus(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	f.submitAnswer(t, created.ID, created.Questions[0].ID)
	f.submitAnswer(t, created.ID, created.Questions[1].ID)

	assert.Equal(t, model.StatusInProgress, f.reload(t, created.ID).Status)

	detail, err := f.interviews.GetInterview(created.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Answers, 2)
	assert.Nil(t, detail.NextQuestion, "all questions answered")
}

func TestSubmitAnswerAdvancesNextQuestion(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	f.submitAnswer(t, created.ID, created.Questions[0].ID)

	detail, err := f.interviews.GetInterview(created.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.NextQuestion)
	assert.Equal(t, created.Questions[1].ID, detail.NextQuestion.ID)
}

func TestSubmitAnswerDuplicateQuestion(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	first := f.submitAnswer(t, created.ID, created.Questions[0].ID)

	_, err := f.submissions.SubmitAnswer(context.Background(), created.ID, dto.AnswerSubmitDTO{
		QuestionID:      created.Questions[0].ID,
		TranscribedText: "A different answer entirely.",
	})
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	var answers []model.Answer
	f.db.Where("interview_id = ?", created.ID).Find(&answers)
	require.Len(t, answers, 1)
	assert.Equal(t, first.TranscribedText, answers[0].TranscribedText, "original answer must be untouched")
}

func TestSubmitAnswerQuestionFromAnotherInterview(t *testing.T) {
	f := newFixture(t)
	first := f.createInterview(t)
	second := f.createInterview(t)

	_, err := f.submissions.SubmitAnswer(context.Background(), first.ID, dto.AnswerSubmitDTO{
		QuestionID:      second.Questions[0].ID,
		TranscribedText: "An answer to the wrong session.",
	})
	assert.True(t, apperr.IsValidation(err), "got %v", err)
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	_, err := f.submissions.SubmitAnswer(context.Background(), created.ID, dto.AnswerSubmitDTO{
		QuestionID:      9999,
		TranscribedText: "An answer to nothing.",
	})
	assert.True(t, apperr.IsNotFound(err), "got %v", err)
}

func TestSubmitAnswerUnknownInterview(t *testing.T) {
	f := newFixture(t)

	_, err := f.submissions.SubmitAnswer(context.Background(), 9999, dto.AnswerSubmitDTO{
		QuestionID:      1,
		TranscribedText: "hello",
	})
	assert.True(t, apperr.IsNotFound(err), "got %v", err)
}

func TestSubmitAnswerToTerminalInterview(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)
	_, err := f.interviews.AbandonInterview(created.ID)
	require.NoError(t, err)

	_, err = f.submissions.SubmitAnswer(context.Background(), created.ID, dto.AnswerSubmitDTO{
		QuestionID:      created.Questions[0].ID,
		TranscribedText: "Too late.",
	})
	assert.True(t, apperr.IsInvalidTransition(err), "got %v", err)
}

func TestSubmitAnswerEvaluatorFailurePersistsNothing(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)
	f.evaluator.err = errors.New("model overloaded")

	_, err := f.submissions.SubmitAnswer(context.Background(), created.ID, dto.AnswerSubmitDTO{
		QuestionID:      created.Questions[0].ID,
		TranscribedText: "Collisions are resolved with chaining.",
	})
	assert.True(t, apperr.IsExternalService(err), "got %v", err)

	var count int64
	f.db.Model(&model.Answer{}).Where("interview_id = ?", created.ID).Count(&count)
	assert.Zero(t, count)
	assert.Equal(t, model.StatusScheduled, f.reload(t, created.ID).Status)
}

func TestSubmitAnswerDiscardedWhenAbandonedDuringEvaluation(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	// The evaluator runs without the session lock; abandon the session
	// mid-call and make sure the late result is discarded.
	f.evaluator.onCall = func() {
		f.evaluator.onCall = nil
		if _, err := f.interviews.AbandonInterview(created.ID); err != nil {
			t.Errorf("AbandonInterview failed: %v", err)
		}
	}

	_, err := f.submissions.SubmitAnswer(context.Background(), created.ID, dto.AnswerSubmitDTO{
		QuestionID:      created.Questions[0].ID,
		TranscribedText: "Collisions are resolved with chaining.",
	})
	assert.True(t, apperr.IsConflict(err), "got %v", err)

	var count int64
	f.db.Model(&model.Answer{}).Where("interview_id = ?", created.ID).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateMetricsStoresSuppliedModalities(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	resp, err := f.submissions.UpdateMetrics(context.Background(), created.ID, metricsRequest(true, false))
	require.NoError(t, err)
	require.NotNil(t, resp.VoiceMetrics)
	assert.Nil(t, resp.FacialMetrics)
	assert.InDelta(t, 0.8, resp.VoiceMetrics.Confidence, 1e-9)

	reloaded := f.reload(t, created.ID)
	require.NotNil(t, reloaded.VoiceMetrics)
	assert.Nil(t, reloaded.FacialMetrics)

	// Adding the second modality must not clobber the first.
	_, err = f.submissions.UpdateMetrics(context.Background(), created.ID, metricsRequest(false, true))
	require.NoError(t, err)

	reloaded = f.reload(t, created.ID)
	require.NotNil(t, reloaded.VoiceMetrics)
	require.NotNil(t, reloaded.FacialMetrics)
	assert.InDelta(t, 0.75, reloaded.FacialMetrics.Engagement, 1e-9)
}

func TestUpdateMetricsLastWriteWins(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	_, err := f.submissions.UpdateMetrics(context.Background(), created.ID, metricsRequest(true, false))
	require.NoError(t, err)

	f.analyzer.voice = model.VoiceMetrics{Confidence: 0.3, Clarity: 0.4, Fluency: 0.5, Pace: 0.6}
	_, err = f.submissions.UpdateMetrics(context.Background(), created.ID, metricsRequest(true, false))
	require.NoError(t, err)

	reloaded := f.reload(t, created.ID)
	require.NotNil(t, reloaded.VoiceMetrics)
	assert.InDelta(t, 0.3, reloaded.VoiceMetrics.Confidence, 1e-9)
}

func TestUpdateMetricsWithoutPayloadIsNoop(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	resp, err := f.submissions.UpdateMetrics(context.Background(), created.ID, dto.MetricsUpdateDTO{})
	require.NoError(t, err)
	assert.Nil(t, resp.VoiceMetrics)
	assert.Nil(t, resp.FacialMetrics)
	assert.Nil(t, f.reload(t, created.ID).VoiceMetrics)
}

func TestUpdateMetricsOnTerminalInterview(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)
	_, err := f.interviews.AbandonInterview(created.ID)
	require.NoError(t, err)

	_, err = f.submissions.UpdateMetrics(context.Background(), created.ID, metricsRequest(true, true))
	assert.True(t, apperr.IsInvalidTransition(err), "got %v", err)
	assert.Nil(t, f.reload(t, created.ID).VoiceMetrics)
}

func TestUpdateMetricsAnalyzerFailurePersistsNothing(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)
	f.analyzer.facialErr = errors.New("decode failure")

	_, err := f.submissions.UpdateMetrics(context.Background(), created.ID, metricsRequest(true, true))
	assert.True(t, apperr.IsExternalService(err), "got %v", err)

	reloaded := f.reload(t, created.ID)
	assert.Nil(t, reloaded.VoiceMetrics)
	assert.Nil(t, reloaded.FacialMetrics)
}

func TestUpdateMetricsDiscardedWhenAbandonedDuringAnalysis(t *testing.T) {
	f := newFixture(t)
	created := f.createInterview(t)

	f.analyzer.onCall = func() {
		f.analyzer.onCall = nil
		if _, err := f.interviews.AbandonInterview(created.ID); err != nil {
			t.Errorf("AbandonInterview failed: %v", err)
		}
	}

	_, err := f.submissions.UpdateMetrics(context.Background(), created.ID, metricsRequest(true, false))
	assert.True(t, apperr.IsConflict(err), "got %v", err)
	assert.Nil(t, f.reload(t, created.ID).VoiceMetrics)
}
