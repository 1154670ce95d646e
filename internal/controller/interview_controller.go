package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Mockingbird/internal/apperr"
	"github.com/lshigami/Mockingbird/internal/dto"
	"github.com/lshigami/Mockingbird/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService  service.InterviewService
	submissionService service.SubmissionService
}

func NewInterviewController(is service.InterviewService, ss service.SubmissionService) *InterviewController {
	return &InterviewController{
		interviewService:  is,
		submissionService: ss,
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Unknown errors
// are reported as 500 without leaking internals beyond the message.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindInvalidTransition, apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindExternalService:
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// CreateInterview godoc
// @Summary Create a new interview session
// @Description Creates a scheduled interview and generates its question set from the supplied role and candidate profile.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param interview_data body dto.InterviewCreateDTO true "Interview creation payload"
// @Success 201 {object} dto.InterviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 503 {object} dto.ErrorResponse "Question generation unavailable"
// @Router /interviews [post]
func (c *InterviewController) CreateInterview(ctx *gin.Context) {
	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateInterview: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("userID", req.UserID).Str("roleID", req.RoleID).Msg("Received request to create interview")

	detail, err := c.interviewService.CreateInterview(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("CreateInterview: Service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// ListInterviews godoc
// @Summary List a user's interviews
// @Description Returns summaries of a user's interviews, newest first, optionally filtered by status.
// @Tags Interviews
// @Produce json
// @Param user_id query int true "User ID"
// @Param status query string false "Status filter (scheduled, in_progress, paused, completed, abandoned)"
// @Success 200 {array} dto.InterviewSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID or status filter"
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	val, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id query parameter"})
		return
	}

	var status *string
	if s := ctx.Query("status"); s != "" {
		status = &s
	}

	summaries, err := c.interviewService.ListInterviews(uint(val), status)
	if err != nil {
		log.Error().Err(err).Uint64("userID", val).Msg("ListInterviews: Service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetInterview godoc
// @Summary Get interview details
// @Description Returns the interview with its ordered questions, submitted answers, scores, and the next unanswered question.
// @Tags Interviews
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	detail, err := c.interviewService.GetInterview(id)
	if err != nil {
		log.Warn().Err(err).Uint("interviewID", id).Msg("GetInterview: Service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// SubmitAnswer godoc
// @Summary Submit an answer to an interview question
// @Description Evaluates the candidate's answer and records per-answer scores. A first answer moves a scheduled interview to in_progress.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Param answer_data body dto.AnswerSubmitDTO true "Answer payload"
// @Success 201 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload, question mismatch, or duplicate answer"
// @Failure 404 {object} dto.ErrorResponse "Interview or question not found"
// @Failure 409 {object} dto.ErrorResponse "Interview is in a terminal state"
// @Failure 503 {object} dto.ErrorResponse "Answer evaluation unavailable"
// @Router /interviews/{interview_id}/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.submissionService.SubmitAnswer(ctx.Request.Context(), id, req)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", id).Uint("questionID", req.QuestionID).Msg("SubmitAnswer: Service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, answer)
}

// UpdateMetrics godoc
// @Summary Update biometric metrics for an interview
// @Description Analyzes the supplied voice and/or facial payloads and stores the resulting metrics. Last write wins per modality.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Param metrics_data body dto.MetricsUpdateDTO true "Base64-encoded voice and/or facial payloads"
// @Success 200 {object} dto.MetricsResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Interview is in a terminal state"
// @Failure 503 {object} dto.ErrorResponse "Metrics analysis unavailable"
// @Router /interviews/{interview_id}/metrics [put]
func (c *InterviewController) UpdateMetrics(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	var req dto.MetricsUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateMetrics: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	metrics, err := c.submissionService.UpdateMetrics(ctx.Request.Context(), id, req)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", id).Msg("UpdateMetrics: Service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, metrics)
}

// CompleteInterview godoc
// @Summary Complete an interview
// @Description Aggregates answer scores, generates the final feedback report, and moves the interview to completed.
// @Tags Interviews
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 400 {object} dto.ErrorResponse "No answers submitted"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Completion not allowed from the current status"
// @Failure 503 {object} dto.ErrorResponse "Feedback generation unavailable"
// @Router /interviews/{interview_id}/complete [post]
func (c *InterviewController) CompleteInterview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	detail, err := c.interviewService.CompleteInterview(ctx.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", id).Msg("CompleteInterview: Service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// PauseInterview godoc
// @Summary Pause an interview
// @Tags Interviews
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Pause not allowed from the current status"
// @Router /interviews/{interview_id}/pause [post]
func (c *InterviewController) PauseInterview(ctx *gin.Context) {
	c.applyTransition(ctx, c.interviewService.PauseInterview, "PauseInterview")
}

// ResumeInterview godoc
// @Summary Resume a paused interview
// @Tags Interviews
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Resume not allowed from the current status"
// @Router /interviews/{interview_id}/resume [post]
func (c *InterviewController) ResumeInterview(ctx *gin.Context) {
	c.applyTransition(ctx, c.interviewService.ResumeInterview, "ResumeInterview")
}

// AbandonInterview godoc
// @Summary Abandon an interview
// @Description Moves the interview to the abandoned terminal state. No scores or feedback are produced.
// @Tags Interviews
// @Produce json
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Abandon not allowed from the current status"
// @Router /interviews/{interview_id}/abandon [post]
func (c *InterviewController) AbandonInterview(ctx *gin.Context) {
	c.applyTransition(ctx, c.interviewService.AbandonInterview, "AbandonInterview")
}

func (c *InterviewController) applyTransition(ctx *gin.Context, fn func(uint) (*dto.InterviewDetailDTO, error), op string) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	detail, err := fn(id)
	if err != nil {
		log.Warn().Err(err).Uint("interviewID", id).Str("operation", op).Msg("Interview transition failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
