package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/Mockingbird/internal/ai"
	"github.com/lshigami/Mockingbird/internal/dto"
	"github.com/lshigami/Mockingbird/internal/model"
	"github.com/rs/zerolog/log"
)

func toInterviewDetailDTO(interview *model.Interview) (*dto.InterviewDetailDTO, error) {
	var resp dto.InterviewDetailDTO
	if err := copier.Copy(&resp, interview); err != nil {
		log.Error().Err(err).Uint("interviewID", interview.ID).Msg("Failed to copy interview model to DTO")
		return nil, err
	}
	resp.NextQuestion = nextQuestionDTO(interview)
	return &resp, nil
}

func toAnswerDTO(answer *model.Answer) (*dto.AnswerResponseDTO, error) {
	var resp dto.AnswerResponseDTO
	if err := copier.Copy(&resp, answer); err != nil {
		return nil, err
	}
	return &resp, nil
}

// nextQuestionDTO picks the first unanswered question in order, nil once all
// are answered or the session is terminal. Questions arrive pre-sorted from
// the repository.
func nextQuestionDTO(interview *model.Interview) *dto.QuestionResponseDTO {
	if model.IsTerminalStatus(interview.Status) {
		return nil
	}
	answered := make(map[uint]bool, len(interview.Answers))
	for _, a := range interview.Answers {
		answered[a.QuestionID] = true
	}
	for i := range interview.Questions {
		q := &interview.Questions[i]
		if !answered[q.ID] {
			var qd dto.QuestionResponseDTO
			if err := copier.Copy(&qd, q); err != nil {
				log.Error().Err(err).Uint("questionID", q.ID).Msg("Failed to copy question model to DTO")
				return nil
			}
			return &qd
		}
	}
	return nil
}

// buildSnapshot assembles the read-only view handed to the feedback
// generator: scores, metrics, and question/answer pairs in question order.
func buildSnapshot(interview *model.Interview, technical float64, communication *float64, overall float64) ai.InterviewSnapshot {
	answerByQuestion := make(map[uint]*model.Answer, len(interview.Answers))
	for i := range interview.Answers {
		answerByQuestion[interview.Answers[i].QuestionID] = &interview.Answers[i]
	}

	pairs := make([]ai.SnapshotQA, 0, len(interview.Answers))
	for _, q := range interview.Questions {
		a, ok := answerByQuestion[q.ID]
		if !ok {
			continue
		}
		pairs = append(pairs, ai.SnapshotQA{
			Question:    q.Text,
			Answer:      a.TranscribedText,
			Correctness: a.CorrectnessScore,
		})
	}

	return ai.InterviewSnapshot{
		RoleID:             interview.RoleID,
		Language:           interview.Language,
		TechnicalScore:     technical,
		CommunicationScore: communication,
		OverallScore:       overall,
		VoiceMetrics:       interview.VoiceMetrics,
		FacialMetrics:      interview.FacialMetrics,
		QuestionAnswers:    pairs,
	}
}
