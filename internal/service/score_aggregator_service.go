package service

import (
	"github.com/lshigami/Mockingbird/internal/model"
)

// Aggregation weights. Technical reduces per-answer scores; communication
// blends the two passive modalities; overall combines both tracks.
const (
	correctnessWeight = 0.7
	depthWeight       = 0.3

	voiceConfidenceWeight  = 0.3
	voiceClarityWeight     = 0.3
	facialEngagementWeight = 0.2
	facialConfidenceWeight = 0.2

	technicalWeight     = 0.7
	communicationWeight = 0.3
)

// ScoreAggregatorService reduces per-answer and per-modality scores into the
// session-level scores written by the completion transition.
type ScoreAggregatorService interface {
	TechnicalScore(answers []model.Answer) float64
	// CommunicationScore returns nil unless both modalities are present; a
	// missing modality leaves the score unset rather than zero-filled, so an
	// audio-only session is not silently penalized.
	CommunicationScore(voice *model.VoiceMetrics, facial *model.FacialMetrics) *float64
	OverallScore(technical float64, communication *float64) float64
}

type scoreAggregatorService struct{}

func NewScoreAggregatorService() ScoreAggregatorService {
	return &scoreAggregatorService{}
}

func (s *scoreAggregatorService) TechnicalScore(answers []model.Answer) float64 {
	if len(answers) == 0 {
		return 0
	}
	total := 0.0
	for _, a := range answers {
		total += a.CorrectnessScore*correctnessWeight + a.DepthScore*depthWeight
	}
	return total / float64(len(answers))
}

func (s *scoreAggregatorService) CommunicationScore(voice *model.VoiceMetrics, facial *model.FacialMetrics) *float64 {
	if voice == nil || facial == nil {
		return nil
	}
	score := voice.Confidence*voiceConfidenceWeight +
		voice.Clarity*voiceClarityWeight +
		facial.Engagement*facialEngagementWeight +
		facial.Confidence*facialConfidenceWeight
	return &score
}

func (s *scoreAggregatorService) OverallScore(technical float64, communication *float64) float64 {
	comm := 0.0
	if communication != nil {
		comm = *communication
	}
	return technical*technicalWeight + comm*communicationWeight
}
