package model

// VoiceMetrics are derived from a raw audio payload by the metrics analyzer.
// All scores are in [0,1]; counts are non-negative.
type VoiceMetrics struct {
	Confidence       float64 `json:"confidence"`
	Clarity          float64 `json:"clarity"`
	Fluency          float64 `json:"fluency"`
	Pace             float64 `json:"pace"`
	HesitationCount  int     `json:"hesitation_count"`
	FillerWordsCount int     `json:"filler_words_count"`
}

// FacialMetrics are derived from a raw video payload by the metrics analyzer.
// Expressions maps an emotion label to a confidence in [0,1].
type FacialMetrics struct {
	Engagement  float64            `json:"engagement"`
	Confidence  float64            `json:"confidence"`
	EyeContact  float64            `json:"eye_contact"`
	Expressions map[string]float64 `json:"expressions"`
}
