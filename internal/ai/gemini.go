package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Mockingbird/config"
	"github.com/lshigami/Mockingbird/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiService implements all four collaborator contracts against the Gemini
// API. Each call runs under its own timeout and bounded retry policy so a
// flaky model never blocks a session indefinitely.
type GeminiService struct {
	client     *genai.GenerativeModel
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
}

var (
	_ QuestionGenerator = (*GeminiService)(nil)
	_ AnswerEvaluator   = (*GeminiService)(nil)
	_ MetricsAnalyzer   = (*GeminiService)(nil)
	_ FeedbackGenerator = (*GeminiService)(nil)
)

func NewGeminiService(cfg *config.Config) (*GeminiService, error) {
	svc := &GeminiService{
		timeout:    time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
		maxRetries: cfg.Gemini.MaxRetries,
		backoff:    time.Duration(cfg.Gemini.BackoffBaseMs) * time.Millisecond,
	}

	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will be non-functional.")
		return svc, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	svc.client = client.GenerativeModel(cfg.Gemini.Model)
	return svc, nil
}

// generate sends parts to Gemini under the configured timeout/retry policy
// and returns the concatenated text of the first candidate.
func (s *GeminiService) generate(ctx context.Context, op string, parts ...genai.Part) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var text string
	err := withRetry(callCtx, op, s.maxRetries, s.backoff, func(ctx context.Context) error {
		resp, err := s.client.GenerateContent(ctx, parts...)
		if err != nil {
			return fmt.Errorf("gemini API error: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return fmt.Errorf("gemini returned no content")
		}
		var builder strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				builder.WriteString(string(txt))
			}
		}
		if builder.Len() == 0 {
			return fmt.Errorf("gemini returned no text content")
		}
		text = builder.String()
		return nil
	})
	return text, err
}

// extractJSON strips markdown code fences and surrounding prose so the raw
// model output can be unmarshalled directly.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.Index(raw, "```"); idx != -1 {
		raw = raw[idx+3:]
		raw = strings.TrimPrefix(raw, "json")
		if end := strings.Index(raw, "```"); end != -1 {
			raw = raw[:end]
		}
	}
	start := strings.IndexAny(raw, "[{")
	if start == -1 {
		return strings.TrimSpace(raw)
	}
	var closer byte
	if raw[start] == '[' {
		closer = ']'
	} else {
		closer = '}'
	}
	end := strings.LastIndexByte(raw, closer)
	if end <= start {
		return strings.TrimSpace(raw)
	}
	return raw[start : end+1]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (s *GeminiService) GenerateQuestions(ctx context.Context, role RoleProfile, candidate CandidateProfile, language string) ([]QuestionDraft, error) {
	var b strings.Builder
	b.WriteString("You are an expert technical interviewer.\n")
	fmt.Fprintf(&b, "Generate interview questions for a %s %s position.\n\n", role.ExperienceLevel, role.Name)
	fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(role.RequiredSkills, ", "))
	fmt.Fprintf(&b, "Candidate skills: %s\n", strings.Join(candidate.Skills, ", "))
	fmt.Fprintf(&b, "Interview language: %s\n", language)
	if len(role.QuestionCounts) > 0 {
		b.WriteString("\nInterview structure (question type to count):\n")
		for qType, count := range role.QuestionCounts {
			fmt.Fprintf(&b, "- %s: %d\n", qType, count)
		}
	}
	if len(role.DifficultyMix) > 0 {
		b.WriteString("\nDifficulty distribution (level to share):\n")
		for level, share := range role.DifficultyMix {
			fmt.Fprintf(&b, "- %s: %.2f\n", level, share)
		}
	}
	b.WriteString(`
Generate questions that test the required skills, focus on skill gaps, and
match the difficulty distribution and experience level.

Respond with a strict JSON array, no prose. Each element:
{"text": string, "type": "technical"|"behavioral", "difficulty": 1-5,
 "skill_tested": string, "reference_answer": string,
 "time_limit": seconds or null, "code_required": bool, "whiteboard_required": bool}
The reference_answer must be a model answer a strong candidate would give.
`)

	raw, err := s.generate(ctx, "generate_questions", genai.Text(b.String()))
	if err != nil {
		return nil, err
	}

	var drafts []QuestionDraft
	if err := json.Unmarshal([]byte(extractJSON(raw)), &drafts); err != nil {
		return nil, fmt.Errorf("could not parse question set from model response: %w", err)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("model returned an empty question set")
	}

	for i := range drafts {
		if strings.TrimSpace(drafts[i].Text) == "" {
			return nil, fmt.Errorf("model returned a question with empty text at index %d", i)
		}
		if drafts[i].Type != model.QuestionTypeTechnical && drafts[i].Type != model.QuestionTypeBehavioral {
			drafts[i].Type = model.QuestionTypeTechnical
		}
		if drafts[i].Difficulty < 1 {
			drafts[i].Difficulty = 1
		}
		if drafts[i].Difficulty > 5 {
			drafts[i].Difficulty = 5
		}
	}
	return drafts, nil
}

func (s *GeminiService) EvaluateAnswer(ctx context.Context, questionText, referenceAnswer, candidateAnswer string, codeSubmission *string) (*AnswerEvaluation, error) {
	var b strings.Builder
	b.WriteString("You are an expert technical interviewer. Evaluate the following interview answer.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", questionText)
	fmt.Fprintf(&b, "Reference Answer: %s\n\n", referenceAnswer)
	fmt.Fprintf(&b, "Candidate Answer: %s\n", candidateAnswer)
	if codeSubmission != nil && *codeSubmission != "" {
		fmt.Fprintf(&b, "\nCode Submission:\n%s\n", *codeSubmission)
	}
	b.WriteString(`
Respond with a strict JSON object, no prose:
{"correctness_score": 0-1, "clarity_score": 0-1, "depth_score": 0-1,
 "confidence_score": 0-1, "feedback": string,
 "resources": [{"title": string, "url": string}]}
Scores compare the candidate answer against the reference answer. Feedback is
constructive: name concrete gaps and how to close them.
`)

	raw, err := s.generate(ctx, "evaluate_answer", genai.Text(b.String()))
	if err != nil {
		return nil, err
	}

	var eval AnswerEvaluation
	if err := json.Unmarshal([]byte(extractJSON(raw)), &eval); err != nil {
		return nil, fmt.Errorf("could not parse evaluation from model response: %w", err)
	}

	eval.Correctness = clamp01(eval.Correctness)
	eval.Clarity = clamp01(eval.Clarity)
	eval.Depth = clamp01(eval.Depth)
	eval.Confidence = clamp01(eval.Confidence)
	return &eval, nil
}

func (s *GeminiService) AnalyzeVoice(ctx context.Context, audio []byte) (*model.VoiceMetrics, error) {
	if len(audio) == 0 {
		return nil, fmt.Errorf("audio payload is empty")
	}

	prompt := `Analyze the speaker in this interview audio. Respond with a strict JSON object:
{"confidence": 0-1, "clarity": 0-1, "fluency": 0-1, "pace": 0-1,
 "hesitation_count": int, "filler_words_count": int}`

	raw, err := s.generate(ctx, "analyze_voice",
		genai.Blob{MIMEType: "audio/wav", Data: audio},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, err
	}

	var vm model.VoiceMetrics
	if err := json.Unmarshal([]byte(extractJSON(raw)), &vm); err != nil {
		return nil, fmt.Errorf("could not parse voice metrics from model response: %w", err)
	}

	vm.Confidence = clamp01(vm.Confidence)
	vm.Clarity = clamp01(vm.Clarity)
	vm.Fluency = clamp01(vm.Fluency)
	vm.Pace = clamp01(vm.Pace)
	if vm.HesitationCount < 0 {
		vm.HesitationCount = 0
	}
	if vm.FillerWordsCount < 0 {
		vm.FillerWordsCount = 0
	}
	return &vm, nil
}

func (s *GeminiService) AnalyzeFacial(ctx context.Context, video []byte) (*model.FacialMetrics, error) {
	if len(video) == 0 {
		return nil, fmt.Errorf("video payload is empty")
	}

	prompt := `Analyze the candidate's facial expressions in this interview recording.
Respond with a strict JSON object:
{"engagement": 0-1, "confidence": 0-1, "eye_contact": 0-1,
 "expressions": {"<emotion>": 0-1, ...}}`

	raw, err := s.generate(ctx, "analyze_facial",
		genai.Blob{MIMEType: "video/webm", Data: video},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, err
	}

	var fm model.FacialMetrics
	if err := json.Unmarshal([]byte(extractJSON(raw)), &fm); err != nil {
		return nil, fmt.Errorf("could not parse facial metrics from model response: %w", err)
	}

	fm.Engagement = clamp01(fm.Engagement)
	fm.Confidence = clamp01(fm.Confidence)
	fm.EyeContact = clamp01(fm.EyeContact)
	for emotion, conf := range fm.Expressions {
		fm.Expressions[emotion] = clamp01(conf)
	}
	return &fm, nil
}

func (s *GeminiService) GenerateFeedback(ctx context.Context, snapshot InterviewSnapshot) (*FeedbackResult, error) {
	var b strings.Builder
	b.WriteString("You are an expert interview coach. Generate feedback for an interview with the following results.\n\n")
	fmt.Fprintf(&b, "Technical Score: %.2f\n", snapshot.TechnicalScore)
	if snapshot.CommunicationScore != nil {
		fmt.Fprintf(&b, "Communication Score: %.2f\n", *snapshot.CommunicationScore)
	}
	fmt.Fprintf(&b, "Overall Score: %.2f\n", snapshot.OverallScore)
	if snapshot.VoiceMetrics != nil {
		vm, _ := json.Marshal(snapshot.VoiceMetrics)
		fmt.Fprintf(&b, "Voice Metrics: %s\n", vm)
	}
	if snapshot.FacialMetrics != nil {
		fm, _ := json.Marshal(snapshot.FacialMetrics)
		fmt.Fprintf(&b, "Facial Metrics: %s\n", fm)
	}
	b.WriteString("\nQuestions and Answers:\n")
	for _, qa := range snapshot.QuestionAnswers {
		fmt.Fprintf(&b, "Q: %s\nA: %s\nScore: %.2f\n\n", qa.Question, qa.Answer, qa.Correctness)
	}
	b.WriteString(`Respond with a strict JSON object, no prose:
{"summary": string, "improvement_areas": [string, ...]}
The summary addresses the candidate directly. Improvement areas are ordered
most important first.
`)

	raw, err := s.generate(ctx, "generate_feedback", genai.Text(b.String()))
	if err != nil {
		return nil, err
	}

	var result FeedbackResult
	if err := json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		return nil, fmt.Errorf("could not parse feedback from model response: %w", err)
	}
	if strings.TrimSpace(result.Summary) == "" {
		return nil, fmt.Errorf("model returned empty feedback summary")
	}
	return &result, nil
}
