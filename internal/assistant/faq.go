package assistant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/careportal/careportal/pkg/logging"
)

// ErrUnavailable is returned when no LLM client is configured and the
// question misses the quick-answer table.
var ErrUnavailable = errors.New("assistant: not available")

// QuickAnswer is a pre-computed response for a common portal question.
// These bypass the LLM for instant responses.
type QuickAnswer struct {
	Pattern  *regexp.Regexp
	Keywords []string
	Response string
}

var quickAnswers = []QuickAnswer{
	{
		Pattern:  regexp.MustCompile(`(?i)how.*(book|schedule).*(appointment|visit)`),
		Keywords: []string{"book", "appointment", "how"},
		Response: `To book an appointment, open a doctor's profile, pick an available date, choose one of the offered time slots, and confirm. You'll get a notification once the booking is confirmed, and the appointment appears under "Upcoming" right away.`,
	},
	{
		Pattern:  regexp.MustCompile(`(?i)how.*(cancel).*(appointment|booking|visit)`),
		Keywords: []string{"cancel", "appointment"},
		Response: `You can cancel an upcoming appointment from the appointment's detail view. Canceled appointments stay in your history and cannot be re-activated; if you change your mind, simply book a new slot.`,
	},
	{
		Pattern:  regexp.MustCompile(`(?i)(reschedul|change|move).*(appointment|booking|time|date)`),
		Keywords: []string{"reschedule", "appointment"},
		Response: `To reschedule, open the upcoming appointment and choose a new date and time slot. The original appointment keeps its place in your list with the updated time, and you'll receive a confirmation notification.`,
	},
	{
		Pattern:  regexp.MustCompile(`(?i)what.*(bring|need).*(appointment|visit)`),
		Keywords: []string{"bring", "appointment", "what"},
		Response: `Please bring a photo ID, your insurance card if you have one, a list of current medications, and any relevant medical records or referral letters. Arriving 10 minutes early helps with check-in.`,
	},
	{
		Pattern:  regexp.MustCompile(`(?i)(insurance|coverage).*(accept|take|cover)|accept.*insurance`),
		Keywords: []string{"insurance", "accepted"},
		Response: `Insurance acceptance varies by doctor and clinic. Each doctor's profile lists their location; contact the clinic directly to confirm your plan is accepted before your visit.`,
	},
}

// CheckQuickAnswer looks for a matching pre-computed response. Returns the
// response and true on a hit.
func CheckQuickAnswer(question string) (string, bool) {
	question = strings.ToLower(strings.TrimSpace(question))
	if question == "" {
		return "", false
	}

	for _, qa := range quickAnswers {
		if qa.Pattern != nil && qa.Pattern.MatchString(question) {
			return qa.Response, true
		}
		if len(qa.Keywords) > 0 {
			matches := 0
			for _, kw := range qa.Keywords {
				if strings.Contains(question, kw) {
					matches++
				}
			}
			// Require at least 2 keyword matches to trigger a quick answer.
			if matches >= 2 {
				return qa.Response, true
			}
		}
	}
	return "", false
}

const faqSystemPrompt = `You are the help assistant for a doctor-appointment booking portal.
Answer questions about booking, canceling, and rescheduling appointments, finding doctors, and preparing for visits.
Keep answers short and practical. You are not a doctor: never give medical advice or a diagnosis, and tell users to contact their clinic for anything medical or urgent.`

// FAQService answers portal questions, preferring the quick-answer table and
// falling back to the LLM.
type FAQService struct {
	client LLMClient
	logger *logging.Logger

	maxTokens   int32
	temperature float32
}

// NewFAQService builds the FAQ wrapper. A nil client limits answers to the
// quick-answer table.
func NewFAQService(client LLMClient, logger *logging.Logger) *FAQService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FAQService{
		client:      client,
		logger:      logger.WithComponent("assistant.faq"),
		maxTokens:   1024,
		temperature: 0.4,
	}
}

// WithLimits overrides generation parameters.
func (s *FAQService) WithLimits(maxTokens int32, temperature float32) *FAQService {
	if maxTokens > 0 {
		s.maxTokens = maxTokens
	}
	if temperature >= 0 {
		s.temperature = temperature
	}
	return s
}

// Answer responds to a portal question.
func (s *FAQService) Answer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", errors.New("assistant: question is required")
	}

	if answer, ok := CheckQuickAnswer(question); ok {
		s.logger.Debug("faq quick answer hit")
		return answer, nil
	}

	if s.client == nil {
		return "", ErrUnavailable
	}

	resp, err := s.client.Complete(ctx, LLMRequest{
		System:      []string{faqSystemPrompt},
		Messages:    []ChatMessage{{Role: ChatRoleUser, Content: question}},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("assistant: faq answer: %w", err)
	}

	s.logger.Debug("faq answered via llm", "input_tokens", resp.Usage.InputTokens, "output_tokens", resp.Usage.OutputTokens)
	return resp.Text, nil
}
