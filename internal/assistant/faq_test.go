package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/careportal/careportal/pkg/logging"
)

type stubLLM struct {
	reply string
	err   error
	calls int
	last  LLMRequest
}

func (s *stubLLM) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return LLMResponse{}, s.err
	}
	return LLMResponse{Text: s.reply}, nil
}

func TestQuickAnswerHitBypassesLLM(t *testing.T) {
	llm := &stubLLM{reply: "should not be used"}
	svc := NewFAQService(llm, logging.Default())

	answer, err := svc.Answer(context.Background(), "How do I book an appointment?")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer == "" || answer == llm.reply {
		t.Errorf("expected quick answer, got %q", answer)
	}
	if llm.calls != 0 {
		t.Errorf("quick answer hit should not call the LLM, calls=%d", llm.calls)
	}
}

func TestAnswerFallsThroughToLLM(t *testing.T) {
	llm := &stubLLM{reply: "Opening hours vary by clinic."}
	svc := NewFAQService(llm, logging.Default())

	answer, err := svc.Answer(context.Background(), "When does the Cleveland clinic open on Sundays?")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != llm.reply {
		t.Errorf("answer = %q, want LLM reply", answer)
	}
	if llm.calls != 1 {
		t.Errorf("expected 1 LLM call, got %d", llm.calls)
	}
	if len(llm.last.System) == 0 {
		t.Error("LLM request should carry the FAQ system prompt")
	}
}

func TestAnswerWithoutClientIsUnavailable(t *testing.T) {
	svc := NewFAQService(nil, logging.Default())

	if _, err := svc.Answer(context.Background(), "something obscure with no table match"); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	// Quick answers still work without a client.
	if _, err := svc.Answer(context.Background(), "how do I cancel my appointment"); err != nil {
		t.Fatalf("quick answer without client: %v", err)
	}
}

func TestAnswerEmptyQuestion(t *testing.T) {
	svc := NewFAQService(nil, logging.Default())
	if _, err := svc.Answer(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty question")
	}
}

func TestAnswerWrapsLLMError(t *testing.T) {
	boom := errors.New("quota exceeded")
	svc := NewFAQService(&stubLLM{err: boom}, logging.Default())

	_, err := svc.Answer(context.Background(), "tell me about parking at the clinic")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped LLM error, got %v", err)
	}
}

func TestCheckQuickAnswerKeywordFallback(t *testing.T) {
	// Two keyword hits trigger a response even when the pattern misses.
	if _, ok := CheckQuickAnswer("appointment booking: how does it work"); !ok {
		t.Error("expected keyword-based quick answer")
	}
	if _, ok := CheckQuickAnswer("completely unrelated question"); ok {
		t.Error("expected no quick answer")
	}
	if _, ok := CheckQuickAnswer(""); ok {
		t.Error("empty question should never match")
	}
}
