package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/careportal/careportal/internal/assistant"
	"github.com/careportal/careportal/internal/doctors"
)

func newAssistantRouter(t *testing.T) http.Handler {
	t.Helper()

	directory, err := doctors.NewSeededDirectory()
	if err != nil {
		t.Fatalf("seeding directory: %v", err)
	}

	// No LLM client configured; quick answers still work, everything
	// else reports unavailable.
	faq := assistant.NewFAQService(nil, nil)
	recommend := assistant.NewRecommendService(nil, directory, nil)

	return NewRouter(&Config{
		AssistantHandler: NewAssistantHandler(faq, recommend, nil),
	})
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestFAQQuickAnswer(t *testing.T) {
	h := newAssistantRouter(t)

	rec := postJSON(t, h, "/assistant/faq", `{"question":"how do I cancel my appointment?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[FAQResponse](t, rec)
	if resp.Answer == "" {
		t.Error("expected a quick answer")
	}
}

func TestFAQUnavailableWithoutClient(t *testing.T) {
	h := newAssistantRouter(t)

	rec := postJSON(t, h, "/assistant/faq", `{"question":"what is the meaning of life?"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestFAQValidation(t *testing.T) {
	h := newAssistantRouter(t)

	rec := postJSON(t, h, "/assistant/faq", `{"question":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty question, got %d", rec.Code)
	}

	rec = postJSON(t, h, "/assistant/faq", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestRecommendFallsBackToKeywords(t *testing.T) {
	h := newAssistantRouter(t)

	rec := postJSON(t, h, "/assistant/recommend", `{"symptoms":"chest pain and palpitations"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[assistant.Recommendation](t, rec)
	if resp.Specialty != "Cardiology" {
		t.Errorf("expected Cardiology, got %q", resp.Specialty)
	}
	if len(resp.Doctors) == 0 {
		t.Error("expected matching doctors")
	}
}

func TestRecommendValidation(t *testing.T) {
	h := newAssistantRouter(t)

	rec := postJSON(t, h, "/assistant/recommend", `{"symptoms":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty symptoms, got %d", rec.Code)
	}
}
