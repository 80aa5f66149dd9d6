package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/careportal/careportal/internal/assistant"
	"github.com/careportal/careportal/pkg/logging"
)

// AssistantHandler exposes the FAQ and recommendation prompt wrappers.
type AssistantHandler struct {
	faq       *assistant.FAQService
	recommend *assistant.RecommendService
	logger    *logging.Logger
	timeout   time.Duration
}

// NewAssistantHandler creates an assistant handler.
func NewAssistantHandler(faq *assistant.FAQService, recommend *assistant.RecommendService, logger *logging.Logger) *AssistantHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AssistantHandler{faq: faq, recommend: recommend, logger: logger, timeout: 30 * time.Second}
}

// WithTimeout bounds how long a single assistant request may take.
func (h *AssistantHandler) WithTimeout(d time.Duration) *AssistantHandler {
	if d > 0 {
		h.timeout = d
	}
	return h
}

func (h *AssistantHandler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// FAQRequest is the request body for a help question.
type FAQRequest struct {
	Question string `json:"question"`
}

// FAQResponse carries the assistant's answer.
type FAQResponse struct {
	Answer string `json:"answer"`
}

// FAQ handles POST /assistant/faq.
func (h *AssistantHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	var req FAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	answer, err := h.faq.Answer(ctx, req.Question)
	if err != nil {
		if errors.Is(err, assistant.ErrUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "assistant is not available")
			return
		}
		h.logger.Error("faq answer failed", "error", err)
		respondError(w, http.StatusBadGateway, "failed to answer question")
		return
	}
	respondJSON(w, http.StatusOK, FAQResponse{Answer: answer})
}

// RecommendRequest is the request body for a symptom-based doctor search.
type RecommendRequest struct {
	Symptoms string `json:"symptoms"`
}

// Recommend handles POST /assistant/recommend.
func (h *AssistantHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Symptoms == "" {
		respondError(w, http.StatusBadRequest, "symptoms description is required")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	rec, err := h.recommend.Recommend(ctx, req.Symptoms)
	if err != nil {
		h.logger.Error("recommendation failed", "error", err)
		respondError(w, http.StatusBadGateway, "failed to recommend a doctor")
		return
	}
	respondJSON(w, http.StatusOK, rec)
}
