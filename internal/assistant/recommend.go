package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careportal/careportal/internal/doctors"
	"github.com/careportal/careportal/pkg/logging"
)

// Recommendation is the result of a symptom-based doctor search.
type Recommendation struct {
	Specialty string            `json:"specialty"`
	Doctors   []*doctors.Doctor `json:"doctors"`
}

// RecommendService suggests doctors for described symptoms by asking the LLM
// to pick a specialty from the directory's specialty set. When no LLM is
// configured, a keyword table stands in.
type RecommendService struct {
	client    LLMClient
	directory *doctors.StaticDirectory
	logger    *logging.Logger
}

// NewRecommendService builds the recommendation wrapper.
func NewRecommendService(client LLMClient, directory *doctors.StaticDirectory, logger *logging.Logger) *RecommendService {
	if directory == nil {
		panic("assistant: doctor directory required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RecommendService{
		client:    client,
		directory: directory,
		logger:    logger.WithComponent("assistant.recommend"),
	}
}

// Recommend maps a symptom description to a specialty and the doctors who
// practice it.
func (s *RecommendService) Recommend(ctx context.Context, symptoms string) (Recommendation, error) {
	if strings.TrimSpace(symptoms) == "" {
		return Recommendation{}, errors.New("assistant: symptom description is required")
	}

	specialties := s.directory.Specialties()
	if len(specialties) == 0 {
		return Recommendation{}, errors.New("assistant: directory has no specialties")
	}

	specialty := s.pickSpecialty(ctx, symptoms, specialties)

	rec := Recommendation{Specialty: specialty}
	for _, doc := range s.directory.List() {
		if doc.Specialty == specialty {
			rec.Doctors = append(rec.Doctors, doc)
		}
	}
	s.logger.Info("recommendation produced", "specialty", specialty, "doctors", len(rec.Doctors))
	return rec, nil
}

func (s *RecommendService) pickSpecialty(ctx context.Context, symptoms string, specialties []string) string {
	if s.client != nil {
		prompt := fmt.Sprintf(
			"A patient describes their symptoms as: %q.\nChoose the single most appropriate specialty from this list and reply with only that word:\n%s",
			symptoms, strings.Join(specialties, ", "))

		resp, err := s.client.Complete(ctx, LLMRequest{
			System: []string{"You triage patients to medical specialties. Reply with exactly one specialty name from the offered list. Never diagnose."},
			Messages: []ChatMessage{
				{Role: ChatRoleUser, Content: prompt},
			},
			MaxTokens:   32,
			Temperature: 0,
		})
		if err == nil {
			if matched := matchSpecialty(resp.Text, specialties); matched != "" {
				return matched
			}
			s.logger.Warn("llm reply matched no specialty, using keyword fallback", "reply", resp.Text)
		} else {
			s.logger.Warn("llm recommendation failed, using keyword fallback", "error", err)
		}
	}

	return keywordSpecialty(symptoms, specialties)
}

// matchSpecialty finds the offered specialty contained in the model's reply.
func matchSpecialty(reply string, specialties []string) string {
	reply = strings.ToLower(reply)
	for _, sp := range specialties {
		if strings.Contains(reply, strings.ToLower(sp)) {
			return sp
		}
	}
	return ""
}

var specialtyKeywords = map[string][]string{
	"Cardiology":       {"chest", "heart", "palpitation", "blood pressure", "shortness of breath"},
	"Dermatology":      {"skin", "rash", "acne", "mole", "itch", "eczema"},
	"Pediatrics":       {"child", "baby", "infant", "toddler", "kid"},
	"Orthopedics":      {"joint", "knee", "bone", "back pain", "shoulder", "fracture", "sprain"},
	"Neurology":        {"headache", "migraine", "dizzy", "numbness", "seizure", "tremor"},
	"General Practice": {"fever", "cough", "cold", "checkup", "tired", "flu"},
}

// keywordSpecialty scores each offered specialty by keyword hits and returns
// the best, defaulting to General Practice (or the first offered specialty)
// on no hits.
func keywordSpecialty(symptoms string, specialties []string) string {
	symptoms = strings.ToLower(symptoms)

	best := ""
	bestScore := 0
	for _, sp := range specialties {
		score := 0
		for _, kw := range specialtyKeywords[sp] {
			if strings.Contains(symptoms, kw) {
				score++
			}
		}
		if score > bestScore {
			best = sp
			bestScore = score
		}
	}
	if best != "" {
		return best
	}

	for _, sp := range specialties {
		if sp == "General Practice" {
			return sp
		}
	}
	return specialties[0]
}
