package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/udaan-api/internal/assistant"
	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/models"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
)

// DefaultFallbackAnswer is returned whenever the assistant cannot produce text.
const DefaultFallbackAnswer = "Sorry, I couldn't find an answer."

var faqEntries = []dto.FAQEntry{
	{
		Question: "How do I apply for a scholarship?",
		Answer:   `You can apply by clicking the "Apply now" button on any scholarship card. This will take you to the official website for that scholarship.`,
	},
	{
		Question: "What documents are required?",
		Answer:   "Common documents include mark sheets, ID proof, income certificate, and category certificate. Each scholarship may have specific requirements.",
	},
	{
		Question: "Can I apply for more than one scholarship?",
		Answer:   "Yes, you can apply for multiple scholarships if you meet the eligibility criteria for each.",
	},
	{
		Question: "How do I know if I am eligible?",
		Answer:   "Use the filter form to enter your details. The platform will show scholarships matching your profile.",
	},
	{
		Question: "Who can I contact for help?",
		Answer:   "You can reach out to the support team via the contact information provided on the scholarship website.",
	},
}

type scholarshipFinder interface {
	Find(id string) (*models.Scholarship, error)
}

// AssistantService answers single questions. Failures never reach the
// caller as errors; they produce the fallback answer instead.
type AssistantService struct {
	completer assistant.Completer
	catalog   scholarshipFinder
	metrics   *MetricsService
	logger    *zap.Logger
	fallback  string
}

// NewAssistantService constructs the service. completer may be nil when no
// API key is configured, in which case every question gets the fallback.
func NewAssistantService(completer assistant.Completer, catalog scholarshipFinder, metrics *MetricsService, logger *zap.Logger, fallback string) *AssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallbackAnswer
	}
	return &AssistantService{completer: completer, catalog: catalog, metrics: metrics, logger: logger, fallback: fallback}
}

// Ask sends the fixed system prompt and one user message built from the
// scholarship context and the question.
func (s *AssistantService) Ask(ctx context.Context, req dto.AskRequest) (*dto.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "question is required")
	}

	scholarshipContext := strings.TrimSpace(req.Context)
	if req.ScholarshipID != "" {
		record, err := s.catalog.Find(req.ScholarshipID)
		if err != nil {
			return nil, err
		}
		scholarshipContext = DescribeScholarship(*record)
	}

	if s.completer == nil {
		s.metrics.RecordAssistant("disabled")
		return s.fallbackAnswer(), nil
	}

	answer, err := s.completer.Complete(ctx, []assistant.Message{
		{Role: assistant.RoleSystem, Text: assistant.SystemPrompt},
		{Role: assistant.RoleUser, Text: userMessage(scholarshipContext, question)},
	})
	if err != nil {
		s.logger.Warn("assistant request failed", zap.Error(err))
		s.metrics.RecordAssistant("fallback")
		return s.fallbackAnswer(), nil
	}
	s.metrics.RecordAssistant("answered")
	return &dto.AskResponse{Answer: answer}, nil
}

// FAQ returns the canned questions and answers.
func (s *AssistantService) FAQ() []dto.FAQEntry {
	out := make([]dto.FAQEntry, len(faqEntries))
	copy(out, faqEntries)
	return out
}

func (s *AssistantService) fallbackAnswer() *dto.AskResponse {
	return &dto.AskResponse{Answer: s.fallback, Fallback: true}
}

func userMessage(scholarshipContext, question string) string {
	if scholarshipContext == "" {
		return question
	}
	return fmt.Sprintf("Scholarship details:\n%s\n\nQuestion: %s", scholarshipContext, question)
}

// DescribeScholarship renders a record as plain text for the assistant.
func DescribeScholarship(s models.Scholarship) string {
	rule := s.Eligibility
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Provider: %s\n", s.Provider)
	if s.Amount != "" {
		fmt.Fprintf(&b, "Amount: %s\n", s.Amount)
	}
	if s.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", s.Description)
	}
	fmt.Fprintf(&b, "Deadline: %s\n", s.ApplicationDeadline)
	fmt.Fprintf(&b, "Classes: %s to %s\n", models.ClassLabel(rule.MinClass), models.ClassLabel(rule.MaxClass))
	fmt.Fprintf(&b, "Ages: %d to %d\n", rule.MinAge, rule.MaxAge)
	fmt.Fprintf(&b, "Minimum percentage: %d\n", rule.MinPercentage)
	fmt.Fprintf(&b, "Categories: %s\n", strings.Join(rule.Categories, ", "))
	fmt.Fprintf(&b, "Religions: %s\n", strings.Join(rule.Religions, ", "))
	fmt.Fprintf(&b, "Location: %s\n", strings.Join(rule.Location, ", "))
	if rule.Disability {
		b.WriteString("Requires disability: yes\n")
	}
	if rule.IncomeLimit != nil {
		fmt.Fprintf(&b, "Income limit: %s\n", *rule.IncomeLimit)
	}
	if len(s.Benefits) > 0 {
		fmt.Fprintf(&b, "Benefits: %s\n", strings.Join(s.Benefits, ", "))
	}
	fmt.Fprintf(&b, "Website: %s", s.WebsiteURL)
	return b.String()
}
