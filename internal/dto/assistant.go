package dto

// AskRequest is a single question for the assistant.
type AskRequest struct {
	Question      string `json:"question" validate:"required"`
	ScholarshipID string `json:"scholarship_id,omitempty"`
	Context       string `json:"context,omitempty"`
}

// AskResponse carries the assistant answer. Fallback is set when the answer
// is the canned reply rather than generated text.
type AskResponse struct {
	Answer   string `json:"answer"`
	Fallback bool   `json:"fallback"`
}

// FAQEntry is a canned question with its answer.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
