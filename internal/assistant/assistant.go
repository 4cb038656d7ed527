// Package assistant talks to the generative text service behind the Q&A helper.
package assistant

import (
	"context"
	"errors"
)

// Role tags a message in a completion request.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged text in a completion request.
type Message struct {
	Role Role
	Text string
}

// ErrEmptyAnswer is returned when the service replied without any text.
var ErrEmptyAnswer = errors.New("assistant returned no answer")

// Completer answers a single exchange. Implementations keep no history between calls.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// SystemPrompt is the fixed instruction sent ahead of every question.
const SystemPrompt = "You are Udaan's scholarship assistant. Answer questions about scholarships for Indian students " +
	"clearly and briefly. When scholarship details are provided, base your answer on them and do not invent " +
	"eligibility rules, amounts or deadlines. If you do not know the answer, say so."
