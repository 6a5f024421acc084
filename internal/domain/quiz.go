package domain

import (
	"strings"
	"time"
)

// Quiz is the quiz-creation payload consumed by the remote quiz API.
type Quiz struct {
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Color       string     `json:"color" yaml:"color"`
	IsPublic    bool       `json:"is_public" yaml:"is_public"`
	Questions   []Question `json:"questions" yaml:"questions"`
}

// Normalize trims free-text fields in place.
func (q *Quiz) Normalize() {
	q.Title = strings.TrimSpace(q.Title)
	q.Description = strings.TrimSpace(q.Description)
	q.Color = strings.TrimSpace(q.Color)
	if q.Questions == nil {
		q.Questions = []Question{}
	}
}

// Draft is a quiz held in the short-lived draft store while it is being edited.
type Draft struct {
	ID        string    `json:"id"`
	Quiz      Quiz      `json:"quiz"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDraft creates a draft for quiz with both timestamps set to now.
func NewDraft(id string, quiz Quiz, now time.Time) *Draft {
	quiz.Normalize()
	return &Draft{
		ID:        id,
		Quiz:      quiz,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
