package dto

import (
	"time"

	"quizmark/internal/domain"
)

// ParseTextRequest represents the request body for parsing quiz text
type ParseTextRequest struct {
	Text string `json:"text"`
	// CaseInsensitiveLetters overrides the server default for option letters.
	CaseInsensitiveLetters *bool `json:"case_insensitive_letters,omitempty"`
}

// ParseTextResponse represents the parsed questions of one text
type ParseTextResponse struct {
	Questions []domain.Question `json:"questions"`
	Count     int               `json:"count"`
}

// FormatRequest represents the request body for rendering questions as text
type FormatRequest struct {
	Questions []domain.Question `json:"questions"`
}

// FormatResponse represents the rendered quiz text
type FormatResponse struct {
	Text string `json:"text"`
}

// ValidateRequest carries either raw text or already structured questions.
// Questions wins when both are set.
type ValidateRequest struct {
	Text      string            `json:"text,omitempty"`
	Questions []domain.Question `json:"questions,omitempty"`
}

// ValidateResponse reports validation problems without failing the request
type ValidateResponse struct {
	Valid  bool                    `json:"valid"`
	Count  int                     `json:"count"`
	Errors domain.ValidationErrors `json:"errors"`
}

// BatchParseRequest represents a request to parse several texts at once
type BatchParseRequest struct {
	Texts []string `json:"texts"`
}

// BatchParseResponse holds one result per input text, in input order
type BatchParseResponse struct {
	Results []ParseTextResponse `json:"results"`
}

// GradeRequest represents an answered quiz to be scored
type GradeRequest struct {
	Questions []domain.Question `json:"questions"`
	Answers   []*domain.Answer  `json:"answers"`
}

// GradeResponse represents the score of a graded quiz
type GradeResponse struct {
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Correct    []bool `json:"correct"`
}

// DraftRequest represents the body of draft create and update requests.
// Text is parsed when Questions is empty.
type DraftRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Color       string            `json:"color"`
	IsPublic    bool              `json:"is_public"`
	Text        string            `json:"text,omitempty"`
	Questions   []domain.Question `json:"questions,omitempty"`
}

// DraftResponse represents a stored quiz draft
type DraftResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Color       string            `json:"color"`
	IsPublic    bool              `json:"is_public"`
	Questions   []domain.Question `json:"questions"`
	Count       int               `json:"count"`
	Text        string            `json:"text"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// HealthResponse represents the service health
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
