package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"quizmark/internal/domain"
	"quizmark/internal/util"
)

const (
	MaxTitleLength   = 200
	MaxChoiceOptions = 26
	MinOptions       = 2

	defaultMaxTextBytes = 256 * 1024
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validator provides request and question validation. The parser accepts
// anything; Validator is where malformed quizzes are rejected.
type Validator struct {
	maxTextBytes int
}

// NewValidator creates a new validator instance. A non-positive maxTextBytes
// falls back to the default limit.
func NewValidator(maxTextBytes int) *Validator {
	if maxTextBytes <= 0 {
		maxTextBytes = defaultMaxTextBytes
	}
	return &Validator{maxTextBytes: maxTextBytes}
}

// ValidateText validates a raw quiz text body.
func (v *Validator) ValidateText(field, text string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(text) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if len(text) > v.maxTextBytes {
		errors = append(errors, domain.NewOutOfRangeError(field, len(text), 1, v.maxTextBytes))
	}

	return errors
}

// ValidateTexts validates a batch of text bodies against a maximum count.
func (v *Validator) ValidateTexts(texts []string, maxTexts int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(texts) == 0 || len(texts) > maxTexts {
		errors = append(errors, domain.NewOutOfRangeError("texts", len(texts), 1, maxTexts))
		return errors
	}
	for i, text := range texts {
		errors = append(errors, v.ValidateText(fmt.Sprintf("texts[%d]", i), text)...)
	}

	return errors
}

// ValidateQuizMeta validates the quiz fields sent alongside the questions.
func (v *Validator) ValidateQuizMeta(title, color string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	title = strings.TrimSpace(title)
	if title == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	} else if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		errors = append(errors, domain.NewOutOfRangeError("title", n, 1, MaxTitleLength))
	}

	if color = strings.TrimSpace(color); color != "" && !colorPattern.MatchString(color) {
		errors = append(errors, domain.NewInvalidFormatError("color", color))
	}

	return errors
}

// ValidateDraftID validates a draft identifier path parameter.
func (v *Validator) ValidateDraftID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// ValidateQuestions checks that a question set is complete enough to publish
// and answer.
func (v *Validator) ValidateQuestions(questions []domain.Question) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(questions) == 0 {
		errors = append(errors, domain.NewFieldValidationError("questions", "at least one question is required"))
		return errors
	}

	for i, q := range questions {
		errors = append(errors, validateQuestion(fmt.Sprintf("questions[%d]", i), q)...)
	}

	return errors
}

func validateQuestion(field string, q domain.Question) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(q.Question) == "" {
		errors = append(errors, domain.NewMissingFieldError(field+".question"))
	}

	switch q.Type {
	case domain.QuestionTypeChoice:
		errors = append(errors, validateChoice(field, q)...)
	case domain.QuestionTypeOrdering:
		errors = append(errors, validateOrdering(field, q)...)
	case domain.QuestionTypeMatching:
		errors = append(errors, validateMatching(field, q)...)
	default:
		errors = append(errors, domain.NewInvalidFormatError(field+".type", q.Type))
	}

	return errors
}

func validateOptions(field string, options []string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(options) < MinOptions {
		errors = append(errors, domain.NewInvalidQuestionError(field+".options",
			fmt.Sprintf("at least %d options are required", MinOptions)))
	}
	for j, opt := range options {
		if strings.TrimSpace(opt) == "" {
			errors = append(errors, domain.NewMissingFieldError(fmt.Sprintf("%s.options[%d]", field, j)))
		}
	}

	return errors
}

func validateChoice(field string, q domain.Question) domain.ValidationErrors {
	errors := validateOptions(field, q.Options)

	if len(q.Options) > MaxChoiceOptions {
		errors = append(errors, domain.NewOutOfRangeError(field+".options", len(q.Options), MinOptions, MaxChoiceOptions))
	}
	if len(q.Correct) == 0 {
		errors = append(errors, domain.NewInvalidQuestionError(field+".correct", "at least one correct option is required"))
	}

	seen := make(map[int]bool, len(q.Correct))
	for _, c := range q.Correct {
		if c < 0 || c >= len(q.Options) {
			errors = append(errors, domain.NewOutOfRangeError(field+".correct", c, 0, len(q.Options)-1))
			continue
		}
		if seen[c] {
			errors = append(errors, domain.NewInvalidQuestionError(field+".correct",
				fmt.Sprintf("option %d is marked correct more than once", c)))
		}
		seen[c] = true
	}

	return errors
}

func validateOrdering(field string, q domain.Question) domain.ValidationErrors {
	errors := validateOptions(field, q.Options)

	if len(q.Correct) != len(q.Options) {
		errors = append(errors, domain.NewInvalidQuestionError(field+".correct",
			fmt.Sprintf("expected %d positions, got %d", len(q.Options), len(q.Correct))))
		return errors
	}

	seen := make(map[int]bool, len(q.Correct))
	for _, c := range q.Correct {
		if c < 0 || c >= len(q.Options) || seen[c] {
			errors = append(errors, domain.NewInvalidQuestionError(field+".correct",
				"positions must be a permutation of the option indices"))
			break
		}
		seen[c] = true
	}

	return errors
}

func validateMatching(field string, q domain.Question) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(q.MatchPairs) < MinOptions {
		errors = append(errors, domain.NewInvalidQuestionError(field+".matchPairs",
			fmt.Sprintf("at least %d pairs are required", MinOptions)))
	}
	for j, p := range q.MatchPairs {
		pairField := fmt.Sprintf("%s.matchPairs[%d]", field, j)
		if strings.TrimSpace(p.Text) == "" {
			errors = append(errors, domain.NewMissingFieldError(pairField+".text"))
		}
		target, ok := q.Target(p.CorrectMatch)
		if !ok {
			errors = append(errors, domain.NewInvalidQuestionError(pairField+".correctMatch",
				fmt.Sprintf("unknown target %q", p.CorrectMatch)))
		} else if strings.TrimSpace(target.Text) == "" {
			errors = append(errors, domain.NewMissingFieldError(pairField+".correctMatch"))
		}
	}

	return errors
}
