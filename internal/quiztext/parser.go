// Package quiztext reads and writes the plain-text quiz authoring format.
//
// A quiz is a sequence of numbered question blocks:
//
//	1. What is 2+2?
//	A. 3
//	B. 4*
//	C. 5
//	[explanation: Basic addition]
//
//	2. [order] Arrange ascending
//	2) two
//	1) one
//
// Parsing is lenient: malformed input yields partial questions, never an error.
package quiztext

import (
	"regexp"
	"strconv"
	"strings"

	"quizmark/internal/domain"
)

const (
	orderMarker    = "[order]"
	matchingMarker = "[matching]"
	codeOpen       = "[code]"
	codeClose      = "[/code]"
	correctMarker  = "*"
	matchArrow     = "->"
)

var (
	headerPattern      = regexp.MustCompile(`^\d+\.`)
	orderingPattern    = regexp.MustCompile(`^(\d+)\)`)
	letterPattern      = regexp.MustCompile(`^[A-Z]\.`)
	letterFoldPattern  = regexp.MustCompile(`^[A-Za-z]\.`)
	imagePattern       = regexp.MustCompile(`(?i)^\[image:\s*(.+?)\]`)
	explanationPattern = regexp.MustCompile(`(?i)^\[explanation:\s*(.+?)\]`)
)

// Option configures Parse.
type Option func(*options)

type options struct {
	caseInsensitiveLetters bool
}

// WithCaseInsensitiveLetters makes option lines such as "b. text" count as
// options. By default only upper-case letters are recognised.
func WithCaseInsensitiveLetters(enabled bool) Option {
	return func(o *options) {
		o.caseInsensitiveLetters = enabled
	}
}

// Parse converts quiz text into questions in source order. Lines outside a
// question block are skipped. It is safe for concurrent use.
func Parse(text string, opts ...Option) []domain.Question {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{
		lines:  strings.Split(text, "\n"),
		letter: letterPattern,
	}
	if cfg.caseInsensitiveLetters {
		p.letter = letterFoldPattern
	}

	questions := []domain.Question{}
	for p.pos < len(p.lines) {
		header := strings.TrimSpace(p.lines[p.pos])
		p.pos++
		if !headerPattern.MatchString(header) {
			continue
		}
		questions = append(questions, p.question(header))
	}
	return questions
}

// parser is a single forward cursor over the input lines.
type parser struct {
	lines  []string
	pos    int
	letter *regexp.Regexp
}

func (p *parser) question(header string) domain.Question {
	qType := domain.QuestionTypeChoice
	switch {
	case strings.Contains(header, orderMarker):
		qType = domain.QuestionTypeOrdering
	case strings.Contains(header, matchingMarker):
		qType = domain.QuestionTypeMatching
	}

	text := header[len(headerPattern.FindString(header)):]
	text = strings.Replace(text, orderMarker, "", 1)
	text = strings.Replace(text, matchingMarker, "", 1)

	q := domain.NewQuestion(strings.TrimSpace(text), qType)
	p.code(&q)
	if m := p.match(imagePattern); m != nil {
		q.Image = domain.StringPtr(m[1])
	}

	switch qType {
	case domain.QuestionTypeOrdering:
		p.orderingItems(&q)
	case domain.QuestionTypeMatching:
		p.matchingPairs(&q)
	default:
		p.choiceOptions(&q)
	}

	if m := p.match(explanationPattern); m != nil {
		q.Explanation = domain.StringPtr(m[1])
	}
	return q
}

// code consumes a [code] ... [/code] block. Interior lines are kept verbatim.
func (p *parser) code(q *domain.Question) {
	if p.pos >= len(p.lines) || strings.TrimSpace(p.lines[p.pos]) != codeOpen {
		return
	}
	p.pos++

	var body []string
	for p.pos < len(p.lines) && strings.TrimSpace(p.lines[p.pos]) != codeClose {
		body = append(body, p.lines[p.pos])
		p.pos++
	}
	if p.pos < len(p.lines) {
		p.pos++
	}
	if code := strings.Join(body, "\n"); code != "" {
		q.Code = &code
	}
}

// orderingItems consumes "N) item" lines; N is the 1-based target position.
func (p *parser) orderingItems(q *domain.Question) {
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		m := orderingPattern.FindStringSubmatch(line)
		if m == nil {
			return
		}
		// Labels are not range checked; validation reports bad positions.
		n, _ := strconv.Atoi(m[1])
		q.Options = append(q.Options, strings.TrimSpace(line[len(m[0]):]))
		q.Correct = append(q.Correct, n-1)
		p.pos++
	}
}

// choiceOptions consumes "X. option" lines; a trailing * marks a correct option.
func (p *parser) choiceOptions(q *domain.Question) {
	for p.pos < len(p.lines) && p.letter.MatchString(p.lines[p.pos]) {
		opt := strings.TrimSpace(p.lines[p.pos][2:])
		if strings.HasSuffix(opt, correctMarker) {
			opt = strings.TrimSpace(strings.TrimSuffix(opt, correctMarker))
			q.Correct = append(q.Correct, len(q.Options))
		}
		q.Options = append(q.Options, opt)
		p.pos++
	}
}

// matchingPairs consumes "X. term -> definition" lines. Lines without an
// arrow are consumed and dropped.
func (p *parser) matchingPairs(q *domain.Question) {
	for p.pos < len(p.lines) && p.letter.MatchString(p.lines[p.pos]) {
		line := strings.TrimSpace(p.lines[p.pos][2:])
		if term, definition, ok := strings.Cut(line, matchArrow); ok {
			q.AddMatch(strings.TrimSpace(term), strings.TrimSpace(definition))
		}
		p.pos++
	}
}

// match tests the trimmed current line against re and consumes it on success.
func (p *parser) match(re *regexp.Regexp) []string {
	if p.pos >= len(p.lines) {
		return nil
	}
	m := re.FindStringSubmatch(strings.TrimSpace(p.lines[p.pos]))
	if m != nil {
		p.pos++
	}
	return m
}
