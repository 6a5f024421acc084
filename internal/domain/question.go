package domain

import "fmt"

// QuestionType discriminates the answer shape of a Question.
type QuestionType string

const (
	QuestionTypeChoice   QuestionType = "choice"
	QuestionTypeOrdering QuestionType = "ordering"
	QuestionTypeMatching QuestionType = "matching"
)

// IsValid reports whether t is one of the known question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeChoice, QuestionTypeOrdering, QuestionTypeMatching:
		return true
	}
	return false
}

// MatchPair is the left-hand term of a matching question.
type MatchPair struct {
	ID           string `json:"id" yaml:"id"`
	Text         string `json:"text" yaml:"text"`
	CorrectMatch string `json:"correctMatch" yaml:"correctMatch"`
}

// MatchTarget is the right-hand definition of a matching question.
type MatchTarget struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Question is a single parsed quiz question.
//
// For choice questions Correct holds the indices of the correct options.
// For ordering questions Correct[position] is the index into Options of the
// item that belongs at that position.
type Question struct {
	Question     string        `json:"question" yaml:"question"`
	Type         QuestionType  `json:"type" yaml:"type"`
	Options      []string      `json:"options" yaml:"options"`
	Correct      []int         `json:"correct" yaml:"correct,flow"`
	Code         *string       `json:"code" yaml:"code,omitempty"`
	Image        *string       `json:"image" yaml:"image,omitempty"`
	Explanation  *string       `json:"explanation" yaml:"explanation,omitempty"`
	MatchPairs   []MatchPair   `json:"matchPairs,omitempty" yaml:"matchPairs,omitempty"`
	MatchTargets []MatchTarget `json:"matchTargets,omitempty" yaml:"matchTargets,omitempty"`
}

// NewQuestion returns an empty question of the given type with non-nil slices.
func NewQuestion(text string, qType QuestionType) Question {
	q := Question{
		Question: text,
		Type:     qType,
		Options:  []string{},
		Correct:  []int{},
	}
	if qType == QuestionTypeMatching {
		q.MatchPairs = []MatchPair{}
		q.MatchTargets = []MatchTarget{}
	}
	return q
}

// IsMarkedCorrect reports whether option index i is listed in Correct.
func (q Question) IsMarkedCorrect(i int) bool {
	for _, c := range q.Correct {
		if c == i {
			return true
		}
	}
	return false
}

// Target returns the match target with the given id.
func (q Question) Target(id string) (MatchTarget, bool) {
	for _, t := range q.MatchTargets {
		if t.ID == id {
			return t, true
		}
	}
	return MatchTarget{}, false
}

// AddMatch appends a term/definition pair with sequential ids.
func (q *Question) AddMatch(term, definition string) {
	pairID := fmt.Sprintf("pair_%d", len(q.MatchPairs))
	targetID := fmt.Sprintf("target_%d", len(q.MatchTargets))
	q.MatchPairs = append(q.MatchPairs, MatchPair{ID: pairID, Text: term, CorrectMatch: targetID})
	q.MatchTargets = append(q.MatchTargets, MatchTarget{ID: targetID, Text: definition})
}

// Clone returns a deep copy of q.
func (q Question) Clone() Question {
	c := q
	c.Options = append([]string{}, q.Options...)
	c.Correct = append([]int{}, q.Correct...)
	c.Code = cloneString(q.Code)
	c.Image = cloneString(q.Image)
	c.Explanation = cloneString(q.Explanation)
	if q.MatchPairs != nil {
		c.MatchPairs = append([]MatchPair{}, q.MatchPairs...)
	}
	if q.MatchTargets != nil {
		c.MatchTargets = append([]MatchTarget{}, q.MatchTargets...)
	}
	return c
}

// AddOption returns a copy of q with an extra option. Ordering questions
// place the new item at the next position.
func (q Question) AddOption(text string) Question {
	c := q.Clone()
	c.Options = append(c.Options, text)
	if c.Type == QuestionTypeOrdering {
		c.Correct = append(c.Correct, len(c.Options)-1)
	}
	return c
}

// RemoveOption returns a copy of q without option index and with Correct
// re-indexed. Out-of-range indices return an unchanged copy.
func (q Question) RemoveOption(index int) Question {
	c := q.Clone()
	if index < 0 || index >= len(c.Options) {
		return c
	}
	c.Options = append(c.Options[:index], c.Options[index+1:]...)
	correct := make([]int, 0, len(c.Correct))
	for _, v := range c.Correct {
		switch {
		case v == index:
			continue
		case v > index:
			correct = append(correct, v-1)
		default:
			correct = append(correct, v)
		}
	}
	c.Correct = correct
	return c
}

// ToggleCorrect returns a copy of q with option index added to or removed
// from Correct.
func (q Question) ToggleCorrect(index int) Question {
	c := q.Clone()
	for i, v := range c.Correct {
		if v == index {
			c.Correct = append(c.Correct[:i], c.Correct[i+1:]...)
			return c
		}
	}
	c.Correct = append(c.Correct, index)
	return c
}

// ChangeType returns a copy of q converted to qType. Switching to ordering
// makes the current option order the answer; other switches clear Correct.
func (q Question) ChangeType(qType QuestionType) Question {
	c := q.Clone()
	if qType == c.Type {
		return c
	}
	c.Type = qType
	c.Correct = []int{}
	if qType == QuestionTypeOrdering {
		for i := range c.Options {
			c.Correct = append(c.Correct, i)
		}
	}
	if qType == QuestionTypeMatching && c.MatchPairs == nil {
		c.MatchPairs = []MatchPair{}
		c.MatchTargets = []MatchTarget{}
	}
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
