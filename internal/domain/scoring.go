package domain

import "math"

// Answer is a user's response to one question. Choice and ordering questions
// use Selected (option indices, in position order for ordering); matching
// questions use Matches keyed by pair id.
type Answer struct {
	Selected []int             `json:"selected,omitempty"`
	Matches  map[string]string `json:"matches,omitempty"`
}

// IsEmpty reports whether the answer carries no response at all.
func (a *Answer) IsEmpty() bool {
	return a == nil || (len(a.Selected) == 0 && len(a.Matches) == 0)
}

// Result is the outcome of scoring a quiz attempt.
type Result struct {
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Correct    []bool `json:"correct"`
}

// IsCorrect grades a single answer. Ordering answers must reproduce Correct
// exactly; choice answers must select the same set of options; matching
// answers must map every pair to its correct target.
func IsCorrect(q Question, a *Answer) bool {
	if a.IsEmpty() {
		return false
	}
	switch q.Type {
	case QuestionTypeOrdering:
		if len(a.Selected) != len(q.Correct) {
			return false
		}
		for i := range q.Correct {
			if a.Selected[i] != q.Correct[i] {
				return false
			}
		}
		return true
	case QuestionTypeMatching:
		if len(q.MatchPairs) == 0 || len(a.Matches) != len(q.MatchPairs) {
			return false
		}
		for _, p := range q.MatchPairs {
			if a.Matches[p.ID] != p.CorrectMatch {
				return false
			}
		}
		return true
	default:
		want := toSet(q.Correct)
		got := toSet(a.Selected)
		if len(want) != len(got) {
			return false
		}
		for k := range got {
			if _, ok := want[k]; !ok {
				return false
			}
		}
		return true
	}
}

// Score grades answers against questions position by position. Missing
// answers count as incorrect.
func Score(questions []Question, answers []*Answer) Result {
	res := Result{Total: len(questions), Correct: make([]bool, len(questions))}
	for i, q := range questions {
		var a *Answer
		if i < len(answers) {
			a = answers[i]
		}
		if IsCorrect(q, a) {
			res.Score++
			res.Correct[i] = true
		}
	}
	if res.Total > 0 {
		res.Percentage = int(math.Round(float64(res.Score) / float64(res.Total) * 100))
	}
	return res
}

func toSet(xs []int) map[int]struct{} {
	set := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		set[x] = struct{}{}
	}
	return set
}
