package quiztext

import (
	"fmt"
	"strings"

	"quizmark/internal/domain"
)

// Format renders questions in the text format accepted by Parse. Blocks are
// separated by a blank line and numbered from 1.
//
// Ordering items are written in Options order, each labelled with its target
// position, so labels need not ascend.
func Format(questions []domain.Question) string {
	blocks := make([]string, 0, len(questions))
	for i, q := range questions {
		blocks = append(blocks, formatQuestion(i, q))
	}
	return strings.Join(blocks, "\n")
}

func formatQuestion(index int, q domain.Question) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. ", index+1)
	switch q.Type {
	case domain.QuestionTypeOrdering:
		b.WriteString(orderMarker + " ")
	case domain.QuestionTypeMatching:
		b.WriteString(matchingMarker + " ")
	}
	b.WriteString(q.Question)
	b.WriteByte('\n')

	if q.Code != nil && *q.Code != "" {
		fmt.Fprintf(&b, "%s\n%s\n%s\n", codeOpen, *q.Code, codeClose)
	}
	if q.Image != nil && *q.Image != "" {
		fmt.Fprintf(&b, "[image: %s]\n", *q.Image)
	}

	switch q.Type {
	case domain.QuestionTypeOrdering:
		for j, opt := range q.Options {
			position := j
			if j < len(q.Correct) {
				position = q.Correct[j]
			}
			fmt.Fprintf(&b, "%d) %s\n", position+1, opt)
		}
	case domain.QuestionTypeMatching:
		for j, pair := range q.MatchPairs {
			target, _ := q.Target(pair.CorrectMatch)
			fmt.Fprintf(&b, "%s. %s %s %s\n", optionLetter(j), pair.Text, matchArrow, target.Text)
		}
	default:
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "%s. %s", optionLetter(j), opt)
			if q.IsMarkedCorrect(j) {
				b.WriteString(" " + correctMarker)
			}
			b.WriteByte('\n')
		}
	}

	if q.Explanation != nil && *q.Explanation != "" {
		fmt.Fprintf(&b, "[explanation: %s]\n", *q.Explanation)
	}
	return b.String()
}

// optionLetter labels option j as A, B, C... Past Z the labels stop being
// letters and no longer parse as options.
func optionLetter(j int) string {
	return string(rune('A' + j))
}
