package demotools

import (
	"strconv"
	"strings"
)

// MockQuestioner answers questions from a fixed list, in order. Answers go
// through the same validators as a real Questioner; a rejected answer is
// skipped and the next one is tried.
type MockQuestioner struct {
	Answers []string
	next    int
}

func (q *MockQuestioner) pop() string {
	if q.next >= len(q.Answers) {
		panic("MockQuestioner ran out of answers")
	}
	answer := q.Answers[q.next]
	q.next++
	return answer
}

// Remaining is the number of answers not yet consumed
func (q *MockQuestioner) Remaining() int {
	return len(q.Answers) - q.next
}

func (q *MockQuestioner) Ask(question string, validators ...Validator) string {
	for {
		answer := q.pop()
		if _, ok := validate(answer, validators); ok {
			return answer
		}
	}
}

func (q *MockQuestioner) AskBool(question string, expected string) bool {
	return strings.EqualFold(q.Ask(question), expected)
}

func (q *MockQuestioner) AskInt(question string, validators ...Validator) int {
	value, _ := strconv.Atoi(q.Ask(question, append([]Validator{IsInt}, validators...)...))
	return value
}

func (q *MockQuestioner) AskFloat64(question string, validators ...Validator) float64 {
	value, _ := strconv.ParseFloat(q.Ask(question, append([]Validator{IsFloat}, validators...)...), 64)
	return value
}

func (q *MockQuestioner) AskChoice(question string, choices []string) int {
	return q.AskInt(question, InIntRange(1, len(choices))) - 1
}

func (q *MockQuestioner) AskPassword(question string, minLength int) string {
	return q.Ask(question, NotEmpty)
}
