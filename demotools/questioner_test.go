package demotools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskRepeatsUntilValid(t *testing.T) {
	out := &bytes.Buffer{}
	q := NewQuestionerFrom(strings.NewReader("\n\nhello\n"), out)

	answer := q.Ask("Name?", NotEmpty)

	assert.Equal(t, "hello", answer)
	assert.Equal(t, 2, strings.Count(out.String(), "I need an answer"))
}

func TestAskIntInRange(t *testing.T) {
	q := NewQuestionerFrom(strings.NewReader("abc\n12\n5\n"), &bytes.Buffer{})

	assert.Equal(t, 5, q.AskInt("Number?", InIntRange(1, 10)))
}

func TestAskFloat64InRange(t *testing.T) {
	q := NewQuestionerFrom(strings.NewReader("-1\n0.5\n"), &bytes.Buffer{})

	assert.Equal(t, 0.5, q.AskFloat64("Ratio?", InFloatRange(0, 1)))
}

func TestAskBool(t *testing.T) {
	q := NewQuestionerFrom(strings.NewReader("Y\nn\n"), &bytes.Buffer{})

	assert.True(t, q.AskBool("Continue?", "y"))
	assert.False(t, q.AskBool("Continue?", "y"))
}

func TestAskChoiceReturnsZeroBasedIndex(t *testing.T) {
	out := &bytes.Buffer{}
	q := NewQuestionerFrom(strings.NewReader("4\n2\n"), out)

	idx := q.AskChoice("Pick one", []string{"a", "b", "c"})

	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "\t3. c")
}

func TestAskPasswordMinLength(t *testing.T) {
	q := NewQuestionerFrom(strings.NewReader("abc\nlongenough\n"), &bytes.Buffer{})

	assert.Equal(t, "longenough", q.AskPassword("Password?", 8))
}

func TestAskReturnsLastAnswerWithoutTrailingNewline(t *testing.T) {
	q := NewQuestionerFrom(strings.NewReader("last"), &bytes.Buffer{})

	assert.Equal(t, "last", q.Ask("Name?"))
}

func TestMockQuestionerSkipsRejectedAnswers(t *testing.T) {
	q := &MockQuestioner{Answers: []string{"", "x", "3", "y"}}

	assert.Equal(t, 2, q.AskChoice("Pick", []string{"a", "b", "c"}))
	assert.True(t, q.AskBool("Continue?", "y"))
	assert.Equal(t, 0, q.Remaining())
}
