// Package demotools prompts the user for input while a scenario runs
package demotools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Validator checks an answer and returns a message for the user when it is
// not acceptable
type Validator func(answer string) (string, bool)

// IQuestioner asks questions and returns validated answers
type IQuestioner interface {
	Ask(question string, validators ...Validator) string
	AskBool(question string, expected string) bool
	AskInt(question string, validators ...Validator) int
	AskFloat64(question string, validators ...Validator) float64
	AskChoice(question string, choices []string) int
	AskPassword(question string, minLength int) string
}

// Questioner reads answers from an input stream, one per line
type Questioner struct {
	in  *bufio.Reader
	out io.Writer
}

// NewQuestioner reads from stdin and prompts on stdout
func NewQuestioner() *Questioner {
	return NewQuestionerFrom(os.Stdin, os.Stdout)
}

func NewQuestionerFrom(in io.Reader, out io.Writer) *Questioner {
	return &Questioner{in: bufio.NewReader(in), out: out}
}

func (q *Questioner) readLine() (string, error) {
	line, err := q.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "could not read answer")
	}
	return strings.TrimSpace(line), nil
}

// Ask prompts until every validator accepts the answer. On end of input
// the last answer is returned as is.
func (q *Questioner) Ask(question string, validators ...Validator) string {
	for {
		fmt.Fprint(q.out, question, " ")
		answer, err := q.readLine()
		if err != nil {
			return answer
		}
		if msg, ok := validate(answer, validators); !ok {
			fmt.Fprintln(q.out, msg)
			continue
		}
		return answer
	}
}

// AskBool returns true when the answer equals expected, ignoring case
func (q *Questioner) AskBool(question string, expected string) bool {
	answer := q.Ask(question)
	return strings.EqualFold(answer, expected)
}

func (q *Questioner) AskInt(question string, validators ...Validator) int {
	answer := q.Ask(question, append([]Validator{IsInt}, validators...)...)
	value, _ := strconv.Atoi(answer)
	return value
}

func (q *Questioner) AskFloat64(question string, validators ...Validator) float64 {
	answer := q.Ask(question, append([]Validator{IsFloat}, validators...)...)
	value, _ := strconv.ParseFloat(answer, 64)
	return value
}

// AskChoice lists choices numbered from 1 and returns the zero-based index
// of the selected one
func (q *Questioner) AskChoice(question string, choices []string) int {
	fmt.Fprintln(q.out, question)
	for i, choice := range choices {
		fmt.Fprintf(q.out, "\t%d. %s\n", i+1, choice)
	}
	return q.AskInt("Enter a choice:", InIntRange(1, len(choices))) - 1
}

// AskPassword prompts for a secret of at least minLength characters. The
// answer is read like any other line.
func (q *Questioner) AskPassword(question string, minLength int) string {
	return q.Ask(question, NotEmpty, func(answer string) (string, bool) {
		if len(answer) < minLength {
			return fmt.Sprintf("Password must be at least %d characters long.", minLength), false
		}
		return "", true
	})
}

func validate(answer string, validators []Validator) (string, bool) {
	for _, v := range validators {
		if msg, ok := v(answer); !ok {
			return msg, false
		}
	}
	return "", true
}

func NotEmpty(answer string) (string, bool) {
	if answer == "" {
		return "I need an answer. Please?", false
	}
	return "", true
}

func IsInt(answer string) (string, bool) {
	if _, err := strconv.Atoi(answer); err != nil {
		return fmt.Sprintf("%q must be an integer.", answer), false
	}
	return "", true
}

func IsFloat(answer string) (string, bool) {
	if _, err := strconv.ParseFloat(answer, 64); err != nil {
		return fmt.Sprintf("%q must be a number.", answer), false
	}
	return "", true
}

// InIntRange accepts integers between lower and upper, inclusive
func InIntRange(lower int, upper int) Validator {
	return func(answer string) (string, bool) {
		value, err := strconv.Atoi(answer)
		if err != nil || value < lower || value > upper {
			return fmt.Sprintf("%q must be between %d and %d.", answer, lower, upper), false
		}
		return "", true
	}
}

// InFloatRange accepts numbers between lower and upper, inclusive
func InFloatRange(lower float64, upper float64) Validator {
	return func(answer string) (string, bool) {
		value, err := strconv.ParseFloat(answer, 64)
		if err != nil || value < lower || value > upper {
			return fmt.Sprintf("%q must be between %v and %v.", answer, lower, upper), false
		}
		return "", true
	}
}
