package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Choice describes one enumerated question.
type Choice struct {
	Prompt   string
	Retry    string
	Accepted []string
	AllowAll bool
}

// Choose asks c.Prompt and keeps asking c.Retry until the normalized answer
// is accepted. It returns io.EOF if input ends first.
func (p *Prompter) Choose(c Choice) (string, error) {
	question := c.Prompt
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if c.accepts(answer) {
			return answer, nil
		}
		question = c.Retry
	}
}

func (c Choice) accepts(answer string) bool {
	if c.AllowAll && answer == "all" {
		return true
	}
	for _, a := range c.Accepted {
		if a == answer {
			return true
		}
	}
	return false
}

// Confirm asks question once and reports whether the answer was "yes".
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// Ask prints question and returns the normalized answer line.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
	}
	return normalise(line), nil
}

// normalise trims and lowercases s.
func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
