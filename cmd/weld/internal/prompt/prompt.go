// Package prompt implements plain stdin prompts for terminals where the
// full-screen wizard is unavailable.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter asks questions on one stream and reads answers from another.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter on stdin/stdout.
func New() *Prompter {
	return NewWith(os.Stdin, os.Stdout)
}

// NewWith creates a prompter on explicit streams.
func NewWith(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) read() string {
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// Text asks for a line of text. An empty answer takes the default.
func (p *Prompter) Text(question, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	if answer := p.read(); answer != "" {
		return answer
	}
	return defaultValue
}

// Confirm asks a yes/no question. An empty answer takes the default.
func (p *Prompter) Confirm(question string, defaultYes bool) bool {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", question, hint)

	switch strings.ToLower(p.read()) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Select asks to pick one option, by number or by name. A unique name
// prefix is enough; anything ambiguous or unknown takes the default.
func (p *Prompter) Select(question string, options []string, defaultIndex int) int {
	fmt.Fprintln(p.out, question)
	for i, option := range options {
		cursor := " "
		if i == defaultIndex {
			cursor = "*"
		}
		fmt.Fprintf(p.out, " %s %d) %s\n", cursor, i+1, option)
	}
	fmt.Fprintf(p.out, "Choice [%d]: ", defaultIndex+1)

	answer := p.read()
	if answer == "" {
		return defaultIndex
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1
		}
		fmt.Fprintln(p.out, "Out of range, keeping the default.")
		return defaultIndex
	}

	match := -1
	lower := strings.ToLower(answer)
	for i, option := range options {
		if strings.HasPrefix(strings.ToLower(option), lower) {
			if match >= 0 {
				fmt.Fprintln(p.out, "Ambiguous choice, keeping the default.")
				return defaultIndex
			}
			match = i
		}
	}
	if match >= 0 {
		return match
	}

	fmt.Fprintln(p.out, "Unknown choice, keeping the default.")
	return defaultIndex
}
