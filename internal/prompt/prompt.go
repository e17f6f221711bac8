// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package prompt reads answers to interactive questions from a line-oriented
// input stream.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Prompter asks questions on out and reads one answer per line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints question and returns the next answer, trimmed and lower-cased.
// It returns io.EOF once the input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(p.in.Text())), nil
}

// Choose asks question until the answer is one of valid, printing invalid
// after every rejected answer. There is no retry limit.
func (p *Prompter) Choose(question string, valid []string, invalid string) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if slices.Contains(valid, answer) {
			return answer, nil
		}
		fmt.Fprintln(p.out, invalid)
	}
}

// Confirm asks question and reports whether the answer is "yes".
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}
