package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads interactive answers line by line. Commands build it
// from the cobra streams so tests can feed scripted input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the prompt and returns the next input line with the
// trailing newline stripped.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
