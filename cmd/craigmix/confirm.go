package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// stdinConfirmer asks yes/no questions on the controlling terminal. Without a
// TTY it refuses, so delete-originals prompts degrade to keeping files.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
	tty bool
}

func newStdinConfirmer() *stdinConfirmer {
	return &stdinConfirmer{
		in:  os.Stdin,
		out: os.Stderr,
		tty: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

func (c *stdinConfirmer) Confirm(prompt string) bool {
	if !c.tty {
		return false
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(c.in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
