package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm prints the question and reads one line. Only an explicit "y"
// (case-insensitive) proceeds; anything else, including EOF, cancels.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (y/N): ", question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
