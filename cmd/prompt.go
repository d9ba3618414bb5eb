package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// stdin is swapped by tests.
var stdin = bufio.NewReader(os.Stdin)

func setInput(r io.Reader) { stdin = bufio.NewReader(r) }

// prompt asks a question on stdout and returns the trimmed answer, or def
// when the answer is empty or input is exhausted.
func prompt(question, def string) string {
	if def != "" {
		fmt.Fprintf(out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(out, "%s: ", question)
	}
	// A read error still leaves whatever was typed before EOF.
	answer, _ := stdin.ReadString('\n')
	if answer = strings.TrimSpace(answer); answer == "" {
		return def
	}
	return answer
}
