package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"vcnnet/internal/gateway"
)

// promptKeySelector asks for an API key on the controlling terminal.
// Input is not echoed when stdin is a terminal.
type promptKeySelector struct {
	in  *os.File
	out io.Writer
}

func newPromptKeySelector() *promptKeySelector {
	return &promptKeySelector{in: os.Stdin, out: os.Stderr}
}

func (p *promptKeySelector) SelectKey(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, "No Gemini API key configured. Paste a key (empty to cancel): ")

	var (
		line string
		err  error
	)
	if fd := int(p.in.Fd()); term.IsTerminal(fd) {
		var raw []byte
		raw, err = term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		line = string(raw)
	} else {
		line, err = bufio.NewReader(p.in).ReadString('\n')
		if err == io.EOF {
			err = nil
		}
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}

	key := strings.TrimSpace(line)
	if key == "" {
		return "", gateway.ErrKeySelectionCancelled
	}
	return key, nil
}
