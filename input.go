package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNoInput    = errors.New("no input provided")
	ErrEmptyInput = errors.New("input is empty")
)

// CollectInput picks the text to capture. Positional arguments win and
// are joined with single spaces; stdin is not touched when any are
// present. With no arguments and a non-interactive stdin the whole
// stream is read to EOF. Whitespace-only input is rejected, but the
// text itself is returned untrimmed.
func CollectInput(args []string, stdin io.Reader, terminal bool) (string, error) {
	var text string
	switch {
	case len(args) > 0:
		text = strings.Join(args, " ")
	case !terminal:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	default:
		return "", ErrNoInput
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	return text, nil
}
