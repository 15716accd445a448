package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ErrNoChoice is returned when input ends before a valid option is chosen.
var ErrNoChoice = errors.New("no option chosen")

// Prompter asks the user to pick an answer to a clarification question.
type Prompter struct {
	reader *LineReader
	writer io.Writer
}

// NewPrompter creates a prompter. Nil arguments default to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{reader: NewLineReader(reader), writer: writer}
}

// Reader exposes the prompter's line reader so a REPL can share the input stream.
func (p *Prompter) Reader() *LineReader {
	return p.reader
}

// Choose prints question with numbered options and returns the selected option.
// The user may answer with the option number or its label. Invalid answers
// re-prompt until input ends.
func (p *Prompter) Choose(ctx context.Context, question string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoice
	}

	lines := lo.Map(options, func(opt string, i int) string {
		return fmt.Sprintf("  [%d] %s", i+1, opt)
	})
	if _, err := fmt.Fprintln(p.writer, RenderBox(question, strings.Join(lines, "\n"))); err != nil {
		return "", fmt.Errorf("failed to write options: %w", err)
	}

	for {
		if _, err := fmt.Fprint(p.writer, FormatPrompt("선택")); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := p.reader.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			return "", ErrNoChoice
		}
		if err != nil {
			return "", err
		}

		if choice, ok := matchOption(line, options); ok {
			return choice, nil
		}
		if _, err := fmt.Fprintln(p.writer, FormatError(fmt.Sprintf("1부터 %d 사이의 번호를 입력하세요.", len(options)))); err != nil {
			return "", fmt.Errorf("failed to write error: %w", err)
		}
	}
}

func matchOption(input string, options []string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return lo.Find(options, func(opt string) bool { return opt == input })
}
