package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedValue string
		expectedErr   error
	}{
		{name: "successful read", input: "국수 5000원\n", expectedValue: "국수 5000원"},
		{name: "read with extra whitespace", input: "  내일 회의  \n", expectedValue: "내일 회의"},
		{name: "empty line", input: "\n", expectedValue: ""},
		{name: "final line without newline", input: "오후", expectedValue: "오후"},
		{name: "end of input", input: "", expectedErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLineReader(strings.NewReader(tt.input))

			got, err := r.ReadLine(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, got)
		})
	}
}

func TestLineReader_ContextCancellation(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	r := NewLineReader(pr)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestLineReader_ReadLines(t *testing.T) {
	r := NewLineReader(strings.NewReader("국수 5000원\n\n  내일 회의\n메모"))

	lines, err := r.ReadLines(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"국수 5000원", "내일 회의", "메모"}, lines)
}

func TestNewLineReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewLineReader(nil) })
}
