package cli

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestInterruptHandler_Signal(t *testing.T) {
	tests := []struct {
		name     string
		hint     string
		contains []string
	}{
		{name: "with hint", hint: "이미 처리한 줄은 저장되었습니다.", contains: []string{"중단되었습니다.", "이미 처리한 줄은 저장되었습니다."}},
		{name: "without hint", contains: []string{"중단되었습니다."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &syncBuffer{}
			handler := NewInterruptHandler(output)

			var sigChan chan<- os.Signal
			handler.notify = func(c chan<- os.Signal) { sigChan = c }

			ctx := handler.HandleInterrupts(context.Background(), tt.hint)
			assert.False(t, handler.WasInterrupted())

			sigChan <- os.Interrupt

			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
				t.Fatal("context was not canceled")
			}

			assert.Eventually(t, handler.WasInterrupted, time.Second, 5*time.Millisecond)
			for _, want := range tt.contains {
				assert.Contains(t, output.String(), want)
			}
		})
	}
}

func TestInterruptHandler_ParentCancelIsNotInterrupt(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)
	handler.notify = func(chan<- os.Signal) {}

	parent, cancel := context.WithCancel(context.Background())
	ctx := handler.HandleInterrupts(parent, "")
	cancel()

	<-ctx.Done()
	time.Sleep(20 * time.Millisecond)

	assert.False(t, handler.WasInterrupted())
	assert.Empty(t, output.String())
}

func TestNewInterruptHandler_NilWriter(t *testing.T) {
	handler := NewInterruptHandler(nil)
	assert.NotNil(t, handler.writer)
	assert.NotNil(t, handler.notify)
}
