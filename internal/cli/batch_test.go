package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lifeone/internal/model"
)

// scriptedProcessor answers from a map keyed by input text.
type scriptedProcessor struct {
	responses map[string]model.ProcessResponse
	seen      []string
}

func (p *scriptedProcessor) Process(_ context.Context, req model.ProcessRequest) (model.ProcessResponse, error) {
	p.seen = append(p.seen, req.Text)
	resp, ok := p.responses[req.Text]
	if !ok {
		return model.ProcessResponse{}, errors.New("boom")
	}
	return resp, nil
}

func TestBatchRunner_Run(t *testing.T) {
	proc := &scriptedProcessor{responses: map[string]model.ProcessResponse{
		"국수 5000원":   {CanHandle: true},
		"내일 3시 회의":   {CanHandle: true, ClarificationNeeded: true},
		"지난 내역 삭제해줘": {},
	}}
	progress := &bytes.Buffer{}
	runner := NewBatchRunner(proc, model.Snapshot{}, progress, true)

	var items []BatchItem
	stats, err := runner.Run(context.Background(), []string{"국수 5000원", "내일 3시 회의", "지난 내역 삭제해줘", "깨진 입력"}, func(item BatchItem) error {
		items = append(items, item)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, BatchStats{Total: 4, Handled: 1, Delegated: 1, Clarifications: 1, Failed: 1}, stats)
	require.Len(t, items, 4)
	assert.Equal(t, 1, items[0].Line)
	assert.Error(t, items[3].Err)
	assert.NotEmpty(t, progress.String())
	assert.Contains(t, stats.Summary(), "4건 처리")
}

func TestBatchRunner_StopsOnEmitError(t *testing.T) {
	proc := &scriptedProcessor{responses: map[string]model.ProcessResponse{"a": {}, "b": {}}}
	runner := NewBatchRunner(proc, model.Snapshot{}, &bytes.Buffer{}, false)

	_, err := runner.Run(context.Background(), []string{"a", "b"}, func(BatchItem) error {
		return errors.New("disk full")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Equal(t, []string{"a"}, proc.seen)
}

func TestBatchRunner_Canceled(t *testing.T) {
	proc := &scriptedProcessor{responses: map[string]model.ProcessResponse{}}
	runner := NewBatchRunner(proc, model.Snapshot{}, &bytes.Buffer{}, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := runner.Run(ctx, []string{"a"}, func(BatchItem) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Total)
	assert.Empty(t, proc.seen)
}
