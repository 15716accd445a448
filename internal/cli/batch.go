package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/Veraticus/lifeone/internal/model"
)

// Processor handles one utterance.
type Processor interface {
	Process(ctx context.Context, req model.ProcessRequest) (model.ProcessResponse, error)
}

// BatchItem is the outcome for one input line.
type BatchItem struct {
	Err      error
	Input    string
	Response model.ProcessResponse
	Line     int
}

// BatchStats summarizes a batch run.
type BatchStats struct {
	Total          int
	Handled        int
	Delegated      int
	Clarifications int
	Failed         int
}

// BatchRunner processes many utterances against one snapshot with a progress bar.
type BatchRunner struct {
	processor    Processor
	writer       io.Writer
	snapshot     model.Snapshot
	showProgress bool
}

// NewBatchRunner creates a runner. Progress is drawn on writer when showProgress is set.
func NewBatchRunner(processor Processor, snapshot model.Snapshot, writer io.Writer, showProgress bool) *BatchRunner {
	if writer == nil {
		writer = os.Stderr
	}
	return &BatchRunner{
		processor:    processor,
		snapshot:     snapshot,
		writer:       writer,
		showProgress: showProgress,
	}
}

// Run processes inputs in order and hands each outcome to emit. A failed line is
// counted and reported through emit without stopping the batch; an emit error or
// a canceled context stops it.
func (b *BatchRunner) Run(ctx context.Context, inputs []string, emit func(BatchItem) error) (BatchStats, error) {
	stats := BatchStats{}
	bar := b.newProgressBar(len(inputs))

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		snap := b.snapshot
		resp, err := b.processor.Process(ctx, model.ProcessRequest{Text: input, ContextData: &snap})
		stats.Total++
		switch {
		case err != nil:
			stats.Failed++
		case !resp.CanHandle:
			stats.Delegated++
		case resp.ClarificationNeeded:
			stats.Clarifications++
		default:
			stats.Handled++
		}

		if emitErr := emit(BatchItem{Line: i + 1, Input: input, Response: resp, Err: err}); emitErr != nil {
			return stats, fmt.Errorf("line %d: %w", i+1, emitErr)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return stats, nil
}

func (b *BatchRunner) newProgressBar(total int) *progressbar.ProgressBar {
	if !b.showProgress || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]처리 중...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(b.writer)
		}),
	)
}

// Summary formats stats for the end of a batch run.
func (s BatchStats) Summary() string {
	return FormatSuccess(fmt.Sprintf("%d건 처리: 로컬 %d, 원격 %d, 확인 필요 %d, 실패 %d",
		s.Total, s.Handled, s.Delegated, s.Clarifications, s.Failed))
}
