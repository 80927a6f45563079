package pipeline

import (
	"context"
	"time"

	"github.com/joseph-ayodele/scan-extractor/internal/entity"
	"github.com/joseph-ayodele/scan-extractor/internal/export"
)

// History writes are best effort: a broken history store never stops a batch.

func (p *Processor) startRun(ctx context.Context, at time.Time) *entity.ScanRun {
	if p.history == nil {
		return nil
	}
	run, err := p.history.CreateRun(ctx, p.cfg.DocType, p.cfg.Folder, at)
	if err != nil {
		p.logger.Warn("pipeline.history.start_failed", "error", err)
		return nil
	}
	return run
}

func (p *Processor) recordEntry(ctx context.Context, run *entity.ScanRun, position int, e export.Entry) {
	if p.history == nil || run == nil {
		return
	}
	err := p.history.AddEntry(ctx, entity.ScanEntry{
		RunID:        run.ID,
		Position:     position,
		Document:     e.Filename,
		OriginalName: e.OriginalName,
		Status:       string(e.Status),
		Renamed:      e.Renamed,
		SHA256:       e.SHA256,
		Result:       e.Result,
	})
	if err != nil {
		p.logger.Warn("pipeline.history.entry_failed", "run_id", run.ID, "position", position, "error", err)
	}
}

func (p *Processor) finishRun(ctx context.Context, run *entity.ScanRun, sum Summary) {
	if p.history == nil || run == nil {
		return
	}
	if err := p.history.FinishRun(ctx, run.ID, sum.Files, sum.Failures, time.Now()); err != nil {
		p.logger.Warn("pipeline.history.finish_failed", "run_id", run.ID, "error", err)
	}
}
