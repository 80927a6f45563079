package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/scan-extractor/internal/common"
	"github.com/joseph-ayodele/scan-extractor/internal/entity"
)

const (
	tableRuns    = "scan_runs"
	tableEntries = "scan_entries"
)

type RunRepository interface {
	CreateRun(ctx context.Context, docType, folder string, startedAt time.Time) (*entity.ScanRun, error)
	AddEntry(ctx context.Context, e entity.ScanEntry) error
	FinishRun(ctx context.Context, runID uuid.UUID, files, failures int, finishedAt time.Time) error
	ListEntries(ctx context.Context, runID uuid.UUID) ([]entity.ScanEntry, error)
}

type runRepo struct {
	db      *sql.DB
	dialect string
	log     *slog.Logger
}

func NewRunRepository(db *sql.DB, dialect string, log *slog.Logger) RunRepository {
	if log == nil {
		log = slog.Default()
	}
	return &runRepo{db: db, dialect: dialect, log: log}
}

func (r *runRepo) CreateRun(ctx context.Context, docType, folder string, startedAt time.Time) (*entity.ScanRun, error) {
	run := &entity.ScanRun{
		ID:        uuid.New(),
		DocType:   docType,
		Folder:    folder,
		StartedAt: startedAt.UTC(),
	}
	q, args := entsql.Dialect(r.dialect).
		Insert(tableRuns).
		Columns("id", "doc_type", "folder", "started_at").
		Values(run.ID.String(), run.DocType, run.Folder, formatTime(run.StartedAt)).
		Query()
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("scan_run create failed", "folder", folder, "err", err)
		return nil, fmt.Errorf("%w: create run: %v", common.ErrDatabase, err)
	}
	r.log.Info("scan_run started", "run_id", run.ID, "doc_type", docType, "folder", folder)
	return run, nil
}

func (r *runRepo) AddEntry(ctx context.Context, e entity.ScanEntry) error {
	q, args := entsql.Dialect(r.dialect).
		Insert(tableEntries).
		Columns("run_id", "position", "document", "original_name", "status", "renamed", "sha256", "result").
		Values(e.RunID.String(), e.Position, e.Document, e.OriginalName, e.Status, e.Renamed, e.SHA256, e.Result).
		Query()
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("scan_entry insert failed", "run_id", e.RunID, "position", e.Position, "err", err)
		return fmt.Errorf("%w: add entry: %v", common.ErrDatabase, err)
	}
	return nil
}

func (r *runRepo) FinishRun(ctx context.Context, runID uuid.UUID, files, failures int, finishedAt time.Time) error {
	q, args := entsql.Dialect(r.dialect).
		Update(tableRuns).
		Set("finished_at", formatTime(finishedAt.UTC())).
		Set("files", files).
		Set("failures", failures).
		Where(entsql.EQ("id", runID.String())).
		Query()
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("scan_run finish failed", "run_id", runID, "err", err)
		return fmt.Errorf("%w: finish run: %v", common.ErrDatabase, err)
	}
	r.log.Info("scan_run finished", "run_id", runID, "files", files, "failures", failures)
	return nil
}

func (r *runRepo) ListEntries(ctx context.Context, runID uuid.UUID) ([]entity.ScanEntry, error) {
	q, args := entsql.Dialect(r.dialect).
		Select("position", "document", "original_name", "status", "renamed", "sha256", "result").
		From(entsql.Dialect(r.dialect).Table(tableEntries)).
		Where(entsql.EQ("run_id", runID.String())).
		OrderBy("position").
		Query()
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", common.ErrDatabase, err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var out []entity.ScanEntry
	for rows.Next() {
		e := entity.ScanEntry{RunID: runID}
		if err := rows.Scan(&e.Position, &e.Document, &e.OriginalName, &e.Status, &e.Renamed, &e.SHA256, &e.Result); err != nil {
			return nil, fmt.Errorf("%w: scan entry: %v", common.ErrDatabase, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", common.ErrDatabase, err)
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
