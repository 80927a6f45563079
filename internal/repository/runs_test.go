package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/scan-extractor/internal/common"
	"github.com/joseph-ayodele/scan-extractor/internal/entity"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunRepoCreateRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRunRepository(db, dialect.SQLite, quietLogger())
	started := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO .scan_runs.").
		WithArgs(sqlmock.AnyArg(), "EMO", "/scans", "2024-02-01T09:30:00Z").
		WillReturnResult(sqlmock.NewResult(1, 1))

	run, err := repo.CreateRun(context.Background(), "EMO", "/scans", started)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if run.ID == uuid.Nil || run.DocType != "EMO" || !run.StartedAt.Equal(started) {
		t.Fatalf("unexpected run: %+v", run)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestRunRepoAddEntryWrapsDatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRunRepository(db, dialect.SQLite, quietLogger())
	mock.ExpectExec("INSERT INTO .scan_entries.").
		WillReturnError(errors.New("disk I/O error"))

	err = repo.AddEntry(context.Background(), entity.ScanEntry{RunID: uuid.New(), Position: 1, Document: "a.pdf"})
	if !errors.Is(err, common.ErrDatabase) {
		t.Fatalf("err = %v, want ErrDatabase", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestRunRepoFinishRunPostgresPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRunRepository(db, dialect.Postgres, quietLogger())
	id := uuid.New()

	mock.ExpectExec(`UPDATE "scan_runs" SET .* WHERE "id" = \$4`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.FinishRun(context.Background(), id, 3, 1, time.Now()); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestRunRepoSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Config{DSN: ":memory:"}, quietLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close(quietLogger()) })

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	if err := db.HealthCheck(ctx, time.Second, quietLogger()); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}

	repo := NewRunRepository(db.SQL, db.Dialect, quietLogger())
	run, err := repo.CreateRun(ctx, "EMO", "/scans", time.Now())
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	entries := []entity.ScanEntry{
		{RunID: run.ID, Position: 2, Document: "b.pdf", OriginalName: "b.pdf", Status: "FAILED", Result: "Error al extraer texto: boom"},
		{RunID: run.ID, Position: 1, Document: "emo_12345678_01-02-2024.pdf", OriginalName: "a.pdf", Status: "OK", Renamed: true, SHA256: "abc", Result: "DNI PACIENTE: 12345678"},
	}
	for _, e := range entries {
		if err := repo.AddEntry(ctx, e); err != nil {
			t.Fatalf("AddEntry: %v", err)
		}
	}
	if err := repo.FinishRun(ctx, run.ID, 2, 1, time.Now()); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	got, err := repo.ListEntries(ctx, run.ID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	if got[0].Position != 1 || !got[0].Renamed || got[0].Document != "emo_12345678_01-02-2024.pdf" {
		t.Fatalf("first entry = %+v", got[0])
	}
	if got[1].Status != "FAILED" || got[1].Renamed {
		t.Fatalf("second entry = %+v", got[1])
	}
}

func TestIsPostgresDSN(t *testing.T) {
	cases := map[string]bool{
		"postgres://u:p@localhost:5432/db":   true,
		"postgresql://u:p@localhost:5432/db": true,
		"history.db":                         false,
		":memory:":                           false,
	}
	for dsn, want := range cases {
		if got := IsPostgresDSN(dsn); got != want {
			t.Errorf("IsPostgresDSN(%q) = %v", dsn, got)
		}
	}
}
