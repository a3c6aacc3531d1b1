package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/taskmgr/mini-task-manager/internal"
	"github.com/taskmgr/mini-task-manager/internal/postgresql/db"
)

//go:generate sqlc generate

const otelName = "github.com/taskmgr/mini-task-manager/internal/postgresql"

// migration mirrors schema.sql, statement by statement, in an idempotent form.
// Executed once by the bootstrap before the server starts accepting requests.
var migration = []string{
	`DO $$ BEGIN
CREATE TYPE status AS ENUM ('pending', 'in-progress', 'completed');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$`,
	`CREATE TABLE IF NOT EXISTS tasks (
id          BIGSERIAL PRIMARY KEY,
title       VARCHAR(255) NOT NULL,
description VARCHAR(1000),
status      status NOT NULL DEFAULT 'pending',
created_at  TIMESTAMPTZ NOT NULL DEFAULT (now() AT TIME ZONE 'UTC')
)`,
	`CREATE INDEX IF NOT EXISTS tasks_created_at_idx ON tasks (created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS tasks_status_idx ON tasks (status)`,
}

//Migrate establishes the schema used by the Task repository.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migration {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.Exec")
		}
	}

	return nil
}

func convertStatus(s db.Status) (internal.Status, error) {
	switch s {
	case db.StatusPending:
		return internal.StatusPending, nil
	case db.StatusInProgress:
		return internal.StatusInProgress, nil
	case db.StatusCompleted:
		return internal.StatusCompleted, nil
	}

	return internal.Status(""), fmt.Errorf("unknown value: %s", s)
}

func newStatus(s internal.Status) db.Status {
	switch s {
	case internal.StatusPending:
		return db.StatusPending
	case internal.StatusInProgress:
		return db.StatusInProgress
	case internal.StatusCompleted:
		return db.StatusCompleted
	}

	return "invalid"
}

func newText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{
		String: *s,
		Valid:  true,
	}
}

func convertText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	s := t.String

	return &s
}

func convertTask(t db.Task) (internal.Task, error) {
	status, err := convertStatus(t.Status)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "convertStatus")
	}

	return internal.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: convertText(t.Description),
		Status:      status,
		CreatedAt:   t.CreatedAt.Time.UTC(),
	}, nil
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemPostgreSQL)

	return span
}
