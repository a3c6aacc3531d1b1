package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/taskmgr/mini-task-manager/internal"
)

//TaskRepository defines the datastore handling persisted Task records.
type TaskRepository interface {
	Create(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	Delete(ctx context.Context, id int64) error
	DeleteCompleted(ctx context.Context) ([]int64, error)
	Find(ctx context.Context, id int64) (internal.Task, error)
	Select(ctx context.Context, status *internal.Status) ([]internal.Task, error)
	Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error)
}

//TaskSearchRepository defines the datastore handling the search index.
type TaskSearchRepository interface {
	Search(ctx context.Context, args internal.SearchParams) (internal.SearchResults, error)
}

//TaskMessageBrokerRepository defines the datastore receiving Task events.
type TaskMessageBrokerRepository interface {
	Created(ctx context.Context, task internal.Task) error
	Deleted(ctx context.Context, id int64) error
	Updated(ctx context.Context, task internal.Task) error
}

//Task defines the application service in charge of interacting with Tasks.
type Task struct {
	logger    *zap.Logger
	repo      TaskRepository
	search    TaskSearchRepository
	msgBroker TaskMessageBrokerRepository
}

//NewTask ...
func NewTask(logger *zap.Logger, repo TaskRepository, search TaskSearchRepository, msgBroker TaskMessageBrokerRepository) *Task {
	return &Task{
		logger:    logger,
		repo:      repo,
		search:    search,
		msgBroker: msgBroker,
	}
}

//By returns tasks matching the received values from the search index.
func (t *Task) By(ctx context.Context, args internal.SearchParams) (internal.SearchResults, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Task.By")
	defer span.End()

	if err := args.Validate(); err != nil {
		return internal.SearchResults{}, fmt.Errorf("args validate: %w", err)
	}

	res, err := t.search.Search(ctx, args)
	if err != nil {
		return internal.SearchResults{}, fmt.Errorf("search: %w", err)
	}

	return res, nil
}

//ClearCompleted removes every task in completed status, returning how many
//records were removed. Zero matches still counts as success.
func (t *Task) ClearCompleted(ctx context.Context) (int64, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Task.ClearCompleted")
	defer span.End()

	ids, err := t.repo.DeleteCompleted(ctx)
	if err != nil {
		return 0, fmt.Errorf("repo delete completed: %w", err)
	}

	for _, id := range ids {
		_ = t.msgBroker.Deleted(ctx, id) // XXX: Ignoring broker errors on purpose
	}

	t.logger.Info("cleared completed tasks", zap.Int("count", len(ids)))

	return int64(len(ids)), nil
}

//Create stores a new record. Input is validated before anything touches the
//datastore; new tasks always start out pending.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Task.Create")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Task{}, fmt.Errorf("params validate: %w", err)
	}

	task, err := t.repo.Create(ctx, params)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo create: %w", err)
	}

	_ = t.msgBroker.Created(ctx, task)

	return task, nil
}

//Delete removes an existing Task from the datastore.
func (t *Task) Delete(ctx context.Context, id int64) error {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Task.Delete")
	defer span.End()

	if err := t.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	_ = t.msgBroker.Deleted(ctx, id)

	return nil
}

//List returns the stored tasks, most recent first, optionally filtered by
//status. The filter is validated before reaching the datastore.
func (t *Task) List(ctx context.Context, status *internal.Status) ([]internal.Task, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Task.List")
	defer span.End()

	if status != nil {
		if err := status.Validate(); err != nil {
			return nil, fmt.Errorf("status validate: %w", err)
		}
	}

	res, err := t.repo.Select(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("repo select: %w", err)
	}

	return res, nil
}

//Task gets an existing Task from the datastore.
func (t *Task) Task(ctx context.Context, id int64) (internal.Task, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Task.Task")
	defer span.End()

	task, err := t.repo.Find(ctx, id)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo find: %w", err)
	}

	return task, nil
}

//Update merges the received fields into an existing Task. A patch with no
//fields set is a valid no-op that returns the current record.
func (t *Task) Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error) {
	ctx, span := trace.SpanFromContext(ctx).TracerProvider().Tracer("").Start(ctx, "Task.Update")
	defer span.End()

	if err := params.Validate(); err != nil {
		return internal.Task{}, fmt.Errorf("params validate: %w", err)
	}

	task, err := t.repo.Update(ctx, id, params)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo update: %w", err)
	}

	_ = t.msgBroker.Updated(ctx, task)

	return task, nil
}
