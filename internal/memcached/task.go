package memcached

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"go.uber.org/zap"

	"github.com/taskmgr/mini-task-manager/internal"
)

//Task is a cache-aside decorator over the persistent Task store.
type Task struct {
	client     *memcache.Client
	orig       TaskStore
	expiration time.Duration
	logger     *zap.Logger
}

//TaskStore defines the datastore being decorated.
type TaskStore interface {
	Create(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	Delete(ctx context.Context, id int64) error
	DeleteCompleted(ctx context.Context) ([]int64, error)
	Find(ctx context.Context, id int64) (internal.Task, error)
	Select(ctx context.Context, status *internal.Status) ([]internal.Task, error)
	Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error)
}

//NewTask instantiates the Task decorator.
func NewTask(client *memcache.Client, orig TaskStore, logger *zap.Logger) *Task {
	return &Task{
		client:     client,
		orig:       orig,
		expiration: 15 * time.Minute,
		logger:     logger,
	}
}

//Create delegates to the decorated store and primes the cache.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	task, err := t.orig.Create(ctx, params)
	if err != nil {
		return internal.Task{}, err
	}

	setTask(ctx, t.client, taskKey(task.ID), &task, t.expiration)

	return task, nil
}

//Delete delegates to the decorated store and invalidates the cached value.
func (t *Task) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Task.Delete").End()

	if err := t.orig.Delete(ctx, id); err != nil {
		return err
	}

	deleteTask(ctx, t.client, taskKey(id))

	return nil
}

//DeleteCompleted delegates to the decorated store and invalidates every
//removed record.
func (t *Task) DeleteCompleted(ctx context.Context) ([]int64, error) {
	defer newOTELSpan(ctx, "Task.DeleteCompleted").End()

	ids, err := t.orig.DeleteCompleted(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		deleteTask(ctx, t.client, taskKey(id))
	}

	return ids, nil
}

//Find returns the cached value when present, falling back to the decorated
//store and caching the result.
func (t *Task) Find(ctx context.Context, id int64) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	var res internal.Task

	if err := getTask(ctx, t.client, taskKey(id), &res); err == nil {
		return res, nil
	}

	t.logger.Debug("Find: not cached yet", zap.Int64("id", id))

	res, err := t.orig.Find(ctx, id)
	if err != nil {
		return internal.Task{}, err
	}

	setTask(ctx, t.client, taskKey(res.ID), &res, t.expiration)

	return res, nil
}

//Select always hits the decorated store, listings are not cached.
func (t *Task) Select(ctx context.Context, status *internal.Status) ([]internal.Task, error) {
	return t.orig.Select(ctx, status)
}

//Update delegates to the decorated store and refreshes the cached value with
//the merged record.
func (t *Task) Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Update").End()

	task, err := t.orig.Update(ctx, id, params)
	if err != nil {
		return internal.Task{}, err
	}

	setTask(ctx, t.client, taskKey(task.ID), &task, t.expiration)

	return task, nil
}
