package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmgr/mini-task-manager/internal"
	"github.com/taskmgr/mini-task-manager/internal/postgresql/db"
)

//Task represents the repository used for interacting with Task records.
type Task struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

//NewTask instantiates the Task repository.
func NewTask(pool *pgxpool.Pool) *Task {
	return &Task{
		q:    db.New(pool),
		pool: pool,
	}
}

//Create inserts a new task record. Status and creation timestamp are assigned
//by the database.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	res, err := t.q.InsertTask(ctx, db.InsertTaskParams{
		Title:       params.Title,
		Description: newText(params.Description),
	})
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "q.InsertTask")
	}

	return convertTask(res)
}

//Select returns all tasks ordered by creation time, most recent first. When
//status is not nil only matching tasks are returned.
func (t *Task) Select(ctx context.Context, status *internal.Status) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Select").End()

	var (
		rows []db.Task
		err  error
	)

	if status == nil {
		rows, err = t.q.SelectTasks(ctx)
	} else {
		rows, err = t.q.SelectTasksByStatus(ctx, newStatus(*status))
	}

	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "q.SelectTasks")
	}

	res := make([]internal.Task, len(rows))

	for i, row := range rows {
		task, err := convertTask(row)
		if err != nil {
			return nil, err
		}

		res[i] = task
	}

	return res, nil
}

//Find returns the requested task by searching its id.
func (t *Task) Find(ctx context.Context, id int64) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	res, err := t.q.SelectTask(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
		}

		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "q.SelectTask")
	}

	return convertTask(res)
}

//Update overwrites the fields present in params on the matching record and
//returns the merged result. The read-merge-write runs in one transaction, a
//failure at any point leaves the record untouched.
func (t *Task) Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Update").End()

	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.BeginTx")
	}

	defer tx.Rollback(ctx) //nolint: errcheck

	q := t.q.WithTx(tx)

	row, err := q.SelectTaskForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
		}

		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "q.SelectTaskForUpdate")
	}

	res, err := q.UpdateTask(ctx, mergeUpdate(row, params))
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "q.UpdateTask")
	}

	if err := tx.Commit(ctx); err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "tx.Commit")
	}

	return convertTask(res)
}

//mergeUpdate applies the fields present in params on top of the stored row,
//fields left nil keep the stored value.
func mergeUpdate(row db.Task, params internal.UpdateParams) db.UpdateTaskParams {
	arg := db.UpdateTaskParams{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      row.Status,
	}

	if params.Title != nil {
		arg.Title = *params.Title
	}

	if params.Description != nil {
		arg.Description = newText(params.Description)
	}

	if params.Status != nil {
		arg.Status = newStatus(*params.Status)
	}

	return arg
}

//Delete removes the matching record, indicating whether it existed.
func (t *Task) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Task.Delete").End()

	rows, err := t.q.DeleteTask(ctx, id)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "q.DeleteTask")
	}

	if rows == 0 {
		return internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
	}

	return nil
}

//DeleteCompleted removes all records in completed status, returning the ids of
//the removed records. Zero matches is not an error.
func (t *Task) DeleteCompleted(ctx context.Context) ([]int64, error) {
	defer newOTELSpan(ctx, "Task.DeleteCompleted").End()

	ids, err := t.q.DeleteCompletedTasks(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "q.DeleteCompletedTasks")
	}

	return ids, nil
}
