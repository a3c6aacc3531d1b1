package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskmgr/mini-task-manager/internal"
	"github.com/taskmgr/mini-task-manager/internal/service"
)

type fakeTaskRepository struct {
	CreateFunc          func(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	DeleteFunc          func(ctx context.Context, id int64) error
	DeleteCompletedFunc func(ctx context.Context) ([]int64, error)
	FindFunc            func(ctx context.Context, id int64) (internal.Task, error)
	SelectFunc          func(ctx context.Context, status *internal.Status) ([]internal.Task, error)
	UpdateFunc          func(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error)

	createCalls int
	selectCalls int
	updateCalls int
}

func (f *fakeTaskRepository) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	f.createCalls++
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, params)
	}
	return internal.Task{}, nil
}

func (f *fakeTaskRepository) Delete(ctx context.Context, id int64) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeTaskRepository) DeleteCompleted(ctx context.Context) ([]int64, error) {
	if f.DeleteCompletedFunc != nil {
		return f.DeleteCompletedFunc(ctx)
	}
	return nil, nil
}

func (f *fakeTaskRepository) Find(ctx context.Context, id int64) (internal.Task, error) {
	if f.FindFunc != nil {
		return f.FindFunc(ctx, id)
	}
	return internal.Task{}, nil
}

func (f *fakeTaskRepository) Select(ctx context.Context, status *internal.Status) ([]internal.Task, error) {
	f.selectCalls++
	if f.SelectFunc != nil {
		return f.SelectFunc(ctx, status)
	}
	return nil, nil
}

func (f *fakeTaskRepository) Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error) {
	f.updateCalls++
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, params)
	}
	return internal.Task{}, nil
}

type fakeSearchRepository struct {
	SearchFunc func(ctx context.Context, args internal.SearchParams) (internal.SearchResults, error)

	searchCalls int
}

func (f *fakeSearchRepository) Search(ctx context.Context, args internal.SearchParams) (internal.SearchResults, error) {
	f.searchCalls++
	if f.SearchFunc != nil {
		return f.SearchFunc(ctx, args)
	}
	return internal.SearchResults{}, nil
}

type fakeMessageBroker struct {
	err error

	createdCalls int
	deletedCalls int
	updatedCalls int
	deletedIDs   []int64
}

func (f *fakeMessageBroker) Created(_ context.Context, _ internal.Task) error {
	f.createdCalls++
	return f.err
}

func (f *fakeMessageBroker) Deleted(_ context.Context, id int64) error {
	f.deletedCalls++
	f.deletedIDs = append(f.deletedIDs, id)
	return f.err
}

func (f *fakeMessageBroker) Updated(_ context.Context, _ internal.Task) error {
	f.updatedCalls++
	return f.err
}

func newService(repo *fakeTaskRepository, search *fakeSearchRepository, broker *fakeMessageBroker) *service.Task {
	return service.NewTask(zap.NewNop(), repo, search, broker)
}

func TestTask_Create(t *testing.T) {
	t.Parallel()

	t.Run("OK: persists and publishes", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{
			CreateFunc: func(_ context.Context, params internal.CreateParams) (internal.Task, error) {
				return internal.Task{ID: 1, Title: params.Title, Status: internal.StatusPending}, nil
			},
		}
		broker := &fakeMessageBroker{}

		task, err := newService(repo, &fakeSearchRepository{}, broker).Create(context.Background(),
			internal.CreateParams{Title: "buy groceries"})

		require.NoError(t, err)
		assert.Equal(t, internal.StatusPending, task.Status)
		assert.Equal(t, 1, broker.createdCalls)
	})

	t.Run("ERR: invalid params never reach the repository", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{}

		_, err := newService(repo, &fakeSearchRepository{}, &fakeMessageBroker{}).Create(context.Background(),
			internal.CreateParams{})

		require.Error(t, err)

		var ierr *internal.Error
		require.True(t, errors.As(err, &ierr))
		assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())
		assert.Equal(t, 0, repo.createCalls)
	})

	t.Run("OK: broker errors are ignored", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{
			CreateFunc: func(_ context.Context, params internal.CreateParams) (internal.Task, error) {
				return internal.Task{ID: 1, Title: params.Title}, nil
			},
		}
		broker := &fakeMessageBroker{err: errors.New("broker down")}

		_, err := newService(repo, &fakeSearchRepository{}, broker).Create(context.Background(),
			internal.CreateParams{Title: "buy groceries"})

		require.NoError(t, err)
	})
}

func TestTask_Update(t *testing.T) {
	t.Parallel()

	t.Run("OK: publishes updated event", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{
			UpdateFunc: func(_ context.Context, id int64, _ internal.UpdateParams) (internal.Task, error) {
				return internal.Task{ID: id, Title: "kept", Status: internal.StatusCompleted}, nil
			},
		}
		broker := &fakeMessageBroker{}

		status := internal.StatusCompleted
		task, err := newService(repo, &fakeSearchRepository{}, broker).Update(context.Background(), 7,
			internal.UpdateParams{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, int64(7), task.ID)
		assert.Equal(t, 1, broker.updatedCalls)
	})

	t.Run("ERR: empty title never reaches the repository", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{}
		title := ""

		_, err := newService(repo, &fakeSearchRepository{}, &fakeMessageBroker{}).Update(context.Background(), 7,
			internal.UpdateParams{Title: &title})

		require.Error(t, err)
		assert.Equal(t, 0, repo.updateCalls)
	})

	t.Run("ERR: not found propagates", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{
			UpdateFunc: func(_ context.Context, _ int64, _ internal.UpdateParams) (internal.Task, error) {
				return internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
			},
		}

		_, err := newService(repo, &fakeSearchRepository{}, &fakeMessageBroker{}).Update(context.Background(), 99,
			internal.UpdateParams{})

		var ierr *internal.Error
		require.True(t, errors.As(err, &ierr))
		assert.Equal(t, internal.ErrorCodeNotFound, ierr.Code())
	})
}

func TestTask_Delete(t *testing.T) {
	t.Parallel()

	t.Run("OK: publishes deleted event", func(t *testing.T) {
		t.Parallel()

		broker := &fakeMessageBroker{}

		err := newService(&fakeTaskRepository{}, &fakeSearchRepository{}, broker).Delete(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, []int64{3}, broker.deletedIDs)
	})

	t.Run("ERR: no event on failure", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{
			DeleteFunc: func(_ context.Context, _ int64) error {
				return internal.NewErrorf(internal.ErrorCodeNotFound, "task not found")
			},
		}
		broker := &fakeMessageBroker{}

		err := newService(repo, &fakeSearchRepository{}, broker).Delete(context.Background(), 99)

		require.Error(t, err)
		assert.Equal(t, 0, broker.deletedCalls)
	})
}

func TestTask_ClearCompleted(t *testing.T) {
	t.Parallel()

	t.Run("OK: counts removed records and publishes per id", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{
			DeleteCompletedFunc: func(_ context.Context) ([]int64, error) {
				return []int64{4, 2, 1}, nil
			},
		}
		broker := &fakeMessageBroker{}

		count, err := newService(repo, &fakeSearchRepository{}, broker).ClearCompleted(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.Equal(t, []int64{4, 2, 1}, broker.deletedIDs)
	})

	t.Run("OK: zero matches still succeeds", func(t *testing.T) {
		t.Parallel()

		broker := &fakeMessageBroker{}

		count, err := newService(&fakeTaskRepository{}, &fakeSearchRepository{}, broker).ClearCompleted(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
		assert.Equal(t, 0, broker.deletedCalls)
	})
}

func TestTask_List(t *testing.T) {
	t.Parallel()

	t.Run("OK: forwards the status filter", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{
			SelectFunc: func(_ context.Context, status *internal.Status) ([]internal.Task, error) {
				require.NotNil(t, status)
				assert.Equal(t, internal.StatusInProgress, *status)
				return []internal.Task{{ID: 1}}, nil
			},
		}

		status := internal.StatusInProgress
		tasks, err := newService(repo, &fakeSearchRepository{}, &fakeMessageBroker{}).List(context.Background(), &status)

		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("ERR: invalid filter never reaches the repository", func(t *testing.T) {
		t.Parallel()

		repo := &fakeTaskRepository{}
		status := internal.Status("done")

		_, err := newService(repo, &fakeSearchRepository{}, &fakeMessageBroker{}).List(context.Background(), &status)

		require.Error(t, err)
		assert.Equal(t, 0, repo.selectCalls)
	})
}

func TestTask_By(t *testing.T) {
	t.Parallel()

	t.Run("OK: returns search results", func(t *testing.T) {
		t.Parallel()

		search := &fakeSearchRepository{
			SearchFunc: func(_ context.Context, _ internal.SearchParams) (internal.SearchResults, error) {
				return internal.SearchResults{Tasks: []internal.Task{{ID: 1}}, Total: 1}, nil
			},
		}

		title := "groceries"
		res, err := newService(&fakeTaskRepository{}, search, &fakeMessageBroker{}).By(context.Background(),
			internal.SearchParams{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Total)
	})

	t.Run("ERR: invalid status never reaches the index", func(t *testing.T) {
		t.Parallel()

		search := &fakeSearchRepository{}
		status := internal.Status("done")

		_, err := newService(&fakeTaskRepository{}, search, &fakeMessageBroker{}).By(context.Background(),
			internal.SearchParams{Status: &status})

		require.Error(t, err)
		assert.Equal(t, 0, search.searchCalls)
	})
}
