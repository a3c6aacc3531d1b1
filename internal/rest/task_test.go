package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmgr/mini-task-manager/internal"
	"github.com/taskmgr/mini-task-manager/internal/rest"
	"github.com/taskmgr/mini-task-manager/internal/rest/resttesting"
)

func newRouter(svc rest.TaskService) *chi.Mux {
	router := chi.NewRouter()
	rest.NewTaskHandler(svc).Register(router)

	return router
}

func doRequest(t *testing.T, router *chi.Mux, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		content, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(content)
	}

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(method, target, reader))

	return res
}

func newPtrStr(s string) *string {
	return &s
}

func TestTasks_List(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target string
		setup  func(*resttesting.FakeTaskService)
		code   int
		length int
	}{
		{
			"OK: 200 newest first",
			"/tasks",
			func(s *resttesting.FakeTaskService) {
				s.ListReturns([]internal.Task{
					{ID: 2, Title: "newer", Status: internal.StatusPending, CreatedAt: created.Add(time.Hour)},
					{ID: 1, Title: "older", Status: internal.StatusCompleted, CreatedAt: created},
				}, nil)
			},
			http.StatusOK,
			2,
		},
		{
			"OK: 200 empty",
			"/tasks",
			func(s *resttesting.FakeTaskService) {
				s.ListReturns([]internal.Task{}, nil)
			},
			http.StatusOK,
			0,
		},
		{
			"ERR: 422 invalid status filter",
			"/tasks?status=bogus",
			func(s *resttesting.FakeTaskService) {
				s.ListReturns(nil,
					internal.NewErrorf(internal.ErrorCodeInvalidArgument, "invalid status"))
			},
			http.StatusUnprocessableEntity,
			0,
		},
		{
			"ERR: 500 service failed",
			"/tasks",
			func(s *resttesting.FakeTaskService) {
				s.ListReturns(nil,
					internal.NewErrorf(internal.ErrorCodeUnknown, "select failed"))
			},
			http.StatusInternalServerError,
			0,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			res := doRequest(t, newRouter(svc), http.MethodGet, tt.target, nil)

			require.Equal(t, tt.code, res.Code)

			if tt.code != http.StatusOK {
				return
			}

			var tasks []rest.Task
			require.NoError(t, json.NewDecoder(res.Body).Decode(&tasks))
			assert.Len(t, tasks, tt.length)

			if tt.length == 2 {
				assert.Equal(t, int64(2), tasks[0].ID)
				assert.Equal(t, int64(1), tasks[1].ID)
			}
		})
	}
}

func TestTasks_ListStatusFilter(t *testing.T) {
	t.Parallel()

	svc := &resttesting.FakeTaskService{}
	svc.ListReturns([]internal.Task{}, nil)

	res := doRequest(t, newRouter(svc), http.MethodGet, "/tasks?status=completed", nil)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, 1, svc.ListCallCount())

	_, status := svc.ListArgsForCall(0)
	require.NotNil(t, status)
	assert.Equal(t, internal.StatusCompleted, *status)
}

func TestTasks_Create(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		body  interface{}
		setup func(*resttesting.FakeTaskService)
		code  int
	}{
		{
			"OK: 200 flat task",
			rest.CreateTasksRequest{Title: "write tests", Description: newPtrStr("with coverage")},
			func(s *resttesting.FakeTaskService) {
				s.CreateReturns(internal.Task{
					ID:          1,
					Title:       "write tests",
					Description: newPtrStr("with coverage"),
					Status:      internal.StatusPending,
					CreatedAt:   created,
				}, nil)
			},
			http.StatusOK,
		},
		{
			"ERR: 422 missing title",
			rest.CreateTasksRequest{},
			func(s *resttesting.FakeTaskService) {
				s.CreateReturns(internal.Task{},
					internal.NewErrorf(internal.ErrorCodeInvalidArgument, "title is required"))
			},
			http.StatusUnprocessableEntity,
		},
		{
			"ERR: 422 invalid body",
			"not json at all",
			func(s *resttesting.FakeTaskService) {},
			http.StatusUnprocessableEntity,
		},
		{
			"ERR: 500 persistence failed",
			rest.CreateTasksRequest{Title: "write tests"},
			func(s *resttesting.FakeTaskService) {
				s.CreateReturns(internal.Task{},
					internal.NewErrorf(internal.ErrorCodeUnknown, "insert failed"))
			},
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			var res *httptest.ResponseRecorder

			if s, ok := tt.body.(string); ok {
				rec := httptest.NewRecorder()
				newRouter(svc).ServeHTTP(rec,
					httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader([]byte(s))))
				res = rec
			} else {
				res = doRequest(t, newRouter(svc), http.MethodPost, "/tasks", tt.body)
			}

			require.Equal(t, tt.code, res.Code)

			if tt.code != http.StatusOK {
				return
			}

			var task rest.Task
			require.NoError(t, json.NewDecoder(res.Body).Decode(&task))
			assert.Equal(t, int64(1), task.ID)
			assert.Equal(t, "write tests", task.Title)
			assert.Equal(t, rest.Status("pending"), task.Status)
			assert.Equal(t, created, task.CreatedAt)
		})
	}
}

func TestTasks_Read(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		setup  func(*resttesting.FakeTaskService)
		code   int
	}{
		{
			"OK: 200",
			"/tasks/1",
			func(s *resttesting.FakeTaskService) {
				s.TaskReturns(internal.Task{ID: 1, Title: "found", Status: internal.StatusPending}, nil)
			},
			http.StatusOK,
		},
		{
			"ERR: 404 unknown id",
			"/tasks/99",
			func(s *resttesting.FakeTaskService) {
				s.TaskReturns(internal.Task{},
					internal.NewErrorf(internal.ErrorCodeNotFound, "task not found"))
			},
			http.StatusNotFound,
		},
		{
			"ERR: 404 non numeric id never routes",
			"/tasks/abc",
			func(s *resttesting.FakeTaskService) {},
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			res := doRequest(t, newRouter(svc), http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.code, res.Code)
		})
	}
}

func TestTasks_Update(t *testing.T) {
	t.Parallel()

	completed := rest.Status("completed")

	tests := []struct {
		name  string
		body  rest.UpdateTasksRequest
		setup func(*resttesting.FakeTaskService)
		code  int
	}{
		{
			"OK: 200 partial update",
			rest.UpdateTasksRequest{Status: &completed},
			func(s *resttesting.FakeTaskService) {
				s.UpdateReturns(internal.Task{
					ID:     1,
					Title:  "kept title",
					Status: internal.StatusCompleted,
				}, nil)
			},
			http.StatusOK,
		},
		{
			"ERR: 404 unknown id",
			rest.UpdateTasksRequest{Title: newPtrStr("new title")},
			func(s *resttesting.FakeTaskService) {
				s.UpdateReturns(internal.Task{},
					internal.NewErrorf(internal.ErrorCodeNotFound, "task not found"))
			},
			http.StatusNotFound,
		},
		{
			"ERR: 422 empty title",
			rest.UpdateTasksRequest{Title: newPtrStr("")},
			func(s *resttesting.FakeTaskService) {
				s.UpdateReturns(internal.Task{},
					internal.NewErrorf(internal.ErrorCodeInvalidArgument, "title cannot be blank"))
			},
			http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			res := doRequest(t, newRouter(svc), http.MethodPut, "/tasks/1", tt.body)

			require.Equal(t, tt.code, res.Code)

			if tt.code != http.StatusOK {
				return
			}

			var task rest.Task
			require.NoError(t, json.NewDecoder(res.Body).Decode(&task))
			assert.Equal(t, "kept title", task.Title)
			assert.Equal(t, completed, task.Status)
		})
	}
}

func TestTasks_UpdateForwardsStatus(t *testing.T) {
	t.Parallel()

	inProgress := rest.Status("in-progress")

	svc := &resttesting.FakeTaskService{}
	svc.UpdateReturns(internal.Task{ID: 7, Title: "task", Status: internal.StatusInProgress}, nil)

	res := doRequest(t, newRouter(svc), http.MethodPut, "/tasks/7",
		rest.UpdateTasksRequest{Status: &inProgress})

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, 1, svc.UpdateCallCount())

	_, id, params := svc.UpdateArgsForCall(0)
	assert.Equal(t, int64(7), id)
	assert.Nil(t, params.Title)
	assert.Nil(t, params.Description)
	require.NotNil(t, params.Status)
	assert.Equal(t, internal.StatusInProgress, *params.Status)
}

func TestTasks_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(*resttesting.FakeTaskService)
		code    int
		message string
	}{
		{
			"OK: 200 confirmation message",
			func(s *resttesting.FakeTaskService) {
				s.DeleteReturns(nil)
			},
			http.StatusOK,
			"Task deleted",
		},
		{
			"ERR: 404 unknown id",
			func(s *resttesting.FakeTaskService) {
				s.DeleteReturns(internal.NewErrorf(internal.ErrorCodeNotFound, "task not found"))
			},
			http.StatusNotFound,
			"",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			res := doRequest(t, newRouter(svc), http.MethodDelete, "/tasks/1", nil)

			require.Equal(t, tt.code, res.Code)

			if tt.message == "" {
				return
			}

			var msg rest.MessageResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&msg))
			assert.Equal(t, tt.message, msg.Message)
		})
	}
}

func TestTasks_ClearCompleted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*resttesting.FakeTaskService)
		code  int
	}{
		{
			"OK: 200 with matches",
			func(s *resttesting.FakeTaskService) {
				s.ClearCompletedReturns(3, nil)
			},
			http.StatusOK,
		},
		{
			"OK: 200 nothing matched",
			func(s *resttesting.FakeTaskService) {
				s.ClearCompletedReturns(0, nil)
			},
			http.StatusOK,
		},
		{
			"ERR: 500 delete failed",
			func(s *resttesting.FakeTaskService) {
				s.ClearCompletedReturns(0,
					internal.NewErrorf(internal.ErrorCodeUnknown, "delete failed"))
			},
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &resttesting.FakeTaskService{}
			tt.setup(svc)

			res := doRequest(t, newRouter(svc), http.MethodDelete, "/tasks/completed/clear", nil)

			require.Equal(t, tt.code, res.Code)

			if tt.code != http.StatusOK {
				return
			}

			var msg rest.MessageResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&msg))
			assert.Equal(t, "Completed tasks cleared", msg.Message)
		})
	}
}

func TestTasks_Search(t *testing.T) {
	t.Parallel()

	svc := &resttesting.FakeTaskService{}
	svc.ByReturns(internal.SearchResults{
		Tasks: []internal.Task{{ID: 1, Title: "groceries", Status: internal.StatusPending}},
		Total: 1,
	}, nil)

	res := doRequest(t, newRouter(svc), http.MethodPost, "/tasks/search",
		rest.SearchTasksRequest{Title: newPtrStr("groceries")})

	require.Equal(t, http.StatusOK, res.Code)

	var actual rest.SearchTasksResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&actual))
	assert.Equal(t, int64(1), actual.Total)
	require.Len(t, actual.Tasks, 1)
	assert.Equal(t, "groceries", actual.Tasks[0].Title)
}

func TestTasks_NullDescriptionRoundTrip(t *testing.T) {
	t.Parallel()

	svc := &resttesting.FakeTaskService{}
	svc.CreateReturns(internal.Task{ID: 1, Title: "no details", Status: internal.StatusPending}, nil)

	res := doRequest(t, newRouter(svc), http.MethodPost, "/tasks",
		rest.CreateTasksRequest{Title: "no details"})

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"description":null`)
}
