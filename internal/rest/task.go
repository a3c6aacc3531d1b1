package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskmgr/mini-task-manager/internal"
)

//go:generate counterfeiter -o resttesting/task_service.gen.go . TaskService

//TaskService represents the application service used by the handlers.
type TaskService interface {
	By(ctx context.Context, args internal.SearchParams) (internal.SearchResults, error)
	ClearCompleted(ctx context.Context) (int64, error)
	Create(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, status *internal.Status) ([]internal.Task, error)
	Task(ctx context.Context, id int64) (internal.Task, error)
	Update(ctx context.Context, id int64, params internal.UpdateParams) (internal.Task, error)
}

//TaskHandler ...
type TaskHandler struct {
	svc TaskService
}

//NewTaskHandler ...
func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
	}
}

//Register connects the handlers to the router.
func (t *TaskHandler) Register(r *chi.Mux) {
	r.Get("/tasks", t.list)
	r.Post("/tasks", t.create)
	r.Post("/tasks/search", t.search)
	r.Delete("/tasks/completed/clear", t.clearCompleted)
	r.Get("/tasks/{id:[0-9]+}", t.read)
	r.Put("/tasks/{id:[0-9]+}", t.update)
	r.Delete("/tasks/{id:[0-9]+}", t.delete)
}

//Status is the wire representation of a task status.
type Status string

//Convert returns the domain type defining the internal representation,
//validation happens on the converted value.
func (s Status) Convert() internal.Status {
	return internal.Status(s)
}

//NewStatus converts the domain type to the wire representation.
func NewStatus(s internal.Status) Status {
	return Status(s)
}

//Task is an activity tracked by the system.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTask(task internal.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      NewStatus(task.Status),
		CreatedAt:   task.CreatedAt.UTC(),
	}
}

//CreateTasksRequest defines the request used for creating tasks. There is no
//status field on purpose, new tasks always start out pending.
type CreateTasksRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

//UpdateTasksRequest defines the request used for updating tasks, absent
//fields keep their stored value.
type UpdateTasksRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *Status `json:"status"`
}

//SearchTasksRequest defines the request used for searching tasks.
type SearchTasksRequest struct {
	Title  *string `json:"title"`
	Status *Status `json:"status"`
}

//SearchTasksResponse defines the response returned back after searching tasks.
type SearchTasksResponse struct {
	Tasks []Task `json:"tasks"`
	Total int64  `json:"total"`
}

//MessageResponse defines the confirmation returned by destructive operations.
type MessageResponse struct {
	Message string `json:"message"`
}

func (t *TaskHandler) list(w http.ResponseWriter, r *http.Request) {
	var status *internal.Status

	if arg := r.URL.Query().Get("status"); arg != "" {
		s := Status(arg).Convert()
		status = &s
	}

	tasks, err := t.svc.List(r.Context(), status)
	if err != nil {
		renderErrorResponse(r.Context(), w, "list failed", err)
		return
	}

	res := make([]Task, len(tasks))
	for i, task := range tasks {
		res[i] = newTask(task)
	}

	renderResponse(w, res, http.StatusOK)
}

func (t *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	task, err := t.svc.Create(r.Context(), internal.CreateParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		renderErrorResponse(r.Context(), w, "create failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusOK)
}

func (t *TaskHandler) read(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	task, err := t.svc.Task(r.Context(), id)
	if err != nil {
		renderErrorResponse(r.Context(), w, "find failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusOK)
}

func (t *TaskHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	var req UpdateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	params := internal.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Status != nil {
		status := req.Status.Convert()
		params.Status = &status
	}

	task, err := t.svc.Update(r.Context(), id, params)
	if err != nil {
		renderErrorResponse(r.Context(), w, "update failed", err)
		return
	}

	renderResponse(w, newTask(task), http.StatusOK)
}

func (t *TaskHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderErrorResponse(r.Context(), w, "invalid id", err)
		return
	}

	if err := t.svc.Delete(r.Context(), id); err != nil {
		renderErrorResponse(r.Context(), w, "delete failed", err)
		return
	}

	renderResponse(w, MessageResponse{Message: "Task deleted"}, http.StatusOK)
}

func (t *TaskHandler) clearCompleted(w http.ResponseWriter, r *http.Request) {
	if _, err := t.svc.ClearCompleted(r.Context()); err != nil {
		renderErrorResponse(r.Context(), w, "clear failed", err)
		return
	}

	// Success is reported even when nothing matched.
	renderResponse(w, MessageResponse{Message: "Completed tasks cleared"}, http.StatusOK)
}

func (t *TaskHandler) search(w http.ResponseWriter, r *http.Request) {
	var req SearchTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderErrorResponse(r.Context(), w, "invalid request",
			internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder"))
		return
	}
	defer r.Body.Close()

	args := internal.SearchParams{
		Title: req.Title,
	}

	if req.Status != nil {
		status := req.Status.Convert()
		args.Status = &status
	}

	res, err := t.svc.By(r.Context(), args)
	if err != nil {
		renderErrorResponse(r.Context(), w, "search failed", err)
		return
	}

	tasks := make([]Task, len(res.Tasks))
	for i, task := range res.Tasks {
		tasks[i] = newTask(task)
	}

	renderResponse(w, SearchTasksResponse{
		Tasks: tasks,
		Total: res.Total,
	}, http.StatusOK)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "strconv.ParseInt")
	}

	return id, nil
}
