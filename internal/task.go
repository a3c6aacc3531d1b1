package internal

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

//Status indicates the lifecycle state of a Task.
type Status string

const (
	//StatusPending is the state assigned to every new Task.
	StatusPending Status = "pending"

	//StatusInProgress indicates a Task being worked on.
	StatusInProgress Status = "in-progress"

	//StatusCompleted indicates a finished Task.
	StatusCompleted Status = "completed"
)

//Validate indicates whether the receiver is one of the known status values.
//Matching is exact, there is no normalization.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return nil
	}

	return NewErrorf(ErrorCodeInvalidArgument, "unknown status %q", s)
}

//Task is an activity tracked by the system.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      Status
	CreatedAt   time.Time
}

//Validate ...
func (t Task) Validate() error {
	if err := validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required),
	); err != nil {
		return WrapErrorf(err, ErrorCodeInvalidArgument, "validation.ValidateStruct")
	}

	return t.Status.Validate()
}

//CreateParams defines the fields used for creating tasks. Status is not part
//of it on purpose: new tasks always start out pending, regardless of what a
//client sends.
type CreateParams struct {
	Title       string
	Description *string
}

//Validate ...
func (c CreateParams) Validate() error {
	task := Task{
		Title:       c.Title,
		Description: c.Description,
		Status:      StatusPending,
	}

	return task.Validate()
}

//UpdateParams defines the patch applied to an existing task. A nil field keeps
//the stored value; only non-nil fields are written.
type UpdateParams struct {
	Title       *string
	Description *string
	Status      *Status
}

//Validate ...
func (u UpdateParams) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return NewErrorf(ErrorCodeInvalidArgument, "title is required")
	}

	if u.Status != nil {
		return u.Status.Validate()
	}

	return nil
}

//SearchParams defines the arguments used for searching tasks in the search
//index.
type SearchParams struct {
	Title  *string
	Status *Status
}

//IsZero determines whether the receiver has any value set.
func (s SearchParams) IsZero() bool {
	return s.Title == nil && s.Status == nil
}

//Validate ...
func (s SearchParams) Validate() error {
	if s.Status != nil {
		return s.Status.Validate()
	}

	return nil
}

//SearchResults defines the collection of tasks returned from the search index.
type SearchResults struct {
	Tasks []Task
	Total int64
}
