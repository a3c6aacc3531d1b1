package postgresql

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmgr/mini-task-manager/internal"
	"github.com/taskmgr/mini-task-manager/internal/postgresql/db"
)

func TestConvertStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg      db.Status
		expected internal.Status
	}{
		{db.StatusPending, internal.StatusPending},
		{db.StatusInProgress, internal.StatusInProgress},
		{db.StatusCompleted, internal.StatusCompleted},
	}

	for _, tt := range tests {
		got, err := convertStatus(tt.arg)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)

		// values must round trip
		assert.Equal(t, tt.arg, newStatus(got))
	}

	_, err := convertStatus(db.Status("done"))
	require.Error(t, err)
}

func TestText(t *testing.T) {
	t.Parallel()

	assert.Nil(t, convertText(pgtype.Text{}))
	assert.False(t, newText(nil).Valid)

	val := "milk and eggs"
	got := convertText(newText(&val))
	require.NotNil(t, got)
	assert.Equal(t, val, *got)

	// empty string is a value, not NULL
	empty := ""
	require.NotNil(t, convertText(newText(&empty)))
}

func TestMergeUpdate(t *testing.T) {
	t.Parallel()

	stored := db.Task{
		ID:          7,
		Title:       "stored title",
		Description: pgtype.Text{String: "stored description", Valid: true},
		Status:      db.StatusPending,
	}

	newPtrStr := func(s string) *string { return &s }
	newPtrStatus := func(s internal.Status) *internal.Status { return &s }

	tests := []struct {
		name     string
		params   internal.UpdateParams
		expected db.UpdateTaskParams
	}{
		{
			"status only keeps title and description",
			internal.UpdateParams{Status: newPtrStatus(internal.StatusCompleted)},
			db.UpdateTaskParams{
				ID:          7,
				Title:       "stored title",
				Description: pgtype.Text{String: "stored description", Valid: true},
				Status:      db.StatusCompleted,
			},
		},
		{
			"title only keeps description and status",
			internal.UpdateParams{Title: newPtrStr("new title")},
			db.UpdateTaskParams{
				ID:          7,
				Title:       "new title",
				Description: pgtype.Text{String: "stored description", Valid: true},
				Status:      db.StatusPending,
			},
		},
		{
			"description only keeps title and status",
			internal.UpdateParams{Description: newPtrStr("new description")},
			db.UpdateTaskParams{
				ID:          7,
				Title:       "stored title",
				Description: pgtype.Text{String: "new description", Valid: true},
				Status:      db.StatusPending,
			},
		},
		{
			"empty patch keeps every field",
			internal.UpdateParams{},
			db.UpdateTaskParams{
				ID:          7,
				Title:       "stored title",
				Description: pgtype.Text{String: "stored description", Valid: true},
				Status:      db.StatusPending,
			},
		},
		{
			"full patch overwrites every field",
			internal.UpdateParams{
				Title:       newPtrStr("new title"),
				Description: newPtrStr("new description"),
				Status:      newPtrStatus(internal.StatusInProgress),
			},
			db.UpdateTaskParams{
				ID:          7,
				Title:       "new title",
				Description: pgtype.Text{String: "new description", Valid: true},
				Status:      db.StatusInProgress,
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, mergeUpdate(stored, tt.params))
		})
	}
}

func TestConvertTask(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*60*60)
	created := time.Date(2024, 4, 20, 17, 0, 0, 0, loc)

	task, err := convertTask(db.Task{
		ID:        1,
		Title:     "buy groceries",
		Status:    db.StatusPending,
		CreatedAt: pgtype.Timestamptz{Time: created, Valid: true},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.Nil(t, task.Description)

	// timestamps always surface in UTC
	assert.Equal(t, time.UTC, task.CreatedAt.Location())
	assert.True(t, task.CreatedAt.Equal(created))

	_, err = convertTask(db.Task{Status: db.Status("done")})
	require.Error(t, err)
}
