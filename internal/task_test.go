package internal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmgr/mini-task-manager/internal"
)

func newPtrStr(s string) *string {
	return &s
}

func newPtrStatus(s internal.Status) *internal.Status {
	return &s
}

func TestStatus_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  internal.Status
		withErr bool
	}{
		{"OK: pending", internal.StatusPending, false},
		{"OK: in-progress", internal.StatusInProgress, false},
		{"OK: completed", internal.StatusCompleted, false},
		{"ERR: empty", internal.Status(""), true},
		{"ERR: unknown value", internal.Status("done"), true},
		{"ERR: no normalization", internal.Status("Pending"), true},
		{"ERR: no trimming", internal.Status(" pending"), true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.status.Validate()

			if !tt.withErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)

			var ierr *internal.Error
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())
		})
	}
}

func TestCreateParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  internal.CreateParams
		withErr bool
	}{
		{
			"OK: title only",
			internal.CreateParams{Title: "buy groceries"},
			false,
		},
		{
			"OK: title and description",
			internal.CreateParams{Title: "buy groceries", Description: newPtrStr("milk and eggs")},
			false,
		},
		{
			"ERR: missing title",
			internal.CreateParams{},
			true,
		},
		{
			"ERR: empty title with description",
			internal.CreateParams{Description: newPtrStr("milk and eggs")},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()

			if !tt.withErr {
				require.NoError(t, err)
				return
			}

			var ierr *internal.Error
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())
		})
	}
}

func TestUpdateParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  internal.UpdateParams
		withErr bool
	}{
		{
			"OK: empty patch keeps stored values",
			internal.UpdateParams{},
			false,
		},
		{
			"OK: title only",
			internal.UpdateParams{Title: newPtrStr("new title")},
			false,
		},
		{
			"OK: status only",
			internal.UpdateParams{Status: newPtrStatus(internal.StatusCompleted)},
			false,
		},
		{
			"ERR: empty title",
			internal.UpdateParams{Title: newPtrStr("")},
			true,
		},
		{
			"ERR: unknown status",
			internal.UpdateParams{Status: newPtrStatus("done")},
			true,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()

			if !tt.withErr {
				require.NoError(t, err)
				return
			}

			var ierr *internal.Error
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, internal.ErrorCodeInvalidArgument, ierr.Code())
		})
	}
}

func TestSearchParams(t *testing.T) {
	t.Parallel()

	t.Run("IsZero", func(t *testing.T) {
		t.Parallel()

		assert.True(t, internal.SearchParams{}.IsZero())
		assert.False(t, internal.SearchParams{Title: newPtrStr("groceries")}.IsZero())
		assert.False(t, internal.SearchParams{Status: newPtrStatus(internal.StatusPending)}.IsZero())
	})

	t.Run("Validate", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, internal.SearchParams{}.Validate())
		require.NoError(t, internal.SearchParams{Status: newPtrStatus(internal.StatusCompleted)}.Validate())
		require.Error(t, internal.SearchParams{Status: newPtrStatus("done")}.Validate())
	})
}
