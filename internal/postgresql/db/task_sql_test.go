package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The listing contract is newest first with a stable tiebreak, both list
// queries must carry the same ordering clause.
func TestListQueriesOrderNewestFirst(t *testing.T) {
	t.Parallel()

	for _, query := range []string{selectTasks, selectTasksByStatus} {
		normalized := strings.Join(strings.Fields(query), " ")
		assert.Contains(t, normalized, "ORDER BY created_at DESC, id DESC")
	}
}
