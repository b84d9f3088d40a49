package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-app/stride/tests/testutil"
)

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	// NewTestStore already ran the migrations; running them again must be
	// a no-op and must not duplicate the seed rows.
	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.EnsureSchema(ctx))

	groups, err := s.Groups(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 1, "exactly one seeded group")

	tasks, err := s.TasksByGroup(ctx, groups[0].ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1, "exactly one seeded task")
	assert.Equal(t, "Getting started", tasks[0].Title)
	require.Len(t, tasks[0].References, 1, "seeded task carries one reference")
	assert.NotEmpty(t, tasks[0].References[0].URL)
}

func TestFreshStoreServesAllTables(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	// Touch every table once; a missing table or index would surface here.
	_, err := s.StandaloneTodos(ctx)
	require.NoError(t, err)
	_, err = s.GroupOverview(ctx)
	require.NoError(t, err)
	_, err = s.HabitsByGroup(ctx, 1)
	require.NoError(t, err)
}
