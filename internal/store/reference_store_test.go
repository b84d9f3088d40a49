package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-app/stride/internal/model"
	"github.com/stride-app/stride/internal/store"
	"github.com/stride-app/stride/tests/testutil"
)

func TestReferences(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	taskID := mustCreateTask(t, s, model.Task{Title: "Research"})

	_, err := s.AddReference(ctx, model.Reference{TaskID: taskID, Name: "", URL: "https://example.com"})
	require.Error(t, err, "blank name rejected")

	firstID, err := s.AddReference(ctx, model.Reference{TaskID: taskID, Name: "paper", URL: "https://example.com/a"})
	require.NoError(t, err)
	secondID, err := s.AddReference(ctx, model.Reference{TaskID: taskID, Name: "talk", URL: "https://example.com/b"})
	require.NoError(t, err)

	refs, err := s.ReferencesForTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, firstID, refs[0].ID, "creation order")
	assert.Equal(t, secondID, refs[1].ID)

	// TaskByID attaches the same rows.
	task, err := s.TaskByID(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, task.References, 2)

	require.NoError(t, s.RemoveReference(ctx, firstID))
	assert.ErrorIs(t, s.RemoveReference(ctx, firstID), store.ErrNotFound)

	refs, err = s.ReferencesForTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "talk", refs[0].Name)
}

func TestAddReferenceRejectsMissingTask(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	_, err := s.AddReference(ctx, model.Reference{TaskID: 9999, Name: "x", URL: "https://example.com"})
	require.Error(t, err, "foreign key rejects a non-existent task")
}
