package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-app/stride/internal/model"
	"github.com/stride-app/stride/internal/store"
	"github.com/stride-app/stride/tests/testutil"
)

func TestCreateHabitRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	link := "https://example.com/plan"
	habit := model.Habit{
		Title:         "Read 20 pages",
		Interval:      2,
		ByWeekDay:     []int{1, 3, 5},
		DtStart:       day(2024, time.May, 1),
		DtEnd:         day(2024, time.August, 1),
		ReferenceLink: &link,
	}

	id, err := s.CreateHabit(ctx, habit)
	require.NoError(t, err)

	got, err := s.HabitByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, habit.Title, got.Title)
	assert.Equal(t, 2, got.Interval)
	assert.Equal(t, []int{1, 3, 5}, got.ByWeekDay)
	assert.Equal(t, habit.DtStart, got.DtStart)
	assert.Equal(t, habit.DtEnd, got.DtEnd)
	require.NotNil(t, got.ReferenceLink)
	assert.Equal(t, link, *got.ReferenceLink)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateHabitRejectsInvalidRecurrence(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	base := model.Habit{
		Title:   "Broken",
		DtStart: day(2024, time.May, 1),
		DtEnd:   day(2024, time.August, 1),
	}

	h := base
	h.Interval = 0
	_, err := s.CreateHabit(ctx, h)
	assert.Error(t, err, "interval below 1")

	h = base
	h.Interval = 1
	h.ByWeekDay = []int{3, 1}
	_, err = s.CreateHabit(ctx, h)
	assert.Error(t, err, "weekdays out of order")

	h = base
	h.Interval = 1
	h.DtEnd = day(2024, time.April, 1)
	_, err = s.CreateHabit(ctx, h)
	assert.Error(t, err, "end before start")
}

func TestHabitsByGroup(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	groupID, err := s.CreateGroup(ctx, model.Group{Title: "Health"})
	require.NoError(t, err)

	for _, title := range []string{"Sleep early", "Stretch"} {
		_, err := s.CreateHabit(ctx, model.Habit{
			Title:    title,
			GroupID:  &groupID,
			Interval: 1,
			DtStart:  day(2024, time.June, 1),
			DtEnd:    day(2024, time.December, 31),
		})
		require.NoError(t, err)
	}
	// A habit outside the group stays out of the result.
	_, err = s.CreateHabit(ctx, model.Habit{
		Title:    "Unrelated",
		Interval: 1,
		DtStart:  day(2024, time.June, 1),
		DtEnd:    day(2024, time.December, 31),
	})
	require.NoError(t, err)

	habits, err := s.HabitsByGroup(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.Equal(t, "Sleep early", habits[0].Title)
	assert.Equal(t, "Stretch", habits[1].Title)
}

func TestUpdateHabit(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	id, err := s.CreateHabit(ctx, model.Habit{
		Title:    "Write",
		Interval: 1,
		DtStart:  day(2024, time.June, 1),
		DtEnd:    day(2024, time.December, 31),
	})
	require.NoError(t, err)

	habit, err := s.HabitByID(ctx, id)
	require.NoError(t, err)
	habit.Title = "Write daily"
	habit.ByWeekDay = []int{1, 2, 3, 4, 5}
	require.NoError(t, s.UpdateHabit(ctx, *habit))

	got, err := s.HabitByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Write daily", got.Title)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.ByWeekDay)

	missing := *habit
	missing.ID = 9999
	assert.ErrorIs(t, s.UpdateHabit(ctx, missing), store.ErrNotFound)
}
