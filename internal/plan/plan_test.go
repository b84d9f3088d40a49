package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlan = `{
	"group": {
		"title": "Marathon",
		"description": "16-week build",
		"bgColor": "#FEE2E2",
		"textColor": "#111827"
	},
	"habits": [
		{
			"title": "Long run",
			"interval": 1,
			"byWeekDay": [6],
			"dtStart": "2024-06-01",
			"dtEnd": "2024-06-30",
			"referenceLink": null
		}
	],
	"tasks": [
		{"title": "Buy shoes", "description": "", "priority": 2, "dueAt": "2024-06-02", "habitIndex": null},
		{"title": "Register", "description": "", "priority": 3, "dueAt": null, "habitIndex": 0}
	]
}`

func TestParseValidPlan(t *testing.T) {
	p, err := Parse([]byte(validPlan))
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Marathon", p.Group.Title)
	require.Len(t, p.Habits, 1)
	assert.Equal(t, []int{6}, p.Habits[0].ByWeekDay)

	require.Len(t, p.Tasks, 2)
	assert.Equal(t, -1, p.Tasks[0].HabitIndex)
	require.NotNil(t, p.Tasks[0].Task.DueAt)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), *p.Tasks[0].Task.DueAt)
	assert.Equal(t, 0, p.Tasks[1].HabitIndex)
	assert.Nil(t, p.Tasks[1].Task.DueAt)
}

func TestParseAssignsDistinctIDs(t *testing.T) {
	a, err := Parse([]byte(validPlan))
	require.NoError(t, err)
	b, err := Parse([]byte(validPlan))
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseRejectsMalformedShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown field",
			doc:  `{"group": {"title": "x", "surprise": true}, "habits": [], "tasks": []}`,
		},
		{
			name: "missing group title",
			doc:  `{"group": {"title": ""}, "habits": [], "tasks": []}`,
		},
		{
			name: "priority out of range",
			doc: `{"group": {"title": "x"}, "habits": [],
				"tasks": [{"title": "t", "priority": 9}]}`,
		},
		{
			name: "habit index out of range",
			doc: `{"group": {"title": "x"}, "habits": [],
				"tasks": [{"title": "t", "priority": 3, "habitIndex": 0}]}`,
		},
		{
			name: "unparseable habit date",
			doc: `{"group": {"title": "x"},
				"habits": [{"title": "h", "interval": 1, "byWeekDay": [],
					"dtStart": "June 1st", "dtEnd": "2024-06-30"}],
				"tasks": []}`,
		},
		{
			name: "weekday out of range",
			doc: `{"group": {"title": "x"},
				"habits": [{"title": "h", "interval": 1, "byWeekDay": [7],
					"dtStart": "2024-06-01", "dtEnd": "2024-06-30"}],
				"tasks": []}`,
		},
		{
			name: "not json",
			doc:  `roadmap: marathon`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestMaterializeExpandsHabits(t *testing.T) {
	p, err := Parse([]byte(validPlan))
	require.NoError(t, err)
	explicit := len(p.Tasks)

	require.NoError(t, p.Materialize())

	// June 2024 has five Saturdays in the habit window.
	occurrences := p.Tasks[explicit:]
	require.Len(t, occurrences, 5)
	for _, pt := range occurrences {
		assert.Equal(t, 0, pt.HabitIndex)
		assert.Equal(t, "Long run", pt.Task.Title)
		require.NotNil(t, pt.Task.DueAt)
		assert.Equal(t, time.Saturday, pt.Task.DueAt.Weekday())
	}
}
