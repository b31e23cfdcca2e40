package model

import (
	"reflect"
	"testing"
)

func TestSortStandings(t *testing.T) {
	rows := []Standing{
		{TeamID: "lazio", Points: 4, GoalDiff: 0, GoalsFor: 3},
		{TeamID: "arsenal", Points: 7, GoalDiff: 2, GoalsFor: 5},
		{TeamID: "inter", Points: 7, GoalDiff: 2, GoalsFor: 8},
		{TeamID: "monaco", Points: 7, GoalDiff: 5, GoalsFor: 6},
		{TeamID: "liverpool", Points: 9, GoalDiff: 1, GoalsFor: 4},
	}

	SortStandings(rows)

	// points first, then goal difference, then goals for
	want := []string{"liverpool", "monaco", "inter", "arsenal", "lazio"}
	got := make([]string, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.TeamID)
	}

	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected order %v, got %v", want, got)
	}
}
