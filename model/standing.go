package model

import (
	"slices"
)

// Standing is one row of the league table. The whole table is derived state:
// it is rebuilt from the finished-match set and never patched in place.
type Standing struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName,omitempty"`
	Played   int    `json:"played"`
	Won      int    `json:"won"`
	Draw     int    `json:"draw"`
	Lost     int    `json:"lost"`
	GoalsFor int    `json:"gf"`
	GoalsAgn int    `json:"ga"`
	GoalDiff int    `json:"gd"`
	Points   int    `json:"points"`
}

// SortStandings orders rows by points, then goal difference, then goals
// scored, all descending.
func SortStandings(rows []Standing) {
	slices.SortFunc(rows, func(a, b Standing) int {
		if a.Points != b.Points {
			return b.Points - a.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return b.GoalDiff - a.GoalDiff
		}
		return b.GoalsFor - a.GoalsFor
	})
}
