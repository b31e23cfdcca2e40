package model

import (
	"time"
)

type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	TeamID   string   `json:"teamId"`
	TeamName string   `json:"teamName,omitempty"`
	Position Position `json:"position"`
	Jersey   int      `json:"jerseyNumber,omitempty"`
	// Goals is maintained exclusively by the goal ledger. It always equals
	// the number of non-own-goal events crediting this player.
	Goals   int       `json:"goals"`
	Created time.Time `json:"-"`
	Updated time.Time `json:"-"`
}
