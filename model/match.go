package model

import (
	"strings"
	"time"
)

type MatchStatus string

const (
	StatusUnknown  MatchStatus = ""
	StatusUpcoming MatchStatus = "upcoming"
	StatusLive     MatchStatus = "live"
	StatusFinished MatchStatus = "finished"
)

func ParseMatchStatus(status string) MatchStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "upcoming":
		return StatusUpcoming
	case "live":
		return StatusLive
	case "finished":
		return StatusFinished
	default:
		return StatusUnknown
	}
}

// GoalEvent is embedded in a match and has no identity of its own; it is
// addressed by its position in the match's goal list. PlayerName and TeamName
// are filled in when reading a match and are never stored.
type GoalEvent struct {
	PlayerID   string `json:"playerId"`
	TeamID     string `json:"teamId"`
	Minute     int    `json:"minute"`
	OwnGoal    bool   `json:"isOwnGoal"`
	PlayerName string `json:"playerName,omitempty"`
	TeamName   string `json:"teamName,omitempty"`
}

// Match holds an admin-entered score. ScoreA and ScoreB are independent of
// the goal list: adding or removing goal events never changes them.
type Match struct {
	ID        string      `json:"id"`
	TeamAID   string      `json:"teamA"`
	TeamBID   string      `json:"teamB"`
	TeamAName string      `json:"teamAName,omitempty"`
	TeamBName string      `json:"teamBName,omitempty"`
	ScoreA    int         `json:"scoreA"`
	ScoreB    int         `json:"scoreB"`
	Status    MatchStatus `json:"status"`
	MatchTime time.Time   `json:"matchTime"`
	Matchday  int         `json:"matchday"`
	Goals     []GoalEvent `json:"goalscorers"`
	Created   time.Time   `json:"-"`
	Updated   time.Time   `json:"-"`
}
