package model

import (
	"strings"
	"time"
)

type Pool string

const (
	PoolUnknown Pool = ""
	PoolA       Pool = "A"
	PoolB       Pool = "B"
)

func ParsePool(pool string) Pool {
	switch strings.ToUpper(strings.TrimSpace(pool)) {
	case "A":
		return PoolA
	case "B":
		return PoolB
	default:
		return PoolUnknown
	}
}

type Team struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Logo    string    `json:"logo,omitempty"`
	Manager string    `json:"manager"`
	Captain string    `json:"captain"`
	Pool    Pool      `json:"pool"`
	Created time.Time `json:"-"`
	Updated time.Time `json:"-"`
}
