package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = ""
	POS_GK      Position = "Goalkeeper"
	POS_DF      Position = "Defender"
	POS_MF      Position = "Midfielder"
	POS_FW      Position = "Forward"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "goalkeeper", "gk":
		return POS_GK
	case "defender", "df":
		return POS_DF
	case "midfielder", "mf":
		return POS_MF
	case "forward", "fw":
		return POS_FW
	default:
		return POS_UNKNOWN
	}
}
