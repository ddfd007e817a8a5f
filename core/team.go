package core

import "strings"

// Team labels the side a paddle or goal belongs to; zero value is Enemies
type Team uint8

const (
	TeamEnemies Team = iota
	TeamAllies
	TeamCount
)

func (t Team) String() string {
	switch t {
	case TeamEnemies:
		return "enemies"
	case TeamAllies:
		return "allies"
	}
	return "unknown"
}

// ParseTeam resolves a case-insensitive team name
func ParseTeam(s string) (Team, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enemies", "enemy":
		return TeamEnemies, true
	case "allies", "ally":
		return TeamAllies, true
	}
	return 0, false
}

// GoalSide is the arena position of a scoring target
// Declaration order is the deterministic processing order for simultaneous hits
type GoalSide uint8

const (
	SideTop GoalSide = iota
	SideRight
	SideBottom
	SideLeft
	SideCount
)

// Sides lists all goal sides in processing order
var Sides = [SideCount]GoalSide{SideTop, SideRight, SideBottom, SideLeft}

var sideNames = [SideCount]string{"top", "right", "bottom", "left"}

func (s GoalSide) String() string {
	if s >= SideCount {
		return "unknown"
	}
	return sideNames[s]
}

// ParseSide resolves a case-insensitive side name
func ParseSide(s string) (GoalSide, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range sideNames {
		if n == name {
			return GoalSide(i), true
		}
	}
	return 0, false
}
