package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// keyHold is how long a paddle key stays pressed after its last repeat
// Terminals deliver presses and auto-repeats, never releases
const keyHold = 150 * time.Millisecond

// command is a discrete action from a key press
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
	cmdReset
	cmdMute
	cmdMove
)

// decodeKey maps a key press to a command and, for cmdMove, a steering axis
func decodeKey(key tcell.Key, ch rune) (command, float64) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, 0
	case tcell.KeyLeft:
		return cmdMove, -1
	case tcell.KeyRight:
		return cmdMove, 1
	case tcell.KeyRune:
		switch ch {
		case 'q':
			return cmdQuit, 0
		case 'p', ' ':
			return cmdPause, 0
		case 'r':
			return cmdReset, 0
		case 'm':
			return cmdMute, 0
		case 'a', 'h':
			return cmdMove, -1
		case 'd', 'l':
			return cmdMove, 1
		}
	}
	return cmdNone, 0
}

// steering holds the latest axis until keyHold elapses without a repeat
type steering struct {
	axis    float64
	pressed time.Time
}

func (s *steering) press(axis float64, now time.Time) {
	s.axis = axis
	s.pressed = now
}

// current returns the axis in effect at now
func (s *steering) current(now time.Time) float64 {
	if s.axis != 0 && now.Sub(s.pressed) > keyHold {
		s.axis = 0
	}
	return s.axis
}
