package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAction is returned when an agent hands the engine an action that
// is not in the current valid set. State is left untouched.
var ErrInvalidAction = errors.New("invalid action")

// Action represents a player's decision at the table
type Action int

const (
	ActionNone Action = iota
	ActionHit
	ActionStand
	ActionDoubleDown
	ActionSplit
	ActionSurrender
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "?"
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionDoubleDown:
		return "double"
	case ActionSplit:
		return "split"
	case ActionSurrender:
		return "surrender"
	default:
		return "?"
	}
}

// Terminal returns true for actions that end a player's turn
func (a Action) Terminal() bool {
	return a == ActionStand || a == ActionDoubleDown || a == ActionSurrender
}

// ParseAction parses an action name or alias as typed at the console.
// Accepted forms: hit/h, stand/s, double/dd/d, split/sp, surrender/su.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit", "h":
		return ActionHit, nil
	case "stand", "s":
		return ActionStand, nil
	case "double", "doubledown", "dd", "d":
		return ActionDoubleDown, nil
	case "split", "sp":
		return ActionSplit, nil
	case "surrender", "su":
		return ActionSurrender, nil
	default:
		return ActionNone, fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
}

func containsAction(actions []Action, a Action) bool {
	for _, v := range actions {
		if v == a {
			return true
		}
	}
	return false
}
