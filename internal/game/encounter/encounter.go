// Package encounter implements the per-room monster state machine.
//
// A monster starts Active with a random number of remaining attempts. Using the
// defeat item moves it to Defeated; any other item costs one attempt, and
// running out of attempts moves it to PlayerDefeated, which ends the game.
package encounter

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/aventura/internal/game/dice"
)

// Bounds of the attempts counter rolled when a monster is spawned.
const (
	MinAttempts = 1
	MaxAttempts = 5
)

// ErrNotActive is returned when an attempt is made against a monster that is
// already defeated or has already defeated the player.
var ErrNotActive = errors.New("encounter: monster is not active")

// State is the encounter state of a room.
type State int

const (
	// NoMonster means the room has no monster at all.
	NoMonster State = iota
	// Active means the monster blocks the room's exits.
	Active
	// Defeated means the player used the right item.
	Defeated
	// PlayerDefeated is terminal: the attempts ran out.
	PlayerDefeated
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case NoMonster:
		return "no_monster"
	case Active:
		return "active"
	case Defeated:
		return "defeated"
	case PlayerDefeated:
		return "player_defeated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Definition is the static description of a monster as written in the map.
type Definition struct {
	Name          string
	Description   string
	DefeatItem    string
	DefeatMessage string
}

// Validate checks that the definition can produce a playable monster.
func (d Definition) Validate() error {
	if d.Name == "" {
		return errors.New("monster: name must not be empty")
	}
	if d.DefeatItem == "" {
		return fmt.Errorf("monster %q: defeat_item must not be empty", d.Name)
	}
	return nil
}

// Monster is a live monster occupying a room.
//
// Invariant: attempts is monotonically non-increasing and never negative.
type Monster struct {
	Definition
	attempts int
	state    State
}

// NewMonster creates an Active monster with exactly attempts tries remaining.
//
// Precondition: attempts >= 1; def must validate.
// Postcondition: State() == Active and Attempts() == attempts.
func NewMonster(def Definition, attempts int) (*Monster, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if attempts < 1 {
		return nil, fmt.Errorf("monster %q: attempts must be >= 1, got %d", def.Name, attempts)
	}
	return &Monster{Definition: def, attempts: attempts, state: Active}, nil
}

// Spawn creates an Active monster whose attempts are rolled in [MinAttempts, MaxAttempts].
//
// Precondition: src must be non-nil.
func Spawn(def Definition, src dice.Source) (*Monster, error) {
	n, err := dice.RollBetween(src, "monster attempts: "+def.Name, MinAttempts, MaxAttempts)
	if err != nil {
		return nil, err
	}
	return NewMonster(def, n)
}

// Attempts returns the remaining attempts.
func (m *Monster) Attempts() int {
	return m.attempts
}

// State returns the monster's current state.
func (m *Monster) State() State {
	return m.state
}

// Outcome describes the result of one attempt.
type Outcome struct {
	// State is the monster state after the attempt.
	State State
	// Remaining is the attempts counter after the attempt.
	Remaining int
}

// Success reports whether the attempt defeated the monster.
func (o Outcome) Success() bool {
	return o.State == Defeated
}

// Fatal reports whether the attempt ended the game.
func (o Outcome) Fatal() bool {
	return o.State == PlayerDefeated
}

// Attempt tries to defeat the monster with item.
//
// Precondition: State() == Active; otherwise ErrNotActive is returned and nothing changes.
// Postcondition: on the defeat item the state becomes Defeated; on any other item
// the counter drops by one and the state becomes PlayerDefeated when it reaches zero.
func (m *Monster) Attempt(item string) (Outcome, error) {
	if m.state != Active {
		return Outcome{State: m.state, Remaining: m.attempts}, ErrNotActive
	}
	if item == m.DefeatItem {
		m.state = Defeated
		return Outcome{State: Defeated, Remaining: m.attempts}, nil
	}
	m.attempts--
	if m.attempts <= 0 {
		m.attempts = 0
		m.state = PlayerDefeated
	}
	return Outcome{State: m.state, Remaining: m.attempts}, nil
}

// StateOf returns the encounter state for an optional monster.
func StateOf(m *Monster) State {
	if m == nil {
		return NoMonster
	}
	return m.state
}

// Blocks reports whether the monster prevents leaving the room.
func Blocks(m *Monster) bool {
	return StateOf(m) == Active
}
