package world

import (
	"errors"
	"fmt"
)

// Error taxonomy of the room graph and the map loader.
var (
	// ErrRoomNotFound means a room ID does not resolve.
	ErrRoomNotFound = errors.New("world: room not found")
	// ErrNoExit means the room has no exit in the requested direction.
	ErrNoExit = errors.New("world: no exit in that direction")
	// ErrExitLocked means the exit exists but is locked.
	ErrExitLocked = errors.New("world: exit is locked")
	// ErrMonsterBlocks means an active monster prevents leaving the room.
	ErrMonsterBlocks = errors.New("world: an active monster blocks the way")
	// ErrDanglingExit means an exit targets a room that does not exist.
	ErrDanglingExit = errors.New("world: exit targets an unknown room")
	// ErrMalformedMap means the map document cannot produce a playable graph.
	ErrMalformedMap = errors.New("world: malformed map")
)

// LockedError carries the locked exit so callers can show its message.
type LockedError struct {
	Exit Exit
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("the way %s is locked", e.Exit.Direction)
}

// Unwrap lets errors.Is match ErrExitLocked.
func (e *LockedError) Unwrap() error { return ErrExitLocked }

// BlockedError carries the name of the monster standing in the way.
type BlockedError struct {
	Monster string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s blocks the way", e.Monster)
}

// Unwrap lets errors.Is match ErrMonsterBlocks.
func (e *BlockedError) Unwrap() error { return ErrMonsterBlocks }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedMap, fmt.Sprintf(format, args...))
}
