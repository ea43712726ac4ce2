package world

import (
	"fmt"

	"github.com/cory-johannsen/aventura/internal/game/encounter"
	"github.com/cory-johannsen/aventura/internal/game/inventory"
)

// Graph owns every room and is the only API through which room state changes.
// Rooms are indexed by ID for O(1) lookup; the index itself is immutable after
// construction.
type Graph struct {
	rooms     map[string]*Room
	order     []string
	startRoom string
	exitRoom  string
}

// NewGraph builds a Graph from room definitions.
//
// Precondition: every def has a unique non-empty ID.
// Postcondition: Returns a Graph whose start room exists, or an error wrapping
// ErrMalformedMap. Exit targets are not checked here; see ValidateExits.
func NewGraph(defs []RoomDef, startRoom, exitRoom string) (*Graph, error) {
	g := &Graph{
		rooms:     make(map[string]*Room, len(defs)),
		startRoom: startRoom,
		exitRoom:  exitRoom,
	}
	for _, def := range defs {
		if def.ID == "" {
			return nil, malformed("room ID must not be empty")
		}
		if _, exists := g.rooms[def.ID]; exists {
			return nil, malformed("duplicate room ID %q", def.ID)
		}
		room, err := newRoom(def)
		if err != nil {
			return nil, malformed("%v", err)
		}
		g.rooms[def.ID] = room
		g.order = append(g.order, def.ID)
	}
	if startRoom == "" {
		return nil, malformed("start room must not be empty")
	}
	if _, ok := g.rooms[startRoom]; !ok {
		return nil, malformed("start room %q is not defined", startRoom)
	}
	if exitRoom == "" {
		return nil, malformed("exit room must not be empty")
	}
	return g, nil
}

// ValidateExits checks that every exit target, unlock target and the exit room
// resolve to known rooms.
//
// Postcondition: Returns nil if everything resolves, or an error naming the first dangling reference.
func (g *Graph) ValidateExits() error {
	if _, ok := g.rooms[g.exitRoom]; !ok {
		return malformed("exit room %q is not defined", g.exitRoom)
	}
	for _, id := range g.order {
		room := g.rooms[id]
		for _, exit := range room.Exits() {
			if _, ok := g.rooms[exit.Target]; !ok {
				return fmt.Errorf("%w: room %q: exit %q targets unknown room %q",
					ErrDanglingExit, id, exit.Direction, exit.Target)
			}
		}
		for _, u := range room.usage {
			if a, ok := u.Action.(UnlockExit); ok {
				if _, ok := g.rooms[a.Target]; !ok {
					return fmt.Errorf("%w: room %q: using %q unlocks towards unknown room %q",
						ErrDanglingExit, id, u.Item, a.Target)
				}
			}
		}
	}
	return nil
}

// GetRoom returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (g *Graph) GetRoom(id string) (*Room, bool) {
	r, ok := g.rooms[id]
	return r, ok
}

// StartRoom returns the designated entry room.
func (g *Graph) StartRoom() *Room {
	return g.rooms[g.startRoom]
}

// ExitRoomID returns the ID of the victory room.
func (g *Graph) ExitRoomID() string {
	return g.exitRoom
}

// IsExitRoom reports whether id is the victory room.
func (g *Graph) IsExitRoom(id string) bool {
	return id == g.exitRoom
}

// RoomCount returns the number of rooms.
func (g *Graph) RoomCount() int {
	return len(g.rooms)
}

// RoomIDs returns all room IDs in definition order.
func (g *Graph) RoomIDs() []string {
	return append([]string(nil), g.order...)
}

// Navigate resolves movement from a room in a direction. The checks run in a
// fixed order: active monster, missing exit, locked exit, unknown target.
//
// Postcondition: Returns the destination room, or an error wrapping
// ErrRoomNotFound, ErrMonsterBlocks, ErrNoExit, ErrExitLocked or ErrDanglingExit.
func (g *Graph) Navigate(fromRoomID string, dir Direction) (*Room, error) {
	from, ok := g.rooms[fromRoomID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, fromRoomID)
	}
	if m := from.Monster(); encounter.Blocks(m) {
		return nil, &BlockedError{Monster: m.Name}
	}
	exit, ok := from.ExitForDirection(dir)
	if !ok {
		return nil, fmt.Errorf("%w: %q from %q", ErrNoExit, dir, fromRoomID)
	}
	if exit.Locked {
		return nil, &LockedError{Exit: exit}
	}
	target, ok := g.rooms[exit.Target]
	if !ok {
		return nil, fmt.Errorf("%w: exit %q from %q targets %q", ErrDanglingExit, dir, fromRoomID, exit.Target)
	}
	return target, nil
}

// floor adapts a room to inventory.Floor.
type floor struct {
	room *Room
}

func (f floor) ItemDescription(name string) (string, bool) {
	return f.room.ItemDescription(name)
}

func (f floor) RemoveItem(name string) (string, bool) {
	f.room.mu.Lock()
	defer f.room.mu.Unlock()
	return f.room.removeItem(name)
}

func (f floor) AddItem(name, description string) error {
	f.room.mu.Lock()
	defer f.room.mu.Unlock()
	return f.room.addItem(name, description)
}

// Floor returns the item container of a room for use with inventory.Take and inventory.Drop.
func (g *Graph) Floor(roomID string) (inventory.Floor, error) {
	room, ok := g.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, roomID)
	}
	return floor{room: room}, nil
}

// AddItem places an item on a room's floor.
func (g *Graph) AddItem(roomID, name, description string) error {
	f, err := g.Floor(roomID)
	if err != nil {
		return err
	}
	return f.AddItem(name, description)
}

// RemoveItem takes an item off a room's floor.
func (g *Graph) RemoveItem(roomID, name string) (string, bool) {
	f, err := g.Floor(roomID)
	if err != nil {
		return "", false
	}
	return f.RemoveItem(name)
}

// UnlockResult reports what UnlockExit did.
type UnlockResult int

const (
	// Unlocked means the exit was locked and is now open.
	Unlocked UnlockResult = iota
	// AlreadyOpen means the exit was already unlocked and was left untouched.
	AlreadyOpen
)

// UnlockExit clears the locked flag of a locked exit and points it at target.
// KeyItem and LockedMessage are left as they were. An exit that is already open
// keeps its target.
//
// Postcondition: on success the exit is unlocked; returns ErrNoExit when the
// room has no exit in dir.
func (g *Graph) UnlockExit(roomID string, dir Direction, target string) (UnlockResult, error) {
	room, ok := g.rooms[roomID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrRoomNotFound, roomID)
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	for i := range room.exits {
		if room.exits[i].Direction != dir {
			continue
		}
		if !room.exits[i].Locked {
			return AlreadyOpen, nil
		}
		room.exits[i].Locked = false
		room.exits[i].Target = target
		return Unlocked, nil
	}
	return 0, fmt.Errorf("%w: %q in %q", ErrNoExit, dir, roomID)
}

// AttemptDefeat resolves one attempt against the room's monster. A defeated
// monster is cleared from the room.
//
// Postcondition: Returns the encounter outcome, or encounter.ErrNotActive when
// the room has no active monster.
func (g *Graph) AttemptDefeat(roomID, item string) (encounter.Outcome, error) {
	room, ok := g.rooms[roomID]
	if !ok {
		return encounter.Outcome{}, fmt.Errorf("%w: %q", ErrRoomNotFound, roomID)
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.monster == nil {
		return encounter.Outcome{State: encounter.NoMonster}, encounter.ErrNotActive
	}
	out, err := room.monster.Attempt(item)
	if err != nil {
		return out, err
	}
	if out.Success() {
		room.monster = nil
	}
	return out, nil
}

// ClearMonster removes the room's monster.
func (g *Graph) ClearMonster(roomID string) error {
	room, ok := g.rooms[roomID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRoomNotFound, roomID)
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	room.monster = nil
	return nil
}
