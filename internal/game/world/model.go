// Package world provides the game world model: rooms, exits, directions,
// room-scoped item usage effects, and the room graph that owns them.
package world

import (
	"fmt"
	"sync"

	"github.com/cory-johannsen/aventura/internal/game/encounter"
	"github.com/cory-johannsen/aventura/internal/game/inventory"
)

// Direction is one of the six directions an exit can point to.
type Direction string

// Compass directions and vertical movements.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// StandardDirections lists every valid direction in display order.
var StandardDirections = []Direction{North, South, East, West, Up, Down}

// IsStandard reports whether d is one of the six directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Exit is a directed passage from a room to a target room.
type Exit struct {
	Direction Direction
	// Target is the ID of the destination room.
	Target string
	// Locked blocks traversal until an unlock effect opens it.
	Locked bool
	// KeyItem names the item expected to open the exit. Informational only.
	KeyItem string
	// LockedMessage is shown when the player walks into the locked exit.
	LockedMessage string
}

// Action is the typed effect of using an item in a room.
// It is one of UnlockExit, RemoveItem or Narrative.
type Action interface {
	isAction()
}

// UnlockExit opens the exit in Direction and points it at Target.
type UnlockExit struct {
	Direction Direction
	Target    string
}

// RemoveItem removes Item from the player's inventory.
type RemoveItem struct {
	Item string
}

// Narrative has no effect beyond the usage description.
type Narrative struct{}

func (UnlockExit) isAction() {}
func (RemoveItem) isAction() {}
func (Narrative) isAction()  {}

// Effect is what happens when Item is used in a particular room.
type Effect struct {
	Item        string
	Description string
	Action      Action
}

// RoomDef is the construction-time description of a room.
type RoomDef struct {
	ID          string
	Description string
	Exits       []Exit
	Items       []inventory.Item
	Usage       []Effect
	Monster     *encounter.Monster
}

// Room is a node of the room graph. Its mutable state (items, exit locks and
// monster) can only be changed through the Graph that owns it.
type Room struct {
	// ID uniquely identifies the room.
	ID string
	// Description is the text shown when the player is in the room.
	Description string

	mu        sync.RWMutex
	exits     []Exit
	itemOrder []string
	items     map[string]string
	usage     []Effect
	monster   *encounter.Monster
}

func newRoom(def RoomDef) (*Room, error) {
	r := &Room{
		ID:          def.ID,
		Description: def.Description,
		items:       make(map[string]string, len(def.Items)),
		usage:       append([]Effect(nil), def.Usage...),
		monster:     def.Monster,
	}
	seen := make(map[Direction]bool, len(def.Exits))
	for _, e := range def.Exits {
		if !e.Direction.IsStandard() {
			return nil, fmt.Errorf("room %q: unknown exit direction %q", def.ID, e.Direction)
		}
		if seen[e.Direction] {
			return nil, fmt.Errorf("room %q: duplicate exit %q", def.ID, e.Direction)
		}
		if e.Target == "" {
			return nil, fmt.Errorf("room %q: exit %q has empty target", def.ID, e.Direction)
		}
		seen[e.Direction] = true
		r.exits = append(r.exits, e)
	}
	for _, it := range def.Items {
		if err := r.addItem(it.Name, it.Description); err != nil {
			return nil, fmt.Errorf("room %q: %w", def.ID, err)
		}
	}
	for i, u := range r.usage {
		if u.Action == nil {
			r.usage[i].Action = Narrative{}
		}
	}
	return r, nil
}

// ExitForDirection returns the exit in the given direction, if one exists.
//
// Postcondition: Returns (exit, true) if found, or (Exit{}, false) otherwise.
func (r *Room) ExitForDirection(dir Direction) (Exit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.exits {
		if e.Direction == dir {
			return e, true
		}
	}
	return Exit{}, false
}

// Exits returns a copy of the room's exits in definition order.
func (r *Room) Exits() []Exit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Exit(nil), r.exits...)
}

// Items returns a copy of the items on the floor in the order they arrived.
func (r *Room) Items() []inventory.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]inventory.Item, 0, len(r.itemOrder))
	for _, name := range r.itemOrder {
		out = append(out, inventory.Item{Name: name, Description: r.items[name]})
	}
	return out
}

// ItemDescription looks up an item on the floor without removing it.
func (r *Room) ItemDescription(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.items[name]
	return d, ok
}

// UsageFor returns the first usage effect registered for item.
func (r *Room) UsageFor(item string) (Effect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.usage {
		if u.Item == item {
			return u, true
		}
	}
	return Effect{}, false
}

// Monster returns the room's monster, or nil. Callers must not call Attempt on
// it directly; use Graph.AttemptDefeat.
func (r *Room) Monster() *encounter.Monster {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.monster
}

// EncounterState returns the encounter state of the room.
func (r *Room) EncounterState() encounter.State {
	return encounter.StateOf(r.Monster())
}

func (r *Room) addItem(name, description string) error {
	if name == "" {
		return fmt.Errorf("item name must not be empty")
	}
	if _, exists := r.items[name]; exists {
		return fmt.Errorf("%w: %q", inventory.ErrItemNameTaken, name)
	}
	r.items[name] = description
	r.itemOrder = append(r.itemOrder, name)
	return nil
}

func (r *Room) removeItem(name string) (string, bool) {
	d, ok := r.items[name]
	if !ok {
		return "", false
	}
	delete(r.items, name)
	for i, n := range r.itemOrder {
		if n == name {
			r.itemOrder = append(r.itemOrder[:i], r.itemOrder[i+1:]...)
			break
		}
	}
	return d, true
}
