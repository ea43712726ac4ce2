// Package session holds the state of one game: the player, the current room
// pointer, the outcome and the pending feedback message.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/aventura/internal/game/encounter"
	"github.com/cory-johannsen/aventura/internal/game/inventory"
	"github.com/cory-johannsen/aventura/internal/game/world"
)

// Outcome is the lifecycle state of a session.
type Outcome int

const (
	// Playing is the only state in which commands are accepted.
	Playing Outcome = iota
	// Won means the player reached the exit room.
	Won
	// Lost means a monster ran out of attempts.
	Lost
	// Quit means the player left the game.
	Quit
)

// String returns the outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Player is the adventurer. RoomID is a lookup key into the graph, never a
// pointer to a room.
type Player struct {
	RoomID    string
	Inventory *inventory.Inventory
}

// Session is one game in progress.
type Session struct {
	// ID identifies the session in logs.
	ID string
	// Graph is the world the session plays in.
	Graph *world.Graph
	// Player is the adventurer.
	Player *Player
	// Feedback holds the message produced by the last command.
	Feedback Feedback

	outcome Outcome
}

// New starts a session in the graph's start room.
//
// Precondition: g must be non-nil; maxItems >= 1.
// Postcondition: Returns a Playing session with an empty inventory of capacity maxItems.
func New(g *world.Graph, maxItems int) (*Session, error) {
	if g == nil {
		return nil, fmt.Errorf("session: graph must not be nil")
	}
	if maxItems < 1 {
		return nil, fmt.Errorf("session: max items must be >= 1, got %d", maxItems)
	}
	start := g.StartRoom()
	if start == nil {
		return nil, fmt.Errorf("session: %w: start room", world.ErrRoomNotFound)
	}
	return &Session{
		ID:    uuid.New().String(),
		Graph: g,
		Player: &Player{
			RoomID:    start.ID,
			Inventory: inventory.New(maxItems),
		},
	}, nil
}

// CurrentRoom resolves the player's room through the graph.
//
// Postcondition: Returns (room, true), or (nil, false) if the pointer no longer resolves.
func (s *Session) CurrentRoom() (*world.Room, bool) {
	return s.Graph.GetRoom(s.Player.RoomID)
}

// MoveTo updates the current room pointer.
//
// Postcondition: Player.RoomID == roomID, or ErrRoomNotFound and no change.
func (s *Session) MoveTo(roomID string) error {
	if _, ok := s.Graph.GetRoom(roomID); !ok {
		return fmt.Errorf("%w: %q", world.ErrRoomNotFound, roomID)
	}
	s.Player.RoomID = roomID
	return nil
}

// Outcome returns the current lifecycle state.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Running reports whether the session still accepts commands.
func (s *Session) Running() bool {
	return s.outcome == Playing
}

// End moves a Playing session to a terminal outcome.
//
// Precondition: o != Playing.
// Postcondition: Returns true if this call ended the session; terminal outcomes never change.
func (s *Session) End(o Outcome) bool {
	if s.outcome != Playing || o == Playing {
		return false
	}
	s.outcome = o
	return true
}

// CheckVictory ends the session as Won when the player stands in the exit room.
func (s *Session) CheckVictory() bool {
	if !s.Running() || !s.Graph.IsExitRoom(s.Player.RoomID) {
		return false
	}
	return s.End(Won)
}

// ExitView is the render-side view of an exit.
type ExitView struct {
	Direction world.Direction
	Target    string
	Locked    bool
}

// MonsterView is the render-side view of an active monster.
type MonsterView struct {
	Name        string
	Description string
}

// RoomView is a read-only snapshot of the current room.
type RoomView struct {
	ID          string
	Description string
	Exits       []ExitView
	Items       []inventory.Item
	// Monster is set only while the encounter is Active.
	Monster *MonsterView
}

// InventoryView is a read-only snapshot of the inventory.
type InventoryView struct {
	Items    []inventory.Item
	MaxItems int
}

// Snapshot bundles everything a renderer needs for one turn.
type Snapshot struct {
	Room      RoomView
	Inventory InventoryView
	Feedback  string
	Outcome   Outcome
}

// RoomView captures the current room. A dangling room pointer yields a view
// with only the ID set.
func (s *Session) RoomView() RoomView {
	room, ok := s.CurrentRoom()
	if !ok {
		return RoomView{ID: s.Player.RoomID}
	}
	v := RoomView{
		ID:          room.ID,
		Description: room.Description,
		Items:       room.Items(),
	}
	for _, e := range room.Exits() {
		v.Exits = append(v.Exits, ExitView{Direction: e.Direction, Target: e.Target, Locked: e.Locked})
	}
	if m := room.Monster(); encounter.Blocks(m) {
		v.Monster = &MonsterView{Name: m.Name, Description: m.Description}
	}
	return v
}

// InventoryView captures the inventory contents.
func (s *Session) InventoryView() InventoryView {
	return InventoryView{
		Items:    s.Player.Inventory.Items(),
		MaxItems: s.Player.Inventory.MaxItems(),
	}
}

// Snapshot captures the turn state and consumes the pending feedback.
//
// Postcondition: Feedback is empty after the call.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Room:      s.RoomView(),
		Inventory: s.InventoryView(),
		Feedback:  s.Feedback.Take(),
		Outcome:   s.outcome,
	}
}
