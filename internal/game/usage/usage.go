// Package usage resolves what happens when the player uses an item in a room.
package usage

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/aventura/internal/game/world"
)

// Kind classifies a usage outcome.
type Kind int

const (
	// NoEffect means the room has no usage entry for the item.
	NoEffect Kind = iota
	// Unlocked means a locked exit was opened.
	Unlocked
	// AlreadyOpen means the exit was already unlocked and was left as it was.
	AlreadyOpen
	// Malfunction means the entry names an exit the room does not have.
	Malfunction
	// Removed means the item was taken out of the inventory.
	Removed
	// DescriptionOnly means a remove entry matched but the item was not held.
	DescriptionOnly
	// Narrative means the entry has no effect besides its description.
	Narrative
)

var kindNames = map[Kind]string{
	NoEffect:        "no_effect",
	Unlocked:        "unlocked",
	AlreadyOpen:     "already_open",
	Malfunction:     "malfunction",
	Removed:         "removed",
	DescriptionOnly: "description_only",
	Narrative:       "narrative",
}

// String returns the kind name for logs.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Outcome is the result of resolving one usage.
type Outcome struct {
	Kind Kind
	// Description is the effect text of the matched entry.
	Description string
	// Direction and Target are set for unlock outcomes, including Malfunction.
	Direction world.Direction
	Target    string
	// Item is set for Removed and DescriptionOnly.
	Item string
}

// Holder is the part of the player's inventory usage can change.
type Holder interface {
	Remove(name string) (string, bool)
}

// Resolve applies the first usage entry registered for item in the room.
//
// Precondition: g and inv must be non-nil; the caller has checked that item is held.
// Postcondition: state changes only as the returned Kind describes. A missing
// room yields an error wrapping world.ErrRoomNotFound.
func Resolve(g *world.Graph, roomID string, inv Holder, item string) (Outcome, error) {
	room, ok := g.GetRoom(roomID)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", world.ErrRoomNotFound, roomID)
	}
	eff, ok := room.UsageFor(item)
	if !ok {
		return Outcome{Kind: NoEffect}, nil
	}
	out := Outcome{Description: eff.Description}

	switch a := eff.Action.(type) {
	case world.UnlockExit:
		out.Direction, out.Target = a.Direction, a.Target
		res, err := g.UnlockExit(roomID, a.Direction, a.Target)
		switch {
		case errors.Is(err, world.ErrNoExit):
			out.Kind = Malfunction
		case err != nil:
			return Outcome{}, err
		case res == world.AlreadyOpen:
			out.Kind = AlreadyOpen
		default:
			out.Kind = Unlocked
		}
	case world.RemoveItem:
		out.Item = a.Item
		if _, held := inv.Remove(a.Item); held {
			out.Kind = Removed
		} else {
			out.Kind = DescriptionOnly
		}
	default:
		out.Kind = Narrative
	}
	return out, nil
}
