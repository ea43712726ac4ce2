// Package inventory provides the player's capacity-bounded item container and
// the transfer of items between a room floor and the player.
package inventory

import "errors"

// Errors returned by Take and Drop. All are recoverable: the caller reports
// them to the player and no state changes.
var (
	// ErrItemNotInRoom means the named item is not on the floor.
	ErrItemNotInRoom = errors.New("inventory: item not in room")
	// ErrInventoryFull means taking the item would exceed the capacity.
	ErrInventoryFull = errors.New("inventory: full")
	// ErrItemNotHeld means the named item is not in the inventory.
	ErrItemNotHeld = errors.New("inventory: item not held")
	// ErrItemNameTaken means the destination already contains an item with the same name.
	ErrItemNameTaken = errors.New("inventory: destination already holds an item with that name")
)

// Item is a named item with its description. The name is unique within
// whatever container holds it.
type Item struct {
	Name        string
	Description string
}
