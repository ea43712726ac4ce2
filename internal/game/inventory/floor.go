package inventory

import "fmt"

// Floor is the item container of a single room. The room graph provides it so
// that room items are only ever mutated through the graph.
type Floor interface {
	// ItemDescription looks an item up without removing it.
	ItemDescription(name string) (string, bool)
	// RemoveItem removes and returns the description of an item on the floor.
	RemoveItem(name string) (string, bool)
	// AddItem places an item on the floor; it fails if the name is already present.
	AddItem(name, description string) error
}

// Take moves the named item from the floor into the inventory.
// Capacity is checked before anything moves, so a failed take leaves the item on the floor.
//
// Precondition: floor and inv must be non-nil.
// Postcondition: on success the item is in inv and no longer on the floor;
// on error neither container changed.
func Take(floor Floor, inv *Inventory, name string) (Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := floor.ItemDescription(name); !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrItemNotInRoom, name)
	}
	if inv.fullLocked() {
		return Item{}, fmt.Errorf("%w: %d/%d", ErrInventoryFull, len(inv.items), inv.maxItems)
	}
	if _, held := inv.items[name]; held {
		return Item{}, fmt.Errorf("%w: %q", ErrItemNameTaken, name)
	}

	desc, ok := floor.RemoveItem(name)
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrItemNotInRoom, name)
	}
	if err := inv.addLocked(name, desc); err != nil {
		// Unreachable while the lock is held; restore the floor regardless.
		_ = floor.AddItem(name, desc)
		return Item{}, err
	}
	return Item{Name: name, Description: desc}, nil
}

// Drop moves the named item from the inventory onto the floor.
//
// Precondition: floor and inv must be non-nil.
// Postcondition: on success the item is on the floor and no longer held;
// on error neither container changed.
func Drop(inv *Inventory, floor Floor, name string) (Item, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	desc, ok := inv.items[name]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrItemNotHeld, name)
	}
	if err := floor.AddItem(name, desc); err != nil {
		return Item{}, fmt.Errorf("%w: %v", ErrItemNameTaken, err)
	}
	inv.removeLocked(name)
	return Item{Name: name, Description: desc}, nil
}
