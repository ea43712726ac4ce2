package inventory

import (
	"fmt"
	"sync"
)

// Inventory maps item names to descriptions and never holds more than MaxItems.
//
// Invariant: Len() <= MaxItems() at all times.
type Inventory struct {
	mu       sync.Mutex
	maxItems int
	order    []string
	items    map[string]string
}

// New creates an empty Inventory with the given capacity.
//
// Precondition: maxItems >= 0; the capacity is fixed for the Inventory's lifetime.
func New(maxItems int) *Inventory {
	if maxItems < 0 {
		maxItems = 0
	}
	return &Inventory{
		maxItems: maxItems,
		items:    make(map[string]string),
	}
}

// MaxItems returns the configured capacity.
func (inv *Inventory) MaxItems() int {
	return inv.maxItems
}

// Len returns the number of items held.
func (inv *Inventory) Len() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.items)
}

// Full reports whether no further item fits.
func (inv *Inventory) Full() bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.fullLocked()
}

// Has reports whether an item with the given name is held.
func (inv *Inventory) Has(name string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	_, ok := inv.items[name]
	return ok
}

// Description returns the description of a held item.
func (inv *Inventory) Description(name string) (string, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	d, ok := inv.items[name]
	return d, ok
}

// Add inserts an item. This is the only place items enter an Inventory.
// It is atomic: on error the inventory is unchanged.
//
// Postcondition: on success Has(name) is true and Len() <= MaxItems().
func (inv *Inventory) Add(name, description string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.addLocked(name, description)
}

// Remove deletes a held item and returns its description.
//
// Postcondition: Returns (description, true) if the item was held, ("", false) otherwise.
func (inv *Inventory) Remove(name string) (string, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.removeLocked(name)
}

// Items returns a snapshot of the held items in the order they were taken.
//
// Postcondition: returned slice is a copy; mutations do not affect the inventory.
func (inv *Inventory) Items() []Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]Item, 0, len(inv.order))
	for _, name := range inv.order {
		out = append(out, Item{Name: name, Description: inv.items[name]})
	}
	return out
}

func (inv *Inventory) fullLocked() bool {
	return len(inv.items) >= inv.maxItems
}

func (inv *Inventory) addLocked(name, description string) error {
	if name == "" {
		return fmt.Errorf("inventory: item name must not be empty")
	}
	if _, exists := inv.items[name]; exists {
		return fmt.Errorf("%w: %q", ErrItemNameTaken, name)
	}
	if inv.fullLocked() {
		return fmt.Errorf("%w: %d/%d", ErrInventoryFull, len(inv.items), inv.maxItems)
	}
	inv.items[name] = description
	inv.order = append(inv.order, name)
	return nil
}

func (inv *Inventory) removeLocked(name string) (string, bool) {
	d, ok := inv.items[name]
	if !ok {
		return "", false
	}
	delete(inv.items, name)
	for i, n := range inv.order {
		if n == name {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return d, true
}
