package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns the IDs of every room that can be reached from fromRoomID
// by following exits, locked ones included. Dangling targets are skipped.
//
// Postcondition: the result contains fromRoomID when that room exists.
func (g *Graph) Reachable(fromRoomID string) *mapset.Set[string] {
	reachable := mapset.New[string]()
	queue := []string{fromRoomID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		room, ok := g.rooms[current]
		if !ok || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, e := range room.Exits() {
			if !reachable.Has(e.Target) {
				queue = append(queue, e.Target)
			}
		}
	}
	return &reachable
}

// Unreachable lists, in document order, the rooms the player can never enter
// from the start room.
func (g *Graph) Unreachable() []string {
	reachable := g.Reachable(g.startRoom)
	var out []string
	for _, id := range g.order {
		if !reachable.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// ExitReachable reports whether the victory room can be reached from the start room.
func (g *Graph) ExitReachable() bool {
	return g.Reachable(g.startRoom).Has(g.exitRoom)
}
