// Package command provides the verb registry, the parser and the interpreter
// that turns one line of player input into one state change and one feedback
// message.
package command

import (
	"github.com/cory-johannsen/aventura/internal/game/world"
	"github.com/cory-johannsen/aventura/internal/i18n"
)

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryItems    = "items"
	CategorySystem   = "system"
)

// Categories lists the command categories in help order.
var Categories = []string{CategoryMovement, CategoryItems, CategorySystem}

// Handler identifiers mapping commands to interpreter handlers.
const (
	HandlerMove      = "move"
	HandlerTake      = "take"
	HandlerDrop      = "drop"
	HandlerUse       = "use"
	HandlerLook      = "look"
	HandlerInventory = "inventory"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable verb.
type Command struct {
	// Name is the canonical Portuguese verb.
	Name string
	// Aliases are alternate spellings, including the English ones.
	Aliases []string
	// Category groups the command for listings.
	Category string
	// Handler selects the interpreter handler.
	Handler string
	// Direction is set for movement commands.
	Direction world.Direction
	// NeedsTarget means the verb is meaningless without an item name.
	NeedsTarget bool
	// Help is the catalog key of the one-line description.
	Help string
	// Modal commands show their feedback on a screen of its own and wait for
	// ENTER before the next turn.
	Modal bool
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Movement
		{Name: "norte", Aliases: []string{"n", "north"}, Category: CategoryMovement, Handler: HandlerMove, Direction: world.North, Help: i18n.HelpMove},
		{Name: "sul", Aliases: []string{"s", "south"}, Category: CategoryMovement, Handler: HandlerMove, Direction: world.South, Help: i18n.HelpMove},
		{Name: "leste", Aliases: []string{"l", "east", "e"}, Category: CategoryMovement, Handler: HandlerMove, Direction: world.East, Help: i18n.HelpMove},
		{Name: "oeste", Aliases: []string{"o", "west", "w"}, Category: CategoryMovement, Handler: HandlerMove, Direction: world.West, Help: i18n.HelpMove},
		{Name: "cima", Aliases: []string{"c", "subir", "up"}, Category: CategoryMovement, Handler: HandlerMove, Direction: world.Up, Help: i18n.HelpMove},
		{Name: "baixo", Aliases: []string{"b", "descer", "down"}, Category: CategoryMovement, Handler: HandlerMove, Direction: world.Down, Help: i18n.HelpMove},

		// Items
		{Name: "pegar", Aliases: []string{"take", "get"}, Category: CategoryItems, Handler: HandlerTake, NeedsTarget: true, Help: i18n.HelpTake},
		{Name: "largar", Aliases: []string{"drop"}, Category: CategoryItems, Handler: HandlerDrop, NeedsTarget: true, Help: i18n.HelpDrop},
		{Name: "usar", Aliases: []string{"use"}, Category: CategoryItems, Handler: HandlerUse, NeedsTarget: true, Help: i18n.HelpUse},
		{Name: "inventario", Aliases: []string{"inventário", "inv", "i"}, Category: CategoryItems, Handler: HandlerInventory, Help: i18n.HelpInventory},

		// System
		{Name: "olhar", Aliases: []string{"look", "ver"}, Category: CategorySystem, Handler: HandlerLook, Help: i18n.HelpLook},
		{Name: "ajuda", Aliases: []string{"help", "?"}, Category: CategorySystem, Handler: HandlerHelp, Help: i18n.HelpHelp, Modal: true},
		{Name: "sair", Aliases: []string{"quit", "exit"}, Category: CategorySystem, Handler: HandlerQuit, Help: i18n.HelpQuit},
	}
}
