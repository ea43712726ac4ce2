// Package i18n holds the Portuguese message catalog used for every line the
// game shows to the player.
package i18n

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Message keys.
const (
	IntroTitle      = "INTRO_TITLE"
	IntroCapacity   = "INTRO_CAPACITY"
	PressEnterStart = "PRESS_ENTER_START"
	Victory         = "VICTORY"
	PressEnterEnd   = "PRESS_ENTER_END"
	GameOver        = "GAME_OVER"
	Prompt          = "PROMPT"

	RoomCurrent       = "ROOM_CURRENT"
	RoomExits         = "ROOM_EXITS"
	RoomExitEntry     = "ROOM_EXIT_ENTRY"
	RoomExitLocked    = "ROOM_EXIT_LOCKED"
	RoomTrapped       = "ROOM_TRAPPED"
	RoomItems         = "ROOM_ITEMS"
	RoomItemEntry     = "ROOM_ITEM_ENTRY"
	RoomNoItems       = "ROOM_NO_ITEMS"
	RoomMonster       = "ROOM_MONSTER"
	InventoryList     = "INVENTORY_LIST"
	InventoryEmpty    = "INVENTORY_EMPTY"
	InventoryCapacity = "INVENTORY_CAPACITY"

	MoveOK         = "MOVE_OK"
	MoveNoExit     = "MOVE_NO_EXIT"
	MoveLocked     = "MOVE_LOCKED"
	MoveBlocked    = "MOVE_BLOCKED"
	MapError       = "MAP_ERROR"
	EncounterIntro = "ENCOUNTER_INTRO"

	TakeOK          = "TAKE_OK"
	TakeFull        = "TAKE_FULL"
	TakeNotHere     = "TAKE_NOT_HERE"
	TakeAlreadyHeld = "TAKE_ALREADY_HELD"
	DropOK          = "DROP_OK"
	DropNotHeld     = "DROP_NOT_HELD"
	DropNameTaken   = "DROP_NAME_TAKEN"
	MissingTarget   = "MISSING_TARGET"

	UseNotHeld     = "USE_NOT_HELD"
	UseNothing     = "USE_NOTHING"
	UseUnlocked    = "USE_UNLOCKED"
	UseAlreadyOpen = "USE_ALREADY_OPEN"
	UseMalfunction = "USE_MALFUNCTION"
	UseRemoved     = "USE_REMOVED"

	MonsterDefeated = "MONSTER_DEFEATED"
	MonsterResisted = "MONSTER_RESISTED"
	MonsterFatal    = "MONSTER_FATAL"

	HelpHeader     = "HELP_HEADER"
	HelpEntry      = "HELP_ENTRY"
	HelpTarget     = "HELP_TARGET"
	HelpMove       = "HELP_MOVE"
	HelpTake       = "HELP_TAKE"
	HelpDrop       = "HELP_DROP"
	HelpUse        = "HELP_USE"
	HelpLook       = "HELP_LOOK"
	HelpInventory  = "HELP_INVENTORY"
	HelpHelp       = "HELP_HELP"
	HelpQuit       = "HELP_QUIT"
	PressEnterBack = "PRESS_ENTER_BACK"

	// HelpCategory prefixes a command category name.
	HelpCategory = "HELP_CATEGORY_"

	Quit           = "QUIT"
	UnknownCommand = "UNKNOWN_COMMAND"
)

//go:embed locales/pt_BR.po
var ptBR []byte

var catalog = newCatalog(ptBR)

func newCatalog(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// T returns the translation of key, formatted with args.
// An unknown key is returned as is, without formatting.
func T(key string, args ...any) string {
	tmpl := template(key)
	if len(args) == 0 || tmpl == key {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// template returns the raw catalog entry for key. Get formats only when it
// receives arguments, so an empty list yields the entry untouched.
func template(key string) string {
	return catalog.Get(key, []any{}...)
}

// Direction returns the Portuguese name of a direction.
func Direction(dir string) string {
	return T("DIR_" + dir)
}

// DirectionUpper returns the Portuguese name of a direction in upper case.
func DirectionUpper(dir string) string {
	return strings.ToUpper(Direction(dir))
}
