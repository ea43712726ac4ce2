package world

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/aventura/internal/game/dice"
	"github.com/cory-johannsen/aventura/internal/game/encounter"
	"github.com/cory-johannsen/aventura/internal/game/inventory"
)

// DefaultMaxItems is the inventory capacity used when the map does not set one.
const DefaultMaxItems = 2

// Map is a loaded map document: the room graph plus the inventory capacity.
type Map struct {
	Graph    *Graph
	MaxItems int
}

// yamlMap is the top-level map document.
type yamlMap struct {
	Main     string    `yaml:"main"`
	Exit     string    `yaml:"exit"`
	MaxItems *int      `yaml:"max_items"`
	MaxItens *int      `yaml:"max_itens"`
	Rooms    yaml.Node `yaml:"rooms"`
}

// yamlRoom is a room record. Its direction keys sit next to the regular
// fields, so it is decoded by hand.
type yamlRoom struct {
	Description string
	Items       []inventory.Item
	Use         []yamlUse
	Monster     *yamlMonster
	Exits       []yamlExit
}

// yamlExit accepts either a bare room ID or a structured record.
type yamlExit struct {
	Direction     Direction `yaml:"-"`
	Room          string    `yaml:"room"`
	Locked        bool      `yaml:"locked"`
	KeyItem       string    `yaml:"key_item"`
	LockedMessage string    `yaml:"locked_message"`
}

type yamlUse struct {
	Item        string     `yaml:"item"`
	Description string     `yaml:"description"`
	Action      yamlAction `yaml:"action"`
}

type yamlAction struct {
	Type      string `yaml:"type"`
	Direction string `yaml:"direction"`
	Room      string `yaml:"room"`
	Item      string `yaml:"item"`
}

type yamlMonster struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	DefeatItem    string `yaml:"defeat_item"`
	DefeatMessage string `yaml:"defeat_message"`
}

// UnmarshalYAML normalizes both exit shapes into one record.
func (e *yamlExit) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Tag == "!!null" {
			return fmt.Errorf("line %d: exit target must not be null", value.Line)
		}
		e.Room = value.Value
		return nil
	}
	type plain yamlExit
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = yamlExit(p)
	return nil
}

// UnmarshalYAML walks the room mapping in document order.
func (r *yamlRoom) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: room must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i].Value, value.Content[i+1]
		switch key {
		case "description":
			if err := val.Decode(&r.Description); err != nil {
				return fmt.Errorf("description: %w", err)
			}
		case "items", "itens":
			items, err := orderedItems(val)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			r.Items = append(r.Items, items...)
		case "use":
			if err := val.Decode(&r.Use); err != nil {
				return fmt.Errorf("use: %w", err)
			}
		case "monster":
			if val.Tag == "!!null" {
				continue
			}
			var m yamlMonster
			if err := val.Decode(&m); err != nil {
				return fmt.Errorf("monster: %w", err)
			}
			r.Monster = &m
		default:
			dir := Direction(key)
			if !dir.IsStandard() {
				return fmt.Errorf("line %d: unknown room field %q", value.Content[i].Line, key)
			}
			var e yamlExit
			if err := val.Decode(&e); err != nil {
				return fmt.Errorf("exit %s: %w", key, err)
			}
			e.Direction = dir
			r.Exits = append(r.Exits, e)
		}
	}
	return nil
}

// orderedItems decodes an item-name to description mapping, keeping document order.
func orderedItems(node *yaml.Node) ([]inventory.Item, error) {
	if node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: items must be a mapping of name to description", node.Line)
	}
	items := make([]inventory.Item, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var desc string
		if err := node.Content[i+1].Decode(&desc); err != nil {
			return nil, fmt.Errorf("item %q: %w", node.Content[i].Value, err)
		}
		items = append(items, inventory.Item{Name: node.Content[i].Value, Description: desc})
	}
	return items, nil
}

// LoadMapFromFile reads and validates a map document. Files ending in .json
// are read as JSON; anything else as YAML.
//
// Precondition: src must be non-nil; it rolls each monster's attempts.
// Postcondition: Returns a validated Map or an error.
func LoadMapFromFile(path string, src dice.Source) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadMapFromJSON(data, src)
	}
	return LoadMapFromBytes(data, src)
}

// LoadMapFromJSON parses and validates a JSON map document.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a validated Map or an error wrapping ErrMalformedMap
// or ErrDanglingExit.
func LoadMapFromJSON(data []byte, src dice.Source) (*Map, error) {
	root, err := jsonToNode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing map JSON: %v", ErrMalformedMap, err)
	}
	var doc yamlMap
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parsing map: %v", ErrMalformedMap, err)
	}
	return buildMap(doc, src)
}

// LoadMapFromBytes parses and validates a map document from raw bytes.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a validated Map or an error wrapping ErrMalformedMap
// or ErrDanglingExit.
func LoadMapFromBytes(data []byte, src dice.Source) (*Map, error) {
	var doc yamlMap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing map: %v", ErrMalformedMap, err)
	}
	return buildMap(doc, src)
}

// buildMap validates a decoded document and builds its graph.
func buildMap(doc yamlMap, src dice.Source) (*Map, error) {
	if doc.Main == "" {
		return nil, malformed("missing required field %q", "main")
	}
	if doc.Exit == "" {
		return nil, malformed("missing required field %q", "exit")
	}
	if doc.Rooms.Kind != yaml.MappingNode || len(doc.Rooms.Content) == 0 {
		return nil, malformed("missing required field %q", "rooms")
	}

	maxItems := DefaultMaxItems
	switch {
	case doc.MaxItems != nil:
		maxItems = *doc.MaxItems
	case doc.MaxItens != nil:
		maxItems = *doc.MaxItens
	}
	if maxItems < 1 {
		return nil, malformed("max_items must be >= 1, got %d", maxItems)
	}

	defs := make([]RoomDef, 0, len(doc.Rooms.Content)/2)
	for i := 0; i+1 < len(doc.Rooms.Content); i += 2 {
		id := doc.Rooms.Content[i].Value
		var yr yamlRoom
		if err := doc.Rooms.Content[i+1].Decode(&yr); err != nil {
			return nil, malformed("room %q: %v", id, err)
		}
		def, err := convertRoom(id, yr, src)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	g, err := NewGraph(defs, doc.Main, doc.Exit)
	if err != nil {
		return nil, err
	}
	if err := g.ValidateExits(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}
	return &Map{Graph: g, MaxItems: maxItems}, nil
}

// convertRoom turns a parsed room record into a RoomDef, spawning its monster.
func convertRoom(id string, yr yamlRoom, src dice.Source) (RoomDef, error) {
	def := RoomDef{
		ID:          id,
		Description: strings.TrimSpace(yr.Description),
		Items:       yr.Items,
	}
	for _, ye := range yr.Exits {
		if ye.Room == "" {
			return RoomDef{}, malformed("room %q: exit %q has no room", id, ye.Direction)
		}
		def.Exits = append(def.Exits, Exit{
			Direction:     ye.Direction,
			Target:        ye.Room,
			Locked:        ye.Locked,
			KeyItem:       ye.KeyItem,
			LockedMessage: ye.LockedMessage,
		})
	}

	seen := make(map[string]bool, len(yr.Use))
	for _, yu := range yr.Use {
		if yu.Item == "" {
			return RoomDef{}, malformed("room %q: usage entry without item", id)
		}
		if seen[yu.Item] {
			return RoomDef{}, malformed("room %q: duplicate usage entry for item %q", id, yu.Item)
		}
		seen[yu.Item] = true
		action, err := convertAction(yu)
		if err != nil {
			return RoomDef{}, malformed("room %q: item %q: %v", id, yu.Item, err)
		}
		def.Usage = append(def.Usage, Effect{
			Item:        yu.Item,
			Description: yu.Description,
			Action:      action,
		})
	}

	if yr.Monster != nil {
		m, err := encounter.Spawn(encounter.Definition{
			Name:          yr.Monster.Name,
			Description:   yr.Monster.Description,
			DefeatItem:    yr.Monster.DefeatItem,
			DefeatMessage: yr.Monster.DefeatMessage,
		}, src)
		if err != nil {
			return RoomDef{}, malformed("room %q: %v", id, err)
		}
		def.Monster = m
	}
	return def, nil
}

// convertAction maps the loosely shaped action record to its typed variant.
// Unknown types are narrative-only.
func convertAction(yu yamlUse) (Action, error) {
	switch strings.ToLower(yu.Action.Type) {
	case "unlock", "unlock_exit", "unlock-exit":
		dir := Direction(yu.Action.Direction)
		if !dir.IsStandard() {
			return nil, fmt.Errorf("unlock action has invalid direction %q", yu.Action.Direction)
		}
		if yu.Action.Room == "" {
			return nil, fmt.Errorf("unlock action has no room")
		}
		return UnlockExit{Direction: dir, Target: yu.Action.Room}, nil
	case "remove", "remove_item", "remove-item":
		item := yu.Action.Item
		if item == "" {
			item = yu.Item
		}
		return RemoveItem{Item: item}, nil
	default:
		return Narrative{}, nil
	}
}
