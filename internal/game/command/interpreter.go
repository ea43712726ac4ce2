package command

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/aventura/internal/game/encounter"
	"github.com/cory-johannsen/aventura/internal/game/inventory"
	"github.com/cory-johannsen/aventura/internal/game/session"
	"github.com/cory-johannsen/aventura/internal/game/usage"
	"github.com/cory-johannsen/aventura/internal/game/world"
	"github.com/cory-johannsen/aventura/internal/i18n"
)

// Interpreter applies player commands to a session.
type Interpreter struct {
	sess     *session.Session
	registry *Registry
	logger   *zap.Logger
	modal    bool
}

// NewInterpreter creates an Interpreter for sess.
//
// Precondition: sess, registry and logger must be non-nil.
func NewInterpreter(sess *session.Session, registry *Registry, logger *zap.Logger) *Interpreter {
	return &Interpreter{sess: sess, registry: registry, logger: logger}
}

// Handle applies one line of input and stores the resulting feedback in the
// session, replacing any pending message. Blank input and input to an ended
// session change nothing.
//
// Postcondition: Returns the feedback set, or "" when nothing happened.
func (in *Interpreter) Handle(line string) string {
	in.modal = false
	if !in.sess.Running() {
		return ""
	}
	p := Parse(line)
	if p.Empty() {
		return ""
	}
	in.logger.Debug("command",
		zap.String("verb", p.Verb),
		zap.String("target", p.Target),
		zap.String("room", in.sess.Player.RoomID),
	)

	msg := in.dispatch(p)
	in.sess.Feedback.Set(msg)
	return msg
}

// Modal reports whether the feedback of the last Handle call belongs on a
// screen of its own, as the help listing does.
func (in *Interpreter) Modal() bool {
	return in.modal
}

func (in *Interpreter) dispatch(p ParseResult) string {
	cmd, ok := in.registry.Resolve(p.Verb)
	if !ok {
		return i18n.T(i18n.UnknownCommand, p.Verb, strings.Join(in.registry.Verbs(), ", "))
	}
	in.modal = cmd.Modal
	if cmd.NeedsTarget && p.Target == "" {
		return i18n.T(i18n.MissingTarget, cmd.Name)
	}

	switch cmd.Handler {
	case HandlerMove:
		return in.move(cmd.Direction)
	case HandlerTake:
		return in.take(p.Target)
	case HandlerDrop:
		return in.drop(p.Target)
	case HandlerUse:
		return in.use(p.Target)
	case HandlerLook:
		return in.look()
	case HandlerInventory:
		return in.listInventory()
	case HandlerHelp:
		return in.registry.HelpText()
	case HandlerQuit:
		in.sess.End(session.Quit)
		in.logger.Info("player quit", zap.String("room", in.sess.Player.RoomID))
		return i18n.T(i18n.Quit)
	default:
		return i18n.T(i18n.UnknownCommand, p.Verb, strings.Join(in.registry.Verbs(), ", "))
	}
}

func (in *Interpreter) move(dir world.Direction) string {
	from := in.sess.Player.RoomID
	to, err := in.sess.Graph.Navigate(from, dir)
	if err != nil {
		var blocked *world.BlockedError
		var locked *world.LockedError
		switch {
		case errors.As(err, &blocked):
			return i18n.T(i18n.MoveBlocked, blocked.Monster)
		case errors.Is(err, world.ErrNoExit):
			return i18n.T(i18n.MoveNoExit)
		case errors.As(err, &locked):
			if locked.Exit.LockedMessage != "" {
				return locked.Exit.LockedMessage
			}
			return i18n.T(i18n.MoveLocked)
		default:
			in.logger.Warn("map inconsistency on move",
				zap.String("room", from),
				zap.String("direction", string(dir)),
				zap.Error(err),
			)
			return i18n.T(i18n.MapError)
		}
	}
	if err := in.sess.MoveTo(to.ID); err != nil {
		in.logger.Warn("moving player", zap.String("room", to.ID), zap.Error(err))
		return i18n.T(i18n.MapError)
	}
	in.logger.Debug("player moved",
		zap.String("from", from),
		zap.String("to", to.ID),
		zap.String("direction", string(dir)),
	)

	msg := i18n.T(i18n.MoveOK, i18n.DirectionUpper(string(dir)))
	if m := to.Monster(); encounter.Blocks(m) {
		msg = joinLines(msg, i18n.T(i18n.EncounterIntro, m.Name, m.Description))
	}
	return msg
}

func (in *Interpreter) take(name string) string {
	floor, err := in.sess.Graph.Floor(in.sess.Player.RoomID)
	if err != nil {
		in.logger.Warn("current room missing", zap.String("room", in.sess.Player.RoomID), zap.Error(err))
		return i18n.T(i18n.MapError)
	}
	if _, err := inventory.Take(floor, in.sess.Player.Inventory, name); err != nil {
		switch {
		case errors.Is(err, inventory.ErrItemNotInRoom):
			return i18n.T(i18n.TakeNotHere, name)
		case errors.Is(err, inventory.ErrInventoryFull):
			return i18n.T(i18n.TakeFull)
		default:
			return i18n.T(i18n.TakeAlreadyHeld, name)
		}
	}
	in.logger.Debug("item taken", zap.String("item", name), zap.String("room", in.sess.Player.RoomID))
	return i18n.T(i18n.TakeOK, name)
}

func (in *Interpreter) drop(name string) string {
	floor, err := in.sess.Graph.Floor(in.sess.Player.RoomID)
	if err != nil {
		in.logger.Warn("current room missing", zap.String("room", in.sess.Player.RoomID), zap.Error(err))
		return i18n.T(i18n.MapError)
	}
	if _, err := inventory.Drop(in.sess.Player.Inventory, floor, name); err != nil {
		if errors.Is(err, inventory.ErrItemNotHeld) {
			return i18n.T(i18n.DropNotHeld, name)
		}
		return i18n.T(i18n.DropNameTaken, name)
	}
	in.logger.Debug("item dropped", zap.String("item", name), zap.String("room", in.sess.Player.RoomID))
	return i18n.T(i18n.DropOK, name)
}

// use tries the item against an active monster first; only a room without one
// runs usage resolution.
func (in *Interpreter) use(name string) string {
	inv := in.sess.Player.Inventory
	if !inv.Has(name) {
		return i18n.T(i18n.UseNotHeld, name)
	}
	roomID := in.sess.Player.RoomID
	room, ok := in.sess.CurrentRoom()
	if !ok {
		in.logger.Warn("current room missing", zap.String("room", roomID))
		return i18n.T(i18n.MapError)
	}

	if m := room.Monster(); encounter.Blocks(m) {
		return in.attempt(roomID, m, name)
	}

	out, err := usage.Resolve(in.sess.Graph, roomID, inv, name)
	if err != nil {
		in.logger.Warn("resolving usage", zap.String("room", roomID), zap.String("item", name), zap.Error(err))
		return i18n.T(i18n.MapError)
	}
	in.logger.Debug("item used",
		zap.String("item", name),
		zap.String("room", roomID),
		zap.Stringer("outcome", out.Kind),
	)

	dir := i18n.DirectionUpper(string(out.Direction))
	switch out.Kind {
	case usage.NoEffect:
		return i18n.T(i18n.UseNothing, name)
	case usage.Unlocked:
		return joinLines(out.Description, i18n.T(i18n.UseUnlocked, dir))
	case usage.AlreadyOpen:
		return joinLines(out.Description, i18n.T(i18n.UseAlreadyOpen, dir))
	case usage.Malfunction:
		in.logger.Warn("usage unlocks a missing exit",
			zap.String("room", roomID),
			zap.String("item", name),
			zap.String("direction", string(out.Direction)),
		)
		return joinLines(out.Description, i18n.T(i18n.UseMalfunction, dir))
	case usage.Removed:
		return joinLines(out.Description, i18n.T(i18n.UseRemoved, out.Item))
	default:
		if out.Description == "" {
			return i18n.T(i18n.UseNothing, name)
		}
		return out.Description
	}
}

func (in *Interpreter) attempt(roomID string, m *encounter.Monster, item string) string {
	name, defeatMessage := m.Name, m.DefeatMessage
	out, err := in.sess.Graph.AttemptDefeat(roomID, item)
	if err != nil {
		in.logger.Warn("monster attempt", zap.String("room", roomID), zap.Error(err))
		return i18n.T(i18n.UseNothing, item)
	}
	in.logger.Debug("monster attempt",
		zap.String("monster", name),
		zap.String("item", item),
		zap.Stringer("state", out.State),
		zap.Int("remaining", out.Remaining),
	)

	switch {
	case out.Success():
		if defeatMessage != "" {
			return defeatMessage
		}
		return i18n.T(i18n.MonsterDefeated, name)
	case out.Fatal():
		if in.sess.End(session.Lost) {
			in.logger.Info("player defeated", zap.String("monster", name), zap.String("room", roomID))
		}
		return i18n.T(i18n.MonsterFatal, name)
	default:
		return i18n.T(i18n.MonsterResisted, name, out.Remaining)
	}
}

func (in *Interpreter) look() string {
	room, ok := in.sess.CurrentRoom()
	if !ok {
		return i18n.T(i18n.MapError)
	}
	return joinLines(i18n.T(i18n.RoomCurrent, room.ID), room.Description)
}

func (in *Interpreter) listInventory() string {
	items := in.sess.Player.Inventory.Items()
	if len(items) == 0 {
		return i18n.T(i18n.InventoryEmpty)
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, i18n.T(i18n.RoomItemEntry, it.Name, it.Description))
	}
	return joinLines(
		i18n.T(i18n.InventoryList, strings.Join(names, ", ")),
		i18n.T(i18n.InventoryCapacity, len(items), in.sess.Player.Inventory.MaxItems()),
	)
}

func joinLines(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
