// Package console implements the terminal side of the game: a colored
// renderer and a line reader.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/aventura/internal/config"
	"github.com/cory-johannsen/aventura/internal/game/session"
	"github.com/cory-johannsen/aventura/internal/i18n"
)

const (
	defaultWidth = 50
	maxWidth     = 80
	clearScreen  = "\033[H\033[2J"
)

// Renderer writes game screens to a terminal or any writer.
type Renderer struct {
	out      io.Writer
	colorOn  bool
	terminal bool
	width    int
	title    cases.Caser

	styleHeader   color.Style
	styleFeedback color.Style
	styleExit     color.Style
	styleLocked   color.Style
	styleItem     color.Style
	styleMonster  color.Style
	styleSubtle   color.Style
}

// NewRenderer creates a Renderer. colorMode is one of the config.Color* values;
// "auto" colors only when out is a terminal.
func NewRenderer(out io.Writer, colorMode string) *Renderer {
	fd, isFile := fileDescriptor(out)
	terminal := isFile && term.IsTerminal(fd)

	width := defaultWidth
	if terminal {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = min(w, maxWidth)
		}
	}

	colorOn := false
	switch colorMode {
	case config.ColorAlways:
		colorOn = true
		color.Enable = true
	case config.ColorAuto:
		colorOn = terminal
	}

	return &Renderer{
		out:      out,
		colorOn:  colorOn,
		terminal: terminal,
		width:    width,
		title:    cases.Title(language.BrazilianPortuguese),

		styleHeader:   color.Style{color.FgYellow, color.OpBold},
		styleFeedback: color.Style{color.FgCyan},
		styleExit:     color.Style{color.FgGreen},
		styleLocked:   color.Style{color.FgRed, color.OpBold},
		styleItem:     color.Style{color.FgMagenta},
		styleMonster:  color.Style{color.FgRed, color.OpBold},
		styleSubtle:   color.Style{color.FgGray},
	}
}

func fileDescriptor(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

func (r *Renderer) paint(s color.Style, text string) string {
	if !r.colorOn || text == "" {
		return text
	}
	return s.Sprint(text)
}

// Clear wipes the screen. It does nothing when the output is not a terminal.
func (r *Renderer) Clear() {
	if r.terminal {
		fmt.Fprint(r.out, clearScreen)
	}
}

// Message prints each line preceded by a blank line.
func (r *Renderer) Message(lines ...string) {
	for _, l := range lines {
		if l == "" {
			continue
		}
		fmt.Fprintf(r.out, "\n%s\n", l)
	}
}

// Turn prints the feedback, then the room and the inventory.
func (r *Renderer) Turn(snap session.Snapshot) {
	if snap.Feedback != "" {
		fmt.Fprintf(r.out, "\n%s\n", r.paint(r.styleFeedback, snap.Feedback))
	}
	fmt.Fprint(r.out, r.RoomText(snap.Room))
	fmt.Fprint(r.out, r.InventoryText(snap.Inventory))
}

// DisplayName turns a room or direction key into a display label.
func (r *Renderer) DisplayName(key string) string {
	return r.title.String(strings.ReplaceAll(key, "_", " "))
}

// RoomText formats a room view.
func (r *Renderer) RoomText(v session.RoomView) string {
	var b strings.Builder
	rule := strings.Repeat("=", r.width)

	b.WriteString("\n")
	b.WriteString(r.paint(r.styleSubtle, rule))
	b.WriteString("\n")
	b.WriteString(r.paint(r.styleHeader, i18n.T(i18n.RoomCurrent, r.DisplayName(v.ID))))
	b.WriteString("\n")
	b.WriteString(r.paint(r.styleSubtle, rule))
	b.WriteString("\n")
	if v.Description != "" {
		b.WriteString(v.Description)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(v.Exits) == 0 {
		b.WriteString(r.paint(r.styleLocked, i18n.T(i18n.RoomTrapped)))
	} else {
		exits := make([]string, 0, len(v.Exits))
		for _, e := range v.Exits {
			entry := i18n.T(i18n.RoomExitEntry,
				r.DisplayName(i18n.Direction(string(e.Direction))),
				r.DisplayName(e.Target))
			if e.Locked {
				exits = append(exits, r.paint(r.styleLocked, entry+" "+i18n.T(i18n.RoomExitLocked)))
				continue
			}
			exits = append(exits, r.paint(r.styleExit, entry))
		}
		b.WriteString(i18n.T(i18n.RoomExits, strings.Join(exits, ", ")))
	}
	b.WriteString("\n")

	if len(v.Items) == 0 {
		b.WriteString(i18n.T(i18n.RoomNoItems))
	} else {
		items := make([]string, 0, len(v.Items))
		for _, it := range v.Items {
			items = append(items, r.paint(r.styleItem, i18n.T(i18n.RoomItemEntry, it.Name, it.Description)))
		}
		b.WriteString(i18n.T(i18n.RoomItems, strings.Join(items, ", ")))
	}
	b.WriteString("\n")

	if v.Monster != nil {
		b.WriteString(r.paint(r.styleMonster, i18n.T(i18n.RoomMonster, v.Monster.Name, v.Monster.Description)))
		b.WriteString("\n")
	}
	return b.String()
}

// InventoryText formats an inventory view between two rules.
func (r *Renderer) InventoryText(v session.InventoryView) string {
	var b strings.Builder
	rule := r.paint(r.styleSubtle, strings.Repeat("-", r.width))

	b.WriteString(rule)
	b.WriteString("\n")
	if len(v.Items) == 0 {
		b.WriteString(i18n.T(i18n.InventoryEmpty))
	} else {
		items := make([]string, 0, len(v.Items))
		for _, it := range v.Items {
			items = append(items, r.paint(r.styleItem, i18n.T(i18n.RoomItemEntry, it.Name, it.Description)))
		}
		b.WriteString(i18n.T(i18n.InventoryList, strings.Join(items, ", ")))
		b.WriteString(" ")
		b.WriteString(r.paint(r.styleSubtle, i18n.T(i18n.InventoryCapacity, len(v.Items), v.MaxItems)))
	}
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	return b.String()
}
